package service

import (
	"github.com/D1yWeb/S2C/internal/config"
	"github.com/D1yWeb/S2C/internal/pg"
	"github.com/D1yWeb/S2C/internal/repo"
	"github.com/D1yWeb/S2C/internal/service/affiliateservice"
	"github.com/D1yWeb/S2C/internal/service/authservice"
	"github.com/D1yWeb/S2C/internal/service/creditservice"
	"github.com/D1yWeb/S2C/internal/service/projectservice"
	"github.com/D1yWeb/S2C/internal/service/teamservice"
	pkgauth "github.com/D1yWeb/S2C/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type Services struct {
	JWT              *pkgauth.JWTService
	AuthService      *authservice.Service
	AffiliateService *affiliateservice.Service
	CreditService    *creditservice.Service
	ProjectService   *projectservice.Service
	TeamService      *teamservice.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager, checkout creditservice.CheckoutClient, cfg *config.Config) *Services {
	jwt := pkgauth.NewJWTService(cfg.JWTKey)

	creditService := creditservice.New(txManager, repos.CreditRepo, repos.CreditRepo, repos.PurchaseRepo, checkout, creditservice.Options{
		Products: cfg.CheckoutProducts,
		AppURL:   cfg.AppURL,
	})
	affiliateService := affiliateservice.New(
		txManager,
		repos.AffiliateRepo,
		repos.ClickRepo,
		repos.ConversionRepo,
		creditService,
		cfg.CreditsPerSignup,
	)

	return &Services{
		JWT:              jwt,
		AuthService:      authservice.New(repos.UserRepo, pkgauth.NewBcryptHasher(bcrypt.DefaultCost), jwt),
		AffiliateService: affiliateService,
		CreditService:    creditService,
		ProjectService:   projectservice.New(txManager, repos.ProjectRepo, repos.FolderRepo, repos.TeamRepo, cfg.Retention()),
		TeamService:      teamservice.New(repos.TeamRepo, repos.ProjectRepo, repos.UserRepo),
	}
}
