package repo

import (
	"github.com/D1yWeb/S2C/internal/pg"
	affiliaterepo "github.com/D1yWeb/S2C/internal/repo/affiliate-repo"
	clickrepo "github.com/D1yWeb/S2C/internal/repo/click-repo"
	conversionrepo "github.com/D1yWeb/S2C/internal/repo/conversion-repo"
	creditrepo "github.com/D1yWeb/S2C/internal/repo/credit-repo"
	folderrepo "github.com/D1yWeb/S2C/internal/repo/folder-repo"
	projectrepo "github.com/D1yWeb/S2C/internal/repo/project-repo"
	purchaserepo "github.com/D1yWeb/S2C/internal/repo/purchase-repo"
	teamrepo "github.com/D1yWeb/S2C/internal/repo/team-repo"
	userrepo "github.com/D1yWeb/S2C/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	AffiliateRepo  *affiliaterepo.Repository
	ClickRepo      *clickrepo.Repository
	ConversionRepo *conversionrepo.Repository
	CreditRepo     *creditrepo.Repository
	PurchaseRepo   *purchaserepo.Repository
	ProjectRepo    *projectrepo.Repository
	FolderRepo     *folderrepo.Repository
	TeamRepo       *teamrepo.Repository
}

// New binds every repository to conn. Transactions started through a
// pg.TXManager over the same pool are picked up from the context.
func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		AffiliateRepo:  affiliaterepo.New(conn),
		ClickRepo:      clickrepo.New(conn),
		ConversionRepo: conversionrepo.New(conn),
		CreditRepo:     creditrepo.New(conn),
		PurchaseRepo:   purchaserepo.New(conn),
		ProjectRepo:    projectrepo.New(conn),
		FolderRepo:     folderrepo.New(conn),
		TeamRepo:       teamrepo.New(conn),
	}
}
