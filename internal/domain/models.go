package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Image        string    `db:"image"`
	CreatedAt    time.Time `db:"created_at"`
}

type ConversionType string

const (
	ConversionSignup       ConversionType = "signup"
	ConversionPurchase     ConversionType = "purchase"
	ConversionSubscription ConversionType = "subscription"
)

func (t ConversionType) Valid() bool {
	switch t {
	case ConversionSignup, ConversionPurchase, ConversionSubscription:
		return true
	}
	return false
}

type ConversionStatus string

const (
	ConversionPending ConversionStatus = "pending"
	ConversionGranted ConversionStatus = "granted"
)

type Affiliate struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	Code               string    `db:"code"`
	CreditsPerSignup   int       `db:"credits_per_signup"`
	IsActive           bool      `db:"is_active"`
	TotalClicks        int       `db:"total_clicks"`
	TotalSignups       int       `db:"total_signups"`
	TotalPurchases     int       `db:"total_purchases"`
	TotalCreditsEarned int       `db:"total_credits_earned"`
	PendingCredits     int       `db:"pending_credits"`
	GrantedCredits     int       `db:"granted_credits"`
	CreatedAt          time.Time `db:"created_at"`
}

type AffiliateStats struct {
	Affiliate
	RecentClicksCount       int
	PendingConversionsCount int
	GrantedConversionsCount int
}

type ClickMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

type Click struct {
	ID            string    `db:"id"`
	AffiliateID   string    `db:"affiliate_id"`
	AffiliateCode string    `db:"affiliate_code"`
	IPAddress     string    `db:"ip_address"`
	UserAgent     string    `db:"user_agent"`
	Referrer      string    `db:"referrer"`
	ClickedAt     time.Time `db:"clicked_at"`
}

type Conversion struct {
	ID            string              `db:"id"`
	AffiliateID   string              `db:"affiliate_id"`
	AffiliateCode string              `db:"affiliate_code"`
	UserID        string              `db:"converted_user_id"`
	Type          ConversionType      `db:"conversion_type"`
	Amount        decimal.NullDecimal `db:"amount"`
	PurchaseRef   *string             `db:"purchase_ref"`
	CreditsEarned int                 `db:"credits_earned"`
	Status        ConversionStatus    `db:"status"`
	ConvertedAt   time.Time           `db:"converted_at"`
	GrantedAt     *time.Time          `db:"granted_at"`
}

type ConversionInput struct {
	Code        string
	UserID      string
	Type        ConversionType
	Amount      decimal.NullDecimal
	PurchaseRef string
}

type ConversionView struct {
	Conversion
	UserEmail string
	UserName  string
}

type DailyStat struct {
	Date        string
	Clicks      int
	Conversions int
	Earnings    int
}

type Analytics struct {
	Affiliate        Affiliate
	TimeSeries       []DailyStat
	TotalClicks      int
	TotalConversions int
	ConversionRate   float64
}

type CreditBalance struct {
	UserID    string    `db:"user_id"`
	Balance   int       `db:"balance"`
	UpdatedAt time.Time `db:"updated_at"`
}

type LedgerEntry struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Amount         int       `db:"amount"`
	Reason         string    `db:"reason"`
	IdempotencyKey *string   `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}

type CreditPackage struct {
	ID      string
	Name    string
	Credits int
	Price   decimal.Decimal
}

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseFailed    PurchaseStatus = "failed"
)

type CreditPurchase struct {
	ID                 string          `db:"id"`
	UserID             string          `db:"user_id"`
	PackageID          string          `db:"package_id"`
	Credits            int             `db:"credits"`
	Price              decimal.Decimal `db:"price"`
	AffiliateCode      *string         `db:"affiliate_code"`
	Status             PurchaseStatus  `db:"status"`
	ProviderCheckoutID *string         `db:"provider_checkout_id"`
	ProviderOrderID    *string         `db:"provider_order_id"`
	CreatedAt          time.Time       `db:"created_at"`
	CompletedAt        *time.Time      `db:"completed_at"`
}

type CheckoutSession struct {
	PurchaseID string
	URL        string
	Credits    int
	Price      decimal.Decimal
}

type Folder struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	Name      string     `db:"name"`
	Color     string     `db:"color"`
	IsDeleted bool       `db:"is_deleted"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedAt time.Time  `db:"created_at"`
}

type Project struct {
	ID                  string          `db:"id"`
	UserID              string          `db:"user_id"`
	Name                string          `db:"name"`
	Description         string          `db:"description"`
	FolderID            *string         `db:"folder_id"`
	StyleGuide          string          `db:"style_guide"`
	SketchesData        json.RawMessage `db:"sketches_data"`
	ViewportData        json.RawMessage `db:"viewport_data"`
	GeneratedDesignData json.RawMessage `db:"generated_design_data"`
	Thumbnail           string          `db:"thumbnail"`
	IsPublic            bool            `db:"is_public"`
	Tags                []string        `db:"tags"`
	ProjectNumber       int             `db:"project_number"`
	IsDeleted           bool            `db:"is_deleted"`
	DeletedAt           *time.Time      `db:"deleted_at"`
	LastModified        time.Time       `db:"last_modified"`
	CreatedAt           time.Time       `db:"created_at"`
}

type ProjectListItem struct {
	Project
	IsShared        bool
	TeamMemberCount int
}

type ProjectFilter struct {
	FolderID *string
	RootOnly bool
	Deleted  bool
	Limit    int
}

type TeamRole string

const (
	RoleViewer TeamRole = "viewer"
	RoleEditor TeamRole = "editor"
	RoleAdmin  TeamRole = "admin"
)

func (r TeamRole) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

func (r TeamRole) CanEdit() bool {
	return r == RoleEditor || r == RoleAdmin
}

type TeamMember struct {
	ID        string     `db:"id"`
	ProjectID string     `db:"project_id"`
	UserID    string     `db:"user_id"`
	Role      TeamRole   `db:"role"`
	InvitedAt time.Time  `db:"invited_at"`
	JoinedAt  *time.Time `db:"joined_at"`
}

func (m TeamMember) Accepted() bool {
	return m.JoinedAt != nil
}

type MemberView struct {
	TeamMember
	UserEmail string
	UserName  string
	UserImage string
}

type InviteView struct {
	TeamMember
	ProjectName      string
	ProjectThumbnail string
	OwnerName        string
	OwnerEmail       string
}

type CleanupResult struct {
	FolderProjects int64
	Folders        int64
	Projects       int64
}

func (r CleanupResult) Total() int64 {
	return r.FolderProjects + r.Folders + r.Projects
}

// DisplayName falls back to the local part of the email, then to "User".
func DisplayName(name, email string) string {
	if name != "" {
		return name
	}
	if local, _, _ := strings.Cut(email, "@"); local != "" {
		return local
	}
	return "User"
}
