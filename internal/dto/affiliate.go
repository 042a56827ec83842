package dto

import "time"

type AffiliateResponseDTO struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Code               string    `json:"code" example:"A1B2C3LX9K2A7QZ4M1"`
	CreditsPerSignup   int       `json:"creditsPerSignup" example:"10"`
	IsActive           bool      `json:"isActive"`
	TotalClicks        int       `json:"totalClicks"`
	TotalSignups       int       `json:"totalSignups"`
	TotalPurchases     int       `json:"totalPurchases"`
	TotalCreditsEarned int       `json:"totalCreditsEarned"`
	PendingCredits     int       `json:"pendingCredits"`
	GrantedCredits     int       `json:"grantedCredits"`
	CreatedAt          time.Time `json:"createdAt"`
}

type AffiliateStatsResponseDTO struct {
	AffiliateResponseDTO
	RecentClicksCount       int `json:"recentClicksCount"`
	PendingConversionsCount int `json:"pendingConversionsCount"`
	GrantedConversionsCount int `json:"grantedConversionsCount"`
}

type ConversionResponseDTO struct {
	ID             string     `json:"id"`
	ConvertedUser  string     `json:"convertedUserId"`
	ConversionType string     `json:"conversionType" example:"signup"`
	Amount         *string    `json:"amount,omitempty" example:"19.99"`
	CreditsEarned  int        `json:"creditsEarned" example:"10"`
	Status         string     `json:"status" example:"granted"`
	ConvertedAt    time.Time  `json:"convertedAt"`
	GrantedAt      *time.Time `json:"grantedAt,omitempty"`
	UserEmail      string     `json:"userEmail" example:"bob@example.com"`
	UserName       string     `json:"userName" example:"bob"`
}

type DailyStatDTO struct {
	Date        string `json:"date" example:"2024-05-10"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
	Earnings    int    `json:"earnings"`
}

type AnalyticsResponseDTO struct {
	Affiliate        AffiliateResponseDTO `json:"affiliate"`
	TimeSeriesData   []DailyStatDTO       `json:"timeSeriesData"`
	TotalClicks      int                  `json:"totalClicks"`
	TotalConversions int                  `json:"totalConversions"`
	ConversionRate   float64              `json:"conversionRate" example:"12.5"`
}

type UpdateSettingsRequestDTO struct {
	IsActive *bool `json:"isActive,omitempty"`
}

type TrackClickRequestDTO struct {
	AffiliateCode string `json:"affiliateCode" example:"A1B2C3LX9K2A7QZ4M1"`
	IPAddress     string `json:"ipAddress,omitempty"`
	UserAgent     string `json:"userAgent,omitempty"`
	Referrer      string `json:"referrer,omitempty"`
}

type SignupConversionRequestDTO struct {
	AffiliateCode string `json:"affiliateCode,omitempty" example:"A1B2C3LX9K2A7QZ4M1"`
}

// OkResponseDTO is the soft-failure envelope of the public affiliate calls.
type OkResponseDTO struct {
	OK            bool   `json:"ok"`
	Error         string `json:"error,omitempty"`
	CreditsEarned *int   `json:"creditsEarned,omitempty"`
}
