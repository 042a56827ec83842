package dto

import "time"

type CreditBalanceResponseDTO struct {
	Balance   int       `json:"balance" example:"42"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LedgerEntryResponseDTO struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount" example:"10"`
	Reason    string    `json:"reason" example:"affiliate_signup"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreditPackageResponseDTO struct {
	ID      string `json:"id" example:"small"`
	Name    string `json:"name" example:"10 Credits"`
	Credits int    `json:"credits" example:"10"`
	Price   string `json:"price" example:"9.99"`
}

type CheckoutRequestDTO struct {
	PackageID string `json:"packageId" example:"small"`
}

type CheckoutResponseDTO struct {
	URL        string `json:"url" example:"https://checkout.example.com/s/abc"`
	PurchaseID string `json:"purchaseId"`
	Credits    int    `json:"credits" example:"10"`
	Price      string `json:"price" example:"9.99"`
}

type WebhookRequestDTO struct {
	Type string `json:"type" example:"order.paid"`
	Data struct {
		ID       string            `json:"id" example:"ord_123"`
		Metadata map[string]string `json:"metadata"`
	} `json:"data"`
}
