package dto

type RegisterRequestDTO struct {
	Email        string `json:"email" example:"ann@example.com"`
	Name         string `json:"name" example:"Ann"`
	Password     string `json:"password" example:"secret123"`
	ReferralCode string `json:"referralCode,omitempty" example:"A1B2C3LX9K2A7QZ4M1"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"secret123"`
}

type AuthResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"userId" example:"8b0f8c9e-2f7a-4c1e-9d59-1f3a1c2b7e44"`
}

type UpdateNameRequestDTO struct {
	Name string `json:"name" example:"Annie"`
}
