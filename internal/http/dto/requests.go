package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name      string `json:"name"`
	Client    string `json:"client"`
	StartDate string `json:"start_date"`
	Status    string `json:"status"`
}

type UpdateCampaignRequest struct {
	Status string `json:"status"`
}
