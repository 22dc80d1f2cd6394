package dto

import "github.com/campaign-tracker/backend/internal/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	User    models.UserInfo `json:"user"`
}

type ResetTokenResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
