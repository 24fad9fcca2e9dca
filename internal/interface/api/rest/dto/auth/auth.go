package auth

import "github.com/google/uuid"

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	LoginResponse struct {
		Message string    `json:"message"`
		Token   string    `json:"token"`
		UserID  uuid.UUID `json:"userId"`
	}
)
