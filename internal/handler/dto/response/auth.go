package response

import (
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SignupResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
}

type LoginResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	AccessToken string    `json:"access_token"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type MeResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
