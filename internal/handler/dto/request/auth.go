package request

import (
	"courtbook/internal/domain/user"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *SignupRequest) ToDomain() (user.Username, user.Email, user.Password, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return user.Username{}, user.Email{}, user.Password{}, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Username{}, user.Email{}, user.Password{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Username{}, user.Email{}, user.Password{}, err
	}
	return username, email, password, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Email, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Password{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Password{}, err
	}
	return email, password, nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
