package dto

import (
	"strings"

	"github.com/google/uuid"

	model "bukuku_backend/internals/features/users/author/model"
)

type AuthorSignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthorSigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *AuthorSignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *AuthorSignupRequest) ToModel(hashedPassword string) *model.AuthorModel {
	return &model.AuthorModel{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
	}
}
