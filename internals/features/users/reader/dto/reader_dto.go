package dto

import (
	"strings"

	"github.com/google/uuid"

	model "bukuku_backend/internals/features/users/reader/model"
)

/* =========================
   REQUEST
   ========================= */

type ReaderSignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ReaderSigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================
   NORMALIZER & MAPPER
   ========================= */

func (r *ReaderSignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// ToModel: id dibangkitkan di aplikasi (bukan di DB), password sudah hash
func (r *ReaderSignupRequest) ToModel(hashedPassword string) *model.ReaderModel {
	return &model.ReaderModel{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
	}
}
