package dto

import (
	"strings"

	model "bukuku_backend/internals/features/users/user/model"
)

/* =========================
   REQUEST
   ========================= */

// Signup datang sebagai form-encoded (bukan JSON)
type UserSignupRequest struct {
	UserName string `form:"username" json:"username" validate:"required"`
	Email    string `form:"email"    json:"email"    validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Role     string `form:"role"     json:"role"     validate:"required"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================
   NORMALIZER & MAPPER
   ========================= */

func (r *UserSignupRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel: password sudah berbentuk hash di sini
func (r *UserSignupRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     r.Role,
	}
}
