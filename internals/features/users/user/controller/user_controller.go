package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bukuku_backend/internals/configs"
	dto "bukuku_backend/internals/features/users/user/dto"
	model "bukuku_backend/internals/features/users/user/model"
	helper "bukuku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// =========================================================
// SIGNUP - POST /signup
// Body: form (username, email, password, role)
// =========================================================
func (ctl *UserController) SignUp(c *fiber.Ctx) error {
	var req dto.UserSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek unik username dulu supaya pesannya jelas
	var cnt int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("user_name = ?", req.UserName).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check username")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username already registered")
	}

	hashed, err := helper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := req.ToModel(hashed)
	if err := ctl.DB.Create(user).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s with role %s created successfully", user.UserName, user.Role),
	})
}

// =========================================================
// LOGIN - POST /login
// Hanya pasangan kredensial admin dari konfigurasi yang lolos;
// tidak ada lookup ke tabel users sama sekali.
// =========================================================
func (ctl *UserController) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Email != configs.AdminEmail || req.Password != configs.AdminPassword {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(fiber.Map{"message": "Login successful"})
}
