package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bukuku_backend/internals/features/users/author/dto"
	model "bukuku_backend/internals/features/users/author/model"
	helper "bukuku_backend/internals/helpers"
)

type AuthorController struct {
	DB *gorm.DB
}

func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{DB: db}
}

var validate = validator.New()

// =========================================================
// SIGNUP - POST /author-signup
// =========================================================
func (ctl *AuthorController) SignUp(c *fiber.Ctx) error {
	var req dto.AuthorSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var cnt int64
	if err := ctl.DB.Model(&model.AuthorModel{}).
		Where("email = ?", req.Email).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
	}

	hashed, err := helper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	author := req.ToModel(hashed)
	if err := ctl.DB.Create(author).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create author")
	}

	return c.JSON(fiber.Map{"message": "Signup successful"})
}

// =========================================================
// SIGNIN - POST /author-signin
// =========================================================
func (ctl *AuthorController) SignIn(c *fiber.Ctx) error {
	var req dto.AuthorSigninRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var author model.AuthorModel
	if err := ctl.DB.First(&author, "email = ?", strings.TrimSpace(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch author")
	}

	if err := helper.CheckPasswordHash(author.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"name":    author.Name,
		"id":      author.ID,
	})
}

// =========================================================
// LIST - GET /authors
// =========================================================
func (ctl *AuthorController) List(c *fiber.Ctx) error {
	var authors []model.AuthorModel
	if err := ctl.DB.Find(&authors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch authors")
	}
	return c.JSON(authors)
}
