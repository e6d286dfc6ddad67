package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bukuku_backend/internals/features/users/reader/dto"
	model "bukuku_backend/internals/features/users/reader/model"
	helper "bukuku_backend/internals/helpers"
)

type ReaderController struct {
	DB *gorm.DB
}

func NewReaderController(db *gorm.DB) *ReaderController {
	return &ReaderController{DB: db}
}

var validate = validator.New()

// =========================================================
// SIGNUP - POST /reader-signup
// =========================================================
func (ctl *ReaderController) SignUp(c *fiber.Ctx) error {
	var req dto.ReaderSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var cnt int64
	if err := ctl.DB.Model(&model.ReaderModel{}).
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

	reader := req.ToModel(hashed)
	if err := ctl.DB.Create(reader).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create reader")
	}

	return c.JSON(fiber.Map{"message": "Signup successful"})
}

// =========================================================
// SIGNIN - POST /reader-signin
// =========================================================
func (ctl *ReaderController) SignIn(c *fiber.Ctx) error {
	var req dto.ReaderSigninRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var reader model.ReaderModel
	if err := ctl.DB.First(&reader, "email = ?", strings.TrimSpace(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reader")
	}

	if err := helper.CheckPasswordHash(reader.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"name":    reader.Name,
		"id":      reader.ID,
	})
}

// =========================================================
// LIST - GET /readers
// =========================================================
func (ctl *ReaderController) List(c *fiber.Ctx) error {
	var readers []model.ReaderModel
	if err := ctl.DB.Find(&readers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch readers")
	}
	return c.JSON(readers)
}

// =========================================================
// DETAIL - GET /api/get-reader/:id
// =========================================================
func (ctl *ReaderController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var reader model.ReaderModel
	if err := ctl.DB.First(&reader, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Reader not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reader")
	}
	return c.JSON(reader)
}
