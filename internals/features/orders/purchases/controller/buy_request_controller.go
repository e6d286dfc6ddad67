package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bukuku_backend/internals/features/orders/purchases/dto"
	model "bukuku_backend/internals/features/orders/purchases/model"
	helper "bukuku_backend/internals/helpers"
)

type BuyRequestController struct {
	DB *gorm.DB
}

func NewBuyRequestController(db *gorm.DB) *BuyRequestController {
	return &BuyRequestController{DB: db}
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/buy-book
// Tidak ada cek eksistensi book id / reader id; baris dicatat
// persis seperti yang dikirim.
// =========================================================
func (ctl *BuyRequestController) Create(c *fiber.Ctx) error {
	var req dto.BuyRequestCreate
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	buy, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id list")
	}
	if err := ctl.DB.Create(buy).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record purchase")
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// =========================================================
// LIST - GET /api/sells
// =========================================================
func (ctl *BuyRequestController) List(c *fiber.Ctx) error {
	var sells []model.BuyRequestModel
	if err := ctl.DB.Find(&sells).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch purchases")
	}
	return c.JSON(sells)
}
