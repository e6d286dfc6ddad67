package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookModel "bukuku_backend/internals/features/catalog/books/model"
	dto "bukuku_backend/internals/features/catalog/demands/dto"
	model "bukuku_backend/internals/features/catalog/demands/model"
	helper "bukuku_backend/internals/helpers"
)

type DemandController struct {
	DB *gorm.DB
}

func NewDemandController(db *gorm.DB) *DemandController {
	return &DemandController{DB: db}
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/add-demand
// =========================================================
func (ctl *DemandController) Create(c *fiber.Ctx) error {
	var req dto.DemandCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	demand := req.ToModel()
	if err := ctl.DB.Create(demand).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create demand")
	}
	return c.JSON(demand)
}

// =========================================================
// LIST - GET /api/demands
// =========================================================
func (ctl *DemandController) List(c *fiber.Ctx) error {
	var demands []model.DemandModel
	if err := ctl.DB.Find(&demands).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch demands")
	}
	return c.JSON(demands)
}

// =========================================================
// APPROVE - POST /api/approve-book-add?id=
// Insert buku + hapus demand dalam satu transaksi.
// Description/price/picture demand sengaja TIDAK dibawa ke buku
// (kontrak lama: buku hasil approve selalu description kosong,
// price 0, tanpa cover). Admin melengkapinya lewat katalog.
// =========================================================
func (ctl *DemandController) Approve(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	if id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid demand id")
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var demand model.DemandModel
		if err := tx.First(&demand, id).Error; err != nil {
			return err
		}

		book := bookModel.BookModel{
			Title:       demand.Title,
			Author:      demand.Author,
			Description: "",
			Price:       0,
		}
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		return tx.Delete(&demand).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Demand not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve demand")
	}

	return c.JSON(fiber.Map{"status": "approved"})
}

// =========================================================
// REJECT - POST /api/reject-book-add?id=
// =========================================================
func (ctl *DemandController) Reject(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	if id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid demand id")
	}

	var demand model.DemandModel
	if err := ctl.DB.First(&demand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Demand not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch demand")
	}

	if err := ctl.DB.Delete(&demand).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject demand")
	}

	return c.JSON(fiber.Map{"status": "rejected"})
}
