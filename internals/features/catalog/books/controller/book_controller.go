package controller

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bukuku_backend/internals/features/catalog/books/dto"
	model "bukuku_backend/internals/features/catalog/books/model"
	helper "bukuku_backend/internals/helpers"
)

type BookController struct {
	DB *gorm.DB
	// UploadDir adalah direktori cover yang juga di-serve statis di /images
	UploadDir string
}

func NewBookController(db *gorm.DB, uploadDir string) *BookController {
	return &BookController{DB: db, UploadDir: uploadDir}
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/add-book
// Body: multipart (title, author, price, description, picture)
// =========================================================
func (ctl *BookController) Create(c *fiber.Ctx) error {
	var req dto.AddBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fh, err := c.FormFile("picture")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Picture file is required")
	}

	if err := os.MkdirAll(ctl.UploadDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to prepare upload dir")
	}

	// Nama file dipakai apa adanya; upload dengan nama sama menimpa
	// file lama (kontrak yang sudah dipegang frontend).
	dst := filepath.Join(ctl.UploadDir, fh.Filename)
	if err := c.SaveFile(fh, dst); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store picture")
	}

	book := req.ToModel(fh.Filename)
	if err := ctl.DB.Create(book).Error; err != nil {
		// Insert gagal: bersihkan file supaya tidak ada cover yatim
		_ = os.Remove(dst)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create book")
	}

	return c.JSON(book)
}

// =========================================================
// LIST - GET /api/books
// =========================================================
func (ctl *BookController) List(c *fiber.Ctx) error {
	var books []model.BookModel
	if err := ctl.DB.Find(&books).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch books")
	}
	return c.JSON(books)
}

// =========================================================
// DELETE - POST /api/delete-book
// Body: JSON {id}. File cover sengaja tidak ikut dihapus:
// nama file bisa dipakai lebih dari satu buku.
// =========================================================
func (ctl *BookController) Delete(c *fiber.Ctx) error {
	var req dto.DeleteBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var book model.BookModel
	if err := ctl.DB.First(&book, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}

	if err := ctl.DB.Delete(&book).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete book")
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}
