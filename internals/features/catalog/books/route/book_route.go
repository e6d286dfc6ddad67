package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "bukuku_backend/internals/features/catalog/books/controller"
)

func BookRoutes(app *fiber.App, db *gorm.DB, uploadDir string) {
	ctl := bookController.NewBookController(db, uploadDir)

	app.Get("/api/books", ctl.List)
	app.Post("/api/add-book", ctl.Create)
	app.Post("/api/delete-book", ctl.Delete)

	// cover statis, key = nama file asli
	app.Static("/images", uploadDir)
}
