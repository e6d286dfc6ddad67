package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	readerController "bukuku_backend/internals/features/users/reader/controller"
)

func ReaderRoutes(app *fiber.App, db *gorm.DB) {
	ctl := readerController.NewReaderController(db)

	app.Post("/reader-signup", ctl.SignUp)
	app.Post("/reader-signin", ctl.SignIn)
	app.Get("/readers", ctl.List)
	app.Get("/api/get-reader/:id", ctl.GetByID)
}
