package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authorController "bukuku_backend/internals/features/users/author/controller"
)

func AuthorRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authorController.NewAuthorController(db)

	app.Post("/author-signup", ctl.SignUp)
	app.Post("/author-signin", ctl.SignIn)
	app.Get("/authors", ctl.List)
}
