package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "bukuku_backend/internals/features/users/user/controller"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	app.Post("/signup", ctl.SignUp)
	app.Post("/login", ctl.Login)
}
