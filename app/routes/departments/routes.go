package departments

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDepartmentsRoutes(app *fiber.App) {
	web := app.Group("/departments")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderDepartmentsPage)

	api := app.Group("/api/departments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetDepartmentsAPI)
	api.Get("/:id", GetDepartmentAPI)
	api.Post("/", CreateDepartmentAPI)
	api.Put("/:id", UpdateDepartmentAPI)
	api.Delete("/:id", DeleteDepartmentAPI)
}

func renderDepartmentsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	departments, err := database.GetAllDepartments(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load departments")
	}

	return c.Render("departments/index", fiber.Map{
		"Title":       "All Departments - CED Training Center",
		"CurrentPage": "departments",
		"user":        user,
		"Departments": departments,
	})
}
