package main

import (
	"encoding/json"
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/courses"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/dashboard"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/departments"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/events"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/facilitators"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/fees"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/inventory"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/staff"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/trainees"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders error pages for web requests and returns
// JSON for /api paths.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - CED Training Center",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - CED Training Center",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - CED Training Center",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - CED Training Center",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()
	defer cfg.DB.Close()

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	// Logged-in users land on the dashboard, everyone else on login.
	app.Get("/", func(c *fiber.Ctx) error {
		if token := c.Cookies("jwt_token"); token != "" {
			if _, err := auth.ValidateJWT(token); err == nil {
				return c.Redirect("/dashboard")
			}
		}
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	trainees.SetupTraineesRoutes(app)
	facilitators.SetupFacilitatorsRoutes(app)
	courses.SetupCoursesRoutes(app)
	staff.SetupStaffRoutes(app)
	departments.SetupDepartmentsRoutes(app)
	inventory.SetupInventoryRoutes(app)
	fees.SetupFeesRoutes(app)
	events.SetupEventsRoutes(app)

	// Catch-all 404, must be last.
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
