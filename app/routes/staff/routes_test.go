package staff

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The staff list must still render when the departments query for the add
// form fails; the select just comes up empty.
func TestRenderStaffPageSurvivesDropdownFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	config.AppConfig = &config.Config{DB: db}

	mock.ExpectQuery(`FROM staffs ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "joining_date",
			"mobile_number", "gender", "designation", "department", "address",
		}))
	mock.ExpectQuery(`FROM departments ORDER BY id`).
		WillReturnError(assert.AnError)

	engine := html.New("../../templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	app.Get("/staff", func(c *fiber.Ctx) error {
		c.Locals("user", &models.User{FirstName: "Amina", LastName: "Usman"})
		return renderStaffPage(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/staff", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
