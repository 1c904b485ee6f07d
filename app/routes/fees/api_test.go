package fees

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeeTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	app.Post("/api/fees", CreateFeeAPI)
	return app, mock
}

func TestCreateFeeAPIConflictingInvoiceNumber(t *testing.T) {
	app, mock := newFeeTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO fees`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "fees_invoice_number_key"})
	mock.ExpectRollback()

	body := `{"trainee_name":"Aisha Bello","invoice_number":45800,"payment_type":"Cash",` +
		`"payment_status":"Paid","payment_date":"2024-03-14","amount":50000}`
	req := httptest.NewRequest("POST", "/api/fees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeeAPIRejectsBadDate(t *testing.T) {
	app, _ := newFeeTestApp(t)

	body := `{"trainee_name":"Aisha Bello","payment_type":"Cash",` +
		`"payment_status":"Paid","payment_date":"14/03/2024","amount":50000}`
	req := httptest.NewRequest("POST", "/api/fees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
