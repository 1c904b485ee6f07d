package fees

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

// feeRequest carries an optional invoice_number. Zero means the store
// assigns the next number in sequence; anything else is kept as-is.
type feeRequest struct {
	TraineeName   string `json:"trainee_name" validate:"required"`
	TraineeID     string `json:"selected_trainee_id"`
	InvoiceNumber int    `json:"invoice_number"`
	Department    string `json:"department"`
	Course        string `json:"course"`
	PaymentType   string `json:"payment_type" validate:"required"`
	PaymentStatus string `json:"payment_status" validate:"required"`
	PaymentDate   string `json:"payment_date" validate:"required"`
	Amount        int    `json:"amount" validate:"required"`
}

func (r feeRequest) toModel() (*models.Fee, []validation.FieldError) {
	if fields := validation.Struct(r); fields != nil {
		return nil, fields
	}

	date, err := validation.Date(r.PaymentDate)
	if err != nil {
		return nil, []validation.FieldError{{
			Field: "payment_date",
			Error: "must be a date in YYYY-MM-DD format",
		}}
	}

	return &models.Fee{
		TraineeName:   r.TraineeName,
		TraineeID:     r.TraineeID,
		InvoiceNumber: r.InvoiceNumber,
		Department:    r.Department,
		Course:        r.Course,
		PaymentType:   r.PaymentType,
		PaymentStatus: r.PaymentStatus,
		PaymentDate:   date,
		Amount:        r.Amount,
	}, nil
}

func GetFeesAPI(c *fiber.Ctx) error {
	feeList, err := database.GetAllFees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load fees"})
	}
	return c.JSON(feeList)
}

func GetFeeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee ID"})
	}

	fee, err := database.GetFeeByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load fee record"})
	}
	return c.JSON(fee)
}

func CreateFeeAPI(c *fiber.Ctx) error {
	var req feeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fee, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateFee(config.GetDB(), fee); err != nil {
		if err == database.ErrInvoiceNumberTaken {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}
	return c.Status(201).JSON(fee)
}

func UpdateFeeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee ID"})
	}

	var req feeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fee, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	fee.ID = id

	if err := database.UpdateFee(config.GetDB(), fee); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Fee record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee record"})
	}
	return c.JSON(fee)
}

func DeleteFeeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fee ID"})
	}

	if err := database.DeleteFee(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee record"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
