package inventory

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

type inventoryRequest struct {
	ItemName      string `json:"item_name" validate:"required"`
	CourseFor     string `json:"course_for" validate:"required"`
	DepartmentFor string `json:"department_for" validate:"required"`
	Price         int    `json:"item_price" validate:"required"`
	PurchaseDate  string `json:"purchase_date" validate:"required"`
	Status        string `json:"item_status" validate:"required"`
	ItemDetails   string `json:"item_details" validate:"required"`
}

func (r inventoryRequest) toModel() (*models.InventoryItem, []validation.FieldError) {
	if fields := validation.Struct(r); fields != nil {
		return nil, fields
	}

	date, err := validation.Date(r.PurchaseDate)
	if err != nil {
		return nil, []validation.FieldError{{
			Field: "purchase_date",
			Error: "must be a date in YYYY-MM-DD format",
		}}
	}

	return &models.InventoryItem{
		ItemName:      r.ItemName,
		CourseFor:     r.CourseFor,
		DepartmentFor: r.DepartmentFor,
		Price:         r.Price,
		PurchaseDate:  date,
		Status:        r.Status,
		ItemDetails:   r.ItemDetails,
	}, nil
}

func GetInventoryItemsAPI(c *fiber.Ctx) error {
	items, err := database.GetAllInventoryItems(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load inventory"})
	}
	return c.JSON(items)
}

func GetInventoryItemAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := database.GetInventoryItemByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load item"})
	}
	return c.JSON(item)
}

func CreateInventoryItemAPI(c *fiber.Ctx) error {
	var req inventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	item, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateInventoryItem(config.GetDB(), item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create item"})
	}
	return c.Status(201).JSON(item)
}

func UpdateInventoryItemAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req inventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	item, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	item.ID = id

	if err := database.UpdateInventoryItem(config.GetDB(), item); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update item"})
	}
	return c.JSON(item)
}

func DeleteInventoryItemAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := database.DeleteInventoryItem(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete item"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
