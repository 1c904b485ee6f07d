package database

import (
	"database/sql"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

func CreateInventoryItem(db *sql.DB, item *models.InventoryItem) error {
	query := `INSERT INTO inventory_items (item_name, course_for, department_for, price, purchase_date, status, item_details)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	return db.QueryRow(query,
		item.ItemName, item.CourseFor, item.DepartmentFor, item.Price,
		item.PurchaseDate, item.Status, item.ItemDetails,
	).Scan(&item.ID)
}

func GetAllInventoryItems(db *sql.DB) ([]*models.InventoryItem, error) {
	query := `SELECT id, item_name, course_for, department_for, price, purchase_date, status, item_details
			  FROM inventory_items ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		item := &models.InventoryItem{}
		if err := rows.Scan(
			&item.ID, &item.ItemName, &item.CourseFor, &item.DepartmentFor,
			&item.Price, &item.PurchaseDate, &item.Status, &item.ItemDetails,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func GetInventoryItemByID(db *sql.DB, id int) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `SELECT id, item_name, course_for, department_for, price, purchase_date, status, item_details
			  FROM inventory_items WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&item.ID, &item.ItemName, &item.CourseFor, &item.DepartmentFor,
		&item.Price, &item.PurchaseDate, &item.Status, &item.ItemDetails,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return item, nil
}

func UpdateInventoryItem(db *sql.DB, item *models.InventoryItem) error {
	query := `UPDATE inventory_items
			  SET item_name = $1, course_for = $2, department_for = $3, price = $4,
			      purchase_date = $5, status = $6, item_details = $7
			  WHERE id = $8`

	result, err := db.Exec(query,
		item.ItemName, item.CourseFor, item.DepartmentFor, item.Price,
		item.PurchaseDate, item.Status, item.ItemDetails, item.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func DeleteInventoryItem(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM inventory_items WHERE id = $1`, id)
	return err
}
