package database

import (
	"database/sql"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

func CreateEvent(db *sql.DB, e *models.Event) error {
	query := `INSERT INTO events (event_name, event_date)
			  VALUES ($1, $2)
			  RETURNING id`

	return db.QueryRow(query, e.EventName, e.EventDate).Scan(&e.ID)
}

func GetAllEvents(db *sql.DB) ([]*models.Event, error) {
	query := `SELECT id, event_name, event_date FROM events ORDER BY event_date ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(&e.ID, &e.EventName, &e.EventDate); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func DeleteEvent(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM events WHERE id = $1`, id)
	return err
}
