package models

import "time"

// Fee is a payment record. InvoiceNumber is the only system-generated
// field: unique and strictly increasing, assigned at insert time.
// TraineeID is stored as text and is not an enforced foreign key.
type Fee struct {
	ID            int       `json:"id"`
	TraineeName   string    `json:"trainee_name"`
	TraineeID     string    `json:"trainee_id"`
	InvoiceNumber int       `json:"invoice_number"`
	Department    string    `json:"department"`
	Course        string    `json:"course"`
	PaymentType   string    `json:"payment_type"`
	PaymentStatus string    `json:"payment_status"`
	PaymentDate   time.Time `json:"payment_date"`
	Amount        int       `json:"amount"`
}
