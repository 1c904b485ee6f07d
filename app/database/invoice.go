package database

import (
	"database/sql"
	"sync"
)

// InvoiceSeed is the invoice number assigned to the very first fee. The
// value is a legacy starting point carried over from the previous system
// and must not change.
const InvoiceSeed = 45778

// invoiceMu serializes invoice-number assignment together with the insert
// that consumes it, so two concurrent fee insertions can never observe the
// same tail row. The unique constraint on fees.invoice_number remains as a
// last-resort net.
var invoiceMu sync.Mutex

// NextInvoiceNumber returns the invoice number to persist with a new fee.
// A non-zero candidate means the caller brought its own number (e.g. a
// migrated record) and it is returned unchanged. Otherwise the result is
// one more than the invoice number of the fee with the highest id, or
// InvoiceSeed when no fees exist yet.
func NextInvoiceNumber(q rowQueryer, candidate int) (int, error) {
	if candidate != 0 {
		return candidate, nil
	}

	var last sql.NullInt64
	err := q.QueryRow(`SELECT invoice_number FROM fees ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err == sql.ErrNoRows {
		return InvoiceSeed, nil
	}
	if err != nil {
		return 0, err
	}
	if !last.Valid {
		// A tail row without a number only happens with hand-edited data.
		return InvoiceSeed, nil
	}
	return int(last.Int64) + 1, nil
}
