package entity

import "time"

type Payment struct {
	PaymentID   uint64    `db:"payment_id"`
	Amount      float64   `db:"amount"`
	Status      string    `db:"status"`
	PaymentDate time.Time `db:"payment_date"`
}
