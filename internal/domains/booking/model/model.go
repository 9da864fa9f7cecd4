package model

import (
	"time"

	"lbm/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldService       = "service"
	FieldPreferredDate = "preferred_date"
	FieldPreferredTime = "preferred_time"
	FieldMessage       = "message"
	FieldStatus        = "status"
	FieldCreatedAt     = "created_at"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses lists every booking status in cycle order.
var Statuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

type Booking struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Service       string    `db:"service"`
	PreferredDate time.Time `db:"preferred_date"`
	PreferredTime string    `db:"preferred_time"`
	Message       string    `db:"message"`
	Status        string    `db:"status"`
	model.Metadata
}

// NextStatus advances a status one step around the cycle
// pending -> confirmed -> completed -> cancelled -> pending.
// Unknown statuses reset to pending.
func NextStatus(current string) string {
	for i, status := range Statuses {
		if status == current {
			return Statuses[(i+1)%len(Statuses)]
		}
	}

	return StatusPending
}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}
