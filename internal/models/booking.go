package models

import "time"

// Booking is a lesson slot reserved by a client.
type Booking struct {
	ID          int64     `db:"id" json:"id"`
	ClientName  string    `db:"client_name" json:"client_name"`
	ClientPhone string    `db:"client_phone" json:"client_phone"`
	Day         string    `db:"day" json:"day"`
	Time        string    `db:"time" json:"time"`
	TeacherID   int64     `db:"teacher_id" json:"teacher_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BookingConfirmation is echoed back on the booking confirmation page.
type BookingConfirmation struct {
	TeacherID   int64  `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
	Day         string `json:"day"`
	DayLabel    string `json:"day_label"`
	Time        string `json:"time"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}
