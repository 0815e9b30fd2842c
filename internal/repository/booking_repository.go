package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/tutor-market/internal/models"
)

// ErrSlotTaken is returned when a booking collides with an existing one for
// the same teacher, day and time.
var ErrSlotTaken = errors.New("slot already booked")

const uniqueViolation = "23505"

// BookingRepository persists bookings.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking and fills its generated ID and timestamp.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	const query = `INSERT INTO bookings (client_name, client_phone, day, time, teacher_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query, booking.ClientName, booking.ClientPhone, booking.Day, booking.Time, booking.TeacherID)
	if err := row.Scan(&booking.ID, &booking.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}
