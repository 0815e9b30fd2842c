package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-market/internal/models"
)

// RequestRepository persists tutoring requests.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository constructs a RequestRepository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a request and fills its generated ID and timestamp.
func (r *RequestRepository) Create(ctx context.Context, request *models.Request) error {
	const query = `INSERT INTO requests (goal, time, client_name, client_phone)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query, request.Goal, request.Time, request.ClientName, request.ClientPhone)
	if err := row.Scan(&request.ID, &request.CreatedAt); err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}
