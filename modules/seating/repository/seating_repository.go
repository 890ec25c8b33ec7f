package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/seating/entity"

	"github.com/google/uuid"
)

// SeatingRepository persists seating layouts as one JSONB document per event
type SeatingRepository struct {
	DB database.Database
}

// NewSeatingRepository creates a new repository instance
func NewSeatingRepository(db database.Database) *SeatingRepository {
	return &SeatingRepository{DB: db}
}

// SeatingRepositoryInterface defines the repository contract
type SeatingRepositoryInterface interface {
	LoadLayout(ctx context.Context, eventID uuid.UUID) (*entity.Layout, error)
	SaveLayout(ctx context.Context, eventID uuid.UUID, layout *entity.Layout) error
	DeleteLayout(ctx context.Context, eventID uuid.UUID) error
}

type layoutRow struct {
	EventID uuid.UUID `db:"event_id"`
	Payload []byte    `db:"payload"`
}

// LoadLayout returns the saved layout, or nil when none exists yet. A missing
// layout is a valid initial state, not an error.
func (r *SeatingRepository) LoadLayout(ctx context.Context, eventID uuid.UUID) (*entity.Layout, error) {
	query := `SELECT event_id, payload FROM seating_layouts WHERE event_id = $1`

	var row layoutRow
	err := r.DB.GetContext(ctx, &row, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SeatingRepository:LoadLayout", "error", err)
		return nil, err
	}

	var layout entity.Layout
	if err := json.Unmarshal(row.Payload, &layout); err != nil {
		logger.Error("SeatingRepository:LoadLayout unmarshal", "eventId", eventID, "error", err)
		return nil, err
	}

	return &layout, nil
}

// SaveLayout upserts the layout document
func (r *SeatingRepository) SaveLayout(ctx context.Context, eventID uuid.UUID, layout *entity.Layout) error {
	payload, err := json.Marshal(layout)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO seating_layouts (event_id, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (event_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	if err := r.DB.ExecContext(ctx, query, eventID, payload); err != nil {
		logger.Error("SeatingRepository:SaveLayout", "eventId", eventID, "error", err)
		return err
	}
	return nil
}

// DeleteLayout removes the layout document entirely
func (r *SeatingRepository) DeleteLayout(ctx context.Context, eventID uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM seating_layouts WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("SeatingRepository:DeleteLayout", "eventId", eventID, "error", err)
	}
	return err
}
