package repository

import (
	"context"
	"database/sql"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/guest/entity"

	"github.com/google/uuid"
)

// GuestRepository handles guest database operations
type GuestRepository struct {
	DB database.Database
}

// NewGuestRepository creates a new repository instance
func NewGuestRepository(db database.Database) *GuestRepository {
	return &GuestRepository{DB: db}
}

// GuestRepositoryInterface defines the repository contract
type GuestRepositoryInterface interface {
	CreateGuest(ctx context.Context, guest *entity.Guest) (*entity.Guest, error)
	GetGuestByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	GetGuestsByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.Guest, error)
	UpdateGuest(ctx context.Context, guest *entity.Guest) error
	DeleteGuest(ctx context.Context, id uuid.UUID) error
}

const guestColumns = `id, event_id, first_name, last_name, guest_group, custom_group,
	rsvp_status, attending_count, male_count, female_count, created_at, updated_at`

func (r *GuestRepository) CreateGuest(ctx context.Context, guest *entity.Guest) (*entity.Guest, error) {
	query := `
		INSERT INTO guests (event_id, first_name, last_name, guest_group, custom_group,
		                    rsvp_status, attending_count, male_count, female_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + guestColumns

	var created entity.Guest
	err := r.DB.GetContext(ctx, &created, query,
		guest.EventID, guest.FirstName, guest.LastName, guest.Group, guest.CustomGroup,
		guest.RSVPStatus, guest.AttendingCount, guest.MaleCount, guest.FemaleCount)
	if err != nil {
		logger.Error("GuestRepository:CreateGuest", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *GuestRepository) GetGuestByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	var guest entity.Guest
	err := r.DB.GetContext(ctx, &guest, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GuestRepository:GetGuestByID", "error", err)
		return nil, err
	}

	return &guest, nil
}

// GetGuestsByEventID returns the full roster including non-confirmed guests;
// seating filters to confirmed.
func (r *GuestRepository) GetGuestsByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 ORDER BY created_at`

	var guests []entity.Guest
	err := r.DB.SelectContext(ctx, &guests, query, eventID)
	if err != nil {
		logger.Error("GuestRepository:GetGuestsByEventID", "error", err)
		return nil, err
	}

	return guests, nil
}

func (r *GuestRepository) UpdateGuest(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET first_name = $2, last_name = $3, guest_group = $4, custom_group = $5,
		    rsvp_status = $6, attending_count = $7, male_count = $8, female_count = $9,
		    updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		guest.ID, guest.FirstName, guest.LastName, guest.Group, guest.CustomGroup,
		guest.RSVPStatus, guest.AttendingCount, guest.MaleCount, guest.FemaleCount)
	if err != nil {
		logger.Error("GuestRepository:UpdateGuest", "error", err)
	}
	return err
}

func (r *GuestRepository) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		logger.Error("GuestRepository:DeleteGuest", "error", err)
	}
	return err
}
