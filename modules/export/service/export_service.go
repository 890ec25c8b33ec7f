package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"planit-api/core/errors"
	"planit-api/core/logger"
	"planit-api/core/storage"
	"planit-api/modules/export/dto"

	eventrepository "planit-api/modules/event/repository"
	guestservice "planit-api/modules/guest/service"
	seatingdto "planit-api/modules/seating/dto"
	seatingrepository "planit-api/modules/seating/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportService renders the current seating chart to a file and uploads it
type ExportService struct {
	events   eventrepository.EventRepositoryInterface
	guests   guestservice.GuestServiceInterface
	layouts  seatingrepository.SeatingRepositoryInterface
	uploader storage.Uploader
}

// ExportServiceInterface defines the service contract
type ExportServiceInterface interface {
	Export(ctx context.Context, eventID uuid.UUID, format string) (*dto.ExportResponse, *errors.AppError)
}

// NewExportService creates a new export service
func NewExportService(
	events eventrepository.EventRepositoryInterface,
	guests guestservice.GuestServiceInterface,
	layouts seatingrepository.SeatingRepositoryInterface,
	uploader storage.Uploader,
) ExportServiceInterface {
	return &ExportService{
		events:   events,
		guests:   guests,
		layouts:  layouts,
		uploader: uploader,
	}
}

// Export renders the persisted seating chart for an event in the requested
// format and returns a download link.
func (s *ExportService) Export(ctx context.Context, eventID uuid.UUID, format string) (*dto.ExportResponse, *errors.AppError) {
	switch format {
	case "":
		format = FormatCSV
	case FormatCSV, FormatJSON:
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("Unsupported export format %q", format), nil)
	}

	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	layout, err := s.layouts.LoadLayout(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load seating layout", err)
	}
	if layout == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No seating layout for this event", nil)
	}

	guests, appErr := s.guests.ListGuestEntities(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	chart := seatingdto.ToLayoutResponse(layout, guests)

	var body []byte
	var contentType string
	switch format {
	case FormatJSON:
		body, err = json.MarshalIndent(chart, "", "  ")
		contentType = "application/json"
	default:
		body, err = renderCSV(chart)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to render export", err)
	}

	key := fmt.Sprintf("exports/%s/%s-seating.%s", eventID, slug.Make(event.Name), format)
	url, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload export", err)
	}

	logger.Info("ExportService:Export", "eventId", eventID, "key", key, "format", format)
	return &dto.ExportResponse{Key: key, Format: format, URL: url}, nil
}

// renderCSV writes one row per seated entity, then the unassigned ones
func renderCSV(chart *seatingdto.LayoutResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"table_number", "table_name", "guest", "group", "party_size", "partition"}); err != nil {
		return nil, err
	}

	for _, t := range chart.Tables {
		for _, e := range t.Seated {
			row := []string{
				strconv.Itoa(t.Number),
				t.Name,
				e.Name,
				e.Group,
				strconv.Itoa(e.Size),
				e.Partition,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	for _, e := range chart.Unassigned {
		row := []string{"", "Unassigned", e.Name, e.Group, strconv.Itoa(e.Size), e.Partition}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
