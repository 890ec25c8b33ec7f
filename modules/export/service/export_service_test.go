package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"planit-api/core/errors"
	eventEntity "planit-api/modules/event/entity"
	"planit-api/modules/seating/entity"

	guestdto "planit-api/modules/guest/dto"
	guestentity "planit-api/modules/guest/entity"
	seatingdto "planit-api/modules/seating/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (r *fakeEventRepo) CreateEvent(_ context.Context, e *eventEntity.Event) (*eventEntity.Event, error) {
	return e, nil
}

func (r *fakeEventRepo) GetEventByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return r.events[id], nil
}

func (r *fakeEventRepo) GetEventsByOwnerID(context.Context, uuid.UUID) ([]eventEntity.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetEventIDsWithSeating(context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

func (r *fakeEventRepo) UpdateEvent(context.Context, *eventEntity.Event) error { return nil }
func (r *fakeEventRepo) DeleteEvent(context.Context, uuid.UUID) error          { return nil }

type fakeLayoutRepo struct {
	layouts map[uuid.UUID]*entity.Layout
}

func (r *fakeLayoutRepo) LoadLayout(_ context.Context, eventID uuid.UUID) (*entity.Layout, error) {
	return r.layouts[eventID], nil
}

func (r *fakeLayoutRepo) SaveLayout(_ context.Context, eventID uuid.UUID, layout *entity.Layout) error {
	r.layouts[eventID] = layout
	return nil
}

func (r *fakeLayoutRepo) DeleteLayout(context.Context, uuid.UUID) error { return nil }

type fakeGuestService struct {
	guests []guestentity.Guest
}

func (s *fakeGuestService) ListGuestEntities(context.Context, uuid.UUID) ([]guestentity.Guest, *errors.AppError) {
	return s.guests, nil
}

func (s *fakeGuestService) CreateGuest(context.Context, uuid.UUID, *guestdto.CreateGuestRequest) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) GetGuestByID(context.Context, uuid.UUID) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) ListGuests(context.Context, uuid.UUID) ([]guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) UpdateGuest(context.Context, uuid.UUID, *guestdto.UpdateGuestRequest) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) UpdateRSVP(context.Context, uuid.UUID, *guestdto.UpdateRSVPRequest) (*guestdto.GuestResponse, *errors.AppError) {
	return nil, nil
}

func (s *fakeGuestService) DeleteGuest(context.Context, uuid.UUID) *errors.AppError { return nil }

type fakeUploader struct {
	key         string
	contentType string
	body        []byte
}

func (u *fakeUploader) Upload(_ context.Context, key string, contentType string, body []byte) (string, error) {
	u.key = key
	u.contentType = contentType
	u.body = body
	return "https://example.com/" + key, nil
}

func exportFixture() (ExportServiceInterface, *fakeUploader, uuid.UUID) {
	eventID := uuid.New()
	guest := guestentity.Guest{
		ID:             uuid.New(),
		FirstName:      "Alice",
		LastName:       "Smith",
		Group:          guestentity.GroupFamily,
		RSVPStatus:     guestentity.RSVPConfirmed,
		AttendingCount: 2,
	}

	layout := entity.NewLayout()
	layout.Tables = []entity.Table{{
		ID: "t1", Number: 1, Name: "Table 1 - Family",
		Shape: entity.TableRound, Capacity: 8,
	}}
	layout.Arrangement["t1"] = []entity.EntityKey{entity.UnifiedKey(guest.ID)}

	events := &fakeEventRepo{events: map[uuid.UUID]*eventEntity.Event{
		eventID: {ID: eventID, Name: "Smith & Jones Wedding"},
	}}
	layouts := &fakeLayoutRepo{layouts: map[uuid.UUID]*entity.Layout{eventID: layout}}
	uploader := &fakeUploader{}

	svc := NewExportService(events, &fakeGuestService{guests: []guestentity.Guest{guest}}, layouts, uploader)
	return svc, uploader, eventID
}

func TestExportCSV(t *testing.T) {
	svc, uploader, eventID := exportFixture()

	resp, appErr := svc.Export(context.Background(), eventID, FormatCSV)
	require.Nil(t, appErr)

	assert.Equal(t, FormatCSV, resp.Format)
	assert.Contains(t, resp.Key, "smith-and-jones-wedding-seating.csv")
	assert.Contains(t, resp.URL, resp.Key)
	assert.Equal(t, "text/csv", uploader.contentType)

	lines := strings.Split(strings.TrimSpace(string(uploader.body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "table_number,table_name,guest,group,party_size,partition", lines[0])
	assert.Contains(t, lines[1], "Alice Smith")
	assert.Contains(t, lines[1], "Table 1 - Family")
}

func TestExportJSON(t *testing.T) {
	svc, uploader, eventID := exportFixture()

	resp, appErr := svc.Export(context.Background(), eventID, FormatJSON)
	require.Nil(t, appErr)

	assert.Equal(t, "application/json", uploader.contentType)
	assert.Contains(t, resp.Key, ".json")

	var chart seatingdto.LayoutResponse
	require.NoError(t, json.Unmarshal(uploader.body, &chart))
	require.Len(t, chart.Tables, 1)
	assert.Equal(t, 2, chart.Tables[0].Occupancy)
}

func TestExportDefaultsToCSV(t *testing.T) {
	svc, _, eventID := exportFixture()

	resp, appErr := svc.Export(context.Background(), eventID, "")
	require.Nil(t, appErr)
	assert.Equal(t, FormatCSV, resp.Format)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc, _, eventID := exportFixture()

	_, appErr := svc.Export(context.Background(), eventID, "xlsx")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestExportUnknownEvent(t *testing.T) {
	svc, _, _ := exportFixture()

	_, appErr := svc.Export(context.Background(), uuid.New(), FormatCSV)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
