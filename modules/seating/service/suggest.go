package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"planit-api/modules/seating/entity"

	guestentity "planit-api/modules/guest/entity"
)

// SuggestionClient talks to the external AI suggestion service. The service is
// a black box: its output is seeded through the same table/seat operations as
// manual actions, with no special-cased trust.
type SuggestionClient struct {
	url    string
	client *http.Client
}

// NewSuggestionClient creates a client; an empty URL disables suggestions
func NewSuggestionClient(url string) *SuggestionClient {
	return &SuggestionClient{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether a suggestion endpoint is configured
func (c *SuggestionClient) Enabled() bool {
	return c.url != ""
}

type suggestionRequest struct {
	Guests      []guestentity.Guest `json:"guests"`
	Tables      []entity.Table      `json:"tables"`
	Preferences entity.Preferences  `json:"preferences"`
}

// SuggestedTable is one table the external service proposes
type SuggestedTable struct {
	Capacity int `json:"capacity"`
	Count    int `json:"count"`
}

// SuggestedAssignment maps a guest entity onto a proposed table by index
type SuggestedAssignment struct {
	GuestID    string `json:"guest_id"`
	Partition  string `json:"partition"`
	TableIndex int    `json:"table_index"`
}

// SuggestionResponse is the opaque service's reply
type SuggestionResponse struct {
	Tables      []SuggestedTable      `json:"tables"`
	Assignments []SuggestedAssignment `json:"assignments"`
}

// Suggest asks the external service for an arrangement proposal
func (c *SuggestionClient) Suggest(ctx context.Context, guests []guestentity.Guest, layout *entity.Layout) (*SuggestionResponse, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("suggestion service is not configured")
	}

	body, err := json.Marshal(suggestionRequest{
		Guests:      guests,
		Tables:      layout.Tables,
		Preferences: layout.Preferences,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var out SuggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("invalid suggestion response: %w", err)
	}
	return &out, nil
}
