package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go-intake-backend/internal/domain"
)

// Status is the submission state surfaced to the form UI.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Submitter posts the assembled payload to the quote endpoint and maps
// the response onto a Status. A failed submission leaves the form
// resubmittable; no state is kept here. StatusIdle is the caller's
// state before any submission starts.
type Submitter struct {
	Endpoint string
	Client   *http.Client

	// OnStatus, when set, observes the transition into StatusSubmitting
	// and then the final status, so the form can render progress.
	OnStatus func(Status)
}

func (s *Submitter) notify(status Status) Status {
	if s.OnStatus != nil {
		s.OnStatus(status)
	}
	return status
}

type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Submit posts the payload. It returns StatusSuccess only for a 200 with
// ok=true; every failure, transport or gateway, maps to StatusError.
func (s *Submitter) Submit(ctx context.Context, payload *domain.QuoteRequest) (Status, error) {
	s.notify(StatusSubmitting)

	body, err := json.Marshal(payload)
	if err != nil {
		return s.notify(StatusError), fmt.Errorf("encode quote payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return s.notify(StatusError), err
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return s.notify(StatusError), err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return s.notify(StatusError), fmt.Errorf("decode response: %w", err)
	}

	if res.StatusCode != http.StatusOK || !env.OK {
		return s.notify(StatusError), fmt.Errorf("quote submission refused: status %d", res.StatusCode)
	}
	return s.notify(StatusSuccess), nil
}
