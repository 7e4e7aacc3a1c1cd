package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/validation"
)

// MockMailer records dispatched messages
type MockMailer struct {
	mock.Mock
	configured bool
}

func (m *MockMailer) Send(msg domain.Message) error {
	return m.Called(msg).Error(0)
}

func (m *MockMailer) IsConfigured() bool {
	return m.configured
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// Monday 2026-01-05 09:00 UTC
var fixedNow = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

func newQuoteUC(mailer *MockMailer) *quoteUsecase {
	return &quoteUsecase{
		mailer:   mailer,
		validate: newValidate(),
		from:     "noreply@clyvuum.fr",
		owner:    "contact@clyvuum.fr",
		loc:      time.UTC,
		now:      func() time.Time { return fixedNow },
	}
}

func newContactUC(mailer *MockMailer) *contactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: newValidate(),
		from:     "noreply@clyvuum.fr",
		owner:    "contact@clyvuum.fr",
		loc:      time.UTC,
		now:      func() time.Time { return fixedNow },
	}
}

func starterQuote() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		Plan:          domain.PlanStarter,
		FirstName:     "Jean",
		LastName:      "Dupont",
		Email:         "jean@x.com",
		SelectedTools: []domain.ToolKey{domain.ToolStripe},
		SubmittedAt:   "2024-01-01T00:00:00Z",
	}
}

func businessQuote() *domain.QuoteRequest {
	req := starterQuote()
	req.Plan = domain.PlanBusiness
	req.AppointmentDate = "2026-01-06T00:00:00Z" // Tuesday, one day ahead
	req.AppointmentTime = "10:00"
	return req
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestQuoteDispatch(t *testing.T) {
	t.Run("Valid starter payload sends confirmation then owner summary", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		mailer.On("Send", mock.AnythingOfType("domain.Message")).Return(nil).Twice()

		uc := newQuoteUC(mailer)
		err := uc.SendQuote(context.Background(), starterQuote())
		require.NoError(t, err)

		mailer.AssertNumberOfCalls(t, "Send", 2)
		first := mailer.Calls[0].Arguments.Get(0).(domain.Message)
		second := mailer.Calls[1].Arguments.Get(0).(domain.Message)
		assert.Equal(t, []string{"jean@x.com"}, first.To)
		assert.Equal(t, "Votre demande Starter – Clyvuum", first.Subject)
		assert.Equal(t, []string{"contact@clyvuum.fr"}, second.To)
		assert.Equal(t, "jean@x.com", second.ReplyTo)
		assert.Equal(t, "🚀 Nouveau devis Starter – Jean Dupont", second.Subject)
	})

	t.Run("Missing transport configuration answers 503 without dispatching", func(t *testing.T) {
		mailer := &MockMailer{configured: false}
		uc := newQuoteUC(mailer)
		assertCode(t, uc.SendQuote(context.Background(), starterQuote()), http.StatusServiceUnavailable)
		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("Transport failure surfaces as 500 with a generic message", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		mailer.On("Send", mock.Anything).Return(assert.AnError)

		uc := newQuoteUC(mailer)
		err := uc.SendQuote(context.Background(), starterQuote())
		assertCode(t, err, http.StatusInternalServerError)
		assert.Equal(t, "Une erreur est survenue. Veuillez réessayer.", err.Error())
	})
}

func TestQuoteSchema(t *testing.T) {
	mailer := &MockMailer{configured: true}
	mailer.On("Send", mock.Anything).Return(nil)
	uc := newQuoteUC(mailer)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.QuoteRequest)
	}{
		{"unknown plan", func(r *domain.QuoteRequest) { r.Plan = "premium" }},
		{"missing first name", func(r *domain.QuoteRequest) { r.FirstName = "" }},
		{"email without at sign", func(r *domain.QuoteRequest) { r.Email = "jean.x.com" }},
		{"empty tool list", func(r *domain.QuoteRequest) { r.SelectedTools = nil }},
		{"tool outside the catalog", func(r *domain.QuoteRequest) {
			r.SelectedTools = []domain.ToolKey{"bitcoin-miner"}
		}},
		{"missing submittedAt", func(r *domain.QuoteRequest) { r.SubmittedAt = "" }},
		{"unparseable submittedAt", func(r *domain.QuoteRequest) { r.SubmittedAt = "yesterday" }},
		{"slot outside business hours", func(r *domain.QuoteRequest) {
			r.AppointmentDate = "2026-01-06T00:00:00Z"
			r.AppointmentTime = "12:00"
		}},
	}

	for _, tc := range cases {
		t.Run("Rejects "+tc.name, func(t *testing.T) {
			req := starterQuote()
			tc.mutate(req)
			err := uc.SendQuote(ctx, req)
			assertCode(t, err, http.StatusBadRequest)
			assert.Equal(t, "Données invalides.", err.Error())
		})
	}
}

func TestQuoteAppointmentRules(t *testing.T) {
	ctx := context.Background()

	t.Run("Business without appointment is rejected", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		uc := newQuoteUC(mailer)

		req := businessQuote()
		req.AppointmentDate = ""
		req.AppointmentTime = ""
		assertCode(t, uc.SendQuote(ctx, req), http.StatusBadRequest)

		req = businessQuote()
		req.AppointmentTime = ""
		assertCode(t, uc.SendQuote(ctx, req), http.StatusBadRequest)
		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("Business with a future weekday slot is accepted", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		mailer.On("Send", mock.Anything).Return(nil).Twice()
		uc := newQuoteUC(mailer)
		require.NoError(t, uc.SendQuote(ctx, businessQuote()))
	})

	t.Run("Weekend dates are rejected", func(t *testing.T) {
		uc := newQuoteUC(&MockMailer{configured: true})
		req := businessQuote()
		req.AppointmentDate = "2026-01-10T00:00:00Z" // Saturday
		assertCode(t, uc.SendQuote(ctx, req), http.StatusBadRequest)
	})

	t.Run("Past dates are rejected", func(t *testing.T) {
		uc := newQuoteUC(&MockMailer{configured: true})
		req := businessQuote()
		req.AppointmentDate = "2025-12-29T00:00:00Z" // Monday, last week
		assertCode(t, uc.SendQuote(ctx, req), http.StatusBadRequest)
	})

	t.Run("An appointment later today is not in the past", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		mailer.On("Send", mock.Anything).Return(nil).Twice()
		uc := newQuoteUC(mailer)
		req := businessQuote()
		req.AppointmentDate = "2026-01-05T00:00:00Z" // fixedNow's own day
		req.AppointmentTime = "16:30"
		require.NoError(t, uc.SendQuote(ctx, req))
	})

	t.Run("Starter payload may omit the appointment entirely", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		mailer.On("Send", mock.Anything).Return(nil).Twice()
		uc := newQuoteUC(mailer)
		require.NoError(t, uc.SendQuote(ctx, starterQuote()))
	})
}

func TestContactIntake(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid submission forwards one message with reply-to", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		mailer.On("Send", mock.AnythingOfType("domain.Message")).Return(nil).Once()

		uc := newContactUC(mailer)
		err := uc.SendContact(ctx, &domain.ContactRequest{
			Name:    "Jean Dupont",
			Email:   "jean@x.com",
			Message: "Bonjour",
		})
		require.NoError(t, err)

		msg := mailer.Calls[0].Arguments.Get(0).(domain.Message)
		assert.Equal(t, []string{"contact@clyvuum.fr"}, msg.To)
		assert.Equal(t, "jean@x.com", msg.ReplyTo)
		assert.Equal(t, "Nouveau message de contact – Jean Dupont", msg.Subject)
		assert.Contains(t, msg.Body, "⏰ Reçu le : 05/01/2026 09:00:00")
	})

	t.Run("Message length boundary sits at 5000 characters", func(t *testing.T) {
		mailer := &MockMailer{configured: true}
		mailer.On("Send", mock.Anything).Return(nil)
		uc := newContactUC(mailer)

		long := make([]byte, 5000)
		for i := range long {
			long[i] = 'a'
		}
		require.NoError(t, uc.SendContact(ctx, &domain.ContactRequest{
			Name: "Jean", Email: "jean@x.com", Message: string(long),
		}))

		tooLong := string(long) + "a"
		assertCode(t, uc.SendContact(ctx, &domain.ContactRequest{
			Name: "Jean", Email: "jean@x.com", Message: tooLong,
		}), http.StatusBadRequest)
	})

	t.Run("Missing transport configuration answers 503", func(t *testing.T) {
		uc := newContactUC(&MockMailer{configured: false})
		assertCode(t, uc.SendContact(ctx, &domain.ContactRequest{
			Name: "Jean", Email: "jean@x.com", Message: "Bonjour",
		}), http.StatusServiceUnavailable)
	})
}
