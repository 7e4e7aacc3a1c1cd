package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/logger"
)

type quoteUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
	from     string
	owner    string
	loc      *time.Location
	now      func() time.Time
}

// NewQuoteUsecase creates a new quote usecase
func NewQuoteUsecase(mailer domain.Mailer, validate *validator.Validate, from, owner string, loc *time.Location) domain.QuoteUsecase {
	return &quoteUsecase{
		mailer:   mailer,
		validate: validate,
		from:     from,
		owner:    owner,
		loc:      loc,
		now:      time.Now,
	}
}

// SendQuote validates the payload and dispatches two messages: a
// confirmation to the submitter, then a summary to the owner.
func (uc *quoteUsecase) SendQuote(ctx context.Context, req *domain.QuoteRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		logger.Log.Warn("quote payload rejected", "error", err)
		return apperror.BadRequest("Données invalides.")
	}

	if err := uc.validateAppointment(req); err != nil {
		return err
	}

	if _, err := time.Parse(time.RFC3339, req.SubmittedAt); err != nil {
		logger.Log.Warn("quote payload rejected", "error", err)
		return apperror.BadRequest("Données invalides.")
	}

	if !uc.mailer.IsConfigured() {
		logger.Log.Error("email transport is not configured; quote dispatch skipped")
		return apperror.New(http.StatusServiceUnavailable, "Service email indisponible.", nil)
	}

	planLabel := req.Plan.Label()

	clientMsg := domain.Message{
		From:    fmt.Sprintf("Clyvuum <%s>", uc.from),
		To:      []string{req.Email},
		Subject: fmt.Sprintf("Votre demande %s – Clyvuum", planLabel),
		Body:    buildQuoteClientEmail(req, uc.loc),
	}

	ownerMsg := domain.Message{
		From:    fmt.Sprintf("Clyvuum Website <%s>", uc.from),
		To:      []string{uc.owner},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("🚀 Nouveau devis %s – %s %s", planLabel, req.FirstName, req.LastName),
		Body:    buildQuoteOwnerEmail(req, uc.loc),
	}

	for _, msg := range []domain.Message{clientMsg, ownerMsg} {
		if err := uc.mailer.Send(msg); err != nil {
			logger.Log.Error("failed to send quote email", "to", msg.To, "error", err)
			return apperror.Internal("Une erreur est survenue. Veuillez réessayer.", err)
		}
	}

	return nil
}

// validateAppointment enforces the plan-conditional rules: business
// payloads must carry a bookable slot on a future weekday. Starter
// payloads may carry an appointment but are not required to.
func (uc *quoteUsecase) validateAppointment(req *domain.QuoteRequest) error {
	if req.Plan == domain.PlanBusiness {
		if req.AppointmentDate == "" || req.AppointmentTime == "" {
			logger.Log.Warn("quote payload rejected", "reason", "missing appointment for business plan")
			return apperror.BadRequest("Données invalides.")
		}
	}

	if req.AppointmentDate == "" {
		return nil
	}

	date, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		logger.Log.Warn("quote payload rejected", "error", err)
		return apperror.BadRequest("Données invalides.")
	}

	local := date.In(uc.loc)
	if local.Weekday() == time.Saturday || local.Weekday() == time.Sunday {
		logger.Log.Warn("quote payload rejected", "reason", "appointment on a weekend")
		return apperror.BadRequest("Données invalides.")
	}

	// Compare days, not instants: an appointment later today is fine.
	today := uc.now().In(uc.loc)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, uc.loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, uc.loc)
	if dayStart.Before(todayStart) {
		logger.Log.Warn("quote payload rejected", "reason", "appointment in the past")
		return apperror.BadRequest("Données invalides.")
	}

	return nil
}
