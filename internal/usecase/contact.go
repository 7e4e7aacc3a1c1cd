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

type contactUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
	from     string
	owner    string
	loc      *time.Location
	now      func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer domain.Mailer, validate *validator.Validate, from, owner string, loc *time.Location) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: validate,
		from:     from,
		owner:    owner,
		loc:      loc,
		now:      time.Now,
	}
}

// SendContact validates the submission and forwards it to the owner with
// reply-to set to the submitter. Validation detail is logged, never
// returned to the client.
func (uc *contactUsecase) SendContact(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		logger.Log.Warn("contact payload rejected", "error", err)
		return apperror.BadRequest("Données invalides.")
	}

	if !uc.mailer.IsConfigured() {
		logger.Log.Error("email transport is not configured; contact dispatch skipped")
		return apperror.New(http.StatusServiceUnavailable, "Service email indisponible.", nil)
	}

	msg := domain.Message{
		From:    fmt.Sprintf("Clyvuum <%s>", uc.from),
		To:      []string{uc.owner},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Nouveau message de contact – %s", req.Name),
		Body:    buildContactOwnerEmail(req, uc.now(), uc.loc),
	}

	if err := uc.mailer.Send(msg); err != nil {
		logger.Log.Error("failed to send contact email", "error", err)
		return apperror.Internal("Une erreur est survenue. Veuillez réessayer.", err)
	}

	return nil
}
