package v1

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/logger"
)

type ContactHandler struct {
	contactUC    domain.ContactUsecase
	maxBodyBytes int
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, maxBodyBytes int) {
	handler := &ContactHandler{
		contactUC:    contactUC,
		maxBodyBytes: maxBodyBytes,
	}

	public.POST("/send-contact", handler.SendContact)
}

// SendContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      413      {object}  response.Envelope
// @Failure      429      {object}  response.Envelope
// @Failure      503      {object}  response.Envelope
// @Router       /send-contact [post]
func (h *ContactHandler) SendContact(c *gin.Context) {
	raw, ok := readBoundedBody(c, h.maxBodyBytes)
	if !ok {
		return
	}

	var req domain.ContactRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.Error(apperror.BadRequest("Données invalides."))
		return
	}

	if err := h.contactUC.SendContact(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	success(c)
}

// readBoundedBody reads the raw body and enforces the size ceiling
// before any JSON parsing happens. Oversized requests get 413 without
// being parsed.
func readBoundedBody(c *gin.Context, maxBytes int) ([]byte, bool) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(maxBytes)+1))
	if err != nil {
		logger.Log.Warn("failed to read request body", "error", err)
		c.Error(apperror.BadRequest("Données invalides."))
		return nil, false
	}
	if len(raw) > maxBytes {
		c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Requête trop volumineuse.", nil))
		return nil, false
	}
	return raw, true
}
