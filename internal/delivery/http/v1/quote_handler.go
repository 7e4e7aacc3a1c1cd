package v1

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
)

type QuoteHandler struct {
	quoteUC      domain.QuoteUsecase
	maxBodyBytes int
}

// NewQuoteHandler registers the quote route (public, no auth required)
func NewQuoteHandler(public *gin.RouterGroup, quoteUC domain.QuoteUsecase, maxBodyBytes int) {
	handler := &QuoteHandler{
		quoteUC:      quoteUC,
		maxBodyBytes: maxBodyBytes,
	}

	public.POST("/send-quote", handler.SendQuote)
}

// SendQuote godoc
// @Summary      Submit Quote Request
// @Description  Send the quote wizard payload. Dispatches a confirmation to the submitter and a summary to the owner.
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "Quote Request Payload"
// @Success      200    {object}  response.Envelope
// @Failure      400    {object}  response.Envelope
// @Failure      413    {object}  response.Envelope
// @Failure      429    {object}  response.Envelope
// @Failure      503    {object}  response.Envelope
// @Router       /send-quote [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	raw, ok := readBoundedBody(c, h.maxBodyBytes)
	if !ok {
		return
	}

	var req domain.QuoteRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.Error(apperror.BadRequest("Données invalides."))
		return
	}

	if err := h.quoteUC.SendQuote(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	success(c)
}
