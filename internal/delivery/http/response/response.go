package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the only response shape the intake endpoints produce, so
// callers can branch on ok alone.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Success sends the acknowledgement envelope
func Success(c *gin.Context, code int) {
	c.JSON(code, Envelope{OK: true})
}

// Error sends a failure envelope. message may be empty (rejected-origin
// responses deliberately carry no detail).
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{OK: false, Error: message})
}
