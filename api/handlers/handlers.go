package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/devadigapratham/cncdro/api/models"
	"github.com/devadigapratham/cncdro/console"
	"github.com/devadigapratham/cncdro/input"
	"github.com/devadigapratham/cncdro/loop"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler represents the API handlers
type Handler struct {
	Console *console.Console
	Log     logrus.FieldLogger
}

// NewHandler creates a new Handler
func NewHandler(c *console.Console, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		Console: c,
		Log:     log,
	}
}

// LoggingMiddleware logs every request with its status and latency
func (h *Handler) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := h.Log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Debug("request")
	}
}

// abort writes err as JSON with a status derived from its type
func abort(c *gin.Context, err error) {
	var inputErr *input.InputError
	switch {
	case errors.As(err, &inputErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), Kind: string(inputErr.Kind)})
	case errors.Is(err, loop.ErrStopped):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
}
