package handlers

import (
	"errors"
	"net/http"

	"github.com/devadigapratham/cncdro/api/models"
	"github.com/devadigapratham/cncdro/display"
	"github.com/devadigapratham/cncdro/motion"
	"github.com/gin-gonic/gin"
)

// GetSteps returns the jog presets of the active system
func (h *Handler) GetSteps(c *gin.Context) {
	steps, selected, err := h.Console.Steps(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StepsResponse{Steps: steps, Selected: selected})
}

// SelectStep selects a jog preset
func (h *Handler) SelectStep(c *gin.Context) {
	var req models.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.Console.SelectStep(ctx, *req.Index); err != nil {
		if errors.Is(err, display.ErrStepIndex) {
			badRequest(c, err)
		} else {
			abort(c, err)
		}
		return
	}

	steps, selected, err := h.Console.Steps(ctx)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StepsResponse{Steps: steps, Selected: selected})
}

// SetJogFeed sets the jog feed from text typed in the active feed units
func (h *Handler) SetJogFeed(c *gin.Context) {
	var req models.JogFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	feed, err := h.Console.SetJogFeed(c.Request.Context(), req.Text)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed_mm_per_min": feed})
}

// Jog moves an axis by the selected step
func (h *Handler) Jog(c *gin.Context) {
	var req models.JogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	axis, err := models.ParseAxis(req.Axis)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Console.Jog(c.Request.Context(), axis, req.Direction); err != nil {
		if errors.Is(err, motion.ErrInvalidJog) {
			badRequest(c, err)
		} else {
			abort(c, err)
		}
		return
	}
	c.Status(http.StatusAccepted)
}
