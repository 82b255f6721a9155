package handlers

import (
	"errors"
	"net/http"

	"github.com/devadigapratham/cncdro/api/models"
	"github.com/devadigapratham/cncdro/units"
	"github.com/gin-gonic/gin"
)

// GetPreference returns the active measurement system
func (h *Handler) GetPreference(c *gin.Context) {
	ctx := c.Request.Context()
	system, err := h.Console.System(ctx)
	if err != nil {
		abort(c, err)
		return
	}
	feedUnits, err := h.Console.FeedUnits(ctx)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PreferenceResponse{
		System:    system.String(),
		UnitLabel: units.UnitLabel(system),
		FeedUnits: feedUnits.String(),
	})
}

// SetPreference switches the measurement system
func (h *Handler) SetPreference(c *gin.Context) {
	var req models.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// Unknown names would silently fall back to Metric
	if !models.IsValidSystem(req.System) {
		badRequest(c, errors.New("system must be Metric or Imperial"))
		return
	}

	ctx := c.Request.Context()
	system := units.ParseSystem(req.System)
	changed, failed, err := h.Console.SetSystem(ctx, system)
	if err != nil {
		abort(c, err)
		return
	}
	feedUnits, err := h.Console.FeedUnits(ctx)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PreferenceResponse{
		System:    system.String(),
		UnitLabel: units.UnitLabel(system),
		FeedUnits: feedUnits.String(),
		Changed:   changed,
		Failed:    failed,
	})
}

// SetFeedUnits switches feed readouts between per-minute and per-second
func (h *Handler) SetFeedUnits(c *gin.Context) {
	var req models.FeedUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	feedUnits, err := h.Console.SetFeedPerSecond(c.Request.Context(), req.PerSecond)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed_units": feedUnits.String()})
}
