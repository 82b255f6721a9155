package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/devadigapratham/cncdro/api/models"
	"github.com/gin-gonic/gin"
)

// Convert turns text typed in the active units into millimeters
func (h *Handler) Convert(c *gin.Context) {
	var req models.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	mm, system, err := h.Console.Convert(c.Request.Context(), req.Text)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ConvertResponse{
		Text:      req.Text,
		System:    system.String(),
		Canonical: mm,
	})
}

// Format renders the canonical length in the "mm" query parameter
func (h *Handler) Format(c *gin.Context) {
	mm, err := strconv.ParseFloat(c.Query("mm"), 64)
	if err != nil || math.IsNaN(mm) || math.IsInf(mm, 0) {
		badRequest(c, errors.New("mm must be a finite number"))
		return
	}

	text, label, err := h.Console.Format(c.Request.Context(), mm)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FormatResponse{
		Canonical: mm,
		Text:      text,
		UnitLabel: label,
	})
}
