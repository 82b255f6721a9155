package handlers

import (
	"net/http"

	"github.com/devadigapratham/cncdro/api/models"
	"github.com/gin-gonic/gin"
)

// PostStatus accepts a machine status report in canonical units
func (h *Handler) PostStatus(c *gin.Context) {
	var req models.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.Console.UpdateStatus(c.Request.Context(), req); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSurfaces returns the text currently shown by every label
func (h *Handler) GetSurfaces(c *gin.Context) {
	texts, err := h.Console.Texts(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, texts)
}

// DestroySurface destroys a label, as the toolkit would when a widget goes away
func (h *Handler) DestroySurface(c *gin.Context) {
	found, err := h.Console.DestroyLabel(c.Request.Context(), c.Param("name"))
	if err != nil {
		abort(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "surface not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
