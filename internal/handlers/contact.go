package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trektribe/backend/internal/handlers/dto"
)

type ContactHandler struct {
	sheet SheetAppender
}

func NewContactHandler(sheet SheetAppender) *ContactHandler {
	return &ContactHandler{sheet: sheet}
}

// SendMessage validates the fixed rental-contact schema and appends one row
// to the spreadsheet.
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req dto.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.sheet == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sheet integration not configured"})
		return
	}

	if err := h.sheet.Append(c.Request.Context(), req.Row()); err != nil {
		log.Printf("Error appending to sheet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data added successfully"})
}
