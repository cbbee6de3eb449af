package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trektribe/backend/internal/handlers/dto"
	"github.com/trektribe/backend/internal/models"
)

type ShortsHandler struct {
	store ShortStore
}

func NewShortsHandler(store ShortStore) *ShortsHandler {
	return &ShortsHandler{store: store}
}

func (h *ShortsHandler) AddShort(c *gin.Context) {
	var req dto.AddShortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}

	err := h.store.Add(models.Short{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImgSrc:      req.ImgSrc,
	})
	if err != nil {
		log.Printf("Error adding short: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Short added successfully!"})
}
