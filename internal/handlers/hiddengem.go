package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/database"
	"github.com/trektribe/backend/internal/handlers/dto"
	"github.com/trektribe/backend/internal/models"
)

type HiddenGemHandler struct {
	store GemStore
}

func NewHiddenGemHandler(store GemStore) *HiddenGemHandler {
	return &HiddenGemHandler{store: store}
}

func (h *HiddenGemHandler) AddTrek(c *gin.Context) {
	var req dto.AddTrekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}
	if req.Title == "" || req.Description == "" || req.Location == "" || req.ImgSrc == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}

	gem := &models.HiddenGem{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImgSrc:      req.ImgSrc,
		PostedBy:    req.Email,
		LikedBy:     []primitive.ObjectID{},
		DislikedBy:  []primitive.ObjectID{},
		Timestamp:   time.Now(),
	}
	if err := h.store.InsertGem(c.Request.Context(), gem); err != nil {
		log.Printf("Error adding trek: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trek added successfully!", "data": gem})
}

func (h *HiddenGemHandler) GetAllHiddenGems(c *gin.Context) {
	gems, err := h.store.AllGems(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching hidden gems: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gems})
}

func (h *HiddenGemHandler) Like(c *gin.Context) {
	h.vote(c, models.VoteLike)
}

func (h *HiddenGemHandler) Dislike(c *gin.Context) {
	h.vote(c, models.VoteDislike)
}

func (h *HiddenGemHandler) vote(c *gin.Context, direction models.VoteDirection) {
	gemID, err := primitive.ObjectIDFromHex(c.Param("gemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hidden gem not found"})
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid user id"})
		return
	}

	gem, err := h.store.Vote(c.Request.Context(), gemID, userID, direction)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Gem %sd successfully", direction), "gem": gem})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Hidden gem not found"})
	case errors.Is(err, database.ErrAlreadyVoted):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("User already %sd this gem", direction)})
	default:
		log.Printf("Error %sing hidden gem: %v", direction, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
