package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/database"
	"github.com/trektribe/backend/internal/handlers/dto"
	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/internal/services"
)

type FindingBuddyHandler struct {
	store      BuddyStore
	dispatcher *services.NotificationDispatcher
	router     *services.MessageRouter
}

func NewFindingBuddyHandler(store BuddyStore, dispatcher *services.NotificationDispatcher, router *services.MessageRouter) *FindingBuddyHandler {
	return &FindingBuddyHandler{store: store, dispatcher: dispatcher, router: router}
}

func (h *FindingBuddyHandler) PostFindingBuddy(c *gin.Context) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}
	if req.Email == "" || req.Content == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}

	buddy := &models.FindingBuddy{
		Email:           req.Email,
		Author:          req.Author,
		Content:         req.Content,
		Timestamp:       time.Now(),
		InterestedUsers: []primitive.ObjectID{},
		Comments:        []models.Comment{},
	}
	if err := h.store.InsertBuddy(c.Request.Context(), buddy); err != nil {
		log.Printf("Error posting finding buddy query: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error posting query"})
		return
	}

	c.JSON(http.StatusCreated, buddy)
}

func (h *FindingBuddyHandler) AllFindingBuddyQueries(c *gin.Context) {
	buddies, err := h.store.AllBuddies(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching all finding buddy queries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching all queries"})
		return
	}
	c.JSON(http.StatusOK, buddies)
}

// AddInterestedUser records interest in a post and notifies its author.
// Showing interest in your own post is a silent no-op.
func (h *FindingBuddyHandler) AddInterestedUser(c *gin.Context) {
	var req dto.AddInterestedUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Please fill all fields properly."})
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserData.ID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid user id"})
		return
	}

	err = h.dispatcher.ExpressInterest(c.Request.Context(), req.QueryEmail, services.InterestedUser{
		ID:    userID,
		Name:  req.UserData.Name,
		Email: req.UserData.Email,
	})
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, services.ErrDuplicateInterest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You've already shown interest in this query."})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "FindBuddy post not found"})
	default:
		log.Printf("Error adding interested user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// AddNotificationAsConversation turns an interest notification into a pair
// of empty conversations so the two users can start chatting.
func (h *FindingBuddyHandler) AddNotificationAsConversation(c *gin.Context) {
	subjectID, err := primitive.ObjectIDFromHex(c.Param("notificationId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User or notification not found"})
		return
	}

	var req dto.BootstrapConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.User.Email == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Please fill all fields properly."})
		return
	}

	if err := h.router.Bootstrap(c.Request.Context(), req.User.Email, subjectID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User or notification not found"})
			return
		}
		log.Printf("Error bootstrapping conversation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation IDs added to both users"})
}
