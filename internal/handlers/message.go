package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/handlers/dto"
	"github.com/trektribe/backend/internal/services"
)

type MessageHandler struct {
	router *services.MessageRouter
}

func NewMessageHandler(router *services.MessageRouter) *MessageHandler {
	return &MessageHandler{router: router}
}

// FetchMessages returns the merged two-sided conversation between the two
// users, ordered by timestamp ascending.
func (h *MessageHandler) FetchMessages(c *gin.Context) {
	var req dto.FetchMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Please fill all fields properly."})
		return
	}

	currentID, err := primitive.ObjectIDFromHex(req.CurrentUserID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid user id"})
		return
	}
	otherID, err := primitive.ObjectIDFromHex(req.OtherUserID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid user id"})
		return
	}

	messages, err := h.router.Fetch(c.Request.Context(), currentID, otherID)
	if err != nil {
		log.Printf("Error fetching messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
