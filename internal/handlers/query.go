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
	"github.com/trektribe/backend/internal/middleware"
	"github.com/trektribe/backend/internal/models"
)

type QueryHandler struct {
	store QueryStore
}

func NewQueryHandler(store QueryStore) *QueryHandler {
	return &QueryHandler{store: store}
}

func (h *QueryHandler) PostQuery(c *gin.Context) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}
	if req.Email == "" || req.Content == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}

	query := &models.Query{
		Email:     req.Email,
		Author:    req.Author,
		Content:   req.Content,
		Timestamp: time.Now(),
		Comments:  []models.Comment{},
	}
	if err := h.store.InsertQuery(c.Request.Context(), query); err != nil {
		log.Printf("Error posting query: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error posting query"})
		return
	}

	c.JSON(http.StatusCreated, query)
}

func (h *QueryHandler) AllQueries(c *gin.Context) {
	queries, err := h.store.AllQueries(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching all queries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching all queries"})
		return
	}
	c.JSON(http.StatusOK, queries)
}

// MyQueries lists the caller's own posts, newest first.
func (h *QueryHandler) MyQueries(c *gin.Context) {
	email := c.MustGet(middleware.UserEmailKey).(string)

	queries, err := h.store.QueriesByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("Error fetching queries by email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching queries by email"})
		return
	}
	c.JSON(http.StatusOK, queries)
}

func (h *QueryHandler) PostComment(c *gin.Context) {
	name := c.MustGet(middleware.UserNameKey).(string)

	var req dto.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Comment == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please fill all fields properly."})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Query not found"})
		return
	}

	updated, err := h.store.AppendComment(c.Request.Context(), id, models.Comment{
		Author:  name,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Query not found"})
			return
		}
		log.Printf("Error posting comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error posting comment"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
