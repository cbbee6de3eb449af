package server

import (
	"github.com/gin-gonic/gin"

	"github.com/trektribe/backend/internal/handlers"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Query        *handlers.QueryHandler
	FindingBuddy *handlers.FindingBuddyHandler
	HiddenGem    *handlers.HiddenGemHandler
	Message      *handlers.MessageHandler
	Contact      *handlers.ContactHandler
	Shorts       *handlers.ShortsHandler
	WebSocket    *handlers.WebSocketHandler
	AuthGate     gin.HandlerFunc
}

// APIEndpoints keeps the route names the frontend already depends on.
func APIEndpoints(r *gin.Engine, h *Handlers) {
	// Users & sessions
	r.POST("/registerUser", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/Googlelogin", h.Auth.GoogleLogin)
	r.POST("/updateProfile", h.Auth.UpdateProfile)
	r.GET("/getinfo", h.AuthGate, h.Auth.GetInfo)
	r.GET("/logout", h.Auth.Logout)

	// Query board
	r.POST("/postQuery", h.Query.PostQuery)
	r.GET("/queries", h.AuthGate, h.Query.MyQueries)
	r.GET("/allQueries", h.AuthGate, h.Query.AllQueries)
	r.POST("/postComment", h.AuthGate, h.Query.PostComment)

	// Finding buddy board
	r.POST("/postFindingBuddy", h.FindingBuddy.PostFindingBuddy)
	r.GET("/allFindingBuddyQueries", h.AuthGate, h.FindingBuddy.AllFindingBuddyQueries)
	r.POST("/addInterestedUser", h.FindingBuddy.AddInterestedUser)
	r.POST("/addNotificationAsConversation/:notificationId", h.FindingBuddy.AddNotificationAsConversation)

	// Hidden gems
	r.POST("/addTrek", h.HiddenGem.AddTrek)
	r.GET("/getAllHiddenGems", h.HiddenGem.GetAllHiddenGems)
	r.POST("/likeHiddenGem/:gemId", h.HiddenGem.Like)
	r.POST("/dislikeHiddenGem/:gemId", h.HiddenGem.Dislike)

	// Messaging
	r.POST("/messages", h.Message.FetchMessages)

	// Integrations
	r.POST("/send-message", h.Contact.SendMessage)
	r.POST("/addShort", h.Shorts.AddShort)

	// Live channel
	r.GET("/ws", h.WebSocket.HandleWebSocket)
}
