package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/handlers/dto"
	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/internal/presence"
	"github.com/trektribe/backend/internal/services"
	ws "github.com/trektribe/backend/internal/websocket"
)

// UserResolver looks up a user for socket association.
type UserResolver interface {
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// WebSocketHandler upgrades connections and dispatches the live-channel
// events. The live channel performs no authentication: whoever announces a
// user id via the login event owns that presence entry.
type WebSocketHandler struct {
	hub      *ws.Hub
	router   *services.MessageRouter
	presence *presence.Registry
	users    UserResolver
	upgrader gorilla.Upgrader
}

func NewWebSocketHandler(hub *ws.Hub, router *services.MessageRouter, reg *presence.Registry, users UserResolver) *WebSocketHandler {
	return &WebSocketHandler{
		hub:      hub,
		router:   router,
		presence: reg,
		users:    users,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h)
}

// HandleEvent implements ws.EventHandler.
func (h *WebSocketHandler) HandleEvent(client *ws.Client, event *ws.Event) error {
	switch event.Type {
	case ws.TypeJoinRoom:
		// Legacy event from the old room-based client; nothing to join.
		return nil

	case ws.TypeLogin:
		return h.handleLogin(client, event)

	case ws.TypeStoreSocketID:
		return h.handleStoreSocketID(client, event)

	case ws.TypeMessage:
		return h.handleMessage(client, event)

	default:
		log.Printf("Unknown event type: %s", event.Type)
		return nil
	}
}

// handleLogin associates the announced user id with this connection's
// socket id. The previous entry for that user, if any, is replaced.
func (h *WebSocketHandler) handleLogin(client *ws.Client, event *ws.Event) error {
	var userID string
	if err := json.Unmarshal(event.Data, &userID); err != nil {
		return ws.ErrInvalidEvent
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ws.ErrInvalidEvent
	}

	if _, err := h.users.FindUserByID(context.Background(), id); err != nil {
		log.Printf("User %s not found for socket association: %v", userID, err)
		return nil
	}

	h.presence.Associate(id.Hex(), client.ID)
	log.Printf("Socket ID associated with user: %s", client.ID)
	return nil
}

// handleStoreSocketID keys the presence entry by the buddy-post author's
// email so interest notifications can reach them live.
func (h *WebSocketHandler) handleStoreSocketID(client *ws.Client, event *ws.Event) error {
	var authorEmail string
	if err := json.Unmarshal(event.Data, &authorEmail); err != nil {
		return ws.ErrInvalidEvent
	}
	if authorEmail == "" {
		return ws.ErrInvalidEvent
	}

	h.presence.Associate(authorEmail, client.ID)
	return nil
}

func (h *WebSocketHandler) handleMessage(client *ws.Client, event *ws.Event) error {
	var payload dto.MessagePayload
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return ws.ErrInvalidEvent
	}
	if payload.Content == "" {
		return ws.ErrInvalidEvent
	}

	senderID, err := primitive.ObjectIDFromHex(payload.SenderID)
	if err != nil {
		return ws.ErrInvalidEvent
	}
	recipientID, err := primitive.ObjectIDFromHex(payload.RecipientID)
	if err != nil {
		return ws.ErrInvalidEvent
	}

	return h.router.Send(context.Background(), senderID, recipientID, payload.Content)
}
