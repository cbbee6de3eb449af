package services

import (
	"context"
	"log"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/internal/presence"
	"github.com/trektribe/backend/internal/websocket"
)

// ConversationStore is the slice of the user store the router needs.
type ConversationStore interface {
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	AppendConversationMessage(ctx context.Context, ownerID, participantID primitive.ObjectID, participantName string, msg models.Message) error
	EnsureConversation(ctx context.Context, ownerID, participantID primitive.ObjectID, participantName string) error
	ConversationMessages(ctx context.Context, ownerID, participantID primitive.ObjectID) ([]models.Message, error)
}

// Emitter pushes a live event at a socket id. Implemented by the hub.
type Emitter interface {
	EmitToSocket(socketID string, eventType websocket.EventType, payload any)
}

// MessageRouter persists direct messages and delivers them live on a best
// effort basis.
type MessageRouter struct {
	store    ConversationStore
	presence *presence.Registry
	emitter  Emitter
	now      func() time.Time
}

func NewMessageRouter(store ConversationStore, reg *presence.Registry, emitter Emitter) *MessageRouter {
	return &MessageRouter{store: store, presence: reg, emitter: emitter, now: time.Now}
}

// Send appends the message to the sender's side of the conversation only;
// the recipient's copy materializes at fetch time. If either party is
// unknown the send is dropped with a log line, mirroring the live channel's
// lack of an error path.
func (r *MessageRouter) Send(ctx context.Context, senderID, recipientID primitive.ObjectID, content string) error {
	sender, err := r.store.FindUserByID(ctx, senderID)
	if err != nil {
		log.Printf("Send: sender %s not found: %v", senderID.Hex(), err)
		return nil
	}
	recipient, err := r.store.FindUserByID(ctx, recipientID)
	if err != nil {
		log.Printf("Send: recipient %s not found: %v", recipientID.Hex(), err)
		return nil
	}

	msg := models.Message{
		SenderID:  sender.ID,
		Name:      sender.Name,
		Content:   content,
		Timestamp: r.now(),
	}

	if err := r.store.AppendConversationMessage(ctx, sender.ID, recipient.ID, recipient.Name, msg); err != nil {
		return err
	}

	r.emitTo(sender.ID, msg)
	r.emitTo(recipient.ID, msg)
	return nil
}

func (r *MessageRouter) emitTo(userID primitive.ObjectID, msg models.Message) {
	if socketID, ok := r.presence.Resolve(userID.Hex()); ok {
		r.emitter.EmitToSocket(socketID, websocket.TypeMessage, msg)
	}
}

// Fetch merges both parties' copies of the conversation and sorts by
// timestamp ascending. This is the read-side join that makes the
// sender-only write appear two-sided.
func (r *MessageRouter) Fetch(ctx context.Context, currentUserID, otherUserID primitive.ObjectID) ([]models.Message, error) {
	mine, err := r.store.ConversationMessages(ctx, currentUserID, otherUserID)
	if err != nil {
		return nil, err
	}
	theirs, err := r.store.ConversationMessages(ctx, otherUserID, currentUserID)
	if err != nil {
		return nil, err
	}

	merged := make([]models.Message, 0, len(mine)+len(theirs))
	merged = append(merged, mine...)
	merged = append(merged, theirs...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})
	return merged, nil
}

// Bootstrap ensures both users hold an (initially empty) conversation entry
// pointing at the other, so a notification can be turned into a chat before
// any message exists. Idempotent.
func (r *MessageRouter) Bootstrap(ctx context.Context, callerEmail string, subjectID primitive.ObjectID) error {
	caller, err := r.store.FindUserByEmail(ctx, callerEmail)
	if err != nil {
		return err
	}
	subject, err := r.store.FindUserByID(ctx, subjectID)
	if err != nil {
		return err
	}

	if err := r.store.EnsureConversation(ctx, caller.ID, subject.ID, subject.Name); err != nil {
		return err
	}
	return r.store.EnsureConversation(ctx, subject.ID, caller.ID, caller.Name)
}
