package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/internal/presence"
	"github.com/trektribe/backend/internal/websocket"
)

var (
	// ErrDuplicateInterest means the author already holds an interest
	// notification about this user.
	ErrDuplicateInterest = errors.New("interest already recorded")
)

// InterestStore is the slice of the stores the dispatcher needs.
type InterestStore interface {
	AddInterestedUser(ctx context.Context, postEmail string, userID primitive.ObjectID) (*models.FindingBuddy, error)
	HasNotification(ctx context.Context, email, notifType string, subjectID primitive.ObjectID) (bool, error)
	PushNotification(ctx context.Context, email string, n models.Notification) error
}

// InterestedUser identifies who expressed interest.
type InterestedUser struct {
	ID    primitive.ObjectID
	Name  string
	Email string
}

// NotificationDispatcher records interest in a finding-buddy post and
// notifies its author, at most once per (type, subject) pair.
type NotificationDispatcher struct {
	store    InterestStore
	presence *presence.Registry
	emitter  Emitter
	now      func() time.Time
}

func NewNotificationDispatcher(store InterestStore, reg *presence.Registry, emitter Emitter) *NotificationDispatcher {
	return &NotificationDispatcher{store: store, presence: reg, emitter: emitter, now: time.Now}
}

// ExpressInterest is a no-op when the author shows interest in their own
// post. Deduplication keys on (type, subject id) only, not on the post:
// interest in a second post by the same author yields no second
// notification. That matches how the data has always been written.
func (d *NotificationDispatcher) ExpressInterest(ctx context.Context, postEmail string, user InterestedUser) error {
	if postEmail == user.Email {
		return nil
	}

	post, err := d.store.AddInterestedUser(ctx, postEmail, user.ID)
	if err != nil {
		return err
	}

	exists, err := d.store.HasNotification(ctx, post.Email, models.NotificationTypeInterest, user.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateInterest
	}

	n := models.Notification{
		SubjectID: user.ID,
		Name:      user.Name,
		Type:      models.NotificationTypeInterest,
		Message:   fmt.Sprintf("%s is interested in your FindBuddy query", user.Name),
		CreatedAt: d.now(),
	}
	if err := d.store.PushNotification(ctx, post.Email, n); err != nil {
		return err
	}

	if socketID, ok := d.presence.Resolve(post.Email); ok {
		d.emitter.EmitToSocket(socketID, websocket.TypeNotification, map[string]string{
			"type":    models.NotificationTypeInterest,
			"message": fmt.Sprintf("%s is interested in your Travel Plans, Please click on Notification Icon", user.Name),
		})
	}
	return nil
}
