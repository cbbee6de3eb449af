package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/models"
)

// Store interfaces consumed by the handlers. *database.Database implements
// all of them; tests substitute fakes.

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	AppendToken(ctx context.Context, id primitive.ObjectID, token string) error
	UpdateProfile(ctx context.Context, email string, fields map[string]any) error
}

type QueryStore interface {
	InsertQuery(ctx context.Context, q *models.Query) error
	AllQueries(ctx context.Context) ([]models.Query, error)
	QueriesByEmail(ctx context.Context, email string) ([]models.Query, error)
	AppendComment(ctx context.Context, id primitive.ObjectID, c models.Comment) (*models.Query, error)
}

type BuddyStore interface {
	InsertBuddy(ctx context.Context, b *models.FindingBuddy) error
	AllBuddies(ctx context.Context) ([]models.FindingBuddy, error)
}

type GemStore interface {
	InsertGem(ctx context.Context, g *models.HiddenGem) error
	AllGems(ctx context.Context) ([]models.HiddenGem, error)
	Vote(ctx context.Context, gemID, userID primitive.ObjectID, direction models.VoteDirection) (*models.HiddenGem, error)
}

type ShortStore interface {
	Add(short models.Short) error
}

type SheetAppender interface {
	Append(ctx context.Context, row []interface{}) error
}
