package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trektribe/backend/internal/models"
)

func (d *Database) InsertBuddy(ctx context.Context, b *models.FindingBuddy) error {
	res, err := d.buddies.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

func (d *Database) AllBuddies(ctx context.Context) ([]models.FindingBuddy, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := d.buddies.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	buddies := []models.FindingBuddy{}
	if err := cur.All(ctx, &buddies); err != nil {
		return nil, err
	}
	return buddies, nil
}

// AddInterestedUser adds the user id to the post's interested set. Duplicate
// adds are harmless. Posts are addressed by author email, matching how the
// client identifies them.
func (d *Database) AddInterestedUser(ctx context.Context, postEmail string, userID primitive.ObjectID) (*models.FindingBuddy, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.FindingBuddy
	err := d.buddies.FindOneAndUpdate(ctx, bson.M{"email": postEmail},
		bson.M{"$addToSet": bson.M{"interestedUsers": userID}}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
