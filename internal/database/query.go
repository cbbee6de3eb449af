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

func (d *Database) InsertQuery(ctx context.Context, q *models.Query) error {
	res, err := d.queries.InsertOne(ctx, q)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		q.ID = oid
	}
	return nil
}

func (d *Database) AllQueries(ctx context.Context) ([]models.Query, error) {
	return d.findQueries(ctx, bson.M{})
}

func (d *Database) QueriesByEmail(ctx context.Context, email string) ([]models.Query, error) {
	return d.findQueries(ctx, bson.M{"email": email})
}

func (d *Database) findQueries(ctx context.Context, filter bson.M) ([]models.Query, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := d.queries.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	queries := []models.Query{}
	if err := cur.All(ctx, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

// AppendComment pushes a comment onto the query and returns the updated
// document.
func (d *Database) AppendComment(ctx context.Context, id primitive.ObjectID, c models.Comment) (*models.Query, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Query
	err := d.queries.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": c}}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
