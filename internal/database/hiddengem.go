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

func (d *Database) InsertGem(ctx context.Context, g *models.HiddenGem) error {
	res, err := d.gems.InsertOne(ctx, g)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		g.ID = oid
	}
	return nil
}

func (d *Database) AllGems(ctx context.Context) ([]models.HiddenGem, error) {
	cur, err := d.gems.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	gems := []models.HiddenGem{}
	if err := cur.All(ctx, &gems); err != nil {
		return nil, err
	}
	return gems, nil
}

// voteFields maps a direction to the set and counter it mutates.
func voteFields(direction models.VoteDirection) (set, count, oppositeSet, oppositeCount string) {
	if direction == models.VoteLike {
		return "likedBy", "likeCount", "dislikedBy", "dislikeCount"
	}
	return "dislikedBy", "dislikeCount", "likedBy", "likeCount"
}

// voteAdd builds the conditional add: the filter only matches if the user is
// not already in the target set, so the set insert and the counter increment
// always land together or not at all.
func voteAdd(gemID, userID primitive.ObjectID, direction models.VoteDirection) (filter, update bson.M) {
	set, count, _, _ := voteFields(direction)
	filter = bson.M{"_id": gemID, set: bson.M{"$ne": userID}}
	update = bson.M{
		"$addToSet": bson.M{set: userID},
		"$inc":      bson.M{count: 1},
	}
	return filter, update
}

// voteRemoveOpposite builds the cleanup for a switched vote: pull the user
// from the opposite set and decrement its counter, guarded on membership so
// a fresh vote decrements nothing.
func voteRemoveOpposite(gemID, userID primitive.ObjectID, direction models.VoteDirection) (filter, update bson.M) {
	_, _, oppSet, oppCount := voteFields(direction)
	filter = bson.M{"_id": gemID, oppSet: userID}
	update = bson.M{
		"$pull": bson.M{oppSet: userID},
		"$inc":  bson.M{oppCount: -1},
	}
	return filter, update
}

// Vote records a like or dislike as two per-document atomic updates. A repeat
// vote in the same direction returns ErrAlreadyVoted; switching direction
// moves the user between the sets and adjusts both counters.
func (d *Database) Vote(ctx context.Context, gemID, userID primitive.ObjectID, direction models.VoteDirection) (*models.HiddenGem, error) {
	filter, update := voteAdd(gemID, userID, direction)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var gem models.HiddenGem
	err := d.gems.FindOneAndUpdate(ctx, filter, update, opts).Decode(&gem)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the gem does not exist or the user already voted this way.
		existsErr := d.gems.FindOne(ctx, bson.M{"_id": gemID}).Err()
		if errors.Is(existsErr, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if existsErr != nil {
			return nil, existsErr
		}
		return nil, ErrAlreadyVoted
	}
	if err != nil {
		return nil, err
	}

	filter, update = voteRemoveOpposite(gemID, userID, direction)
	err = d.gems.FindOneAndUpdate(ctx, filter, update, opts).Decode(&gem)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	return &gem, nil
}
