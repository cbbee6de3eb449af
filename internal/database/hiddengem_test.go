package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/models"
)

// The vote updates must keep counters and sets in lockstep: every $inc is
// paired with a guarded set mutation inside a single per-document update.

func TestVoteAdd_Like(t *testing.T) {
	t.Parallel()

	gemID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	filter, update := voteAdd(gemID, userID, models.VoteLike)

	require.Equal(t, gemID, filter["_id"])
	assert.Equal(t, bson.M{"$ne": userID}, filter["likedBy"])

	assert.Equal(t, bson.M{"likedBy": userID}, update["$addToSet"])
	assert.Equal(t, bson.M{"likeCount": 1}, update["$inc"])
}

func TestVoteAdd_Dislike(t *testing.T) {
	t.Parallel()

	gemID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	filter, update := voteAdd(gemID, userID, models.VoteDislike)

	assert.Equal(t, bson.M{"$ne": userID}, filter["dislikedBy"])
	assert.Equal(t, bson.M{"dislikedBy": userID}, update["$addToSet"])
	assert.Equal(t, bson.M{"dislikeCount": 1}, update["$inc"])
}

func TestVoteRemoveOpposite_GuardedOnMembership(t *testing.T) {
	t.Parallel()

	gemID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	filter, update := voteRemoveOpposite(gemID, userID, models.VoteLike)

	// A like only ever decrements the dislike side, and only when the user
	// is actually in it.
	require.Equal(t, userID, filter["dislikedBy"])
	assert.Equal(t, bson.M{"dislikedBy": userID}, update["$pull"])
	assert.Equal(t, bson.M{"dislikeCount": -1}, update["$inc"])
}

func TestVoteFields_Directions(t *testing.T) {
	t.Parallel()

	set, count, oppSet, oppCount := voteFields(models.VoteLike)
	assert.Equal(t, []string{"likedBy", "likeCount", "dislikedBy", "dislikeCount"},
		[]string{set, count, oppSet, oppCount})

	set, count, oppSet, oppCount = voteFields(models.VoteDislike)
	assert.Equal(t, []string{"dislikedBy", "dislikeCount", "likedBy", "likeCount"},
		[]string{set, count, oppSet, oppCount})
}
