package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VoteDirection selects which vote set a user is added to.
type VoteDirection string

const (
	VoteLike    VoteDirection = "like"
	VoteDislike VoteDirection = "dislike"
)

// HiddenGem is a user-submitted location. LikedBy and DislikedBy are disjoint
// sets; LikeCount and DislikeCount always equal the respective set sizes.
type HiddenGem struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title        string               `bson:"title" json:"title"`
	Description  string               `bson:"description" json:"description"`
	ImageFile    string               `bson:"imageFile,omitempty" json:"imageFile,omitempty"`
	ImgSrc       string               `bson:"imgSrc" json:"imgSrc"`
	LikeCount    int                  `bson:"likeCount" json:"likeCount"`
	DislikeCount int                  `bson:"dislikeCount" json:"dislikeCount"`
	LikedBy      []primitive.ObjectID `bson:"likedBy" json:"likedBy"`
	DislikedBy   []primitive.ObjectID `bson:"dislikedBy" json:"dislikedBy"`
	PostedBy     string               `bson:"postedBy" json:"postedBy"`
	Location     string               `bson:"location" json:"location"`
	Timestamp    time.Time            `bson:"timestamp" json:"timestamp"`
}
