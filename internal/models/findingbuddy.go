package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FindingBuddy is a travel-companion post. InterestedUsers is a set: a user
// id appears at most once no matter how often interest is expressed.
type FindingBuddy struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Email           string               `bson:"email" json:"email"`
	Author          string               `bson:"author" json:"author"`
	Content         string               `bson:"content" json:"content"`
	Timestamp       time.Time            `bson:"timestamp" json:"timestamp"`
	InterestedUsers []primitive.ObjectID `bson:"interestedUsers" json:"interestedUsers"`
	Comments        []Comment            `bson:"comments" json:"comments"`
}
