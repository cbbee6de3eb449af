package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	Author  string `bson:"author" json:"author"`
	Comment string `bson:"comment" json:"comment"`
}

// Query is a community question posted to the board.
type Query struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Author    string             `bson:"author" json:"author"`
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Comments  []Comment          `bson:"comments" json:"comments"`
}
