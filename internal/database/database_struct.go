package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrAlreadyVoted   = errors.New("user already voted in this direction")
)

type Database struct {
	client  *mongo.Client
	users   *mongo.Collection
	queries *mongo.Collection
	buddies *mongo.Collection
	gems    *mongo.Collection
}
