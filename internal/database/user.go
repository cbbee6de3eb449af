package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trektribe/backend/internal/models"
)

// CreateUser inserts a new user after checking the email is unused. Email
// uniqueness is not enforced by an index, so the check and insert are two
// steps.
func (d *Database) CreateUser(ctx context.Context, user *models.User) error {
	err := d.users.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	res, err := d.users.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (d *Database) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := d.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := d.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByIDAndToken resolves a user only if the literal token string is
// still present in the issued-token list, so tokens can be revoked
// server-side by removing them from the document.
func (d *Database) FindUserByIDAndToken(ctx context.Context, id primitive.ObjectID, token string) (*models.User, error) {
	var user models.User
	err := d.users.FindOne(ctx, bson.M{"_id": id, "tokens.token": token}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) AppendToken(ctx context.Context, id primitive.ObjectID, token string) error {
	res, err := d.users.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$push": bson.M{"tokens": models.AuthToken{Token: token}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile overwrites the given fields on the user addressed by email.
// Callers are responsible for allow-listing the keys.
func (d *Database) UpdateProfile(ctx context.Context, email string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res, err := d.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendConversationMessage appends a message to the owner's conversation
// with the given participant, creating the conversation lazily. Only the
// owner's document is written; the counterpart's copy is reconciled at read
// time.
func (d *Database) AppendConversationMessage(ctx context.Context, ownerID, participantID primitive.ObjectID, participantName string, msg models.Message) error {
	res, err := d.users.UpdateOne(ctx,
		bson.M{"_id": ownerID, "conversations.participantId": participantID},
		bson.M{"$push": bson.M{"conversations.$.messages": msg}})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	conv := models.Conversation{
		ParticipantID: participantID,
		Name:          participantName,
		Messages:      []models.Message{msg},
	}
	res, err = d.users.UpdateOne(ctx, bson.M{"_id": ownerID},
		bson.M{"$push": bson.M{"conversations": conv}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureConversation inserts an empty conversation with the participant if
// the owner does not already have one. Idempotent.
func (d *Database) EnsureConversation(ctx context.Context, ownerID, participantID primitive.ObjectID, participantName string) error {
	conv := models.Conversation{
		ParticipantID: participantID,
		Name:          participantName,
		Messages:      []models.Message{},
	}
	_, err := d.users.UpdateOne(ctx,
		bson.M{"_id": ownerID, "conversations.participantId": bson.M{"$ne": participantID}},
		bson.M{"$push": bson.M{"conversations": conv}})
	return err
}

// ConversationMessages returns the owner's copy of the conversation with the
// participant. An absent conversation is not an error; it reads as empty.
func (d *Database) ConversationMessages(ctx context.Context, ownerID, participantID primitive.ObjectID) ([]models.Message, error) {
	user, err := d.FindUserByID(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	conv := user.ConversationWith(participantID)
	if conv == nil {
		return nil, nil
	}
	return conv.Messages, nil
}

// HasNotification reports whether the user addressed by email already holds
// a notification with the given type and subject.
func (d *Database) HasNotification(ctx context.Context, email, notifType string, subjectID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"email": email,
		"notifications": bson.M{"$elemMatch": bson.M{
			"type": notifType,
			"id":   subjectID,
		}},
	}
	err := d.users.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *Database) PushNotification(ctx context.Context, email string, n models.Notification) error {
	res, err := d.users.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$push": bson.M{"notifications": n}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
