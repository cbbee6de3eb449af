package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is one entry in a conversation's message list. The sender name is
// a snapshot taken at send time and does not follow later renames.
type Message struct {
	SenderID  primitive.ObjectID `bson:"senderId" json:"senderId"`
	Name      string             `bson:"name" json:"name"`
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Read      bool               `bson:"read" json:"read"`
}

// Conversation is embedded in exactly one user document. Each user holds at
// most one conversation per counterpart.
type Conversation struct {
	ParticipantID primitive.ObjectID `bson:"participantId" json:"participantId"`
	Name          string             `bson:"name" json:"name"`
	Messages      []Message          `bson:"messages" json:"messages"`
}

// Notification is embedded in the recipient's user document. SubjectID is the
// id of the user the notification is about, stored under "id" for
// compatibility with existing documents.
type Notification struct {
	SubjectID primitive.ObjectID `bson:"id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Read      bool               `bson:"read" json:"read"`
}

const NotificationTypeInterest = "interest"

type AuthToken struct {
	Token string `bson:"token" json:"token"`
}

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Password        string             `bson:"password" json:"password,omitempty"`
	Phone           string             `bson:"phone" json:"phone"`
	Address         string             `bson:"address" json:"address"`
	Email           string             `bson:"email" json:"email"`
	Sex             string             `bson:"sex" json:"sex"`
	Age             int                `bson:"age" json:"age"`
	Bio             string             `bson:"bio" json:"bio"`
	ProfilePicture  []byte             `bson:"profilePicture" json:"profilePicture,omitempty"`
	ExperienceLevel string             `bson:"experienceLevel" json:"experienceLevel"`
	MedicalHistory  []string           `bson:"medicalHistory" json:"medicalHistory"`
	PastTreks       []string           `bson:"pastTreks" json:"pastTreks"`
	Tokens          []AuthToken        `bson:"tokens" json:"tokens,omitempty"`
	Conversations   []Conversation     `bson:"conversations" json:"conversations"`
	Notifications   []Notification     `bson:"notifications" json:"notifications"`
}

// NewUser fills the free-form profile fields with their defaults.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:            name,
		Email:           email,
		Password:        passwordHash,
		Phone:           "N/A",
		Address:         "N/A",
		Sex:             "N/A",
		Bio:             "N/A",
		ExperienceLevel: "N/A",
		MedicalHistory:  []string{},
		PastTreks:       []string{},
		Tokens:          []AuthToken{},
		Conversations:   []Conversation{},
		Notifications:   []Notification{},
	}
}

// Sanitized returns a copy safe to hand back to clients.
func (u *User) Sanitized() User {
	out := *u
	out.Password = ""
	out.Tokens = nil
	return out
}

// ConversationWith returns the embedded conversation keyed by the given
// counterpart, or nil if none exists yet.
func (u *User) ConversationWith(participantID primitive.ObjectID) *Conversation {
	for i := range u.Conversations {
		if u.Conversations[i].ParticipantID == participantID {
			return &u.Conversations[i]
		}
	}
	return nil
}
