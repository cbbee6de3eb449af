package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trektribe/backend/internal/database"
	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/internal/presence"
	"github.com/trektribe/backend/internal/websocket"
)

// ---- fakes ----

type fakeConvStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeConvStore(users ...*models.User) *fakeConvStore {
	f := &fakeConvStore{users: make(map[primitive.ObjectID]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeConvStore) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return u, nil
}

func (f *fakeConvStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeConvStore) AppendConversationMessage(_ context.Context, ownerID, participantID primitive.ObjectID, participantName string, msg models.Message) error {
	owner, ok := f.users[ownerID]
	if !ok {
		return database.ErrNotFound
	}
	conv := owner.ConversationWith(participantID)
	if conv == nil {
		owner.Conversations = append(owner.Conversations, models.Conversation{
			ParticipantID: participantID,
			Name:          participantName,
		})
		conv = &owner.Conversations[len(owner.Conversations)-1]
	}
	conv.Messages = append(conv.Messages, msg)
	return nil
}

func (f *fakeConvStore) EnsureConversation(_ context.Context, ownerID, participantID primitive.ObjectID, participantName string) error {
	owner, ok := f.users[ownerID]
	if !ok {
		return database.ErrNotFound
	}
	if owner.ConversationWith(participantID) == nil {
		owner.Conversations = append(owner.Conversations, models.Conversation{
			ParticipantID: participantID,
			Name:          participantName,
			Messages:      []models.Message{},
		})
	}
	return nil
}

func (f *fakeConvStore) ConversationMessages(_ context.Context, ownerID, participantID primitive.ObjectID) ([]models.Message, error) {
	owner, ok := f.users[ownerID]
	if !ok {
		return nil, nil
	}
	conv := owner.ConversationWith(participantID)
	if conv == nil {
		return nil, nil
	}
	return conv.Messages, nil
}

type emission struct {
	socketID  string
	eventType websocket.EventType
	payload   any
}

type fakeEmitter struct {
	emitted []emission
}

func (f *fakeEmitter) EmitToSocket(socketID string, eventType websocket.EventType, payload any) {
	f.emitted = append(f.emitted, emission{socketID, eventType, payload})
}

func testUser(name, email string) *models.User {
	u := models.NewUser(name, email, "hash")
	u.ID = primitive.NewObjectID()
	return u
}

// ---- tests ----

func TestSend_AppendsSenderSideOnly(t *testing.T) {
	t.Parallel()

	alice := testUser("Alice", "a@x.com")
	bob := testUser("Bob", "b@x.com")
	store := newFakeConvStore(alice, bob)
	router := NewMessageRouter(store, presence.NewRegistry(), &fakeEmitter{})

	require.NoError(t, router.Send(context.Background(), alice.ID, bob.ID, "hi"))

	conv := alice.ConversationWith(bob.ID)
	require.NotNil(t, conv)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, "hi", conv.Messages[0].Content)
	assert.Equal(t, "Alice", conv.Messages[0].Name)
	assert.False(t, conv.Messages[0].Read)

	// Recipient side stays untouched until fetch or bootstrap.
	assert.Nil(t, bob.ConversationWith(alice.ID))
}

func TestSend_UnknownPartyIsSilentlyDropped(t *testing.T) {
	t.Parallel()

	alice := testUser("Alice", "a@x.com")
	store := newFakeConvStore(alice)
	emitter := &fakeEmitter{}
	router := NewMessageRouter(store, presence.NewRegistry(), emitter)

	err := router.Send(context.Background(), alice.ID, primitive.NewObjectID(), "hi")
	require.NoError(t, err)
	assert.Empty(t, alice.Conversations)
	assert.Empty(t, emitter.emitted)
}

func TestSend_EmitsToConnectedParties(t *testing.T) {
	t.Parallel()

	alice := testUser("Alice", "a@x.com")
	bob := testUser("Bob", "b@x.com")
	store := newFakeConvStore(alice, bob)
	emitter := &fakeEmitter{}
	reg := presence.NewRegistry()
	reg.Associate(bob.ID.Hex(), "socket-bob")
	router := NewMessageRouter(store, reg, emitter)

	require.NoError(t, router.Send(context.Background(), alice.ID, bob.ID, "hi"))

	// Alice never announced a socket, so only Bob hears about it.
	require.Len(t, emitter.emitted, 1)
	assert.Equal(t, "socket-bob", emitter.emitted[0].socketID)
	assert.Equal(t, websocket.TypeMessage, emitter.emitted[0].eventType)
}

func TestFetch_MergesBothSidesOrderedByTimestamp(t *testing.T) {
	t.Parallel()

	alice := testUser("Alice", "a@x.com")
	bob := testUser("Bob", "b@x.com")
	store := newFakeConvStore(alice, bob)
	router := NewMessageRouter(store, presence.NewRegistry(), &fakeEmitter{})

	base := time.Now()
	clock := base
	router.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	require.NoError(t, router.Send(context.Background(), alice.ID, bob.ID, "hi"))
	require.NoError(t, router.Send(context.Background(), bob.ID, alice.ID, "hey"))
	require.NoError(t, router.Send(context.Background(), alice.ID, bob.ID, "how are you"))

	messages, err := router.Fetch(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, []string{"hi", "hey", "how are you"},
		[]string{messages[0].Content, messages[1].Content, messages[2].Content})
	assert.True(t, messages[0].Timestamp.Before(messages[1].Timestamp))
	assert.True(t, messages[1].Timestamp.Before(messages[2].Timestamp))
}

func TestFetch_OneSidedConversation(t *testing.T) {
	t.Parallel()

	alice := testUser("Alice", "a@x.com")
	bob := testUser("Bob", "b@x.com")
	store := newFakeConvStore(alice, bob)
	router := NewMessageRouter(store, presence.NewRegistry(), &fakeEmitter{})

	require.NoError(t, router.Send(context.Background(), alice.ID, bob.ID, "hi"))

	messages, err := router.Fetch(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, alice.ID, messages[0].SenderID)
}

func TestBootstrap_IsIdempotent(t *testing.T) {
	t.Parallel()

	alice := testUser("Alice", "a@x.com")
	bob := testUser("Bob", "b@x.com")
	store := newFakeConvStore(alice, bob)
	router := NewMessageRouter(store, presence.NewRegistry(), &fakeEmitter{})

	require.NoError(t, router.Bootstrap(context.Background(), alice.Email, bob.ID))
	require.NoError(t, router.Bootstrap(context.Background(), alice.Email, bob.ID))

	require.Len(t, alice.Conversations, 1)
	require.Len(t, bob.Conversations, 1)
	assert.Equal(t, bob.ID, alice.Conversations[0].ParticipantID)
	assert.Equal(t, "Bob", alice.Conversations[0].Name)
	assert.Equal(t, alice.ID, bob.Conversations[0].ParticipantID)
	assert.Empty(t, alice.Conversations[0].Messages)
}

func TestBootstrap_UnknownSubject(t *testing.T) {
	t.Parallel()

	alice := testUser("Alice", "a@x.com")
	store := newFakeConvStore(alice)
	router := NewMessageRouter(store, presence.NewRegistry(), &fakeEmitter{})

	err := router.Bootstrap(context.Background(), alice.Email, primitive.NewObjectID())
	assert.ErrorIs(t, err, database.ErrNotFound)
}
