package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/trektribe/backend/internal/database"
	"github.com/trektribe/backend/internal/models"
	"github.com/trektribe/backend/pkg/auth"
)

// ---- fakes ----

type fakeUserStore struct {
	users  map[string]*models.User // by email
	tokens map[primitive.ObjectID][]string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:  make(map[string]*models.User),
		tokens: make(map[primitive.ObjectID][]string),
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return database.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, database.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) AppendToken(_ context.Context, id primitive.ObjectID, token string) error {
	f.tokens[id] = append(f.tokens[id], token)
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, email string, fields map[string]any) error {
	if _, ok := f.users[email]; !ok {
		return database.ErrNotFound
	}
	u := f.users[email]
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if treks, ok := fields["pastTreks"].([]string); ok {
		u.PastTreks = treks
	}
	return nil
}

func newAuthRouter(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(store, auth.NewJWTManager("test-secret", time.Hour), nil)
	r := gin.New()
	r.POST("/registerUser", h.Register)
	r.POST("/login", h.Login)
	r.POST("/Googlelogin", h.GoogleLogin)
	r.POST("/updateProfile", h.UpdateProfile)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, store *fakeUserStore, name, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.NewUser(name, email, string(hash))
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

// ---- tests ----

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	r := newAuthRouter(store)

	w := postJSON(r, "/registerUser", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	u, ok := store.users["a@x.com"]
	require.True(t, ok)
	assert.Equal(t, "Alice", u.Name)
	assert.NotEqual(t, "secret1", u.Password, "password must be stored hashed")
	assert.Empty(t, u.Tokens)
}

func TestRegister_DuplicateEmailDoesNotMutate(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	r := newAuthRouter(store)

	require.Equal(t, http.StatusOK, postJSON(r, "/registerUser", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	}).Code)
	original := *store.users["a@x.com"]

	w := postJSON(r, "/registerUser", map[string]string{
		"name": "Mallory", "email": "a@x.com", "password": "hijack1",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, original.Name, store.users["a@x.com"].Name)
	assert.Equal(t, original.Password, store.users["a@x.com"].Password)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	r := newAuthRouter(store)

	w := postJSON(r, "/registerUser", map[string]string{"name": "", "email": "a@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postJSON(r, "/registerUser", map[string]string{"name": "Al", "email": "a@x.com", "password": "short"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.Empty(t, store.users)
}

func TestLogin_SuccessAppendsToken(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	u := registerUser(t, store, "Alice", "a@x.com", "secret1")
	r := newAuthRouter(store)

	w := postJSON(r, "/login", map[string]string{"email": "a@x.com", "password": "secret1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")
	require.Len(t, store.tokens[u.ID], 1)
	assert.True(t, strings.Contains(w.Header().Get("Set-Cookie"), "jwtoken="))
}

func TestLogin_WrongPasswordIssuesNoToken(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	u := registerUser(t, store, "Alice", "a@x.com", "secret1")
	r := newAuthRouter(store)

	w := postJSON(r, "/login", map[string]string{"email": "a@x.com", "password": "wrong"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	assert.Empty(t, store.tokens[u.ID], "failed login must not issue a token")
	assert.NotContains(t, w.Header().Get("Set-Cookie"), "jwtoken=ey")
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	r := newAuthRouter(newFakeUserStore())
	w := postJSON(r, "/login", map[string]string{"email": "nobody@x.com", "password": "whatever"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoogleLogin_KnownEmail(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	u := registerUser(t, store, "Alice", "a@x.com", "secret1")
	r := newAuthRouter(store)

	w := postJSON(r, "/Googlelogin", map[string]string{"email": "a@x.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.tokens[u.ID], 1)
}

func TestUpdateProfile_AllowListedFields(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	registerUser(t, store, "Alice", "a@x.com", "secret1")
	r := newAuthRouter(store)

	w := postJSON(r, "/updateProfile", map[string]any{
		"email":     "a@x.com",
		"name":      "Alice B",
		"pastTreks": []string{"Triund", "Kedarkantha"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice B", store.users["a@x.com"].Name)
	assert.Equal(t, []string{"Triund", "Kedarkantha"}, store.users["a@x.com"].PastTreks)
}

func TestUpdateProfile_UnknownEmail(t *testing.T) {
	t.Parallel()

	r := newAuthRouter(newFakeUserStore())
	w := postJSON(r, "/updateProfile", map[string]string{"email": "ghost@x.com", "name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
