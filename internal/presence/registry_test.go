package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_AssociateAndResolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	_, ok := r.Resolve("user-1")
	assert.False(t, ok)

	r.Associate("user-1", "socket-a")
	id, ok := r.Resolve("user-1")
	assert.True(t, ok)
	assert.Equal(t, "socket-a", id)
}

func TestRegistry_ReassociateReplaces(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Associate("user-1", "socket-a")
	r.Associate("user-1", "socket-b")

	id, ok := r.Resolve("user-1")
	assert.True(t, ok)
	assert.Equal(t, "socket-b", id)
}

func TestRegistry_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Associate("user-1", "socket-a")
	r.Associate("author@example.com", "socket-b")

	id, _ := r.Resolve("user-1")
	assert.Equal(t, "socket-a", id)
	id, _ = r.Resolve("author@example.com")
	assert.Equal(t, "socket-b", id)
}
