// internal/session/session_test.go
package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crownshop/storefront/internal/localstore"
	"github.com/crownshop/storefront/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	root, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return NewManager(root)
}

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	manager := newTestManager(t)

	first, err := manager.GetOrCreate(42)
	require.NoError(t, err)
	second, err := manager.GetOrCreate(42)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(42), first.UserID)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	manager := newTestManager(t)

	alice, err := manager.GetOrCreate(1001)
	require.NoError(t, err)
	bob, err := manager.GetOrCreate(1002)
	require.NoError(t, err)

	alice.Cart.Add(models.Product{ID: uuid.New(), Name: "Hat", Price: 450}, 1)

	assert.Equal(t, 1, alice.Cart.TotalItems())
	assert.Zero(t, bob.Cart.TotalItems())
}
