// internal/session/session.go
package session

import (
	"context"
	"strconv"
	"sync"

	"github.com/crownshop/storefront/internal/host"
	"github.com/crownshop/storefront/internal/localstore"
	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/services"
	"github.com/crownshop/storefront/internal/state"
)

// Session bundles one identified user's state managers. Everything is
// constructed exactly once per user and lives for the process lifetime;
// the ownership gate result is resolved once and never revoked
// mid-session.
type Session struct {
	UserID      int64
	Cart        *state.Cart
	Favorites   *state.Favorites
	Preferences *state.Preferences
	Draft       *state.Draft
	Notifier    *host.Buffer

	accessOnce sync.Once
	access     *models.AdminAccess
}

// Access runs the ownership/admin gate on first call and caches the
// result for the rest of the session.
func (s *Session) Access(ctx context.Context, admin *services.AdminService) *models.AdminAccess {
	s.accessOnce.Do(func() {
		s.access = admin.ResolveAccess(ctx, s.UserID)
	})
	return s.access
}

// Manager hands out sessions keyed by the host user id, building each
// user's persistence namespace and state managers on first touch.
type Manager struct {
	mu       sync.Mutex
	root     *localstore.Store
	sessions map[int64]*Session
}

func NewManager(root *localstore.Store) *Manager {
	return &Manager{
		root:     root,
		sessions: make(map[int64]*Session),
	}
}

func (m *Manager) GetOrCreate(userID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}

	store, err := m.root.Namespace(strconv.FormatInt(userID, 10))
	if err != nil {
		return nil, err
	}

	notifier := host.NewBuffer()
	s := &Session{
		UserID:      userID,
		Cart:        state.NewCart(store, notifier),
		Favorites:   state.NewFavorites(store),
		Preferences: state.NewPreferences(store),
		Draft:       state.NewDraft(store),
		Notifier:    notifier,
	}
	m.sessions[userID] = s
	return s, nil
}
