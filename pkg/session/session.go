package session

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// CurrentUserKey is the fixed key the logged-in member is stored under
const CurrentUserKey = "currentUser"

// Manager reads and writes the session user
type Manager struct {
	store  Store
	logger *zap.Logger
}

// NewManager creates a session manager over store
func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// CurrentUser returns the logged-in member. Missing, unreadable or malformed
// session data all count as logged out.
func (m *Manager) CurrentUser(ctx context.Context) (*model.SessionUser, bool) {
	raw, ok, err := m.store.Get(ctx, CurrentUserKey)
	if err != nil {
		m.logger.Warn("Failed to read session", zap.Error(err))
		return nil, false
	}
	if !ok || len(raw) == 0 {
		return nil, false
	}

	var user model.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		m.logger.Warn("Ignoring malformed session", zap.Error(err))
		return nil, false
	}
	if user.ID == 0 {
		m.logger.Warn("Ignoring session without a user id")
		return nil, false
	}

	return &user, true
}

// SaveUser stores user as the logged-in member
func (m *Manager) SaveUser(ctx context.Context, user *model.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := m.store.Set(ctx, CurrentUserKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the logged-in member
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
