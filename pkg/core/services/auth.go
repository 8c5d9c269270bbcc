package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// LoginClient exchanges credentials for a member profile
type LoginClient interface {
	Login(ctx context.Context, email, password string) (*model.SessionUser, error)
}

// CheckAuth returns the logged-in member, navigating to login when there is none
func CheckAuth(ctx context.Context, sessions SessionReader, nav Navigator) (*model.SessionUser, bool) {
	user, ok := sessions.CurrentUser(ctx)
	if !ok {
		nav.ToLogin()
		return nil, false
	}
	return user, true
}

// Logout clears the session and navigates to login
func Logout(ctx context.Context, sessions SessionManager, nav Navigator) error {
	if err := sessions.Clear(ctx); err != nil {
		return err
	}
	nav.ToLogin()
	return nil
}

// Login authenticates against the backend and stores the returned member as the session
func Login(ctx context.Context, api LoginClient, sessions SessionManager, logger *zap.Logger, email, password string) (*model.SessionUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	user, err := api.Login(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if err := sessions.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Logged in", zap.Int64("user_id", user.ID))
	return user, nil
}
