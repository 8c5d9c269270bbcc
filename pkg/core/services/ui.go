package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// ErrNotAuthenticated is returned when an operation needs a session and there is none
var ErrNotAuthenticated = errors.New("not logged in")

// Prompter asks the user questions and shows blocking notices
type Prompter interface {
	Confirm(message string) bool
	Alert(message string)
}

// Navigator moves the user to another view
type Navigator interface {
	ToLogin()
}

// SessionReader exposes the logged-in member
type SessionReader interface {
	CurrentUser(ctx context.Context) (*model.SessionUser, bool)
}

// SessionManager reads and writes the logged-in member
type SessionManager interface {
	SessionReader
	SaveUser(ctx context.Context, user *model.SessionUser) error
	Clear(ctx context.Context) error
}

// Refresher re-fetches and re-renders a view after a successful mutation
type Refresher func(ctx context.Context) error

const genericErrorMessage = "An error occurred. Please try again."

var validate = validator.New()
