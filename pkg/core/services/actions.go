package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
)

// ActionOutcome describes how a user-triggered action ended
type ActionOutcome int

const (
	OutcomeDeclined ActionOutcome = iota
	OutcomeSucceeded
	OutcomeFailed
	OutcomeUnauthenticated
)

func (o ActionOutcome) String() string {
	switch o {
	case OutcomeDeclined:
		return "declined"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// RequestActionClient issues request lifecycle transitions
type RequestActionClient interface {
	AcceptRequest(ctx context.Context, requestID, volunteerID int64) (*helpdeskclient.ActionResponse, error)
	CompleteRequest(ctx context.Context, requestID, volunteerID int64) (*helpdeskclient.ActionResponse, error)
}

// Actions runs request lifecycle transitions with confirmation and feedback.
// Nothing is retried and no view is updated optimistically; a successful
// transition triggers the caller's refresh.
type Actions struct {
	api    RequestActionClient
	ui     Prompter
	logger *zap.Logger
}

// NewActions creates the request lifecycle actions
func NewActions(api RequestActionClient, ui Prompter, logger *zap.Logger) *Actions {
	return &Actions{api: api, ui: ui, logger: logger}
}

// AcceptRequest binds volunteerID to the request after confirmation
func (a *Actions) AcceptRequest(ctx context.Context, requestID, volunteerID int64, refresh Refresher) ActionOutcome {
	if !a.ui.Confirm("Do you want to accept this request?") {
		return OutcomeDeclined
	}

	resp, err := a.api.AcceptRequest(ctx, requestID, volunteerID)
	if err != nil {
		a.logger.Error("Accept request error",
			zap.Int64("request_id", requestID),
			zap.Int64("volunteer_id", volunteerID),
			zap.Error(err))
		a.ui.Alert(genericErrorMessage)
		return OutcomeFailed
	}

	if !resp.Success {
		a.ui.Alert(resp.ErrorOr("Failed to accept request"))
		return OutcomeFailed
	}

	a.ui.Alert("Request accepted successfully!")
	a.refresh(ctx, refresh)
	return OutcomeSucceeded
}

// CompleteRequest marks the request completed on behalf of the logged-in member
func (a *Actions) CompleteRequest(ctx context.Context, requestID int64, sessions SessionReader, nav Navigator, refresh Refresher) ActionOutcome {
	user, ok := sessions.CurrentUser(ctx)
	if !ok {
		nav.ToLogin()
		return OutcomeUnauthenticated
	}

	if !a.ui.Confirm("Are you sure you want to mark this request as completed?") {
		return OutcomeDeclined
	}

	resp, err := a.api.CompleteRequest(ctx, requestID, user.ID)
	if err != nil {
		a.logger.Error("Complete request error",
			zap.Int64("request_id", requestID),
			zap.Int64("volunteer_id", user.ID),
			zap.Error(err))
		a.ui.Alert(genericErrorMessage)
		return OutcomeFailed
	}

	if !resp.Success {
		a.ui.Alert(resp.ErrorOr("Failed to complete request"))
		return OutcomeFailed
	}

	a.ui.Alert("Request marked as completed!")
	a.refresh(ctx, refresh)
	return OutcomeSucceeded
}

func (a *Actions) refresh(ctx context.Context, refresh Refresher) {
	if refresh == nil {
		return
	}
	if err := refresh(ctx); err != nil {
		a.logger.Warn("Refresh after action failed", zap.Error(err))
	}
}
