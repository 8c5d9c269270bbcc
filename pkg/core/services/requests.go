package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// RequestCreator posts new help requests
type RequestCreator interface {
	CreateRequest(ctx context.Context, req model.NewRequest) (*helpdeskclient.CreateRequestResponse, error)
}

// PostRequestInput is a new help request before the poster is attached
type PostRequestInput struct {
	Title       string
	Description string
	Category    model.Category
	Urgency     model.Urgency
}

// PostRequest validates and posts a help request as the logged-in member
func PostRequest(ctx context.Context, api RequestCreator, sessions SessionReader, nav Navigator, logger *zap.Logger, input PostRequestInput) (*model.Request, error) {
	user, ok := CheckAuth(ctx, sessions, nav)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	req := model.NewRequest{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Urgency:     input.Urgency,
	}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	resp, err := api.CreateRequest(ctx, req)
	if err != nil {
		logger.Error("Create request error", zap.Error(err))
		return nil, fmt.Errorf("failed to post request: %w", err)
	}

	if !resp.Success {
		return nil, fmt.Errorf("%s", resp.ErrorOr("Failed to create request"))
	}

	logger.Info("Request posted", zap.Int64("user_id", user.ID))
	return resp.Request, nil
}
