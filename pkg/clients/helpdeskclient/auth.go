package helpdeskclient

import (
	"context"
	"net/http"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool               `json:"success"`
	User    *model.SessionUser `json:"user,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// Login exchanges credentials for the member profile used as the session
func (c *Client) Login(ctx context.Context, email, password string) (*model.SessionUser, error) {
	var out loginResponse
	status, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginBody{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}

	if !out.Success || out.User == nil {
		msg := out.Error
		if msg == "" {
			msg = "Login failed"
		}
		return nil, &APIError{StatusCode: status, Message: msg}
	}

	return out.User, nil
}
