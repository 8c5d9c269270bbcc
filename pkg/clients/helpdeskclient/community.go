package helpdeskclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// MembersResponse is the community roster envelope
type MembersResponse struct {
	Success      bool           `json:"success"`
	Members      []model.Member `json:"members"`
	TotalMembers int            `json:"totalMembers"`
	Error        string         `json:"error,omitempty"`
}

// ListMembers fetches the full community roster
func (c *Client) ListMembers(ctx context.Context) (*MembersResponse, error) {
	var out MembersResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/community/members", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type memberDetailResponse struct {
	model.Member
	Error string `json:"error,omitempty"`
}

// GetMember fetches one member's profile with recent requests and reviews
func (c *Client) GetMember(ctx context.Context, memberID int64) (*model.Member, error) {
	var out memberDetailResponse
	status, err := c.do(ctx, http.MethodGet, "/api/community/members/"+strconv.FormatInt(memberID, 10), nil, nil, &out)
	if err != nil {
		return nil, err
	}

	if out.Error != "" {
		return nil, &APIError{StatusCode: status, Message: out.Error}
	}
	if status >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: status, Message: "Failed to fetch member details"}
	}

	return &out.Member, nil
}
