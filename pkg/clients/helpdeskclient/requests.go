package helpdeskclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// RequestFilter narrows the request listing server side. Empty fields are omitted.
type RequestFilter struct {
	Category model.Category
	Urgency  model.Urgency
	Search   string
}

func (f RequestFilter) query() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", string(f.Category))
	}
	if f.Urgency != "" {
		q.Set("urgency", string(f.Urgency))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

type listRequestsResponse struct {
	Requests []model.Request `json:"requests"`
	Error    string          `json:"error,omitempty"`
}

// ListRequests fetches requests, optionally filtered by category, urgency and search text
func (c *Client) ListRequests(ctx context.Context, filter RequestFilter) ([]model.Request, error) {
	var out listRequestsResponse
	status, err := c.do(ctx, http.MethodGet, "/api/requests", filter.query(), nil, &out)
	if err != nil {
		return nil, err
	}

	if out.Error != "" || status >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: status, Message: out.Error}
	}

	return out.Requests, nil
}

type volunteerBody struct {
	VolunteerID int64 `json:"volunteerId"`
}

// AcceptRequest binds a volunteer to an open request
func (c *Client) AcceptRequest(ctx context.Context, requestID, volunteerID int64) (*ActionResponse, error) {
	var out ActionResponse
	path := "/api/requests/" + strconv.FormatInt(requestID, 10) + "/accept"
	if _, err := c.do(ctx, http.MethodPut, path, nil, volunteerBody{VolunteerID: volunteerID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteRequest marks a request completed on behalf of a volunteer
func (c *Client) CompleteRequest(ctx context.Context, requestID, volunteerID int64) (*ActionResponse, error) {
	var out ActionResponse
	path := "/api/requests/" + strconv.FormatInt(requestID, 10) + "/complete"
	if _, err := c.do(ctx, http.MethodPut, path, nil, volunteerBody{VolunteerID: volunteerID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRequestResponse is returned when posting a new request
type CreateRequestResponse struct {
	ActionResponse
	Request *model.Request `json:"request,omitempty"`
}

// CreateRequest posts a new help request
func (c *Client) CreateRequest(ctx context.Context, req model.NewRequest) (*CreateRequestResponse, error) {
	var out CreateRequestResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/requests", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitReview rates the volunteer who helped with a request
func (c *Client) SubmitReview(ctx context.Context, requestID int64, review model.ReviewSubmission) (*ActionResponse, error) {
	var out ActionResponse
	path := fmt.Sprintf("/api/reviews/requests/%d", requestID)
	if _, err := c.do(ctx, http.MethodPost, path, nil, review, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
