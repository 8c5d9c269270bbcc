package services

import (
	"context"
	"errors"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// mockUI implements Prompter
type mockUI struct {
	confirmAnswer bool
	confirms      []string
	alerts        []string
}

func (m *mockUI) Confirm(message string) bool {
	m.confirms = append(m.confirms, message)
	return m.confirmAnswer
}

func (m *mockUI) Alert(message string) {
	m.alerts = append(m.alerts, message)
}

func (m *mockUI) lastAlert() string {
	if len(m.alerts) == 0 {
		return ""
	}
	return m.alerts[len(m.alerts)-1]
}

// mockNav implements Navigator
type mockNav struct {
	loginRedirects int
}

func (m *mockNav) ToLogin() {
	m.loginRedirects++
}

// mockSessions implements SessionManager
type mockSessions struct {
	user     *model.SessionUser
	saveErr  error
	clearErr error
	cleared  bool
}

func (m *mockSessions) CurrentUser(ctx context.Context) (*model.SessionUser, bool) {
	if m.user == nil {
		return nil, false
	}
	return m.user, true
}

func (m *mockSessions) SaveUser(ctx context.Context, user *model.SessionUser) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.user = user
	return nil
}

func (m *mockSessions) Clear(ctx context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.user = nil
	m.cleared = true
	return nil
}

type acceptCall struct {
	requestID   int64
	volunteerID int64
}

type reviewCall struct {
	requestID int64
	review    model.ReviewSubmission
}

// mockRequestAPI implements DashboardClient and RequestCreator
type mockRequestAPI struct {
	requests []model.Request
	listErr  error
	filters  []helpdeskclient.RequestFilter

	actionResp *helpdeskclient.ActionResponse
	actionErr  error
	accepts    []acceptCall
	completes  []acceptCall

	reviewResp *helpdeskclient.ActionResponse
	reviewErr  error
	reviews    []reviewCall

	createResp *helpdeskclient.CreateRequestResponse
	createErr  error
	created    []model.NewRequest
}

func (m *mockRequestAPI) ListRequests(ctx context.Context, filter helpdeskclient.RequestFilter) ([]model.Request, error) {
	m.filters = append(m.filters, filter)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.requests, nil
}

func (m *mockRequestAPI) AcceptRequest(ctx context.Context, requestID, volunteerID int64) (*helpdeskclient.ActionResponse, error) {
	m.accepts = append(m.accepts, acceptCall{requestID, volunteerID})
	if m.actionErr != nil {
		return nil, m.actionErr
	}
	return m.actionResp, nil
}

func (m *mockRequestAPI) CompleteRequest(ctx context.Context, requestID, volunteerID int64) (*helpdeskclient.ActionResponse, error) {
	m.completes = append(m.completes, acceptCall{requestID, volunteerID})
	if m.actionErr != nil {
		return nil, m.actionErr
	}
	return m.actionResp, nil
}

func (m *mockRequestAPI) SubmitReview(ctx context.Context, requestID int64, review model.ReviewSubmission) (*helpdeskclient.ActionResponse, error) {
	m.reviews = append(m.reviews, reviewCall{requestID, review})
	if m.reviewErr != nil {
		return nil, m.reviewErr
	}
	return m.reviewResp, nil
}

func (m *mockRequestAPI) CreateRequest(ctx context.Context, req model.NewRequest) (*helpdeskclient.CreateRequestResponse, error) {
	m.created = append(m.created, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResp, nil
}

// mockLoginAPI implements LoginClient
type mockLoginAPI struct {
	user *model.SessionUser
	err  error
}

func (m *mockLoginAPI) Login(ctx context.Context, email, password string) (*model.SessionUser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

var errNetwork = errors.New("connection refused")

func sampleRequests() []model.Request {
	return []model.Request{
		{ID: 1, Title: "Fix bike", Status: model.StatusOpen, Category: model.CategoryTools, Urgency: model.UrgencyLow, User: model.RequestUser{ID: 10, Name: "Ana"}},
		{ID: 2, Title: "Maths homework", Status: model.StatusAccepted, Category: model.CategoryTutoring, Urgency: model.UrgencyMedium, User: model.RequestUser{ID: 20, Name: "Ben"}},
		{ID: 3, Title: "Weekly shop", Status: model.StatusCompleted, Category: model.CategoryErrands, Urgency: model.UrgencyHigh, User: model.RequestUser{ID: 10, Name: "Ana"}},
		{ID: 4, Title: "Wifi setup", Status: model.StatusOpen, Category: model.CategoryTechnology, Urgency: model.UrgencyLow, User: model.RequestUser{ID: 10, Name: "Ana"}},
	}
}
