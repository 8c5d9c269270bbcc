package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

func newTestDashboard(api *mockRequestAPI, user *model.SessionUser, ui *mockUI) (*Dashboard, *mockNav) {
	nav := &mockNav{}
	return NewDashboard(api, &mockSessions{user: user}, nav, ui, zap.NewNop()), nav
}

func cardIDs(view TabView) []int64 {
	var ids []int64
	for _, c := range view.Cards {
		ids = append(ids, c.Request.ID)
	}
	return ids
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		parsed, err := ParseTab(string(tab))
		require.NoError(t, err)
		assert.Equal(t, tab, parsed)
	}

	_, err := ParseTab("settings")
	assert.Error(t, err)
}

func TestNewRequestCard_AcceptOnlyWhenOpen(t *testing.T) {
	for _, status := range []model.Status{model.StatusOpen, model.StatusAccepted, model.StatusCompleted, model.StatusCancelled} {
		card := NewRequestCard(model.Request{Status: status}, true)
		if status == model.StatusOpen {
			assert.Equal(t, []CardAction{ActionAccept}, card.Actions)
		} else {
			assert.Empty(t, card.Actions, "status %s", status)
		}
	}

	assert.Empty(t, NewRequestCard(model.Request{Status: model.StatusOpen}, false).Actions)
}

func TestNewOwnRequestCard_Actions(t *testing.T) {
	assert.Equal(t, []CardAction{ActionEdit, ActionDelete}, NewOwnRequestCard(model.Request{Status: model.StatusOpen}).Actions)
	assert.Equal(t, []CardAction{ActionRateHelper}, NewOwnRequestCard(model.Request{Status: model.StatusCompleted}).Actions)
	assert.Empty(t, NewOwnRequestCard(model.Request{Status: model.StatusAccepted}).Actions)
	assert.True(t, NewOwnRequestCard(model.Request{}).Own)
}

func TestDashboard_InitWithoutSessionRedirects(t *testing.T) {
	api := &mockRequestAPI{}
	d, nav := newTestDashboard(api, nil, &mockUI{})

	_, err := d.Init(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, 1, nav.loginRedirects)
	assert.Empty(t, api.filters, "nothing should be fetched")
}

func TestDashboard_InitLoadsAvailable(t *testing.T) {
	api := &mockRequestAPI{requests: sampleRequests()}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10, Name: "Ana"}, &mockUI{})

	view, err := d.Init(context.Background())
	require.NoError(t, err)

	assert.Equal(t, TabAvailable, d.ActiveTab())
	assert.Equal(t, TabAvailable, view.Tab)
	assert.Equal(t, []int64{1, 2, 3, 4}, cardIDs(view))
	assert.Equal(t, []CardAction{ActionAccept}, view.Cards[0].Actions)
	assert.Empty(t, view.Cards[1].Actions)
	assert.Equal(t, "Ana", d.User().Name)
}

func TestDashboard_AvailableEmptyAndError(t *testing.T) {
	user := &model.SessionUser{ID: 10}

	d, _ := newTestDashboard(&mockRequestAPI{}, user, &mockUI{})
	view, err := d.ShowTab(context.Background(), TabAvailable)
	require.NoError(t, err)
	assert.Equal(t, MsgNoAvailableRequests, view.Empty)
	assert.Empty(t, view.Cards)

	d, _ = newTestDashboard(&mockRequestAPI{listErr: errNetwork}, user, &mockUI{})
	view, err = d.ShowTab(context.Background(), TabAvailable)
	require.NoError(t, err)
	assert.Equal(t, MsgAvailableLoadFailed, view.Error)
}

func TestDashboard_SetFilterPassesServerSideParams(t *testing.T) {
	api := &mockRequestAPI{requests: sampleRequests()[:1]}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, &mockUI{})

	_, err := d.ShowTab(context.Background(), TabMyAssignments)
	require.NoError(t, err)

	filter := helpdeskclient.RequestFilter{Category: model.CategoryTools, Urgency: model.UrgencyLow}
	view := d.SetFilter(context.Background(), filter)

	assert.Equal(t, TabAvailable, d.ActiveTab())
	assert.Equal(t, TabAvailable, view.Tab)
	require.NotEmpty(t, api.filters)
	assert.Equal(t, filter, api.filters[len(api.filters)-1])
	assert.Equal(t, filter, d.Filter())
}

func TestDashboard_MyRequestsFiltersBySessionUser(t *testing.T) {
	api := &mockRequestAPI{requests: sampleRequests()}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, &mockUI{})

	d.SetFilter(context.Background(), helpdeskclient.RequestFilter{Category: model.CategoryTools})
	view, err := d.ShowTab(context.Background(), TabMyRequests)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3, 4}, cardIDs(view))
	assert.Equal(t, []CardAction{ActionEdit, ActionDelete}, view.Cards[0].Actions)
	assert.Equal(t, []CardAction{ActionRateHelper}, view.Cards[1].Actions)
	assert.Equal(t, helpdeskclient.RequestFilter{}, api.filters[len(api.filters)-1], "own requests ignore the listing filter")
}

func TestDashboard_MyRequestsEmptyAndError(t *testing.T) {
	d, _ := newTestDashboard(&mockRequestAPI{requests: sampleRequests()}, &model.SessionUser{ID: 99}, &mockUI{})
	view, err := d.ShowTab(context.Background(), TabMyRequests)
	require.NoError(t, err)
	assert.Equal(t, MsgNoOwnRequests, view.Empty)

	d, _ = newTestDashboard(&mockRequestAPI{listErr: errNetwork}, &model.SessionUser{ID: 10}, &mockUI{})
	view, err = d.ShowTab(context.Background(), TabMyRequests)
	require.NoError(t, err)
	assert.Equal(t, MsgOwnRequestsLoadFailed, view.Error)
}

func TestDashboard_MyRequestsWithoutSession(t *testing.T) {
	api := &mockRequestAPI{requests: sampleRequests()}
	d, nav := newTestDashboard(api, nil, &mockUI{})

	view, err := d.ShowTab(context.Background(), TabMyRequests)
	require.NoError(t, err)
	assert.Empty(t, view.Cards)
	assert.Equal(t, 1, nav.loginRedirects)
	assert.Empty(t, api.filters)
}

func TestDashboard_MyAssignmentsPlaceholder(t *testing.T) {
	api := &mockRequestAPI{}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, &mockUI{})

	view, err := d.ShowTab(context.Background(), TabMyAssignments)
	require.NoError(t, err)
	assert.Equal(t, MsgAssignmentsComingSoon, view.Empty)
	assert.Empty(t, api.filters)
}

func TestDashboard_ShowTabUnknown(t *testing.T) {
	d, _ := newTestDashboard(&mockRequestAPI{}, &model.SessionUser{ID: 10}, &mockUI{})
	_, err := d.ShowTab(context.Background(), Tab("settings"))
	assert.Error(t, err)
	assert.Equal(t, TabAvailable, d.ActiveTab())
}

func TestOwnRequests_PreservesOrderAndInput(t *testing.T) {
	all := sampleRequests()
	mine := OwnRequests(all, 10)

	assert.Len(t, mine, 3)
	assert.Len(t, all, 4, "input must not be modified")
	assert.NotNil(t, OwnRequests(nil, 10))
}

func TestDashboard_AcceptUsesSessionIdentityAndRefetches(t *testing.T) {
	api := &mockRequestAPI{
		requests:   sampleRequests(),
		actionResp: &helpdeskclient.ActionResponse{Success: true},
	}
	ui := &mockUI{confirmAnswer: true}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 20}, ui)

	_, err := d.Init(context.Background())
	require.NoError(t, err)
	fetchesBefore := len(api.filters)

	outcome := d.Accept(context.Background(), 1)

	assert.Equal(t, OutcomeSucceeded, outcome)
	assert.Equal(t, []acceptCall{{1, 20}}, api.accepts)
	assert.Equal(t, fetchesBefore+1, len(api.filters), "success should re-fetch the active tab")
}

func TestDashboard_AcceptFailureDoesNotRefetch(t *testing.T) {
	api := &mockRequestAPI{
		requests:   sampleRequests(),
		actionResp: &helpdeskclient.ActionResponse{Success: false, Error: "Request is no longer open"},
	}
	ui := &mockUI{confirmAnswer: true}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 20}, ui)

	_, err := d.Init(context.Background())
	require.NoError(t, err)
	fetchesBefore := len(api.filters)

	outcome := d.Accept(context.Background(), 1)

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, "Request is no longer open", ui.lastAlert())
	assert.Equal(t, fetchesBefore, len(api.filters))
}

func TestDashboard_AcceptWithoutSession(t *testing.T) {
	api := &mockRequestAPI{}
	d, nav := newTestDashboard(api, nil, &mockUI{confirmAnswer: true})

	assert.Equal(t, OutcomeUnauthenticated, d.Accept(context.Background(), 1))
	assert.Equal(t, 1, nav.loginRedirects)
	assert.Empty(t, api.accepts)
}

func TestDashboard_Complete(t *testing.T) {
	api := &mockRequestAPI{requests: sampleRequests(), actionResp: &helpdeskclient.ActionResponse{Success: true}}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 20}, &mockUI{confirmAnswer: true})

	assert.Equal(t, OutcomeSucceeded, d.Complete(context.Background(), 2))
	assert.Equal(t, []acceptCall{{2, 20}}, api.completes)
}

func TestDashboard_EditAndDeleteAreAcknowledgeOnly(t *testing.T) {
	ui := &mockUI{confirmAnswer: true}
	api := &mockRequestAPI{}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, ui)

	d.EditRequest(1)
	d.DeleteRequest(1)

	assert.Equal(t, []string{"Edit functionality coming soon...", "Delete functionality coming soon..."}, ui.alerts)
	assert.Equal(t, []string{"Are you sure you want to delete this request?"}, ui.confirms)
	assert.Empty(t, api.filters)
	assert.Empty(t, api.accepts)

	ui.confirmAnswer = false
	ui.alerts = nil
	d.DeleteRequest(1)
	assert.Empty(t, ui.alerts)
}

func TestDashboard_SubmitReviewRequiresRating(t *testing.T) {
	api := &mockRequestAPI{}
	ui := &mockUI{}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, ui)

	d.OpenReview(3, 20)
	outcome := d.SubmitReview(context.Background())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, "Please select a rating", ui.lastAlert())
	assert.Empty(t, api.reviews)
	assert.NotNil(t, d.Review(), "form stays open")
}

func TestDashboard_SubmitReviewWithoutForm(t *testing.T) {
	ui := &mockUI{}
	d, _ := newTestDashboard(&mockRequestAPI{}, &model.SessionUser{ID: 10}, ui)

	assert.Equal(t, OutcomeFailed, d.SubmitReview(context.Background()))
	assert.Equal(t, "No review in progress", ui.lastAlert())
}

func TestDashboard_SubmitReviewRejectsMissingVolunteer(t *testing.T) {
	api := &mockRequestAPI{}
	ui := &mockUI{}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, ui)

	form := d.OpenReview(3, 0)
	form.Stars.Click(4)

	assert.Equal(t, OutcomeFailed, d.SubmitReview(context.Background()))
	assert.Contains(t, ui.lastAlert(), "Invalid review")
	assert.Empty(t, api.reviews)
}

func TestDashboard_SubmitReviewSuccess(t *testing.T) {
	api := &mockRequestAPI{
		requests:   sampleRequests(),
		reviewResp: &helpdeskclient.ActionResponse{Success: true},
	}
	ui := &mockUI{}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, ui)

	form := d.OpenReview(3, 20)
	form.Stars.Hover(2)
	form.Stars.Click(5)
	form.Stars.Leave()
	form.Comment = "Brilliant help"

	outcome := d.SubmitReview(context.Background())

	assert.Equal(t, OutcomeSucceeded, outcome)
	require.Len(t, api.reviews, 1)
	assert.Equal(t, int64(3), api.reviews[0].requestID)
	assert.Equal(t, model.ReviewSubmission{VolunteerID: 20, Rating: 5, Comment: "Brilliant help"}, api.reviews[0].review)
	assert.Equal(t, "Review submitted successfully!", ui.lastAlert())
	assert.Nil(t, d.Review(), "form closes on success")
	assert.Equal(t, TabMyRequests, d.ActiveTab())
	assert.Equal(t, []int64{1, 3, 4}, cardIDs(d.View()))
}

func TestDashboard_SubmitReviewFailures(t *testing.T) {
	api := &mockRequestAPI{reviewResp: &helpdeskclient.ActionResponse{Success: false, Error: "Already reviewed"}}
	ui := &mockUI{}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, ui)

	d.OpenReview(3, 20).Stars.Click(3)
	assert.Equal(t, OutcomeFailed, d.SubmitReview(context.Background()))
	assert.Equal(t, "Already reviewed", ui.lastAlert())
	assert.NotNil(t, d.Review())

	api.reviewResp = &helpdeskclient.ActionResponse{Success: false}
	assert.Equal(t, OutcomeFailed, d.SubmitReview(context.Background()))
	assert.Equal(t, "Failed to submit review", ui.lastAlert())

	api.reviewErr = errNetwork
	assert.Equal(t, OutcomeFailed, d.SubmitReview(context.Background()))
	assert.Equal(t, "An error occurred. Please try again.", ui.lastAlert())
}

func TestDashboard_UseFilterAppliesToInitialLoad(t *testing.T) {
	api := &mockRequestAPI{requests: sampleRequests()}
	d, _ := newTestDashboard(api, &model.SessionUser{ID: 10}, &mockUI{})

	filter := helpdeskclient.RequestFilter{Search: "bike"}
	d.UseFilter(filter)
	assert.Empty(t, api.filters, "UseFilter does not fetch")

	_, err := d.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []helpdeskclient.RequestFilter{filter}, api.filters)
}
