package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

// Tab identifies one of the dashboard's request collections
type Tab string

const (
	TabAvailable     Tab = "available"
	TabMyRequests    Tab = "my-requests"
	TabMyAssignments Tab = "my-assignments"
)

// Tabs lists the dashboard tabs in display order
var Tabs = []Tab{TabAvailable, TabMyRequests, TabMyAssignments}

// ParseTab validates a tab name
func ParseTab(name string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q (expected one of available, my-requests, my-assignments)", name)
}

// Dashboard messages
const (
	MsgNoAvailableRequests   = "No requests available at the moment."
	MsgAvailableLoadFailed   = "Unable to load requests. Please try again later."
	MsgNoOwnRequests         = "You haven't posted any requests yet. Post your first request with 'post'."
	MsgOwnRequestsLoadFailed = "Unable to load your requests. Please try again later."
	MsgAssignmentsComingSoon = "Assignment tracking coming soon..."
)

// CardAction is an affordance offered on a request card
type CardAction string

const (
	ActionAccept     CardAction = "accept"
	ActionEdit       CardAction = "edit"
	ActionDelete     CardAction = "delete"
	ActionRateHelper CardAction = "rate-helper"
)

// RequestCard is the view model for one request
type RequestCard struct {
	Request model.Request
	Own     bool
	Actions []CardAction
}

// NewRequestCard builds a card for a request in the public listing.
// Accepting is only offered on open requests.
func NewRequestCard(req model.Request, showActions bool) RequestCard {
	card := RequestCard{Request: req}
	if showActions && req.Status == model.StatusOpen {
		card.Actions = []CardAction{ActionAccept}
	}
	return card
}

// NewOwnRequestCard builds a card for a request posted by the logged-in member
func NewOwnRequestCard(req model.Request) RequestCard {
	card := RequestCard{Request: req, Own: true}
	switch req.Status {
	case model.StatusOpen:
		card.Actions = []CardAction{ActionEdit, ActionDelete}
	case model.StatusCompleted:
		card.Actions = []CardAction{ActionRateHelper}
	}
	return card
}

// TabView is the rendered state of one tab. Exactly one of Cards, Empty or
// Error is meaningful.
type TabView struct {
	Tab   Tab
	Cards []RequestCard
	Empty string
	Error string
}

// DashboardClient is the API surface the dashboard needs
type DashboardClient interface {
	RequestActionClient
	ListRequests(ctx context.Context, filter helpdeskclient.RequestFilter) ([]model.Request, error)
	SubmitReview(ctx context.Context, requestID int64, review model.ReviewSubmission) (*helpdeskclient.ActionResponse, error)
}

// Dashboard is the tabbed view over available requests, the member's own
// requests and their assignments. All view state lives on the instance.
type Dashboard struct {
	api      DashboardClient
	sessions SessionReader
	nav      Navigator
	ui       Prompter
	actions  *Actions
	logger   *zap.Logger

	user   *model.SessionUser
	active Tab
	filter helpdeskclient.RequestFilter
	view   TabView
	review *ReviewForm
}

// NewDashboard creates a dashboard controller
func NewDashboard(api DashboardClient, sessions SessionReader, nav Navigator, ui Prompter, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		api:      api,
		sessions: sessions,
		nav:      nav,
		ui:       ui,
		actions:  NewActions(api, ui, logger),
		logger:   logger,
		active:   TabAvailable,
	}
}

// Init gates on the session and loads the available tab
func (d *Dashboard) Init(ctx context.Context) (TabView, error) {
	user, ok := CheckAuth(ctx, d.sessions, d.nav)
	if !ok {
		return TabView{}, ErrNotAuthenticated
	}
	d.user = user

	return d.ShowTab(ctx, TabAvailable)
}

// User returns the member the dashboard was initialised for
func (d *Dashboard) User() *model.SessionUser {
	return d.user
}

// ActiveTab returns the tab currently shown
func (d *Dashboard) ActiveTab() Tab {
	return d.active
}

// View returns the most recently loaded view
func (d *Dashboard) View() TabView {
	return d.view
}

// Filter returns the current available-tab filter
func (d *Dashboard) Filter() helpdeskclient.RequestFilter {
	return d.filter
}

// ShowTab activates tab and fetches its contents
func (d *Dashboard) ShowTab(ctx context.Context, tab Tab) (TabView, error) {
	if _, err := ParseTab(string(tab)); err != nil {
		return TabView{}, err
	}

	d.active = tab
	return d.Reload(ctx), nil
}

// Reload re-fetches the active tab
func (d *Dashboard) Reload(ctx context.Context) TabView {
	switch d.active {
	case TabMyRequests:
		d.view = d.loadMyRequests(ctx)
	case TabMyAssignments:
		d.view = d.loadMyAssignments()
	default:
		d.view = d.loadAvailable(ctx)
	}
	return d.view
}

// UseFilter sets the available-tab filter without fetching, so the first
// load after Init is already filtered
func (d *Dashboard) UseFilter(filter helpdeskclient.RequestFilter) {
	d.filter = filter
}

// SetFilter changes the available-tab filter and reloads that tab
func (d *Dashboard) SetFilter(ctx context.Context, filter helpdeskclient.RequestFilter) TabView {
	d.filter = filter
	d.active = TabAvailable
	return d.Reload(ctx)
}

func (d *Dashboard) loadAvailable(ctx context.Context) TabView {
	view := TabView{Tab: TabAvailable}

	requests, err := d.api.ListRequests(ctx, d.filter)
	if err != nil {
		d.logger.Error("Error loading available requests", zap.Error(err))
		view.Error = MsgAvailableLoadFailed
		return view
	}

	if len(requests) == 0 {
		view.Empty = MsgNoAvailableRequests
		return view
	}

	view.Cards = make([]RequestCard, 0, len(requests))
	for _, req := range requests {
		view.Cards = append(view.Cards, NewRequestCard(req, true))
	}
	return view
}

func (d *Dashboard) loadMyRequests(ctx context.Context) TabView {
	view := TabView{Tab: TabMyRequests}

	user, ok := d.sessions.CurrentUser(ctx)
	if !ok {
		d.nav.ToLogin()
		return view
	}

	requests, err := d.api.ListRequests(ctx, helpdeskclient.RequestFilter{})
	if err != nil {
		d.logger.Error("Error loading my requests", zap.Error(err))
		view.Error = MsgOwnRequestsLoadFailed
		return view
	}

	mine := OwnRequests(requests, user.ID)
	if len(mine) == 0 {
		view.Empty = MsgNoOwnRequests
		return view
	}

	view.Cards = make([]RequestCard, 0, len(mine))
	for _, req := range mine {
		view.Cards = append(view.Cards, NewOwnRequestCard(req))
	}
	return view
}

func (d *Dashboard) loadMyAssignments() TabView {
	// No backend endpoint lists a volunteer's assignments yet
	return TabView{Tab: TabMyAssignments, Empty: MsgAssignmentsComingSoon}
}

// OwnRequests returns the requests posted by userID, preserving order
func OwnRequests(requests []model.Request, userID int64) []model.Request {
	mine := make([]model.Request, 0)
	for _, req := range requests {
		if req.User.ID == userID {
			mine = append(mine, req)
		}
	}
	return mine
}

func (d *Dashboard) refresh(ctx context.Context) error {
	view := d.Reload(ctx)
	if view.Error != "" {
		return errors.New(view.Error)
	}
	return nil
}

// Accept accepts a request as the logged-in member and reloads the active tab
func (d *Dashboard) Accept(ctx context.Context, requestID int64) ActionOutcome {
	user, ok := CheckAuth(ctx, d.sessions, d.nav)
	if !ok {
		return OutcomeUnauthenticated
	}
	return d.actions.AcceptRequest(ctx, requestID, user.ID, d.refresh)
}

// Complete marks a request completed as the logged-in member and reloads the active tab
func (d *Dashboard) Complete(ctx context.Context, requestID int64) ActionOutcome {
	return d.actions.CompleteRequest(ctx, requestID, d.sessions, d.nav, d.refresh)
}

// EditRequest acknowledges an edit; editing is not available yet
func (d *Dashboard) EditRequest(requestID int64) {
	d.logger.Debug("Edit requested", zap.Int64("request_id", requestID))
	d.ui.Alert("Edit functionality coming soon...")
}

// DeleteRequest acknowledges a confirmed delete; deleting is not available yet
func (d *Dashboard) DeleteRequest(requestID int64) {
	if d.ui.Confirm("Are you sure you want to delete this request?") {
		d.logger.Debug("Delete requested", zap.Int64("request_id", requestID))
		d.ui.Alert("Delete functionality coming soon...")
	}
}

// OpenReview starts a review of volunteerID's help with requestID
func (d *Dashboard) OpenReview(requestID, volunteerID int64) *ReviewForm {
	d.review = &ReviewForm{RequestID: requestID, VolunteerID: volunteerID}
	return d.review
}

// Review returns the open review form, or nil
func (d *Dashboard) Review() *ReviewForm {
	return d.review
}

// CloseReview discards the open review form
func (d *Dashboard) CloseReview() {
	d.review = nil
}

// SubmitReview posts the open review. On success the form is closed and
// the member's requests are reloaded.
func (d *Dashboard) SubmitReview(ctx context.Context) ActionOutcome {
	form := d.review
	if form == nil {
		d.ui.Alert("No review in progress")
		return OutcomeFailed
	}

	if form.Stars.Value() == 0 {
		d.ui.Alert("Please select a rating")
		return OutcomeFailed
	}

	submission := form.Submission()
	if err := validate.Struct(submission); err != nil {
		d.logger.Warn("Invalid review", zap.Error(err))
		d.ui.Alert(fmt.Sprintf("Invalid review: %v", err))
		return OutcomeFailed
	}

	resp, err := d.api.SubmitReview(ctx, form.RequestID, submission)
	if err != nil {
		d.logger.Error("Submit review error", zap.Int64("request_id", form.RequestID), zap.Error(err))
		d.ui.Alert(genericErrorMessage)
		return OutcomeFailed
	}

	if !resp.Success {
		d.ui.Alert(resp.ErrorOr("Failed to submit review"))
		return OutcomeFailed
	}

	d.ui.Alert("Review submitted successfully!")
	d.CloseReview()
	d.active = TabMyRequests
	d.Reload(ctx)
	return OutcomeSucceeded
}
