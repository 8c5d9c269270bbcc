package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/format"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/utils/debounce"
)

// Community messages
const (
	MsgNoMembers             = "No community members found."
	MsgNoMatchingMembers     = "No members match your search criteria."
	MsgMembersLoadFailed     = "Unable to load community members. Please try again later."
	MsgMemberDetailsFailed   = "Unable to load member details. Please try again."
	MsgContactComingSoon     = "Contact feature coming soon! You can connect with members through help requests for now."
	DefaultCommunityDebounce = 300 * time.Millisecond
)

// MemberClient is the API surface the community roster needs
type MemberClient interface {
	ListMembers(ctx context.Context) (*helpdeskclient.MembersResponse, error)
	GetMember(ctx context.Context, memberID int64) (*model.Member, error)
}

// MemberFilter selects roster members. Zero-valued fields match everything.
type MemberFilter struct {
	Role          model.Role
	ActivityLevel string
	MinRating     *float64
	Search        string // case-insensitive name substring
}

// FilterMembers returns the members matching f in their original order.
// The input slice is never modified.
func FilterMembers(members []model.Member, f MemberFilter) []model.Member {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	matched := make([]model.Member, 0, len(members))
	for _, m := range members {
		if f.Role != "" && m.Role != f.Role {
			continue
		}
		if f.ActivityLevel != "" && m.ActivityLevel != f.ActivityLevel {
			continue
		}
		if f.MinRating != nil && m.Rating < *f.MinRating {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(m.Name), term) {
			continue
		}
		matched = append(matched, m)
	}
	return matched
}

// CommunityStats are the roster aggregates shown above the member list
type CommunityStats struct {
	TotalMembers  int
	ActiveHelpers int
	AverageRating float64 // rounded to one decimal
	NewMembers    int     // joined within the last month
}

// ComputeStats aggregates the full roster relative to now
func ComputeStats(members []model.Member, now time.Time) CommunityStats {
	stats := CommunityStats{TotalMembers: len(members)}
	if len(members) == 0 {
		return stats
	}

	monthAgo := now.AddDate(0, -1, 0)
	var ratingSum float64
	for _, m := range members {
		if m.ActivityLevel == model.ActivityVeryActive || m.ActivityLevel == model.ActivityActive {
			stats.ActiveHelpers++
		}
		ratingSum += m.Rating

		joined, err := format.ParseTimestamp(m.JoinedAt, now.Location())
		if err == nil && joined.After(monthAgo) {
			stats.NewMembers++
		}
	}

	stats.AverageRating = math.Round(ratingSum/float64(len(members))*10) / 10
	return stats
}

// RosterView is the rendered state of the roster. Members is shown when
// non-empty, otherwise Empty or Error explains why.
type RosterView struct {
	Members []model.Member
	Stats   *CommunityStats
	Empty   string
	Error   string
}

// Community is the searchable member roster. The roster is fetched once and
// filtered locally; the search box is debounced. State is guarded by a mutex
// because debounced filter passes run on the timer's goroutine.
type Community struct {
	api       MemberClient
	ui        Prompter
	logger    *zap.Logger
	debouncer *debounce.Debouncer
	onRender  func(RosterView)
	now       func() time.Time

	mu       sync.Mutex
	all      []model.Member
	loaded   bool
	stats    *CommunityStats
	criteria MemberFilter
	view     RosterView
}

// NewCommunity creates a roster controller. onRender receives the view after
// each debounced search pass and may be nil.
func NewCommunity(api MemberClient, ui Prompter, logger *zap.Logger, searchDelay time.Duration, onRender func(RosterView)) *Community {
	if searchDelay <= 0 {
		searchDelay = DefaultCommunityDebounce
	}
	return &Community{
		api:       api,
		ui:        ui,
		logger:    logger,
		debouncer: debounce.New(searchDelay),
		onRender:  onRender,
		now:       time.Now,
	}
}

// Load fetches the roster and recomputes the stats
func (c *Community) Load(ctx context.Context) RosterView {
	resp, err := c.api.ListMembers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Error("Error loading community members", zap.Error(err))
		c.view = RosterView{Error: MsgMembersLoadFailed, Stats: c.stats}
		return c.view
	}

	if !resp.Success || resp.Members == nil {
		c.logger.Warn("Community roster unavailable", zap.String("error", resp.Error))
		c.view = RosterView{Empty: MsgNoMembers, Stats: c.stats}
		return c.view
	}

	c.all = resp.Members
	c.loaded = true
	stats := ComputeStats(c.all, c.now())
	c.stats = &stats

	c.logger.Debug("Community roster loaded", zap.Int("members", len(c.all)))
	return c.applyFilterLocked()
}

// Refresh re-fetches the roster
func (c *Community) Refresh(ctx context.Context) RosterView {
	return c.Load(ctx)
}

// View returns the most recently rendered roster
func (c *Community) View() RosterView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Criteria returns the current filter values
func (c *Community) Criteria() MemberFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// SetCriteria replaces every filter value and re-filters immediately
func (c *Community) SetCriteria(f MemberFilter) RosterView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = f
	return c.applyFilterLocked()
}

// SetRole filters by role; an empty role matches all
func (c *Community) SetRole(role model.Role) RosterView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Role = role
	return c.applyFilterLocked()
}

// SetActivity filters by activity level; an empty level matches all
func (c *Community) SetActivity(level string) RosterView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.ActivityLevel = level
	return c.applyFilterLocked()
}

// SetMinRating filters by minimum rating; nil matches all
func (c *Community) SetMinRating(min *float64) RosterView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.MinRating = min
	return c.applyFilterLocked()
}

// Search records the search term and schedules a filter pass once input
// has been quiet for the debounce period
func (c *Community) Search(term string) {
	c.mu.Lock()
	c.criteria.Search = term
	c.mu.Unlock()

	c.debouncer.Trigger(func() {
		c.mu.Lock()
		view := c.applyFilterLocked()
		c.mu.Unlock()

		if c.onRender != nil {
			c.onRender(view)
		}
	})
}

// ClearSearch empties the search term and re-filters immediately
func (c *Community) ClearSearch() RosterView {
	c.debouncer.Cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.Search = ""
	return c.applyFilterLocked()
}

// Close drops any pending search pass
func (c *Community) Close() {
	c.debouncer.Cancel()
}

func (c *Community) applyFilterLocked() RosterView {
	if !c.loaded {
		return c.view
	}

	view := RosterView{
		Members: FilterMembers(c.all, c.criteria),
		Stats:   c.stats,
	}
	if len(view.Members) == 0 {
		view.Empty = MsgNoMatchingMembers
	}
	c.view = view
	return view
}

// ViewMember fetches one member's profile. Failures are shown to the user
// and reported as false.
func (c *Community) ViewMember(ctx context.Context, memberID int64) (*model.Member, bool) {
	member, err := c.api.GetMember(ctx, memberID)
	if err != nil {
		var apiErr *helpdeskclient.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			c.ui.Alert(apiErr.Message)
			return nil, false
		}
		c.logger.Error("Error loading member details", zap.Int64("member_id", memberID), zap.Error(err))
		c.ui.Alert(MsgMemberDetailsFailed)
		return nil, false
	}
	return member, true
}

// Contact acknowledges a contact request; messaging is not available yet
func (c *Community) Contact(memberID int64) {
	c.logger.Debug("Contact requested", zap.Int64("member_id", memberID))
	c.ui.Alert(MsgContactComingSoon)
}
