// Package view renders controller state as terminal text.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/format"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/services"
)

// Renderer writes view fragments to an output stream
type Renderer struct {
	w     io.Writer
	color bool
	loc   *time.Location
	now   func() time.Time
}

// New creates a renderer. With color disabled no ANSI escapes are written.
func New(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color, loc: time.Local, now: time.Now}
}

// WithClock fixes the location and clock used for dates
func (r *Renderer) WithClock(loc *time.Location, now func() time.Time) *Renderer {
	r.loc = loc
	r.now = now
	return r
}

func (r *Renderer) paint(color, s string) string {
	if !r.color || color == "" {
		return s
	}
	return color + s + format.ColorReset
}

func (r *Renderer) printf(f string, args ...any) {
	fmt.Fprintf(r.w, f, args...)
}

var tabLabels = map[services.Tab]string{
	services.TabAvailable:     "Available Requests",
	services.TabMyRequests:    "My Requests",
	services.TabMyAssignments: "My Assignments",
}

var actionLabels = map[services.CardAction]string{
	services.ActionAccept:     "Accept Request",
	services.ActionEdit:       "Edit",
	services.ActionDelete:     "Delete",
	services.ActionRateHelper: "Rate Helper",
}

var statusColors = map[model.Status]string{
	model.StatusOpen:      format.ColorGreen,
	model.StatusAccepted:  format.ColorCyan,
	model.StatusCompleted: format.ColorDim,
	model.StatusCancelled: format.ColorRed,
}

// User renders the logged-in member
func (r *Renderer) User(user *model.SessionUser) {
	r.printf("%s %s", format.RoleIcon(user.Role), r.paint(format.ColorBold, user.Name))
	if user.Email != "" {
		r.printf(" <%s>", user.Email)
	}
	r.printf("\n  %s · %s %s\n", format.FormatRole(user.Role), format.GenerateStars(user.Rating), format.FormatRating(user.Rating))
}

// Tabs renders the tab bar with active highlighted
func (r *Renderer) Tabs(active services.Tab) {
	parts := make([]string, 0, len(services.Tabs))
	for _, tab := range services.Tabs {
		label := tabLabels[tab]
		if tab == active {
			parts = append(parts, r.paint(format.ColorBold, "["+label+"]"))
		} else {
			parts = append(parts, r.paint(format.ColorDim, " "+label+" "))
		}
	}
	r.printf("%s\n\n", strings.Join(parts, "  "))
}

// TabView renders a dashboard tab: its cards, or the empty or error state
func (r *Renderer) TabView(view services.TabView) {
	r.Tabs(view.Tab)

	switch {
	case view.Error != "":
		r.Error(view.Error)
	case len(view.Cards) == 0:
		r.Empty(view.Empty)
	default:
		for _, card := range view.Cards {
			r.RequestCard(card)
		}
	}
}

// RequestCard renders one request with its available actions
func (r *Renderer) RequestCard(card services.RequestCard) {
	req := card.Request

	r.printf("#%d %s  %s  %s\n",
		req.ID,
		r.paint(format.ColorBold, req.Title),
		r.paint(statusColors[req.Status], format.FormatStatus(req.Status)),
		format.FormatUrgency(req.Urgency),
	)
	if req.Description != "" {
		r.printf("  %s\n", req.Description)
	}
	r.printf("  %s\n", format.FormatCategory(req.Category))
	if !card.Own {
		r.printf("  Posted by %s (%s★)\n", req.User.Name, format.FormatRating(req.User.Rating))
	}
	r.printf("  %s\n", r.paint(format.ColorDim, "Posted "+format.FormatDateIn(req.CreatedAt, r.loc)))

	if len(card.Actions) > 0 {
		labels := make([]string, 0, len(card.Actions))
		for _, a := range card.Actions {
			labels = append(labels, fmt.Sprintf("[%s: %s]", actionLabels[a], actionCommand(a, req.ID)))
		}
		r.printf("  %s\n", strings.Join(labels, " "))
	}
	r.printf("\n")
}

func actionCommand(action services.CardAction, requestID int64) string {
	switch action {
	case services.ActionRateHelper:
		return fmt.Sprintf("review %d --volunteer <id> --rating <1-5>", requestID)
	default:
		return fmt.Sprintf("%s %d", action, requestID)
	}
}

// Empty renders an empty-state message
func (r *Renderer) Empty(message string) {
	r.printf("%s\n", r.paint(format.ColorDim, message))
}

// Error renders an error-state message
func (r *Renderer) Error(message string) {
	r.printf("%s\n", r.paint(format.ColorRed, "✗ "+message))
}

// Success renders a confirmation line
func (r *Renderer) Success(message string) {
	r.printf("%s\n", r.paint(format.ColorGreen, "✓ "+message))
}

// Stats renders the community aggregates
func (r *Renderer) Stats(stats services.CommunityStats) {
	r.printf("Members: %d   Active helpers: %d   Average rating: %s   New this month: %d\n\n",
		stats.TotalMembers,
		stats.ActiveHelpers,
		format.FormatRating(stats.AverageRating),
		stats.NewMembers,
	)
}

// Roster renders the community stats and the filtered member list
func (r *Renderer) Roster(view services.RosterView) {
	if view.Stats != nil {
		r.Stats(*view.Stats)
	}

	switch {
	case view.Error != "":
		r.Error(view.Error)
	case len(view.Members) == 0:
		r.Empty(view.Empty)
	default:
		for _, m := range view.Members {
			r.MemberCard(m)
		}
	}
}

// MemberCard renders one roster entry
func (r *Renderer) MemberCard(m model.Member) {
	r.printf("%s %s  #%d  %s\n",
		format.RoleIcon(m.Role),
		r.paint(format.ColorBold, m.Name),
		m.ID,
		format.FormatRole(m.Role),
	)
	r.printf("  %s %s   %d requests · %d reviews\n",
		format.GenerateStars(m.Rating),
		format.FormatRating(m.Rating),
		m.TotalRequests,
		m.TotalReviews,
	)
	r.printf("  %s   joined %s\n",
		r.paint(format.ActivityColor(m.ActivityLevel), m.ActivityLevel),
		format.FormatJoinDate(m.JoinedAt, r.now().In(r.loc)),
	)
	if m.RecentActivity != "" {
		r.printf("  %s\n", r.paint(format.ColorDim, m.RecentActivity))
	}
	r.printf("\n")
}

// MemberDetail renders a member profile with recent requests and reviews
func (r *Renderer) MemberDetail(m *model.Member) {
	r.printf("%s %s\n", format.RoleIcon(m.Role), r.paint(format.ColorBold, m.Name))
	r.printf("  %s · %s\n", format.FormatRole(m.Role), r.paint(format.ActivityColor(m.ActivityLevel), m.ActivityLevel))
	if m.Email != "" {
		r.printf("  %s\n", m.Email)
	}
	r.printf("  %s %s   %d requests · %d reviews\n",
		format.GenerateStars(m.Rating),
		format.FormatRating(m.Rating),
		m.TotalRequests,
		m.TotalReviews,
	)
	r.printf("  Joined %s\n\n", format.FormatJoinDate(m.JoinedAt, r.now().In(r.loc)))

	r.printf("%s\n", r.paint(format.ColorBold, "Recent Requests"))
	if len(m.RecentRequests) == 0 {
		r.printf("  %s\n", r.paint(format.ColorDim, "No recent requests"))
	}
	for _, req := range m.RecentRequests {
		r.printf("  #%d %s  %s  %s  %s\n",
			req.ID,
			req.Title,
			format.FormatCategory(req.Category),
			r.paint(statusColors[req.Status], format.FormatStatus(req.Status)),
			r.paint(format.ColorDim, format.FormatDateIn(req.CreatedAt, r.loc)),
		)
	}

	r.printf("\n%s\n", r.paint(format.ColorBold, "Recent Reviews"))
	if len(m.RecentReviews) == 0 {
		r.printf("  %s\n", r.paint(format.ColorDim, "No reviews yet"))
	}
	for _, rev := range m.RecentReviews {
		r.printf("  %s  %s\n", format.ReviewStars(rev.Rating), rev.RequestTitle)
		if rev.Comment != "" {
			r.printf("    %q\n", rev.Comment)
		}
		r.printf("    %s\n", r.paint(format.ColorDim, format.FormatDateIn(rev.CreatedAt, r.loc)))
	}
}

// StarPicker renders the review star widget, highlighting the current shade
func (r *Renderer) StarPicker(stars *services.StarRating) {
	shade := stars.Shade()
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		if i <= shade {
			b.WriteString(r.paint(format.ColorYellow, "★"))
		} else {
			b.WriteString("☆")
		}
	}
	r.printf("%s (%d/5)\n", b.String(), stars.Value())
}

// ReviewForm renders an in-progress review
func (r *Renderer) ReviewForm(form *services.ReviewForm) {
	r.printf("Review for request #%d (volunteer #%d)\n", form.RequestID, form.VolunteerID)
	r.printf("  Rating: ")
	r.StarPicker(&form.Stars)
	if form.Comment != "" {
		r.printf("  Comment: %s\n", form.Comment)
	}
}
