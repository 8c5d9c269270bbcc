// Package format maps backend codes and timestamps to display text.
// Lookups are total over the known enum values and pass unknown codes
// through unchanged.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

var categoryLabels = map[model.Category]string{
	model.CategoryTools:          "🔧 Tools & Equipment",
	model.CategoryTutoring:       "📚 Tutoring & Education",
	model.CategoryErrands:        "🛒 Errands & Shopping",
	model.CategoryTransportation: "🚗 Transportation",
	model.CategoryHousehold:      "🏠 Household Help",
	model.CategoryGardening:      "🌱 Gardening",
	model.CategoryTechnology:     "💻 Technology Help",
	model.CategoryOther:          "📋 Other",
}

var urgencyLabels = map[model.Urgency]string{
	model.UrgencyLow:    "🟢 Low",
	model.UrgencyMedium: "🟡 Medium",
	model.UrgencyHigh:   "🔴 High",
}

var statusLabels = map[model.Status]string{
	model.StatusOpen:      "Open",
	model.StatusAccepted:  "Accepted",
	model.StatusCompleted: "Completed",
	model.StatusCancelled: "Cancelled",
}

// FormatCategory returns the display label for a request category
func FormatCategory(category model.Category) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return string(category)
}

// FormatUrgency returns the display label for a request urgency
func FormatUrgency(urgency model.Urgency) string {
	if label, ok := urgencyLabels[urgency]; ok {
		return label
	}
	return string(urgency)
}

// FormatStatus returns the display label for a request status
func FormatStatus(status model.Status) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// FormatRole returns the short role label used on member cards
func FormatRole(role model.Role) string {
	switch role {
	case model.RoleVolunteer:
		return "Volunteer"
	case model.RoleResident:
		return "Resident"
	}
	return string(role)
}

// RoleIcon returns the avatar glyph for a member role.
// Anything that is not a volunteer is shown as a resident.
func RoleIcon(role model.Role) string {
	if role == model.RoleVolunteer {
		return "🤝"
	}
	return "🏠"
}

// timestampLayouts are tried in order. The backend serialises
// LocalDateTime without a zone, so zone-less layouts are parsed in the
// caller's location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp, interpreting zone-less values in loc
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// FormatDate renders a timestamp as date plus hour:minute in local time
func FormatDate(value string) string {
	return FormatDateIn(value, time.Local)
}

// FormatDateIn renders a timestamp as date plus hour:minute in loc.
// Unparseable input is returned unchanged.
func FormatDateIn(value string, loc *time.Location) string {
	t, err := ParseTimestamp(value, loc)
	if err != nil {
		return value
	}
	return t.In(loc).Format("1/2/2006 03:04 PM")
}

// FormatJoinDate renders how long ago a member joined, relative to now
func FormatJoinDate(value string, now time.Time) string {
	joined, err := ParseTimestamp(value, now.Location())
	if err != nil {
		return value
	}

	diff := now.Sub(joined)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", ceilDiv(days, 7))
	case days < 365:
		return fmt.Sprintf("%d months ago", ceilDiv(days, 30))
	default:
		return fmt.Sprintf("%d years ago", ceilDiv(days, 365))
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// FormatRating renders a rating with one decimal place
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}
