package format

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

func TestFormatCategory_KnownValues(t *testing.T) {
	for _, c := range model.Categories {
		label := FormatCategory(c)
		assert.NotEmpty(t, label)
		assert.NotEqual(t, string(c), label, "category %s should have a label", c)
	}
	assert.Equal(t, "🌱 Gardening", FormatCategory(model.CategoryGardening))
}

func TestFormatters_UnknownPassThrough(t *testing.T) {
	assert.Equal(t, "PLUMBING", FormatCategory("PLUMBING"))
	assert.Equal(t, "EXTREME", FormatUrgency("EXTREME"))
	assert.Equal(t, "ARCHIVED", FormatStatus("ARCHIVED"))
	assert.Equal(t, "ADMIN", FormatRole("ADMIN"))
	assert.Equal(t, "", FormatStatus(""))
}

func TestFormatUrgencyAndStatus(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"low", FormatUrgency(model.UrgencyLow), "🟢 Low"},
		{"medium", FormatUrgency(model.UrgencyMedium), "🟡 Medium"},
		{"high", FormatUrgency(model.UrgencyHigh), "🔴 High"},
		{"open", FormatStatus(model.StatusOpen), "Open"},
		{"accepted", FormatStatus(model.StatusAccepted), "Accepted"},
		{"completed", FormatStatus(model.StatusCompleted), "Completed"},
		{"cancelled", FormatStatus(model.StatusCancelled), "Cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestFormatDateIn(t *testing.T) {
	assert.Equal(t, "1/15/2024 02:30 PM", FormatDateIn("2024-01-15T14:30:00", time.UTC))
	assert.Equal(t, "1/15/2024 02:30 PM", FormatDateIn("2024-01-15T14:30:00.123456", time.UTC))
	assert.Equal(t, "3/2/2025 09:05 AM", FormatDateIn("2025-03-02T09:05:00Z", time.UTC))
}

func TestFormatDateIn_ConvertsZone(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "1/15/2024 04:30 PM", FormatDateIn("2024-01-15T14:30:00Z", loc))
}

func TestFormatDateIn_Unparseable(t *testing.T) {
	assert.Equal(t, "not a date", FormatDateIn("not a date", time.UTC))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2024-06-01T08:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), ts)

	_, err = ParseTimestamp("yesterday", time.UTC)
	assert.Error(t, err)
}

func TestFormatJoinDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		joined   time.Time
		expected string
	}{
		{"three days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"part day rounds up", now.Add(-36 * time.Hour), "2 days ago"},
		{"ten days", now.Add(-10 * 24 * time.Hour), "2 weeks ago"},
		{"fourteen days", now.Add(-14 * 24 * time.Hour), "2 weeks ago"},
		{"forty days", now.Add(-40 * 24 * time.Hour), "2 months ago"},
		{"four hundred days", now.Add(-400 * 24 * time.Hour), "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatJoinDate(tt.joined.Format("2006-01-02T15:04:05"), now))
		})
	}
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.0", FormatRating(4))
	assert.Equal(t, "3.7", FormatRating(3.66))
}

func TestStarCounts(t *testing.T) {
	tests := []struct {
		rating   float64
		expected Stars
	}{
		{0, Stars{Full: 0, Half: false, Empty: 5}},
		{0.4, Stars{Full: 0, Half: false, Empty: 5}},
		{0.5, Stars{Full: 0, Half: true, Empty: 4}},
		{2.49, Stars{Full: 2, Half: false, Empty: 3}},
		{3.5, Stars{Full: 3, Half: true, Empty: 1}},
		{4.7, Stars{Full: 4, Half: true, Empty: 0}},
		{5, Stars{Full: 5, Half: false, Empty: 0}},
		{7, Stars{Full: 5, Half: false, Empty: 0}},
		{-1, Stars{Full: 0, Half: false, Empty: 5}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StarCounts(tt.rating), "rating %v", tt.rating)
	}
}

func TestGenerateStars_AlwaysFiveGlyphs(t *testing.T) {
	for r := 0.0; r <= 5.0; r += 0.05 {
		stars := GenerateStars(r)
		assert.Equal(t, 5, utf8.RuneCountInString(stars), "rating %v rendered %q", r, stars)
	}
	assert.Equal(t, "★★★⯪☆", GenerateStars(3.5))
	assert.Equal(t, "★★★★★", GenerateStars(5))
}

func TestActivityColor(t *testing.T) {
	assert.Equal(t, ColorGreen, ActivityColor(model.ActivityVeryActive))
	assert.Equal(t, ColorCyan, ActivityColor(model.ActivityActive))
	assert.Equal(t, ColorYellow, ActivityColor(model.ActivityModerate))
	assert.Equal(t, ColorDim, ActivityColor(model.ActivityNewMember))
	assert.Equal(t, ColorDim, ActivityColor("Dormant"))
}

func TestReviewStars(t *testing.T) {
	assert.Equal(t, "★★★", ReviewStars(3))
	assert.Equal(t, "", ReviewStars(-2))
}
