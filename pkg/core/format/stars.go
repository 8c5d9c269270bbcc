package format

import (
	"math"
	"strings"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

const (
	maxStars  = 5
	fullStar  = "★"
	halfStar  = "⯪"
	emptyStar = "☆"
)

// Stars is the glyph breakdown of a rating out of five
type Stars struct {
	Full  int
	Half  bool
	Empty int
}

// StarCounts splits a rating into full, half and empty stars.
// Ratings are clamped to [0, 5].
func StarCounts(rating float64) Stars {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}

	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5
	shown := full
	if half {
		shown++
	}

	return Stars{Full: full, Half: half, Empty: maxStars - shown}
}

// GenerateStars renders a rating as exactly five star glyphs
func GenerateStars(rating float64) string {
	s := StarCounts(rating)

	var b strings.Builder
	b.WriteString(strings.Repeat(fullStar, s.Full))
	if s.Half {
		b.WriteString(halfStar)
	}
	b.WriteString(strings.Repeat(emptyStar, s.Empty))
	return b.String()
}

// ReviewStars renders an integer review score as that many full stars
func ReviewStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	return strings.Repeat(fullStar, rating)
}

// ANSI colors for activity badges
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorCyan   = "\033[36m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorDim    = "\033[2m"
	ColorBold   = "\033[1m"
)

// ActivityColor returns the badge color for an activity level
func ActivityColor(activityLevel string) string {
	switch activityLevel {
	case model.ActivityVeryActive:
		return ColorGreen
	case model.ActivityActive:
		return ColorCyan
	case model.ActivityModerate:
		return ColorYellow
	default:
		return ColorDim
	}
}
