package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

func parseID(name, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got: %s", name, value)
	}
	return id, nil
}

func parseCategory(value string) (model.Category, error) {
	if value == "" {
		return "", nil
	}
	c := model.Category(strings.ToUpper(value))
	for _, known := range model.Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

func parseUrgency(value string) (model.Urgency, error) {
	if value == "" {
		return "", nil
	}
	u := model.Urgency(strings.ToUpper(value))
	switch u {
	case model.UrgencyLow, model.UrgencyMedium, model.UrgencyHigh:
		return u, nil
	}
	return "", fmt.Errorf("unknown urgency %q (expected LOW, MEDIUM or HIGH)", value)
}

func parseRole(value string) (model.Role, error) {
	if value == "" {
		return "", nil
	}
	r := model.Role(strings.ToUpper(value))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q (expected VOLUNTEER or RESIDENT)", value)
	}
	return r, nil
}

var activityLevels = []string{
	model.ActivityVeryActive,
	model.ActivityActive,
	model.ActivityModerate,
	model.ActivityNewMember,
}

// parseActivity accepts a level case-insensitively, with hyphens or underscores for spaces
func parseActivity(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	normalised := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(value))
	for _, level := range activityLevels {
		if strings.EqualFold(level, normalised) {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown activity level %q", value)
}

func parseMinRating(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	rating, err := strconv.ParseFloat(value, 64)
	if err != nil || rating < 0 || rating > 5 {
		return nil, fmt.Errorf("minimum rating must be between 0 and 5, got: %s", value)
	}
	return &rating, nil
}
