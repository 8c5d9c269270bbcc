package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"
)

func TestStarRating_ClickHoverLeave(t *testing.T) {
	var s StarRating
	assert.Equal(t, 0, s.Value())
	assert.Equal(t, 0, s.Shade())

	s.Hover(4)
	assert.Equal(t, 4, s.Shade(), "hover previews")
	assert.Equal(t, 0, s.Value(), "hover does not commit")

	s.Leave()
	assert.Equal(t, 0, s.Shade(), "leave restores committed shade")

	s.Click(3)
	s.Hover(5)
	assert.Equal(t, 5, s.Shade())
	s.Leave()
	assert.Equal(t, 3, s.Shade())
	assert.Equal(t, 3, s.Value())
}

func TestStarRating_IgnoresOutOfRange(t *testing.T) {
	var s StarRating
	s.Click(2)
	s.Click(0)
	s.Click(6)
	s.Hover(-1)
	assert.Equal(t, 2, s.Value())
	assert.Equal(t, 2, s.Shade())
}

func TestStarRating_Reset(t *testing.T) {
	var s StarRating
	s.Click(4)
	s.Hover(2)
	s.Reset()
	assert.Equal(t, 0, s.Value())
	assert.Equal(t, 0, s.Shade())
}

func TestReviewForm_Submission(t *testing.T) {
	form := ReviewForm{RequestID: 1, VolunteerID: 2, Comment: "Thanks"}
	form.Stars.Click(4)

	assert.Equal(t, model.ReviewSubmission{VolunteerID: 2, Rating: 4, Comment: "Thanks"}, form.Submission())
}
