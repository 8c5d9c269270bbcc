package services

import "github.com/yathwxk/Community-Assistance-Platform/pkg/core/model"

const maxRating = 5

// StarRating is the five-star picker used in the review form. Clicking
// commits a value, hovering previews one, leaving restores the committed shade.
type StarRating struct {
	value int
	hover int
}

// Click commits rating n. Values outside 1..5 are ignored.
func (s *StarRating) Click(n int) {
	if n < 1 || n > maxRating {
		return
	}
	s.value = n
}

// Hover previews rating n without committing it
func (s *StarRating) Hover(n int) {
	if n < 1 || n > maxRating {
		return
	}
	s.hover = n
}

// Leave ends a hover preview
func (s *StarRating) Leave() {
	s.hover = 0
}

// Value is the committed rating, 0 when none has been chosen
func (s *StarRating) Value() int {
	return s.value
}

// Shade is the number of stars currently highlighted
func (s *StarRating) Shade() int {
	if s.hover > 0 {
		return s.hover
	}
	return s.value
}

// Reset clears both committed and previewed values
func (s *StarRating) Reset() {
	s.value = 0
	s.hover = 0
}

// ReviewForm holds an in-progress review of the volunteer who helped with a request
type ReviewForm struct {
	RequestID   int64
	VolunteerID int64
	Stars       StarRating
	Comment     string
}

// Submission builds the review body from the form
func (f *ReviewForm) Submission() model.ReviewSubmission {
	return model.ReviewSubmission{
		VolunteerID: f.VolunteerID,
		Rating:      f.Stars.Value(),
		Comment:     f.Comment,
	}
}
