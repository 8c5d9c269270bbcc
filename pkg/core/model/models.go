package model

type Role string

const (
	RoleVolunteer Role = "VOLUNTEER"
	RoleResident  Role = "RESIDENT"
)

func (r Role) IsValid() bool {
	return r == RoleVolunteer || r == RoleResident
}

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusAccepted  Status = "ACCEPTED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

type Category string

const (
	CategoryTools          Category = "TOOLS"
	CategoryTutoring       Category = "TUTORING"
	CategoryErrands        Category = "ERRANDS"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryHousehold      Category = "HOUSEHOLD"
	CategoryGardening      Category = "GARDENING"
	CategoryTechnology     Category = "TECHNOLOGY"
	CategoryOther          Category = "OTHER"
)

// Categories lists every request category in display order
var Categories = []Category{
	CategoryTools,
	CategoryTutoring,
	CategoryErrands,
	CategoryTransportation,
	CategoryHousehold,
	CategoryGardening,
	CategoryTechnology,
	CategoryOther,
}

// Activity levels as computed by the backend from request and review counts
const (
	ActivityVeryActive = "Very Active"
	ActivityActive     = "Active"
	ActivityModerate   = "Moderate"
	ActivityNewMember  = "New Member"
)

// SessionUser is the locally cached identity of the logged-in member
type SessionUser struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email,omitempty"`
	Role   Role    `json:"role,omitempty"`
	Rating float64 `json:"rating"`
}

// RequestUser is the poster summary embedded in a request
type RequestUser struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Request represents a posted help request
type Request struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Urgency     Urgency     `json:"urgency"`
	Status      Status      `json:"status"`
	CreatedAt   string      `json:"createdAt"` // ISO timestamp, zone optional
	User        RequestUser `json:"user"`
}

// MemberRequest is a request summary shown in a member profile
type MemberRequest struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	Status    Status   `json:"status"`
	CreatedAt string   `json:"createdAt"`
}

// MemberReview is a review received by a member
type MemberReview struct {
	ID           int64  `json:"id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	RequestTitle string `json:"requestTitle"`
	CreatedAt    string `json:"createdAt"`
}

// Member represents a community member as listed on the roster.
// RecentRequests and RecentReviews are only populated by the detail endpoint.
type Member struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Role           Role            `json:"role"`
	Rating         float64         `json:"rating"`
	TotalRequests  int             `json:"totalRequests"`
	TotalReviews   int             `json:"totalReviews"`
	ActivityLevel  string          `json:"activityLevel"`
	RecentActivity string          `json:"recentActivity"`
	JoinedAt       string          `json:"joinedAt"`
	RecentRequests []MemberRequest `json:"recentRequests,omitempty"`
	RecentReviews  []MemberReview  `json:"recentReviews,omitempty"`
}

// ReviewSubmission is the body posted when rating a helper
type ReviewSubmission struct {
	VolunteerID int64  `json:"volunteerId" validate:"required,gt=0"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment"`
}

// NewRequest is the body posted when creating a help request
type NewRequest struct {
	UserID      int64    `json:"userId" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Category    Category `json:"category" validate:"required,oneof=TOOLS TUTORING ERRANDS TRANSPORTATION HOUSEHOLD GARDENING TECHNOLOGY OTHER"`
	Urgency     Urgency  `json:"urgency" validate:"required,oneof=LOW MEDIUM HIGH"`
}
