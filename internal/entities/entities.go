// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Role ...
type Role string

// User roles.
const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

// Category ...
type Category string

// Post and poll categories.
const (
	CategoryOrganization Category = "Organization"
	CategoryEmployee     Category = "Employee"
)

// GrievanceStatus ...
type GrievanceStatus string

// Grievance statuses. All transitions between them are allowed.
const (
	GrievancePending    GrievanceStatus = "Pending"
	GrievanceInProgress GrievanceStatus = "In Progress"
	GrievanceResolved   GrievanceStatus = "Resolved"
)

// User is a member of the roster. Identity is selected, not authenticated.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Role      Role   `json:"role"`
	Birthdate string `json:"birthdate,omitempty"`
}

// Employee is a directory record used for targeted delivery groupings.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	AvatarURL  string `json:"avatarUrl"`
}

// Author is a denormalized user reference stamped on created content.
type Author struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// Link ...
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Reply is a second-level comment. Replies do not nest further.
type Reply struct {
	ID        string    `json:"id"`
	User      Author    `json:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Comment ...
type Comment struct {
	ID        string    `json:"id"`
	User      Author    `json:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Replies   []Reply   `json:"replies,omitempty"`
}

// Post is a bulletin board entry.
//
// Invariant: Likes == len(LikedBy) and Viewers == len(ViewedBy); a user id
// appears at most once in either set.
type Post struct {
	ID           string     `json:"id"`
	Author       Author     `json:"author"`
	Category     Category   `json:"category"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Link         *Link      `json:"link,omitempty"`
	Likes        int        `json:"likes"`
	LikedBy      []string   `json:"likedBy"`
	Viewers      int        `json:"viewers"`
	ViewedBy     []string   `json:"viewedBy"`
	Comments     []Comment  `json:"comments"`
	CreatedAt    time.Time  `json:"createdAt"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

// PollOption ...
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll ...
//
// Invariant: a user id in VotedBy has cast exactly one vote across the poll's
// options; the first vote is final.
type Poll struct {
	ID        string       `json:"id"`
	Question  string       `json:"question"`
	Options   []PollOption `json:"options"`
	Author    Author       `json:"author"`
	Category  Category     `json:"category"`
	CreatedAt time.Time    `json:"createdAt"`
	EndDate   *time.Time   `json:"endDate,omitempty"`
	VotedBy   []string     `json:"votedBy"`
}

// GrievanceComment is stamped with the grievance status at time of writing
// when it accompanies a status change.
type GrievanceComment struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	Author    Author          `json:"author"`
	CreatedAt time.Time       `json:"createdAt"`
	Status    GrievanceStatus `json:"status,omitempty"`
}

// Grievance is visible in full only to admins and the owning employee.
type Grievance struct {
	ID                string             `json:"id"`
	EmployeeID        string             `json:"employeeId"`
	EmployeeName      string             `json:"employeeName"`
	EmployeeAvatarURL string             `json:"employeeAvatarUrl"`
	Subject           string             `json:"subject"`
	Description       string             `json:"description"`
	Status            GrievanceStatus    `json:"status"`
	CreatedAt         time.Time          `json:"createdAt"`
	ResolvedAt        *time.Time         `json:"resolvedAt,omitempty"`
	Comments          []GrievanceComment `json:"comments,omitempty"`
}

// Suggestion ...
type Suggestion struct {
	ID                string    `json:"id"`
	EmployeeID        string    `json:"employeeId"`
	EmployeeName      string    `json:"employeeName"`
	EmployeeAvatarURL string    `json:"employeeAvatarUrl"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"createdAt"`
	Upvotes           int       `json:"upvotes"`
	UpvotedBy         []string  `json:"upvotedBy"`
	Comments          []Comment `json:"comments"`
}

// Party is a user reference on an appreciation.
type Party struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// Appreciation ...
type Appreciation struct {
	ID        string    `json:"id"`
	From      Party     `json:"fromUser"`
	To        Party     `json:"toUser"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
}
