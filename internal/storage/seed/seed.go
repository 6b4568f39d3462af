// Package seed contains the initial roster and collections an empty store is
// populated with. The legacy mock API serves these arrays verbatim.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/storage"
)

// base pins the seed timeline so the dataset is stable across restarts.
var base = time.Date(2025, time.November, 5, 7, 25, 7, 0, time.UTC)

// Users returns the selectable roster.
func Users() []entities.User {
	return []entities.User{
		{ID: "user-1", Name: "Alex Hartman", AvatarURL: "https://picsum.photos/seed/avatar1/100", Role: entities.RoleAdmin, Birthdate: "1985-03-12"},
		{ID: "user-2", Name: "Yogesh Patel", AvatarURL: "https://picsum.photos/seed/avatar2/100", Role: entities.RoleEmployee, Birthdate: "1992-11-05"},
	}
}

// Employees returns the directory used for delivery groupings.
func Employees() []entities.Employee {
	return []entities.Employee{
		{ID: "emp-1", Name: "Charlie Green", Email: "charlie@orgablast.com", Role: "Software Engineer", Department: "Technology", AvatarURL: "https://picsum.photos/seed/avatar3/100"},
		{ID: "emp-2", Name: "Diana Prince", Email: "diana@orgablast.com", Role: "Product Manager", Department: "Product", AvatarURL: "https://picsum.photos/seed/avatar4/100"},
		{ID: "emp-3", Name: "Bruce Wayne", Email: "bruce@orgablast.com", Role: "CEO", Department: "Executive", AvatarURL: "https://picsum.photos/seed/avatar5/100"},
		{ID: "emp-4", Name: "Clark Kent", Email: "clark@orgablast.com", Role: "Marketing Lead", Department: "Marketing", AvatarURL: "https://picsum.photos/seed/avatar6/100"},
		{ID: "emp-5", Name: "Barry Allen", Email: "barry@orgablast.com", Role: "QA Engineer", Department: "Technology", AvatarURL: "https://picsum.photos/seed/avatar1/100"},
		{ID: "emp-6", Name: "Hal Jordan", Email: "hal@orgablast.com", Role: "Sales Director", Department: "Sales", AvatarURL: "https://picsum.photos/seed/avatar2/100"},
	}
}

func ptr(t time.Time) *time.Time { return &t }

// Posts returns the initial bulletins, newest first.
func Posts() []entities.Post {
	alex := entities.Author{Name: "Alex Hartman", AvatarURL: "https://picsum.photos/seed/avatar1/100"}
	bruce := entities.Author{Name: "Bruce Wayne", AvatarURL: "https://picsum.photos/seed/avatar5/100"}

	return []entities.Post{
		{
			ID:       "bulletin-1",
			Author:   alex,
			Category: entities.CategoryOrganization,
			Title:    "Announcing Our Annual Company Retreat 2024!",
			Content:  "Get ready for an unforgettable experience! This year, we are heading to the mountains for a weekend of team-building, workshops, and fun. More details to follow next week. Make sure to clear your calendars for the first weekend of October.",
			ImageURL: "https://picsum.photos/seed/postImage1/800/400",
			Likes:    1,
			LikedBy:  []string{"user-2"},
			Viewers:  2,
			ViewedBy: []string{"user-1", "user-2"},
			Comments: []entities.Comment{
				{
					ID:        "comment-1",
					User:      entities.Author{Name: "Yogesh Patel", AvatarURL: "https://picsum.photos/seed/avatar2/100"},
					Text:      "So excited for this!",
					Timestamp: base.Add(-5 * time.Minute),
				},
			},
			CreatedAt: base.Add(-2 * time.Hour),
			EndDate:   ptr(base.Add(30 * 24 * time.Hour)),
		},
		{
			ID:        "bulletin-2",
			Author:    alex,
			Category:  entities.CategoryEmployee,
			Title:     "Project Phoenix: Official Launch",
			Content:   "We are thrilled to announce the successful launch of Project Phoenix. This is a huge milestone for our team and the company. A big thank you to everyone in the Technology and Product departments for their hard work and dedication.",
			ImageURL:  "https://picsum.photos/seed/postImage2/800/400",
			Likes:     2,
			LikedBy:   []string{"user-1", "user-2"},
			Viewers:   2,
			ViewedBy:  []string{"user-1", "user-2"},
			Comments:  []entities.Comment{},
			CreatedAt: base.Add(-24 * time.Hour),
			EndDate:   ptr(base.Add(14 * 24 * time.Hour)),
		},
		{
			ID:       "bulletin-3",
			Author:   bruce,
			Category: entities.CategoryOrganization,
			Title:    "Q3 Financial Results & Town Hall Meeting",
			Content:  "Join us for the upcoming town hall where we will discuss our strong Q3 financial results and outline our strategic priorities for Q4. The meeting is scheduled for this Friday at 10:00 AM PST.",
			Link: &entities.Link{
				URL:  "https://meeting.example.com/q3-townhall",
				Text: "Join Town Hall Meeting",
			},
			Likes:        1,
			LikedBy:      []string{"user-2"},
			Viewers:      2,
			ViewedBy:     []string{"user-1", "user-2"},
			Comments:     []entities.Comment{},
			CreatedAt:    base.Add(-72 * time.Hour),
			ScheduledFor: ptr(base.Add(2 * 24 * time.Hour)),
			EndDate:      ptr(base.Add(5 * 24 * time.Hour)),
		},
	}
}

// Polls returns the initial polls, newest first.
func Polls() []entities.Poll {
	return []entities.Poll{
		{
			ID:       "poll-1",
			Question: "Which destination should we pick for the company retreat?",
			Options: []entities.PollOption{
				{ID: "poll-1-option-1", Text: "Mountain lodge", Votes: 2},
				{ID: "poll-1-option-2", Text: "Beach resort", Votes: 1},
				{ID: "poll-1-option-3", Text: "City getaway", Votes: 0},
			},
			Author:    entities.Author{Name: "Alex Hartman", AvatarURL: "https://picsum.photos/seed/avatar1/100"},
			Category:  entities.CategoryOrganization,
			CreatedAt: base.Add(-6 * time.Hour),
			EndDate:   ptr(base.Add(7 * 24 * time.Hour)),
			VotedBy:   []string{"user-1", "user-2", "emp-1"},
		},
	}
}

// Grievances returns the initial grievances, newest first.
func Grievances() []entities.Grievance {
	return []entities.Grievance{
		{
			ID:                "grievance-1",
			EmployeeID:        "user-2",
			EmployeeName:      "Yogesh Patel",
			EmployeeAvatarURL: "https://picsum.photos/seed/avatar2/100",
			Subject:           "Issue with new workstation",
			Description:       "The new workstation provided is missing a secondary monitor, which is affecting my productivity. I had requested one during the setup process.",
			Status:            entities.GrievancePending,
			CreatedAt:         base.Add(-48 * time.Hour),
		},
		{
			ID:                "grievance-2",
			EmployeeID:        "emp-1",
			EmployeeName:      "Charlie Green",
			EmployeeAvatarURL: "https://picsum.photos/seed/avatar3/100",
			Subject:           "Unresolved IT Ticket #12345",
			Description:       "My IT ticket regarding VPN access issues has been open for over a week without any resolution. I am unable to access critical development servers.",
			Status:            entities.GrievanceInProgress,
			CreatedAt:         base.Add(-8 * 24 * time.Hour),
		},
		{
			ID:                "grievance-3",
			EmployeeID:        "user-2",
			EmployeeName:      "Yogesh Patel",
			EmployeeAvatarURL: "https://picsum.photos/seed/avatar2/100",
			Subject:           "Expense Report Reimbursement Delay",
			Description:       "My expense report for the Q2 conference has not been reimbursed yet. It was submitted over a month ago.",
			Status:            entities.GrievanceResolved,
			CreatedAt:         base.Add(-45 * 24 * time.Hour),
			ResolvedAt:        ptr(base.Add(-3 * 24 * time.Hour)),
		},
	}
}

// Suggestions returns the initial suggestions.
func Suggestions() []entities.Suggestion {
	return []entities.Suggestion{
		{
			ID:                "suggestion-1",
			EmployeeID:        "user-2",
			EmployeeName:      "Yogesh Patel",
			EmployeeAvatarURL: "https://picsum.photos/seed/avatar2/100",
			Title:             "Introduce no-meeting Wednesdays",
			Description:       "A weekly focus day without recurring meetings would give engineering and product longer stretches of uninterrupted work.",
			CreatedAt:         base.Add(-30 * time.Hour),
			Upvotes:           2,
			UpvotedBy:         []string{"user-1", "emp-2"},
			Comments:          []entities.Comment{},
		},
	}
}

// Appreciations returns the initial appreciations.
func Appreciations() []entities.Appreciation {
	return []entities.Appreciation{
		{
			ID:        "appreciation-1",
			From:      entities.Party{ID: "user-1", Name: "Alex Hartman", AvatarURL: "https://picsum.photos/seed/avatar1/100"},
			To:        entities.Party{ID: "user-2", Name: "Yogesh Patel", AvatarURL: "https://picsum.photos/seed/avatar2/100"},
			Message:   "Huge thanks for jumping on the release hotfix over the weekend. The launch would have slipped without you.",
			CreatedAt: base.Add(-20 * time.Hour),
			Likes:     1,
			LikedBy:   []string{"emp-1"},
		},
	}
}

// Apply populates s with the seed dataset. Collections are created in
// reverse so that the seed's newest-first order survives prepending creates.
func Apply(ctx context.Context, s storage.Storage) error {
	for _, u := range Users() {
		if err := s.SetUser(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
		}
	}

	for _, e := range Employees() {
		if err := s.SetEmployee(ctx, e); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", e.ID, err)
		}
	}

	posts := Posts()
	for i := len(posts) - 1; i >= 0; i-- {
		if err := s.CreatePost(ctx, posts[i]); err != nil {
			return fmt.Errorf("failed to seed post %s: %w", posts[i].ID, err)
		}
	}

	polls := Polls()
	for i := len(polls) - 1; i >= 0; i-- {
		if err := s.CreatePoll(ctx, polls[i]); err != nil {
			return fmt.Errorf("failed to seed poll %s: %w", polls[i].ID, err)
		}
	}

	grievances := Grievances()
	for i := len(grievances) - 1; i >= 0; i-- {
		if err := s.CreateGrievance(ctx, grievances[i]); err != nil {
			return fmt.Errorf("failed to seed grievance %s: %w", grievances[i].ID, err)
		}
	}

	suggestions := Suggestions()
	for i := len(suggestions) - 1; i >= 0; i-- {
		if err := s.CreateSuggestion(ctx, suggestions[i]); err != nil {
			return fmt.Errorf("failed to seed suggestion %s: %w", suggestions[i].ID, err)
		}
	}

	appreciations := Appreciations()
	for i := len(appreciations) - 1; i >= 0; i-- {
		if err := s.CreateAppreciation(ctx, appreciations[i]); err != nil {
			return fmt.Errorf("failed to seed appreciation %s: %w", appreciations[i].ID, err)
		}
	}

	return nil
}
