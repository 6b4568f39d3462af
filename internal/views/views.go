// Package views contains derived read views over entity collections:
// search filtering, feed ordering and featured selection.
package views

import (
	"sort"
	"strings"
	"time"

	"github.com/orgablast/sembconnect/internal/entities"
)

// PostStatus ...
type PostStatus string

// Post visibility statuses. Lists are not filtered by status for any role;
// the status is exposed so clients can render a badge.
const (
	PostActive    PostStatus = "active"
	PostScheduled PostStatus = "scheduled"
	PostExpired   PostStatus = "expired"
)

// StatusOfPost annotates a post relative to now. A post is scheduled while
// ScheduledFor is in the future and expired once EndDate is past.
func StatusOfPost(p entities.Post, now time.Time) PostStatus {
	if p.ScheduledFor != nil && p.ScheduledFor.After(now) {
		return PostScheduled
	}
	if p.EndDate != nil && p.EndDate.Before(now) {
		return PostExpired
	}

	return PostActive
}

// EffectiveTime is the timestamp feeds order by: ScheduledFor when set,
// CreatedAt otherwise.
func EffectiveTime(p entities.Post) time.Time {
	if p.ScheduledFor != nil {
		return *p.ScheduledFor
	}

	return p.CreatedAt
}

func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}

	return false
}

// FilterPosts applies a case-insensitive substring search over title, content
// and author name, composed with an optional category filter.
func FilterPosts(posts []entities.Post, query string, category *entities.Category) []entities.Post {
	out := make([]entities.Post, 0, len(posts))
	for _, p := range posts {
		if category != nil && p.Category != *category {
			continue
		}
		if !matches(query, p.Title, p.Content, p.Author.Name) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// SortPosts returns a new slice ordered by effective timestamp descending.
func SortPosts(posts []entities.Post) []entities.Post {
	out := make([]entities.Post, len(posts))
	copy(out, posts)

	sort.SliceStable(out, func(i, j int) bool {
		return EffectiveTime(out[i]).After(EffectiveTime(out[j]))
	})

	return out
}

// SortPostsByCreatedAt returns a new slice ordered by creation time descending.
func SortPostsByCreatedAt(posts []entities.Post) []entities.Post {
	out := make([]entities.Post, len(posts))
	copy(out, posts)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

const featuredCount = 3

// FeaturedPosts selects up to three posts covering distinct superlatives:
// the most recent, the most commented and the most liked. When superlatives
// coincide the selection is backfilled from the recency order, skipping posts
// already chosen, so three posts are returned whenever three exist.
func FeaturedPosts(posts []entities.Post) []entities.Post {
	if len(posts) == 0 {
		return nil
	}

	recent := SortPostsByCreatedAt(posts)

	mostCommented := recent[0]
	mostLiked := recent[0]
	for _, p := range recent[1:] {
		if len(p.Comments) > len(mostCommented.Comments) {
			mostCommented = p
		}
		if p.Likes > mostLiked.Likes {
			mostLiked = p
		}
	}

	out := make([]entities.Post, 0, featuredCount)
	seen := make(map[string]struct{}, featuredCount)

	add := func(p entities.Post) {
		if _, ok := seen[p.ID]; ok || len(out) == featuredCount {
			return
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	add(recent[0])
	add(mostCommented)
	add(mostLiked)

	for _, p := range recent {
		if len(out) == featuredCount {
			break
		}
		add(p)
	}

	return out
}

// FilterPolls searches question and author name, composed with an optional
// category filter.
func FilterPolls(polls []entities.Poll, query string, category *entities.Category) []entities.Poll {
	out := make([]entities.Poll, 0, len(polls))
	for _, p := range polls {
		if category != nil && p.Category != *category {
			continue
		}
		if !matches(query, p.Question, p.Author.Name) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// SortPolls returns a new slice ordered by creation time descending.
func SortPolls(polls []entities.Poll) []entities.Poll {
	out := make([]entities.Poll, len(polls))
	copy(out, polls)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// FilterGrievances searches subject, employee name and status.
func FilterGrievances(grievances []entities.Grievance, query string) []entities.Grievance {
	out := make([]entities.Grievance, 0, len(grievances))
	for _, g := range grievances {
		if !matches(query, g.Subject, g.EmployeeName, string(g.Status)) {
			continue
		}
		out = append(out, g)
	}

	return out
}

// SortGrievances returns a new slice ordered by creation time descending.
func SortGrievances(grievances []entities.Grievance) []entities.Grievance {
	out := make([]entities.Grievance, len(grievances))
	copy(out, grievances)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// FilterSuggestions searches title, description and employee name.
func FilterSuggestions(suggestions []entities.Suggestion, query string) []entities.Suggestion {
	out := make([]entities.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if !matches(query, s.Title, s.Description, s.EmployeeName) {
			continue
		}
		out = append(out, s)
	}

	return out
}

// SortSuggestions returns a new slice ordered by upvotes descending.
func SortSuggestions(suggestions []entities.Suggestion) []entities.Suggestion {
	out := make([]entities.Suggestion, len(suggestions))
	copy(out, suggestions)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Upvotes > out[j].Upvotes
	})

	return out
}

// FilterAppreciations searches message and both party names.
func FilterAppreciations(appreciations []entities.Appreciation, query string) []entities.Appreciation {
	out := make([]entities.Appreciation, 0, len(appreciations))
	for _, a := range appreciations {
		if !matches(query, a.Message, a.From.Name, a.To.Name) {
			continue
		}
		out = append(out, a)
	}

	return out
}

// SortAppreciations returns a new slice ordered by creation time descending.
func SortAppreciations(appreciations []entities.Appreciation) []entities.Appreciation {
	out := make([]entities.Appreciation, len(appreciations))
	copy(out, appreciations)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
