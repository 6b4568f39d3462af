package entities

import (
	"time"
)

// Entity operations are pure: the receiver is taken by value and every slice
// that would be modified is cloned first, so a previously obtained copy of an
// entity is never changed retroactively.

// toggleMember removes id from the set if present, otherwise appends it.
// The returned slice never shares backing storage with the input.
func toggleMember(set []string, id string) ([]string, bool) {
	for i, v := range set {
		if v == id {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			out = append(out, set[i+1:]...)
			return out, false
		}
	}

	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	out = append(out, id)

	return out, true
}

func isMember(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}

	return false
}

// WithToggledLike adds actorID to the liked set, or removes it if already
// present. Likes stays equal to the set size.
func (p Post) WithToggledLike(actorID string) Post {
	p.LikedBy, _ = toggleMember(p.LikedBy, actorID)
	p.Likes = len(p.LikedBy)

	return p
}

// WithView records the first view by actorID; repeated views do not change
// the entity.
func (p Post) WithView(actorID string) Post {
	if isMember(p.ViewedBy, actorID) {
		return p
	}

	viewed := make([]string, 0, len(p.ViewedBy)+1)
	viewed = append(viewed, p.ViewedBy...)
	p.ViewedBy = append(viewed, actorID)
	p.Viewers++

	return p
}

// WithComment appends c to the post's comment list.
func (p Post) WithComment(c Comment) Post {
	comments := make([]Comment, 0, len(p.Comments)+1)
	comments = append(comments, p.Comments...)
	p.Comments = append(comments, c)

	return p
}

// WithReply appends r to the replies of the comment with commentID.
// The post is returned unchanged if the comment is not found.
func (p Post) WithReply(commentID string, r Reply) Post {
	p.Comments = withReply(p.Comments, commentID, r)
	return p
}

func withReply(comments []Comment, commentID string, r Reply) []Comment {
	for i, c := range comments {
		if c.ID != commentID {
			continue
		}

		out := make([]Comment, len(comments))
		copy(out, comments)

		replies := make([]Reply, 0, len(c.Replies)+1)
		replies = append(replies, c.Replies...)
		out[i].Replies = append(replies, r)

		return out
	}

	return comments
}

// WithVote counts a vote for optionID by actorID. The first vote is final:
// the poll is returned unchanged if the actor already voted or the option
// does not exist.
func (p Poll) WithVote(optionID, actorID string) Poll {
	if isMember(p.VotedBy, actorID) {
		return p
	}

	idx := -1
	for i, o := range p.Options {
		if o.ID == optionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p
	}

	options := make([]PollOption, len(p.Options))
	copy(options, p.Options)
	options[idx].Votes++
	p.Options = options

	voted := make([]string, 0, len(p.VotedBy)+1)
	voted = append(voted, p.VotedBy...)
	p.VotedBy = append(voted, actorID)

	return p
}

// WithStatus moves the grievance to status at the given time. Any transition
// is allowed. A non-nil comment is appended stamped with the new status.
// ResolvedAt is set when the new status is Resolved and is kept untouched
// otherwise, so reopening a resolved grievance does not clear it.
func (g Grievance) WithStatus(status GrievanceStatus, comment *GrievanceComment, now time.Time) Grievance {
	g.Status = status

	if status == GrievanceResolved {
		t := now
		g.ResolvedAt = &t
	}

	if comment != nil {
		c := *comment
		c.Status = status

		comments := make([]GrievanceComment, 0, len(g.Comments)+1)
		comments = append(comments, g.Comments...)
		g.Comments = append(comments, c)
	}

	return g
}

// WithComment appends c to the grievance discussion without changing status.
func (g Grievance) WithComment(c GrievanceComment) Grievance {
	comments := make([]GrievanceComment, 0, len(g.Comments)+1)
	comments = append(comments, g.Comments...)
	g.Comments = append(comments, c)

	return g
}

// WithToggledUpvote adds actorID to the upvoted set, or removes it if
// already present.
func (s Suggestion) WithToggledUpvote(actorID string) Suggestion {
	s.UpvotedBy, _ = toggleMember(s.UpvotedBy, actorID)
	s.Upvotes = len(s.UpvotedBy)

	return s
}

// WithComment appends c to the suggestion's comment list.
func (s Suggestion) WithComment(c Comment) Suggestion {
	comments := make([]Comment, 0, len(s.Comments)+1)
	comments = append(comments, s.Comments...)
	s.Comments = append(comments, c)

	return s
}

// WithReply appends r to the replies of the comment with commentID.
func (s Suggestion) WithReply(commentID string, r Reply) Suggestion {
	s.Comments = withReply(s.Comments, commentID, r)
	return s
}

// WithToggledLike adds actorID to the liked set, or removes it if already
// present.
func (a Appreciation) WithToggledLike(actorID string) Appreciation {
	a.LikedBy, _ = toggleMember(a.LikedBy, actorID)
	a.Likes = len(a.LikedBy)

	return a
}
