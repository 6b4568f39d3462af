package client

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// OptimisticFeed is a local view of the notifications feed that applies a
// pending insert before the server responds. On success the pending record is
// replaced with the server's echo; on failure it is rolled back.
type OptimisticFeed struct {
	c *Client

	mu    sync.Mutex
	posts []Notification
}

// NewOptimisticFeed ...
func NewOptimisticFeed(c *Client) *OptimisticFeed {
	return &OptimisticFeed{c: c}
}

// Refresh replaces the local feed with the server's.
func (f *OptimisticFeed) Refresh(ctx context.Context) error {
	posts, err := f.c.Notifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh feed: %w", err)
	}

	f.mu.Lock()
	f.posts = posts
	f.mu.Unlock()

	return nil
}

// Notifications returns a snapshot of the feed, pending inserts included.
func (f *OptimisticFeed) Notifications() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.posts))
	copy(out, f.posts)

	return out
}

// Create inserts a pending record immediately, then reconciles it with the
// server's response.
func (f *OptimisticFeed) Create(ctx context.Context, p CreateNotificationParams) (*Notification, error) {
	pending := Notification{
		ID:        fmt.Sprintf("pending-%d", time.Now().UnixNano()),
		Author:    p.Author,
		Category:  p.Category,
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		Link:      p.Link,
		LikedBy:   []string{},
		ViewedBy:  []string{},
		Comments:  []Comment{},
		CreatedAt: time.Now(),
	}

	f.mu.Lock()
	f.posts = append([]Notification{pending}, f.posts...)
	f.mu.Unlock()

	created, err := f.c.CreateNotification(ctx, p)
	if err != nil {
		f.remove(pending.ID)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	f.mu.Lock()
	for i := range f.posts {
		if f.posts[i].ID == pending.ID {
			f.posts[i] = *created
			break
		}
	}
	f.mu.Unlock()

	return created, nil
}

func (f *OptimisticFeed) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return
		}
	}
}
