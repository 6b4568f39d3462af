// Package client is a client for the legacy notifications API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Author ...
type Author struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// Link ...
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Reply ...
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

// Notification is a bulletin record as served by the legacy API.
type Notification struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Link      *Link     `json:"link,omitempty"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	Viewers   int       `json:"viewers"`
	ViewedBy  []string  `json:"viewedBy"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// User ...
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role"`
	Birthdate string `json:"birthdate,omitempty"`
}

// CreateNotificationParams is the writable part of a notification.
type CreateNotificationParams struct {
	Author   Author `json:"author"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	Link     *Link  `json:"link,omitempty"`
}

// Client ...
type Client struct {
	host string
	c    *http.Client
}

// New creates a client for the service at host.
func New(host string) *Client {
	return &Client{
		host: host,
		c:    http.DefaultClient,
	}
}

// WithHTTPClient sets the underlying http client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.c = h
	return c
}

// Users returns the roster.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.get(ctx, "/api/users", &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Notifications returns the notifications feed.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.get(ctx, "/api/notifications", &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateNotification posts p and returns the record echoed by the server.
func (c *Client) CreateNotification(ctx context.Context, p CreateNotificationParams) (*Notification, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/notifications", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out Notification
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
