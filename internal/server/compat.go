package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/storage/seed"
)

// Legacy mock surface kept for older frontend builds. These endpoints always
// serve the seed fixtures after an artificial delay and never persist
// anything; POST echoes a constructed record back to the caller only.

func (s server) sleep(r *http.Request) bool {
	select {
	case <-r.Context().Done():
		return false
	case <-time.After(s.mockLatency):
		return true
	}
}

func (s server) legacyListNotifications(w http.ResponseWriter, r *http.Request) {
	if !s.sleep(r) {
		return
	}

	writeOK(w, http.StatusOK, seed.Posts())
}

type legacyCreateNotificationRequest struct {
	Author   entities.Author   `json:"author"`
	Category entities.Category `json:"category"`
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	ImageURL string            `json:"imageUrl,omitempty"`
	Link     *entities.Link    `json:"link,omitempty"`
}

func (s server) legacyCreateNotification(w http.ResponseWriter, r *http.Request) {
	var req legacyCreateNotificationRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.sleep(r) {
		return
	}

	writeOK(w, http.StatusCreated, entities.Post{
		ID:        fmt.Sprintf("notification-%d", s.now().UnixMilli()),
		Author:    req.Author,
		Category:  req.Category,
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		Link:      req.Link,
		LikedBy:   []string{},
		ViewedBy:  []string{},
		Comments:  []entities.Comment{},
		CreatedAt: s.now(),
	})
}

func (s server) legacyListUsers(w http.ResponseWriter, r *http.Request) {
	if !s.sleep(r) {
		return
	}

	writeOK(w, http.StatusOK, seed.Users())
}
