package models

import "time"

type NotificationType string

const (
	NotificationAnswer   NotificationType = "answer"
	NotificationVote     NotificationType = "vote"
	NotificationMention  NotificationType = "mention"
	NotificationAccepted NotificationType = "accepted"
	NotificationComment  NotificationType = "comment"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RelatedID string           `json:"related_id"`
	IsRead    bool             `json:"is_read"`
	ActionURL string           `json:"action_url,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
