package services

import (
	"time"

	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/models"
	"github.com/zealr3/stackit-qna/repositories"
)

var timeNow = time.Now

func newNotificationID() string {
	return helper.NewID("ntf")
}

type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

type NotificationService interface {
	GetNotifications(userID string) *NotificationList
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetNotifications(userID string) *NotificationList {
	notifications := s.notificationRepo.ListByUser(userID)

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}
	return &NotificationList{Notifications: notifications, UnreadCount: unread}
}

func (s *notificationService) MarkRead(id, userID string) error {
	notification, err := s.notificationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return models.ErrorNotFound{Message: "notification not found"}
	}

	notification.IsRead = true
	return s.notificationRepo.Update(notification)
}

func (s *notificationService) MarkAllRead(userID string) error {
	return s.notificationRepo.MarkAllRead(userID)
}
