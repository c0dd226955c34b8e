package models

import "time"

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type Report struct {
	ID          string       `json:"id"`
	ContentType SubjectType  `json:"content_type"`
	ContentID   string       `json:"content_id"`
	Reason      string       `json:"reason"`
	ReportedBy  string       `json:"reported_by"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
