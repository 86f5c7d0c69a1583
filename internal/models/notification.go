package models

import "time"

// NotificationType enumerates notification severities.
type NotificationType string

// Notification severities.
const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

// Notification is an informational event addressed to a single user.
type Notification struct {
	ID        string           `json:"id" validate:"required"`
	UserID    string           `json:"userId" validate:"required"`
	Title     string           `json:"title" validate:"required"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type" validate:"required,oneof=info success warning error"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
