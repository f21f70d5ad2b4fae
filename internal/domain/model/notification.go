package model

// NotificationField represents a titled section within a notification payload.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic display unit for downstream renderers.
type Notification struct {
	Title       string
	URL         string
	Description string
	Color       int
	Fields      []NotificationField
	Footer      string
}
