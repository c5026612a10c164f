// Package email delivers notification emails over SMTP.
package email

import "context"

// HotLeadData carries the fields rendered into the hot lead alert.
type HotLeadData struct {
	SalonName     string
	UserName      string
	ChannelType   string
	InterestLevel string
	RegisteredAt  string
}

// Sender delivers notification emails.
type Sender interface {
	// SendHotLeadAlert notifies the recipient that a hot lead was registered.
	SendHotLeadAlert(ctx context.Context, toEmail string, data HotLeadData) error
}
