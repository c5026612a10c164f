// Package notification alerts the business owner about high value leads.
package notification

import (
	"context"
	"time"

	"salon_leads_backend/internal/email"
	"salon_leads_backend/internal/events"
	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/platform/config"
	"salon_leads_backend/platform/logger"
)

const alertDateLayout = "02/01/2006 15:04"

// Notifier listens for registered leads and emails the admin when a hot lead
// comes in. Delivery failures are logged and never affect lead registration.
type Notifier struct {
	sender  email.Sender
	toEmail string
	log     *logger.Logger
}

// NewNotifier creates the notifier and subscribes it to the event bus.
// With email disabled or no recipient configured it subscribes nothing.
func NewNotifier(sender email.Sender, cfg config.EmailConfig, eventBus events.Bus, log *logger.Logger) *Notifier {
	n := &Notifier{sender: sender, toEmail: cfg.GetAdminNotifyEmail(), log: log}

	if !cfg.GetEmailEnabled() || n.toEmail == "" {
		log.Info("hot lead email alerts disabled")
		return n
	}

	eventBus.Subscribe(events.LeadRegistered{}.EventName(), events.HandlerFunc(n.handleLeadRegistered))
	return n
}

func (n *Notifier) handleLeadRegistered(ctx context.Context, event events.Event) error {
	registered, ok := event.(events.LeadRegistered)
	if !ok {
		return nil
	}
	if registered.InterestLevel != string(domain.InterestHot) {
		return nil
	}

	data := email.HotLeadData{
		SalonName:     registered.SalonName,
		UserName:      registered.UserName,
		ChannelType:   registered.ChannelType,
		InterestLevel: registered.InterestLevel,
		RegisteredAt:  registered.OccurredAt().Format(alertDateLayout),
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := n.sender.SendHotLeadAlert(ctx, n.toEmail, data); err != nil {
		n.log.Error("hot lead alert failed", "leadId", registered.LeadID, "error", err)
		return err
	}

	n.log.Info("hot lead alert sent", "leadId", registered.LeadID, "salon", registered.SalonName)
	return nil
}
