// Package reports provides the admin reporting surface: filtering of the
// stored lead set and a CSV export of the filtered view.
package reports

import (
	"time"

	"salon_leads_backend/internal/leads/domain"
)

// Filter holds the independently composable report predicates. A zero-value
// field means "no filter" and passes every record; set fields are combined
// with AND. Applying a filter never mutates the input.
type Filter struct {
	// Date matches leads created on this calendar day.
	Date *time.Time
	// Salon matches the exact salon name.
	Salon string
	// Channel matches the exact channel type.
	Channel string
	// Interest matches the exact interest level.
	Interest string
}

// Apply returns the leads passing every set predicate. With no predicates
// set the input is returned unchanged in content and order.
func (f Filter) Apply(leads []domain.StoredLead) []domain.StoredLead {
	out := make([]domain.StoredLead, 0, len(leads))
	for _, lead := range leads {
		if f.matches(lead) {
			out = append(out, lead)
		}
	}
	return out
}

func (f Filter) matches(lead domain.StoredLead) bool {
	if f.Date != nil && !sameDay(lead.CreatedAt, *f.Date) {
		return false
	}
	if f.Salon != "" && lead.SalonName != f.Salon {
		return false
	}
	if f.Channel != "" && string(lead.ChannelType) != f.Channel {
		return false
	}
	if f.Interest != "" && string(lead.InterestLevel) != f.Interest {
		return false
	}
	return true
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
