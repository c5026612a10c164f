package repository

import (
	"time"

	"salon_leads_backend/internal/leads/domain"
)

// leadToDoc maps a validated lead to its untyped document representation.
// Only the fields belonging to the lead's channel are written, so documents
// keep the per-channel shape the schema promises. The createdAt field is not
// set here; the store merges the server timestamp at write time.
func leadToDoc(l domain.Lead) map[string]interface{} {
	doc := map[string]interface{}{
		"interestLevel": string(l.InterestLevel),
		"comment":       l.Comment,
		"salonName":     l.SalonName,
		"userName":      l.UserName,
		"channelType":   string(l.ChannelType),
	}

	switch l.ChannelType {
	case domain.ChannelWhatsApp:
		doc["subChannel"] = l.SubChannel
	case domain.ChannelCall:
		doc["source"] = l.Source
		if l.Source == domain.CallSourceOther {
			doc["otherSourceDetail"] = l.OtherSourceDetail
		}
	case domain.ChannelInPerson:
		doc["arrivalMethod"] = l.ArrivalMethod
	}

	return doc
}

// docToLead reconstructs a typed stored lead from an untyped document. Base
// fields are extracted first, then the channel tag selects which detail
// fields to attach. The second return value reports whether the channel tag
// was recognized; unrecognized (legacy) channels still yield a partially
// typed record with all base fields set.
func docToLead(id string, data map[string]interface{}) (domain.StoredLead, bool) {
	lead := domain.StoredLead{
		ID: id,
		Lead: domain.Lead{
			InterestLevel: domain.InterestLevel(stringField(data, "interestLevel")),
			Comment:       stringField(data, "comment"),
			SalonName:     stringField(data, "salonName"),
			UserName:      stringField(data, "userName"),
			ChannelType:   domain.ChannelType(stringField(data, "channelType")),
		},
	}

	if ts, ok := data["createdAt"].(time.Time); ok {
		lead.CreatedAt = ts
	}

	known := true
	switch lead.ChannelType {
	case domain.ChannelWhatsApp:
		lead.SubChannel = stringField(data, "subChannel")
	case domain.ChannelCall:
		lead.Source = stringField(data, "source")
		if lead.Source == domain.CallSourceOther {
			lead.OtherSourceDetail = stringField(data, "otherSourceDetail")
		}
	case domain.ChannelInPerson:
		lead.ArrivalMethod = stringField(data, "arrivalMethod")
	default:
		known = false
	}

	return lead, known
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
