// Package transport defines the wire DTOs for the leads module.
package transport

import "salon_leads_backend/internal/leads/domain"

// RegisterLeadRequest is the form submission payload. The submitter name and
// salon are intentionally absent: they come from the authenticated session,
// never from the client.
type RegisterLeadRequest struct {
	ChannelType       string `json:"channelType"`
	InterestLevel     string `json:"interestLevel"`
	Comment           string `json:"comment"`
	SubChannel        string `json:"subChannel"`
	Source            string `json:"source"`
	OtherSourceDetail string `json:"otherSourceDetail"`
	ArrivalMethod     string `json:"arrivalMethod"`
}

// ToDomain builds the domain lead, attaching the actor context supplied by
// the session gate.
func (r RegisterLeadRequest) ToDomain(userName, salonName string) domain.Lead {
	return domain.Lead{
		InterestLevel:     domain.InterestLevel(r.InterestLevel),
		Comment:           r.Comment,
		SalonName:         salonName,
		UserName:          userName,
		ChannelType:       domain.ChannelType(r.ChannelType),
		SubChannel:        r.SubChannel,
		Source:            r.Source,
		OtherSourceDetail: r.OtherSourceDetail,
		ArrivalMethod:     r.ArrivalMethod,
	}
}
