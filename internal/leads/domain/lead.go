// Package domain defines the lead record and its validation rules.
// A lead is one customer inquiry captured by a salesperson through one of
// three channels; the channel determines which detail fields are present.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChannelType discriminates the channel-specific shape of a lead.
type ChannelType string

const (
	ChannelWhatsApp ChannelType = "WhatsApp"
	ChannelCall     ChannelType = "Llamada"
	ChannelInPerson ChannelType = "Presencial"
)

// InterestLevel is the agent's qualitative read of the prospect.
type InterestLevel string

const (
	InterestHot      InterestLevel = "caliente"
	InterestWarm     InterestLevel = "templado"
	InterestCold     InterestLevel = "frío"
	InterestMistaken InterestLevel = "erroneo"
)

// SalonNames is the closed set of business locations. Leads can only be
// attributed to one of these; the set changes with the business, not at runtime.
var SalonNames = []string{
	"Alameda",
	"Multiespacio",
	"San Juan",
	"San Luis",
	"San Martin",
	"San Rafael",
	"Villa Krause",
	"Villa Mercedes",
}

// WhatsAppSubChannels are the recognized inbound sources for WhatsApp leads.
var WhatsAppSubChannels = []string{"Meta Ads", "No identificado"}

// CallSources are the recognized answers to "how did you hear about us"
// for phone leads. CallSourceOther requires a free-text detail.
var CallSources = []string{"Google", "Ya es cliente", "Recomendación", CallSourceOther}

// CallSourceOther is the call source that requires otherSourceDetail.
const CallSourceOther = "Otro"

// ArrivalMethods are the recognized ways an in-person visitor found the salon.
var ArrivalMethods = []string{"Paso casual", "Medio de comunicación", "Google", "Recomendación"}

var interestLevels = []InterestLevel{InterestHot, InterestWarm, InterestCold, InterestMistaken}

// Lead is a customer inquiry as submitted by a salesperson, before it is
// persisted. ChannelType decides which of the optional fields are legal:
// SubChannel for WhatsApp, Source/OtherSourceDetail for Llamada and
// ArrivalMethod for Presencial.
type Lead struct {
	InterestLevel     InterestLevel `json:"interestLevel"`
	Comment           string        `json:"comment,omitempty"`
	SalonName         string        `json:"salonName"`
	UserName          string        `json:"userName"`
	ChannelType       ChannelType   `json:"channelType"`
	SubChannel        string        `json:"subChannel,omitempty"`
	Source            string        `json:"source,omitempty"`
	OtherSourceDetail string        `json:"otherSourceDetail,omitempty"`
	ArrivalMethod     string        `json:"arrivalMethod,omitempty"`
}

// StoredLead is a Lead after persistence: the store assigns the ID and the
// creation timestamp exactly once. Records are never updated or deleted.
type StoredLead struct {
	Lead
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// FieldError is a single validation failure scoped to one field, with a
// message suitable for showing next to the form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Normalized returns a copy of the lead with whitespace trimmed from the
// free-text fields. Validation operates on the normalized form.
func (l Lead) Normalized() Lead {
	l.UserName = strings.TrimSpace(l.UserName)
	l.Comment = strings.TrimSpace(l.Comment)
	l.OtherSourceDetail = strings.TrimSpace(l.OtherSourceDetail)
	return l
}

// Validate checks the lead against the per-channel schema and reports every
// failing field at once so a form can surface all of them in a single pass.
// It is pure: no I/O, no mutation.
func (l Lead) Validate() []FieldError {
	var errs []FieldError

	if !validInterestLevel(l.InterestLevel) {
		errs = append(errs, FieldError{"interestLevel", "Seleccione un nivel de interés."})
	}
	if !contains(SalonNames, l.SalonName) {
		errs = append(errs, FieldError{"salonName", "Seleccione un salón."})
	}
	if strings.TrimSpace(l.UserName) == "" {
		errs = append(errs, FieldError{"userName", "Este campo es requerido."})
	}

	switch l.ChannelType {
	case ChannelWhatsApp:
		if !contains(WhatsAppSubChannels, l.SubChannel) {
			errs = append(errs, FieldError{"subChannel", "Seleccione un subcanal."})
		}
	case ChannelCall:
		if !contains(CallSources, l.Source) {
			errs = append(errs, FieldError{"source", "Seleccione cómo conoció la empresa."})
		} else if l.Source == CallSourceOther && strings.TrimSpace(l.OtherSourceDetail) == "" {
			errs = append(errs, FieldError{"otherSourceDetail", "Especifique el otro medio."})
		}
	case ChannelInPerson:
		if !contains(ArrivalMethods, l.ArrivalMethod) {
			errs = append(errs, FieldError{"arrivalMethod", "Seleccione cómo llegó al salón."})
		}
	default:
		errs = append(errs, FieldError{"channelType", "Seleccione un canal válido."})
	}

	return errs
}

// ChannelDetail renders the channel-specific discriminant value for tables
// and exports. A call lead from "Otro" includes the free-text detail, e.g.
// "Otro (folleto)". Legacy channels with no recognized detail render "N/A".
func (l StoredLead) ChannelDetail() string {
	switch l.ChannelType {
	case ChannelWhatsApp:
		return l.SubChannel
	case ChannelCall:
		if l.Source == CallSourceOther {
			detail := l.OtherSourceDetail
			if detail == "" {
				detail = "N/A"
			}
			return fmt.Sprintf("%s (%s)", l.Source, detail)
		}
		return l.Source
	case ChannelInPerson:
		return l.ArrivalMethod
	default:
		return "N/A"
	}
}

func validInterestLevel(level InterestLevel) bool {
	for _, l := range interestLevels {
		if l == level {
			return true
		}
	}
	return false
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
