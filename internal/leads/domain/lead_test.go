package domain

import "testing"

func validWhatsAppLead() Lead {
	return Lead{
		InterestLevel: InterestHot,
		SalonName:     "San Juan",
		UserName:      "Carla",
		ChannelType:   ChannelWhatsApp,
		SubChannel:    "Meta Ads",
	}
}

func validCallLead() Lead {
	return Lead{
		InterestLevel: InterestWarm,
		SalonName:     "Alameda",
		UserName:      "Diego",
		ChannelType:   ChannelCall,
		Source:        "Google",
	}
}

func validInPersonLead() Lead {
	return Lead{
		InterestLevel: InterestCold,
		SalonName:     "Villa Mercedes",
		UserName:      "Lucía",
		ChannelType:   ChannelInPerson,
		ArrivalMethod: "Paso casual",
	}
}

func TestValidate_ValidLeadsPerChannel(t *testing.T) {
	for _, lead := range []Lead{validWhatsAppLead(), validCallLead(), validInPersonLead()} {
		if errs := lead.Validate(); len(errs) != 0 {
			t.Fatalf("expected valid %s lead, got errors: %v", lead.ChannelType, errs)
		}
	}
}

func TestValidate_CallOtherRequiresDetail(t *testing.T) {
	lead := validCallLead()
	lead.Source = CallSourceOther

	for _, detail := range []string{"", "   ", "\t\n"} {
		lead.OtherSourceDetail = detail
		errs := lead.Validate()
		if len(errs) != 1 {
			t.Fatalf("detail %q: expected 1 error, got %v", detail, errs)
		}
		if errs[0].Field != "otherSourceDetail" {
			t.Fatalf("expected error scoped to otherSourceDetail, got %q", errs[0].Field)
		}
	}

	lead.OtherSourceDetail = "folleto en la calle"
	if errs := lead.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid lead with detail, got %v", errs)
	}
}

func TestValidate_OtherDetailNotRequiredForKnownSources(t *testing.T) {
	lead := validCallLead()
	lead.Source = "Ya es cliente"
	lead.OtherSourceDetail = ""
	if errs := lead.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	lead := Lead{
		InterestLevel: "tibio",
		SalonName:     "Mendoza",
		UserName:      "  ",
		ChannelType:   ChannelWhatsApp,
		SubChannel:    "Telegram",
	}

	errs := lead.Validate()
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(errs), errs)
	}

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"interestLevel", "salonName", "userName", "subChannel"} {
		if !fields[want] {
			t.Errorf("expected error for field %q, got %v", want, errs)
		}
	}
}

func TestValidate_UnknownChannel(t *testing.T) {
	lead := validWhatsAppLead()
	lead.ChannelType = "Telegrama"

	errs := lead.Validate()
	if len(errs) != 1 || errs[0].Field != "channelType" {
		t.Fatalf("expected single channelType error, got %v", errs)
	}
}

func TestNormalized_TrimsFreeText(t *testing.T) {
	lead := Lead{
		UserName:          "  Carla ",
		Comment:           " llamó dos veces \n",
		OtherSourceDetail: " folleto ",
	}

	got := lead.Normalized()
	if got.UserName != "Carla" {
		t.Errorf("UserName = %q", got.UserName)
	}
	if got.Comment != "llamó dos veces" {
		t.Errorf("Comment = %q", got.Comment)
	}
	if got.OtherSourceDetail != "folleto" {
		t.Errorf("OtherSourceDetail = %q", got.OtherSourceDetail)
	}
}

func TestChannelDetail(t *testing.T) {
	cases := []struct {
		name string
		lead StoredLead
		want string
	}{
		{"whatsapp", StoredLead{Lead: validWhatsAppLead()}, "Meta Ads"},
		{"call known source", StoredLead{Lead: validCallLead()}, "Google"},
		{
			"call other with detail",
			StoredLead{Lead: Lead{ChannelType: ChannelCall, Source: CallSourceOther, OtherSourceDetail: "folleto"}},
			"Otro (folleto)",
		},
		{
			"call other without detail",
			StoredLead{Lead: Lead{ChannelType: ChannelCall, Source: CallSourceOther}},
			"Otro (N/A)",
		},
		{"in person", StoredLead{Lead: validInPersonLead()}, "Paso casual"},
		{"legacy channel", StoredLead{Lead: Lead{ChannelType: "Fax"}}, "N/A"},
	}

	for _, tc := range cases {
		if got := tc.lead.ChannelDetail(); got != tc.want {
			t.Errorf("%s: ChannelDetail() = %q, want %q", tc.name, got, tc.want)
		}
	}
}
