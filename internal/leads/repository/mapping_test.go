package repository

import (
	"context"
	"testing"
	"time"

	"salon_leads_backend/internal/leads/domain"
)

func TestLeadToDoc_OnlyChannelFieldsOfItsChannel(t *testing.T) {
	lead := domain.Lead{
		InterestLevel: domain.InterestHot,
		Comment:       "vio el anuncio",
		SalonName:     "San Juan",
		UserName:      "Carla",
		ChannelType:   domain.ChannelWhatsApp,
		SubChannel:    "Meta Ads",
		// Fields from other channels must not leak into the document.
		Source:        "Google",
		ArrivalMethod: "Paso casual",
	}

	doc := leadToDoc(lead)

	if doc["subChannel"] != "Meta Ads" {
		t.Errorf("subChannel = %v", doc["subChannel"])
	}
	for _, forbidden := range []string{"source", "otherSourceDetail", "arrivalMethod", "createdAt"} {
		if _, ok := doc[forbidden]; ok {
			t.Errorf("document must not contain %q for a WhatsApp lead", forbidden)
		}
	}
}

func TestLeadToDoc_OtherSourceDetailOnlyForOtro(t *testing.T) {
	lead := domain.Lead{
		InterestLevel:     domain.InterestWarm,
		SalonName:         "Alameda",
		UserName:          "Diego",
		ChannelType:       domain.ChannelCall,
		Source:            "Google",
		OtherSourceDetail: "sobra",
	}

	if _, ok := leadToDoc(lead)["otherSourceDetail"]; ok {
		t.Fatal("otherSourceDetail written for a non-Otro source")
	}

	lead.Source = domain.CallSourceOther
	lead.OtherSourceDetail = "folleto"
	doc := leadToDoc(lead)
	if doc["otherSourceDetail"] != "folleto" {
		t.Fatalf("otherSourceDetail = %v", doc["otherSourceDetail"])
	}
}

func TestDocToLead_RoundTripPerChannel(t *testing.T) {
	leads := []domain.Lead{
		{
			InterestLevel: domain.InterestHot,
			Comment:       "pidió precios",
			SalonName:     "San Juan",
			UserName:      "Carla",
			ChannelType:   domain.ChannelWhatsApp,
			SubChannel:    "No identificado",
		},
		{
			InterestLevel:     domain.InterestWarm,
			SalonName:         "Alameda",
			UserName:          "Diego",
			ChannelType:       domain.ChannelCall,
			Source:            domain.CallSourceOther,
			OtherSourceDetail: "folleto",
		},
		{
			InterestLevel: domain.InterestMistaken,
			SalonName:     "Villa Krause",
			UserName:      "Lucía",
			ChannelType:   domain.ChannelInPerson,
			ArrivalMethod: "Recomendación",
		},
	}

	for _, original := range leads {
		doc := leadToDoc(original)
		doc["createdAt"] = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

		got, known := docToLead("abc123", doc)
		if !known {
			t.Fatalf("%s: channel reported as unknown", original.ChannelType)
		}
		if got.ID != "abc123" {
			t.Errorf("ID = %q", got.ID)
		}
		if got.CreatedAt.IsZero() {
			t.Error("CreatedAt not reconstructed")
		}
		if got.Lead != original {
			t.Errorf("%s: round trip mismatch:\n got %+v\nwant %+v", original.ChannelType, got.Lead, original)
		}
	}
}

func TestDocToLead_LegacyChannelKeepsBaseFields(t *testing.T) {
	doc := map[string]interface{}{
		"interestLevel": "caliente",
		"comment":       "registro viejo",
		"salonName":     "San Luis",
		"userName":      "Marta",
		"channelType":   "Email",
		"subject":       "consulta",
	}

	lead, known := docToLead("legacy1", doc)
	if known {
		t.Fatal("expected unknown channel")
	}
	if lead.SalonName != "San Luis" || lead.UserName != "Marta" || lead.InterestLevel != domain.InterestHot {
		t.Fatalf("base fields not reconstructed: %+v", lead)
	}
	if lead.SubChannel != "" || lead.Source != "" || lead.ArrivalMethod != "" {
		t.Fatalf("channel fields must stay empty for legacy records: %+v", lead)
	}
}

func TestDocToLead_MissingCreatedAt(t *testing.T) {
	doc := leadToDoc(domain.Lead{ChannelType: domain.ChannelWhatsApp, SubChannel: "Meta Ads"})

	lead, _ := docToLead("x", doc)
	if !lead.CreatedAt.IsZero() {
		t.Fatalf("expected zero CreatedAt, got %v", lead.CreatedAt)
	}
}

func TestMemoryStore_ListAllNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Create(ctx, domain.Lead{UserName: "a", ChannelType: domain.ChannelCall, Source: "Google"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Create(ctx, domain.Lead{UserName: "b", ChannelType: domain.ChannelCall, Source: "Google"})
	if err != nil {
		t.Fatal(err)
	}

	leads, err := store.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}
	if leads[0].ID != second || leads[1].ID != first {
		t.Fatalf("expected newest first, got %s then %s", leads[0].ID, leads[1].ID)
	}
	if !leads[0].CreatedAt.After(leads[1].CreatedAt) {
		t.Fatal("timestamps not monotonic")
	}
}
