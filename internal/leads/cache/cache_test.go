package cache

import (
	"context"
	"testing"
	"time"

	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*LeadCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(rdb, time.Minute, logger.New("development")), mr
}

func sampleLeads() []domain.StoredLead {
	return []domain.StoredLead{
		{
			ID:        "b",
			CreatedAt: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC),
			Lead: domain.Lead{
				InterestLevel: domain.InterestHot,
				SalonName:     "San Juan",
				UserName:      "Carla",
				ChannelType:   domain.ChannelWhatsApp,
				SubChannel:    "Meta Ads",
			},
		},
		{
			ID:        "a",
			CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			Lead: domain.Lead{
				InterestLevel: domain.InterestWarm,
				SalonName:     "Alameda",
				UserName:      "Diego",
				ChannelType:   domain.ChannelCall,
				Source:        "Google",
			},
		},
	}
}

func TestLeadCache_SetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss on empty cache")
	}

	want := sampleLeads()
	c.Set(ctx, want)

	got, ok := c.Get(ctx)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != len(want) || got[0].ID != "b" || got[1].Lead != want[1].Lead {
		t.Fatalf("cached listing mismatch: %+v", got)
	}
}

func TestLeadCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleLeads())
	if err := c.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestLeadCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, sampleLeads())
	mr.FastForward(2 * time.Minute)

	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestLeadCache_CorruptPayloadDiscarded(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := mr.Set("leads:all", "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss for corrupt payload")
	}
	if mr.Exists("leads:all") {
		t.Fatal("corrupt payload should be deleted")
	}
}

func TestLeadCache_NilReceiverIsNoop(t *testing.T) {
	var c *LeadCache
	ctx := context.Background()

	c.Set(ctx, sampleLeads())
	if _, ok := c.Get(ctx); ok {
		t.Fatal("nil cache must always miss")
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}
}
