package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"salon_leads_backend/internal/events"
	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/internal/leads/repository"
	"salon_leads_backend/platform/apperr"
	"salon_leads_backend/platform/logger"
)

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) published() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event(nil), b.events...)
}

func newTestService(store repository.Store) (*Service, *recordingBus) {
	bus := &recordingBus{}
	return New(store, bus, logger.New("development")), bus
}

func validCallLead() domain.Lead {
	return domain.Lead{
		InterestLevel: domain.InterestHot,
		SalonName:     "San Juan",
		UserName:      "Carla",
		ChannelType:   domain.ChannelCall,
		Source:        "Google",
	}
}

func TestRegister_Success(t *testing.T) {
	store := repository.NewMemoryStore()
	svc, bus := newTestService(store)

	result := svc.Register(context.Background(), validCallLead())

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Message != "Consulta registrada exitosamente." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored lead, got %d", store.Len())
	}
	published := bus.published()
	if len(published) != 1 || published[0].EventName() != "leads.registered" {
		t.Fatalf("expected a leads.registered event, got %v", published)
	}
}

func TestRegister_MissingActorContextIsSessionError(t *testing.T) {
	store := repository.NewMemoryStore()
	svc, _ := newTestService(store)

	lead := validCallLead()
	lead.UserName = "  "

	result := svc.Register(context.Background(), lead)

	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Message, "inicie sesión de nuevo") {
		t.Fatalf("expected session message, got %q", result.Message)
	}
	if store.Len() != 0 {
		t.Fatal("no document must be written")
	}
}

func TestRegister_OtroWithoutDetailFailsValidation(t *testing.T) {
	store := repository.NewMemoryStore()
	svc, bus := newTestService(store)

	lead := validCallLead()
	lead.Source = domain.CallSourceOther
	lead.OtherSourceDetail = ""

	result := svc.Register(context.Background(), lead)

	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Message, "otherSourceDetail") {
		t.Fatalf("message should reference the failing field, got %q", result.Message)
	}
	if len(result.Fields) != 1 || result.Fields[0].Field != "otherSourceDetail" {
		t.Fatalf("expected field-scoped error, got %v", result.Fields)
	}
	if store.Len() != 0 {
		t.Fatal("no document must be written")
	}
	if len(bus.published()) != 0 {
		t.Fatal("no event must be published for rejected submissions")
	}
}

func TestRegister_GatewayNotConfigured(t *testing.T) {
	svc, bus := newTestService(repository.NewFirestoreStore(nil, logger.New("development")))

	lead := domain.Lead{
		InterestLevel: domain.InterestHot,
		SalonName:     "San Juan",
		UserName:      "Carla",
		ChannelType:   domain.ChannelWhatsApp,
		SubChannel:    "Meta Ads",
	}

	result := svc.Register(context.Background(), lead)

	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Message, "configurada") {
		t.Fatalf("message should explain the configuration problem, got %q", result.Message)
	}
	if result.Error == "" {
		t.Fatal("expected the gateway error to be surfaced")
	}
	if len(bus.published()) != 0 {
		t.Fatal("no event must be published on failure")
	}
}

func TestRegister_PersistenceErrorSurfacedVerbatim(t *testing.T) {
	store := repository.NewMemoryStore()
	store.FailWith = errors.New("rpc error: permission denied")
	svc, _ := newTestService(store)

	result := svc.Register(context.Background(), validCallLead())

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Message != "Error desconocido al registrar la consulta." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if result.Error != "rpc error: permission denied" {
		t.Fatalf("expected verbatim gateway error, got %q", result.Error)
	}
}

type panickingStore struct{}

func (panickingStore) Create(context.Context, domain.Lead) (string, error) {
	panic("sdk exploded")
}

func (panickingStore) ListAll(context.Context) ([]domain.StoredLead, error) {
	return nil, nil
}

func TestRegister_PanicIsCaughtAndNormalized(t *testing.T) {
	svc, _ := newTestService(panickingStore{})

	result := svc.Register(context.Background(), validCallLead())

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Message != "Error interno del servidor." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if result.Error != "sdk exploded" {
		t.Fatalf("expected normalized panic value, got %q", result.Error)
	}
}

func TestNormalizeErrorValue_Precedence(t *testing.T) {
	if got := normalizeErrorValue(errors.New("boom")); got != "boom" {
		t.Errorf("error: %q", got)
	}
	if got := normalizeErrorValue("plain"); got != "plain" {
		t.Errorf("string: %q", got)
	}
	if got := normalizeErrorValue(apperr.Unavailable("sin configurar")); got != "sin configurar" {
		t.Errorf("apperr: %q", got)
	}
	if got := normalizeErrorValue(struct{}{}); got != "Ocurrió un error desconocido." {
		t.Errorf("fallback: %q", got)
	}
}
