package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salon_leads_backend/internal/events"
	"salon_leads_backend/internal/leads/repository"
	"salon_leads_backend/internal/leads/service"
	"salon_leads_backend/platform/httpkit"
	"salon_leads_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(store repository.Store, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("test")
	svc := service.New(store, events.NewInMemoryBus(log), log)
	h := New(svc)

	engine := gin.New()
	engine.POST("/leads", func(c *gin.Context) {
		if authenticated {
			c.Set(httpkit.ContextUserIDKey, uuid.New())
			c.Set(httpkit.ContextRoleKey, httpkit.RoleVendedor)
			c.Set(httpkit.ContextUserNameKey, "Ana")
			c.Set(httpkit.ContextSalonKey, "Alameda")
		}
		h.HandleRegisterLead(c)
	})
	return engine
}

func postLead(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHandleRegisterLeadSuccess(t *testing.T) {
	store := repository.NewMemoryStore()
	engine := newTestRouter(store, true)

	rec := postLead(t, engine, `{"channelType":"WhatsApp","interestLevel":"caliente","subChannel":"Meta Ads"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result service.SubmitResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Message != "Consulta registrada exitosamente." {
		t.Fatalf("message = %q", result.Message)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored lead, got %d", store.Len())
	}
}

func TestHandleRegisterLeadValidationFailureStillReturns200(t *testing.T) {
	store := repository.NewMemoryStore()
	engine := newTestRouter(store, true)

	rec := postLead(t, engine, `{"channelType":"WhatsApp","interestLevel":"caliente"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result service.SubmitResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response did not decode: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure for missing subChannel")
	}
	if store.Len() != 0 {
		t.Fatalf("invalid lead was stored")
	}
}

func TestHandleRegisterLeadMalformedBody(t *testing.T) {
	engine := newTestRouter(repository.NewMemoryStore(), true)

	rec := postLead(t, engine, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRegisterLeadUnauthenticated(t *testing.T) {
	engine := newTestRouter(repository.NewMemoryStore(), false)

	rec := postLead(t, engine, `{"channelType":"WhatsApp","interestLevel":"caliente","subChannel":"Meta Ads"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
