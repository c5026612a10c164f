package reports

import (
	apphttp "salon_leads_backend/internal/http"
	"salon_leads_backend/internal/leads/cache"
	"salon_leads_backend/internal/leads/repository"
)

// Module is the reports bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the reports module.
func NewModule(store repository.Store, leadCache *cache.LeadCache) *Module {
	svc := NewService(store, leadCache)
	return &Module{handler: NewHandler(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "reports"
}

// RegisterRoutes mounts report routes on the provided router context.
// Reports are admin-only.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Admin.Group("/reports")
	group.GET("", m.handler.HandleList)
	group.GET("/export.csv", m.handler.HandleExportCSV)
}

var _ apphttp.Module = (*Module)(nil)
