package reports

import (
	"fmt"
	"net/http"
	"time"

	"salon_leads_backend/internal/leads/domain"
	"salon_leads_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const dateQueryLayout = "2006-01-02"

// Handler serves the reports listing and CSV export.
type Handler struct {
	svc *Service
}

// NewHandler creates a new reports handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListResponse is the reports listing payload. Shown/Total mirror the report
// footer ("Mostrando X de Y consultas").
type ListResponse struct {
	Leads []domain.StoredLead `json:"leads"`
	Shown int                 `json:"shown"`
	Total int                 `json:"total"`
}

// HandleList returns the filtered lead listing.
func (h *Handler) HandleList(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	leads, err := h.svc.Leads(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	filtered := filter.Apply(leads)
	httpkit.OK(c, ListResponse{Leads: filtered, Shown: len(filtered), Total: len(leads)})
}

// HandleExportCSV streams the filtered listing as a CSV download. An empty
// filtered set produces 204 No Content: there is nothing to export.
func (h *Handler) HandleExportCSV(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	leads, err := h.svc.Leads(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	filtered := filter.Apply(leads)
	if len(filtered) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFileName))
	c.Status(http.StatusOK)

	if err := WriteCSV(c.Writer, filtered); err != nil {
		// Headers are already on the wire; all we can do is log via gin's
		// error list and cut the connection.
		_ = c.Error(err)
	}
}

func filterFromQuery(c *gin.Context) (Filter, error) {
	var filter Filter

	if raw := c.Query("date"); raw != "" {
		day, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid date filter %q, expected YYYY-MM-DD", raw)
		}
		filter.Date = &day
	}
	filter.Salon = c.Query("salon")
	filter.Channel = c.Query("channel")
	filter.Interest = c.Query("interest")

	return filter, nil
}
