package reports

import (
	"encoding/csv"
	"io"

	"salon_leads_backend/internal/leads/domain"
)

// exportDateLayout renders timestamps the way the report table shows them.
const exportDateLayout = "02/01/2006 15:04"

// ExportFileName is the download name offered to spreadsheet users.
const ExportFileName = "reporte_consultas.csv"

var exportHeaders = []string{
	"Fecha",
	"Vendedor",
	"Salon",
	"Canal",
	"Detalle Canal",
	"Nivel Interes",
	"Comentario",
}

// WriteCSV serializes the leads in the fixed report column order. The output
// starts with a UTF-8 byte-order mark so spreadsheet tools detect the
// encoding; fields containing commas, quotes or newlines are quoted with
// internal quotes doubled (encoding/csv semantics).
func WriteCSV(w io.Writer, leads []domain.StoredLead) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders); err != nil {
		return err
	}

	for _, lead := range leads {
		created := "N/A"
		if !lead.CreatedAt.IsZero() {
			created = lead.CreatedAt.Format(exportDateLayout)
		}

		row := []string{
			created,
			lead.UserName,
			lead.SalonName,
			string(lead.ChannelType),
			lead.ChannelDetail(),
			string(lead.InterestLevel),
			lead.Comment,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
