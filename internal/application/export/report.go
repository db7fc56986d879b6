package export

import (
	"context"
	"html/template"
	"io"
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Service genera el reporte HTML de empresas finalizadas. La ruta que lo
// expone exige canExportFinalized.
type Service struct {
	companies repository.CompanyRepository
	tmpl      *template.Template
}

// NewService compila la plantilla del reporte.
func NewService(companies repository.CompanyRepository) *Service {
	return &Service{
		companies: companies,
		tmpl:      template.Must(template.New("report").Parse(reportTemplate)),
	}
}

type reportRow struct {
	Name          string
	Industry      string
	Region        string
	AnnualRevenue string
	FinalizedByID string
	FinalizedAt   string
}

type reportData struct {
	GeneratedAt string
	Total       int
	Rows        []reportRow
}

// WriteFinalizedReport escribe el reporte HTML de todas las empresas
// finalizadas en w.
func (s *Service) WriteFinalizedReport(ctx context.Context, w io.Writer) error {
	const pageSize = 200
	var rows []reportRow
	for offset := 0; ; offset += pageSize {
		batch, err := s.companies.List(ctx, entity.FinalizationFinalized, pageSize, offset)
		if err != nil {
			return err
		}
		for _, c := range batch {
			row := reportRow{
				Name:          c.Name,
				Industry:      c.Industry,
				Region:        c.Region,
				AnnualRevenue: c.AnnualRevenue.String(),
				FinalizedByID: c.FinalizedByID,
			}
			if c.FinalizedAt != nil {
				row.FinalizedAt = c.FinalizedAt.Format(time.RFC3339)
			}
			rows = append(rows, row)
		}
		if len(batch) < pageSize {
			break
		}
	}
	return s.tmpl.Execute(w, reportData{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Total:       len(rows),
		Rows:        rows,
	})
}

const reportTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Reporte de empresas finalizadas</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>Empresas finalizadas</h1>
<p>Generado: {{.GeneratedAt}} &mdash; Total: {{.Total}}</p>
<table>
<thead>
<tr><th>Nombre</th><th>Industria</th><th>Región</th><th>Ingresos anuales</th><th>Finalizada por</th><th>Finalizada el</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Industry}}</td><td>{{.Region}}</td><td>{{.AnnualRevenue}}</td><td>{{.FinalizedByID}}</td><td>{{.FinalizedAt}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`
