package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

type stubCompanyRepo struct {
	finalized []*entity.Company
}

func (r *stubCompanyRepo) Create(_ context.Context, _ *entity.Company) error { return nil }
func (r *stubCompanyRepo) GetByID(_ context.Context, _ string) (*entity.Company, error) {
	return nil, nil
}
func (r *stubCompanyRepo) Update(_ context.Context, _ *entity.Company) error { return nil }
func (r *stubCompanyRepo) Delete(_ context.Context, _ string) error          { return nil }

func (r *stubCompanyRepo) List(_ context.Context, status string, limit, offset int) ([]*entity.Company, error) {
	if status != entity.FinalizationFinalized {
		return nil, nil
	}
	if offset >= len(r.finalized) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.finalized) {
		end = len(r.finalized)
	}
	return r.finalized[offset:end], nil
}

func (r *stubCompanyRepo) SetFinalization(_ context.Context, _, _, _, _ string, _ *time.Time) (bool, error) {
	return false, nil
}

func TestReporteHTML_IncluyeEmpresasFinalizadas(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &stubCompanyRepo{finalized: []*entity.Company{
		{
			Name: "Acme <Corp>", Industry: "Manufactura", Region: "norte",
			AnnualRevenue: decimal.RequireFromString("125000.50"),
			FinalizedByID: "u-head", FinalizedAt: &at,
		},
	}}
	svc := NewService(repo)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteFinalizedReport(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "Acme &lt;Corp&gt;") // escapado, nunca HTML crudo
	assert.Contains(t, html, "125000.5")
	assert.Contains(t, html, "u-head")
	assert.Contains(t, html, "2026-03-10T12:00:00Z")
	assert.Contains(t, html, "Total: 1")
}

func TestReporteHTML_VacioSinFinalizadas(t *testing.T) {
	svc := NewService(&stubCompanyRepo{})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteFinalizedReport(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Total: 0")
}
