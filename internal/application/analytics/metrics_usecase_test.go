package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agisales/proposals-api/internal/application/analytics"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/infrastructure/kvstore"
	"github.com/agisales/proposals-api/internal/infrastructure/mockstore"
	"github.com/agisales/proposals-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubRepo permite fijar la colección exacta sobre la que se agrega.
type stubRepo struct {
	proposals []*entity.Proposal
}

func (r *stubRepo) GetAll(context.Context) ([]*entity.Proposal, error)         { return r.proposals, nil }
func (r *stubRepo) GetByID(context.Context, string) (*entity.Proposal, error)  { return nil, nil }
func (r *stubRepo) Create(context.Context, *entity.Proposal) error             { return nil }
func (r *stubRepo) Update(context.Context, *entity.Proposal) error             { return nil }
func (r *stubRepo) Delete(context.Context, string) error                       { return nil }

func proposalAt(product, status string, value int64, createdAt time.Time) *entity.Proposal {
	return &entity.Proposal{
		ID:        product + "/" + createdAt.Format(time.RFC3339),
		Product:   product,
		Status:    status,
		Value:     decimal.NewFromInt(value),
		CreatedAt: createdAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: los 5 fixtures del modo mock
// ──────────────────────────────────────────────────────────────────────────────

// Sobre el seed (2 pending, 2 approved, 1 rejected) las métricas deben dar
// exactamente: total=5, rate=40%, totalValue=85000+45000=130000.
func TestGetMetrics_EscenarioFixture(t *testing.T) {
	store := kvstore.NewFileStore(t.TempDir(), "app", logger.Nop())
	repo := mockstore.NewProposalRepository(store, logger.Nop())
	uc := analytics.NewMetricsUseCase(repo)

	m, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, m.TotalProposals)
	assert.Equal(t, 2, m.PendingProposals)
	assert.Equal(t, 2, m.ApprovedProposals)
	assert.Equal(t, 1, m.RejectedProposals)
	assert.InDelta(t, 40.0, m.ApprovalRate, 1e-9)
	assert.True(t, m.TotalValue.Equal(decimal.NewFromInt(130000)),
		"totalValue debe sumar solo las aprobadas: 85000+45000, got %s", m.TotalValue)

	// Fixtures reparten createdAt entre septiembre y octubre de 2025.
	require.Len(t, m.ProposalsByMonth, 2)
	assert.Equal(t, "Set/25", m.ProposalsByMonth[0].Month)
	assert.Equal(t, 3, m.ProposalsByMonth[0].Total)
	assert.Equal(t, 2, m.ProposalsByMonth[0].Approved)
	assert.Equal(t, 1, m.ProposalsByMonth[0].Rejected)
	assert.Equal(t, "Out/25", m.ProposalsByMonth[1].Month)
	assert.Equal(t, 2, m.ProposalsByMonth[1].Total)

	// Los productos con valor aprobado rankean por encima de los pending.
	require.True(t, len(m.TopProducts) <= 5)
	require.NotEmpty(t, m.TopProducts)
	assert.Equal(t, "Consultoria em Cloud Computing", m.TopProducts[0].Name)
	assert.True(t, m.TopProducts[0].Value.Equal(decimal.NewFromInt(85000)))
	assert.Equal(t, "Auditoria de Segurança", m.TopProducts[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos de borde
// ──────────────────────────────────────────────────────────────────────────────

// Colección vacía: tasa de aprobación 0, sin división por cero.
func TestGetMetrics_ColeccionVacia(t *testing.T) {
	uc := analytics.NewMetricsUseCase(&stubRepo{})

	m, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, m.TotalProposals)
	assert.Zero(t, m.ApprovalRate)
	assert.True(t, m.TotalValue.IsZero())
	assert.Empty(t, m.ProposalsByMonth)
	assert.Empty(t, m.TopProducts)
}

// Más de 6 meses: orden cronológico ascendente y truncado a los 6 últimos.
func TestGetMetrics_MesesTruncadosALosSeisUltimos(t *testing.T) {
	var proposals []*entity.Proposal
	// Ocho meses consecutivos, uno por mes, insertados en desorden.
	for _, month := range []time.Month{8, 3, 1, 6, 2, 7, 4, 5} {
		proposals = append(proposals,
			proposalAt("P", entity.StatusPending, 1000, time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC)))
	}
	uc := analytics.NewMetricsUseCase(&stubRepo{proposals: proposals})

	m, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, m.ProposalsByMonth, 6, "solo los 6 buckets más recientes")
	labels := make([]string, 0, 6)
	for _, b := range m.ProposalsByMonth {
		labels = append(labels, b.Month)
	}
	assert.Equal(t, []string{"Mar/25", "Abr/25", "Mai/25", "Jun/25", "Jul/25", "Ago/25"}, labels)
}

// El cambio de año no rompe el orden cronológico (Dez/24 antes que Jan/25).
func TestGetMetrics_OrdenCronologicoEntreAnios(t *testing.T) {
	proposals := []*entity.Proposal{
		proposalAt("P", entity.StatusPending, 1000, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		proposalAt("P", entity.StatusPending, 1000, time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)),
	}
	uc := analytics.NewMetricsUseCase(&stubRepo{proposals: proposals})

	m, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, m.ProposalsByMonth, 2)
	assert.Equal(t, "Dez/24", m.ProposalsByMonth[0].Month)
	assert.Equal(t, "Jan/25", m.ProposalsByMonth[1].Month)
}

// topProducts: count acumula todos los status, value solo el de aprobadas;
// corta en 5 entradas.
func TestGetMetrics_TopProducts(t *testing.T) {
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	var proposals []*entity.Proposal
	// Seis productos: "G" tiene más propuestas pero ninguna aprobada.
	proposals = append(proposals,
		proposalAt("A", entity.StatusApproved, 500, base),
		proposalAt("A", entity.StatusPending, 9999, base),
		proposalAt("B", entity.StatusApproved, 300, base),
		proposalAt("C", entity.StatusApproved, 200, base),
		proposalAt("D", entity.StatusApproved, 100, base),
		proposalAt("E", entity.StatusApproved, 50, base),
		proposalAt("G", entity.StatusPending, 8000, base),
		proposalAt("G", entity.StatusRejected, 8000, base),
		proposalAt("G", entity.StatusDraft, 8000, base),
	)
	uc := analytics.NewMetricsUseCase(&stubRepo{proposals: proposals})

	m, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, m.TopProducts, 5)

	assert.Equal(t, "A", m.TopProducts[0].Name)
	assert.Equal(t, 2, m.TopProducts[0].Count, "count incluye todos los status")
	assert.True(t, m.TopProducts[0].Value.Equal(decimal.NewFromInt(500)),
		"value acumula solo aprobadas")

	// "G" (solo pending/rejected/draft) acumula value 0 y queda fuera del top-5
	// frente a los productos con valor aprobado.
	for _, p := range m.TopProducts {
		assert.NotEqual(t, "G", p.Name)
	}
}
