// Package analytics contiene el caso de uso del dashboard: métricas derivadas
// bajo demanda de la colección de propuestas.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agisales/proposals-api/internal/application/dto"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
)

const (
	dashboardMonths      = 6 // buckets mensuales más recientes en el widget
	dashboardTopProducts = 5 // productos en el ranking del dashboard
)

// MetricsUseCase agrega la colección de propuestas en una sola pasada por
// métrica: contadores por status, tasa de aprobación, valor aprobado total,
// buckets mensuales y top de productos. Solo lee un snapshot del repositorio;
// no tiene almacenamiento propio.
type MetricsUseCase struct {
	repo repository.ProposalRepository
}

// NewMetricsUseCase construye el caso de uso.
func NewMetricsUseCase(repo repository.ProposalRepository) *MetricsUseCase {
	return &MetricsUseCase{repo: repo}
}

// GetMetrics construye el DashboardMetricsDTO a partir del snapshot actual.
func (uc *MetricsUseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	proposals, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: leer propuestas: %w", err)
	}

	total := len(proposals)
	var pending, approved, rejected int
	totalValue := decimal.Zero
	for _, p := range proposals {
		switch p.Status {
		case entity.StatusPending:
			pending++
		case entity.StatusApproved:
			approved++
			totalValue = totalValue.Add(p.Value)
		case entity.StatusRejected:
			rejected++
		}
	}

	// Tasa de aprobación: 0 con colección vacía, nunca división por cero.
	approvalRate := 0.0
	if total > 0 {
		approvalRate = float64(approved) / float64(total) * 100
	}

	return &dto.DashboardMetricsDTO{
		TotalProposals:    total,
		PendingProposals:  pending,
		ApprovedProposals: approved,
		RejectedProposals: rejected,
		ApprovalRate:      approvalRate,
		TotalValue:        totalValue,
		ProposalsByMonth:  groupByMonth(proposals),
		TopProducts:       topProducts(proposals),
	}, nil
}

// monthKey identifica un bucket (año, mes) de createdAt.
type monthKey struct {
	year  int
	month time.Month
}

// groupByMonth agrupa por (año, mes) de createdAt, ordena los buckets en orden
// cronológico ascendente y trunca a los 6 más recientes (los últimos tras el
// orden, no 6 arbitrarios).
func groupByMonth(proposals []*entity.Proposal) []dto.MonthBucketDTO {
	type bucket struct {
		total, approved, rejected int
	}
	buckets := make(map[monthKey]*bucket)
	for _, p := range proposals {
		k := monthKey{year: p.CreatedAt.Year(), month: p.CreatedAt.Month()}
		b := buckets[k]
		if b == nil {
			b = &bucket{}
			buckets[k] = b
		}
		b.total++
		switch p.Status {
		case entity.StatusApproved:
			b.approved++
		case entity.StatusRejected:
			b.rejected++
		}
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	if len(keys) > dashboardMonths {
		keys = keys[len(keys)-dashboardMonths:]
	}

	out := make([]dto.MonthBucketDTO, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, dto.MonthBucketDTO{
			Month:    monthLabel(k),
			Total:    b.total,
			Approved: b.approved,
			Rejected: b.rejected,
		})
	}
	return out
}

// monthLabel devuelve la etiqueta pt-BR del bucket, ej: "Out/25".
func monthLabel(k monthKey) string {
	months := [...]string{
		"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
		"Jul", "Ago", "Set", "Out", "Nov", "Dez",
	}
	return fmt.Sprintf("%s/%02d", months[k.month-1], k.year%100)
}

// topProducts agrupa por nombre exacto de producto: count acumula todos los
// status, value solo el de aprobadas. Ordena desc por value y corta en 5.
// El orden entre empates de value no está especificado; el sort estable lo deja
// en orden de primera aparición en la colección.
func topProducts(proposals []*entity.Proposal) []dto.TopProductDTO {
	type acc struct {
		count int
		value decimal.Decimal
	}
	products := make(map[string]*acc)
	var order []string
	for _, p := range proposals {
		a := products[p.Product]
		if a == nil {
			a = &acc{value: decimal.Zero}
			products[p.Product] = a
			order = append(order, p.Product)
		}
		a.count++
		if p.Status == entity.StatusApproved {
			a.value = a.value.Add(p.Value)
		}
	}

	out := make([]dto.TopProductDTO, 0, len(order))
	for _, name := range order {
		a := products[name]
		out = append(out, dto.TopProductDTO{Name: name, Count: a.count, Value: a.value})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if len(out) > dashboardTopProducts {
		out = out[:dashboardTopProducts]
	}
	return out
}
