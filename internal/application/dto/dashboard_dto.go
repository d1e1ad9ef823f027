package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO respuesta de GET /api/dashboard/metrics.
// Derivada bajo demanda de la colección de propuestas; no se persiste.
type DashboardMetricsDTO struct {
	TotalProposals    int `json:"totalProposals"`
	PendingProposals  int `json:"pendingProposals"`
	ApprovedProposals int `json:"approvedProposals"`
	RejectedProposals int `json:"rejectedProposals"`

	// ApprovalRate = approved/total*100; 0 si la colección está vacía.
	ApprovalRate float64 `json:"approvalRate"`

	// TotalValue suma el value solo de propuestas aprobadas.
	TotalValue decimal.Decimal `json:"totalValue"`

	// ProposalsByMonth: buckets (año, mes) en orden cronológico ascendente,
	// truncados a los 6 más recientes.
	ProposalsByMonth []MonthBucketDTO `json:"proposalsByMonth"`

	// TopProducts: hasta 5 productos ordenados desc por valor aprobado acumulado.
	TopProducts []TopProductDTO `json:"topProducts"`
}

// MonthBucketDTO agregado mensual de propuestas.
type MonthBucketDTO struct {
	Month    string `json:"month"` // etiqueta "Mmm/AA", ej: "Out/25"
	Total    int    `json:"total"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
}

// TopProductDTO agregado por producto: count cuenta todos los status, value
// acumula solo el valor de propuestas aprobadas.
type TopProductDTO struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}
