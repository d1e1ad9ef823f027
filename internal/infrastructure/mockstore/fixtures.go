package mockstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agisales/proposals-api/internal/domain/entity"
)

// seedProposals devuelve el set fijo de 5 propuestas que se persiste la primera
// vez que la colección está vacía (2 pending, 2 approved, 1 rejected).
func seedProposals() []*entity.Proposal {
	return []*entity.Proposal{
		{
			ID:            "1",
			CustomerName:  "João Silva",
			CustomerEmail: "joao.silva@example.com",
			Product:       "Sistema ERP Enterprise",
			Value:         decimal.NewFromInt(150000),
			Description:   "Implementação completa de sistema ERP para gestão empresarial com módulos de vendas, estoque, financeiro e RH",
			Status:        entity.StatusPending,
			CreatedBy:     "1",
			CreatedByName: "João Vendedor",
			CreatedAt:     time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			CustomerName:   "Maria Santos",
			CustomerEmail:  "maria.santos@example.com",
			Product:        "Consultoria em Cloud Computing",
			Value:          decimal.NewFromInt(85000),
			Description:    "Consultoria especializada para migração de infraestrutura para nuvem AWS com otimização de custos",
			Status:         entity.StatusApproved,
			CreatedBy:      "1",
			CreatedByName:  "João Vendedor",
			ApprovedBy:     "2",
			ApprovedByName: "Maria Gerente",
			CreatedAt:      time.Date(2025, 9, 28, 14, 30, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2025, 9, 29, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:             "3",
			CustomerName:   "Pedro Oliveira",
			CustomerEmail:  "pedro.oliveira@example.com",
			Product:        "Desenvolvimento de App Mobile",
			Value:          decimal.NewFromInt(120000),
			Description:    "Desenvolvimento de aplicativo mobile nativo para iOS e Android com integração a sistemas legados",
			Status:         entity.StatusRejected,
			CreatedBy:      "1",
			CreatedByName:  "João Vendedor",
			ApprovedBy:     "2",
			ApprovedByName: "Maria Gerente",
			CreatedAt:      time.Date(2025, 9, 25, 11, 20, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2025, 9, 26, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:            "4",
			CustomerName:  "Ana Costa",
			CustomerEmail: "ana.costa@example.com",
			Product:       "Plataforma E-commerce",
			Value:         decimal.NewFromInt(95000),
			Description:   "Desenvolvimento de plataforma e-commerce completa com integração a gateways de pagamento e marketplaces",
			Status:        entity.StatusPending,
			CreatedBy:     "1",
			CreatedByName: "João Vendedor",
			CreatedAt:     time.Date(2025, 10, 2, 8, 45, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2025, 10, 2, 8, 45, 0, 0, time.UTC),
		},
		{
			ID:             "5",
			CustomerName:   "Carlos Mendes",
			CustomerEmail:  "carlos.mendes@example.com",
			Product:        "Auditoria de Segurança",
			Value:          decimal.NewFromInt(45000),
			Description:    "Auditoria completa de segurança da informação com testes de penetração e análise de vulnerabilidades",
			Status:         entity.StatusApproved,
			CreatedBy:      "1",
			CreatedByName:  "João Vendedor",
			ApprovedBy:     "2",
			ApprovedByName: "Maria Gerente",
			CreatedAt:      time.Date(2025, 9, 20, 13, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2025, 9, 21, 10, 30, 0, 0, time.UTC),
		},
	}
}
