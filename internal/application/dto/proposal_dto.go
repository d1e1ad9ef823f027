package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProposalRequest entrada para crear una propuesta. El status siempre nace
// en "pending" y la identidad del creador viene del actor, no del cuerpo.
type CreateProposalRequest struct {
	CustomerName  string          `json:"customerName" validate:"required,min=1,max=200"`
	CustomerEmail string          `json:"customerEmail" validate:"required,email"`
	Product       string          `json:"product" validate:"required,min=1,max=200"`
	Value         decimal.Decimal `json:"value" validate:"required"`
	Description   string          `json:"description" validate:"omitempty,max=2000"`
}

// UpdateProposalRequest patch parcial: solo los campos presentes se aplican.
type UpdateProposalRequest struct {
	CustomerName  *string          `json:"customerName"`
	CustomerEmail *string          `json:"customerEmail"`
	Product       *string          `json:"product"`
	Value         *decimal.Decimal `json:"value"`
	Description   *string          `json:"description"`
	Status        *string          `json:"status" validate:"omitempty,oneof=draft pending approved rejected"`
}

// ProposalResponse salida de una propuesta.
type ProposalResponse struct {
	ID             string          `json:"id"`
	CustomerName   string          `json:"customerName"`
	CustomerEmail  string          `json:"customerEmail"`
	Product        string          `json:"product"`
	Value          decimal.Decimal `json:"value"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	CreatedBy      string          `json:"createdBy"`
	CreatedByName  string          `json:"createdByName"`
	ApprovedBy     string          `json:"approvedBy,omitempty"`
	ApprovedByName string          `json:"approvedByName,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
