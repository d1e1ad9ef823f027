package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Proposal.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Proposal es una propuesta comercial. Los tags JSON siguen el layout persistido
// bajo la clave "proposals" del kvstore (array de propuestas).
//
// ApprovedBy/ApprovedByName se estampan cuando una actualización cambia Status
// respecto a su valor previo, sin importar el estado destino.
type Proposal struct {
	ID             string          `json:"id"`
	CustomerName   string          `json:"customerName"`
	CustomerEmail  string          `json:"customerEmail"`
	Product        string          `json:"product"`
	Value          decimal.Decimal `json:"value"` // monto en moneda, > 0
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	CreatedBy      string          `json:"createdBy"`
	CreatedByName  string          `json:"createdByName"`
	ApprovedBy     string          `json:"approvedBy,omitempty"`
	ApprovedByName string          `json:"approvedByName,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
