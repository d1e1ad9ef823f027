package repository

import (
	"context"

	"github.com/agisales/proposals-api/internal/domain/entity"
)

// ProposalRepository define el puerto de persistencia para Proposal (DIP).
//
// GetByID devuelve (nil, nil) si la propuesta no existe; el use case lo traduce
// a domain.ErrNotFound. Create inserta al frente de la colección (orden
// más-reciente-primero). Delete devuelve domain.ErrNotFound si el id no existe.
type ProposalRepository interface {
	GetAll(ctx context.Context) ([]*entity.Proposal, error)
	GetByID(ctx context.Context, id string) (*entity.Proposal, error)
	Create(ctx context.Context, p *entity.Proposal) error
	Update(ctx context.Context, p *entity.Proposal) error
	Delete(ctx context.Context, id string) error
}
