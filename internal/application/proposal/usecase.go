// Package proposal contiene los casos de uso CRUD + approve/reject sobre la
// colección de propuestas. El actor se recibe como parámetro explícito en cada
// operación que estampa identidad; no hay estado global de sesión.
package proposal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agisales/proposals-api/internal/application/dto"
	"github.com/agisales/proposals-api/internal/domain"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
)

// Identidad por defecto cuando no hay actor (paridad con el comportamiento del
// modo sin sesión).
const (
	defaultActorID   = "1"
	defaultActorName = "Usuário"
)

// ProposalUseCase casos de uso sobre propuestas.
type ProposalUseCase struct {
	repo repository.ProposalRepository
}

// NewProposalUseCase construye el caso de uso.
func NewProposalUseCase(repo repository.ProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

// GetAll devuelve la colección completa (más-reciente-primero).
func (uc *ProposalUseCase) GetAll(ctx context.Context) ([]dto.ProposalResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProposalResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProposalResponse(p))
	}
	return items, nil
}

// GetByID obtiene una propuesta; domain.ErrNotFound si no existe.
func (uc *ProposalUseCase) GetByID(ctx context.Context, id string) (*dto.ProposalResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProposalResponse(p), nil
}

// Create crea una propuesta nueva: id único, status pending, identidad del
// creador tomada del actor (o la identidad por defecto si actor es nil).
func (uc *ProposalUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	if !in.Value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	createdBy, createdByName := defaultActorID, defaultActorName
	if actor != nil {
		createdBy, createdByName = actor.ID, actor.Name
	}
	now := time.Now()
	p := &entity.Proposal{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Product:       in.Product,
		Value:         in.Value,
		Description:   in.Description,
		Status:        entity.StatusPending,
		CreatedBy:     createdBy,
		CreatedByName: createdByName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProposalResponse(p), nil
}

// Update aplica el patch sobre la propuesta existente y refresca updatedAt.
// Si el patch trae un status distinto al previo, estampa approvedBy/Name con la
// identidad del actor, sea cual sea el estado destino (también draft/pending).
func (uc *ProposalUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateProposalRequest) (*dto.ProposalResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerName != nil {
		p.CustomerName = *in.CustomerName
	}
	if in.CustomerEmail != nil {
		p.CustomerEmail = *in.CustomerEmail
	}
	if in.Product != nil {
		p.Product = *in.Product
	}
	if in.Value != nil {
		if !in.Value.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		p.Value = *in.Value
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if *in.Status != p.Status {
			approvedBy, approvedByName := defaultActorID, defaultActorName
			if actor != nil {
				approvedBy, approvedByName = actor.ID, actor.Name
			}
			p.ApprovedBy = approvedBy
			p.ApprovedByName = approvedByName
		}
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProposalResponse(p), nil
}

// Delete elimina una propuesta; domain.ErrNotFound si no existe.
func (uc *ProposalUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Approve wrapper de Update con status approved.
func (uc *ProposalUseCase) Approve(ctx context.Context, actor *entity.User, id string) (*dto.ProposalResponse, error) {
	status := entity.StatusApproved
	return uc.Update(ctx, actor, id, dto.UpdateProposalRequest{Status: &status})
}

// Reject wrapper de Update con status rejected.
func (uc *ProposalUseCase) Reject(ctx context.Context, actor *entity.User, id string) (*dto.ProposalResponse, error) {
	status := entity.StatusRejected
	return uc.Update(ctx, actor, id, dto.UpdateProposalRequest{Status: &status})
}

func toProposalResponse(p *entity.Proposal) *dto.ProposalResponse {
	if p == nil {
		return nil
	}
	return &dto.ProposalResponse{
		ID:             p.ID,
		CustomerName:   p.CustomerName,
		CustomerEmail:  p.CustomerEmail,
		Product:        p.Product,
		Value:          p.Value,
		Description:    p.Description,
		Status:         p.Status,
		CreatedBy:      p.CreatedBy,
		CreatedByName:  p.CreatedByName,
		ApprovedBy:     p.ApprovedBy,
		ApprovedByName: p.ApprovedByName,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
