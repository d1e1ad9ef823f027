package proposal

import (
	"context"
	"fmt"

	"github.com/agisales/proposals-api/internal/domain"
	"github.com/agisales/proposals-api/internal/domain/repository"
)

// PDFUseCase genera la ficha PDF de una propuesta existente.
type PDFUseCase struct {
	repo      repository.ProposalRepository
	generator ProposalPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.ProposalRepository, generator ProposalPDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// Generate devuelve los bytes del PDF; domain.ErrNotFound si el id no existe.
func (uc *PDFUseCase) Generate(ctx context.Context, id string) ([]byte, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	data, err := uc.generator.GenerateProposalPDF(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generar PDF de propuesta %s: %w", id, err)
	}
	return data, nil
}
