package proposal

import (
	"context"

	"github.com/agisales/proposals-api/internal/domain/entity"
)

// ProposalPDFGenerator puerto para generar la ficha imprimible de una propuesta.
// Lo implementa infrastructure/pdf (Maroto v2).
type ProposalPDFGenerator interface {
	GenerateProposalPDF(ctx context.Context, p *entity.Proposal) ([]byte, error)
}
