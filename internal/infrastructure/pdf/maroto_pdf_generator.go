// Package pdf implementa la ficha imprimible de una propuesta comercial.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proposta Comercial  │  ID + Fecha de creación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email                                    │
//	│  PRODUCTO: Nombre + Valor + Status                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN                                                │
//	│  FOOTER: creador / aprobador + última actualización         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appproposal "github.com/agisales/proposals-api/internal/application/proposal"
	"github.com/agisales/proposals-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas de status para la ficha.
var statusLabels = map[string]string{
	entity.StatusDraft:    "Rascunho",
	entity.StatusPending:  "Pendente",
	entity.StatusApproved: "Aprovada",
	entity.StatusRejected: "Rejeitada",
}

// moneyPrinter formatea montos con separadores pt-BR (150.000,00).
var moneyPrinter = message.NewPrinter(language.BrazilianPortuguese)

var _ appproposal.ProposalPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa proposal.ProposalPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateProposalPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProposalPDF(_ context.Context, p *entity.Proposal) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Proposta Comercial "+p.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(p))
	m.AddRows(productRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range descriptionRows(p) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) e identificación + fecha (der).
func headerRow(p *entity.Proposal) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("PROPOSTA COMERCIAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(statusLabel(p.Status), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Nº "+p.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Criada em: "+p.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(p *entity.Proposal) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+p.CustomerEmail, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// productRow: producto, valor y status.
func productRow(p *entity.Proposal) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("PRODUTO / SERVIÇO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Product, props.Text{Size: 10, Top: 7}),
		),
		col.New(4).Add(
			text.New("VALOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("R$ "+formatMoney(p), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// descriptionRows: descripción en párrafos.
func descriptionRows(p *entity.Proposal) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("DESCRIÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		desc = "—"
	}
	rows = append(rows, row.New(16).Add(col.New(12).Add(
		text.New(desc, props.Text{Size: 9, Top: 1, Color: colorGray}),
	)))
	return rows
}

// footerRow: identidad del creador y, si aplica, del aprobador.
func footerRow(p *entity.Proposal) core.Row {
	decidedBy := "—"
	if p.ApprovedByName != "" {
		decidedBy = p.ApprovedByName
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Criada por: "+p.CreatedByName, props.Text{Size: 8, Top: 2, Color: colorGray}),
			text.New("Decidida por: "+decidedBy, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Última atualização: "+p.UpdatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// formatMoney formatea el valor con separadores pt-BR, dos decimales.
func formatMoney(p *entity.Proposal) string {
	v, _ := p.Value.Float64()
	return moneyPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
