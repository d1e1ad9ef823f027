package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agisales/proposals-api/internal/domain"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
)

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación del puerto ProposalRepository sobre PostgreSQL.
// El orden más-reciente-primero lo aporta ORDER BY created_at DESC, equivalente
// al prepend de la variante mock.
type ProposalRepo struct {
	pool *pgxpool.Pool
}

// NewProposalRepository construye el adaptador de persistencia para propuestas.
func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepo {
	return &ProposalRepo{pool: pool}
}

const proposalColumns = `
	id, customer_name, customer_email, product, value, description, status,
	created_by, created_by_name, approved_by, approved_by_name, created_at, updated_at`

func scanProposal(row pgx.Row) (*entity.Proposal, error) {
	var p entity.Proposal
	var approvedBy, approvedByName sql.NullString
	err := row.Scan(
		&p.ID, &p.CustomerName, &p.CustomerEmail, &p.Product, &p.Value, &p.Description, &p.Status,
		&p.CreatedBy, &p.CreatedByName, &approvedBy, &approvedByName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ApprovedBy = approvedBy.String
	p.ApprovedByName = approvedByName.String
	return &p, nil
}

// GetAll devuelve todas las propuestas, más recientes primero.
func (r *ProposalRepo) GetAll(ctx context.Context) ([]*entity.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene una propuesta por ID; (nil, nil) si no existe.
func (r *ProposalRepo) GetByID(ctx context.Context, id string) (*entity.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1`
	p, err := scanProposal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal by id: %w", err)
	}
	return p, nil
}

// Create persiste una nueva propuesta.
func (r *ProposalRepo) Create(ctx context.Context, p *entity.Proposal) error {
	query := `
		INSERT INTO proposals (id, customer_name, customer_email, product, value, description, status,
			created_by, created_by_name, approved_by, approved_by_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.CustomerName, p.CustomerEmail, p.Product, p.Value, p.Description, p.Status,
		p.CreatedBy, p.CreatedByName, nullable(p.ApprovedBy), nullable(p.ApprovedByName),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}
	return nil
}

// Update actualiza una propuesta existente; domain.ErrNotFound si el id no existe.
func (r *ProposalRepo) Update(ctx context.Context, p *entity.Proposal) error {
	query := `
		UPDATE proposals SET customer_name = $2, customer_email = $3, product = $4, value = $5,
			description = $6, status = $7, approved_by = $8, approved_by_name = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.CustomerName, p.CustomerEmail, p.Product, p.Value,
		p.Description, p.Status, nullable(p.ApprovedBy), nullable(p.ApprovedByName), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una propuesta por ID; domain.ErrNotFound si no existe.
func (r *ProposalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM proposals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
