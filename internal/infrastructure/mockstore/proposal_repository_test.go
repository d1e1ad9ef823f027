package mockstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agisales/proposals-api/internal/domain"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/infrastructure/kvstore"
	"github.com/agisales/proposals-api/internal/infrastructure/mockstore"
	"github.com/agisales/proposals-api/pkg/logger"
)

func newRepo(t *testing.T) *mockstore.ProposalRepo {
	t.Helper()
	store := kvstore.NewFileStore(t.TempDir(), "app", logger.Nop())
	return mockstore.NewProposalRepository(store, logger.Nop())
}

// Primer acceso con storage vacío: siembra los 5 fixtures y los persiste.
func TestProposalRepo_SiembraUnaSolaVez(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 5, "el seed debe tener 5 propuestas")

	// Mutar la colección: la siguiente lectura debe devolver la mutación,
	// no el fixture de nuevo.
	require.NoError(t, repo.Delete(ctx, first[0].ID))

	second, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 4, "GetAll debe devolver la colección mutada, no re-sembrar")
}

func TestProposalRepo_CreatePrependea(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	p := &entity.Proposal{
		ID:           "nueva",
		CustomerName: "Cliente Teste",
		Product:      "Produto Teste",
		Value:        decimal.NewFromInt(10000),
		Status:       entity.StatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, p))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "nueva", all[0].ID, "la propuesta nueva debe quedar al frente")
}

func TestProposalRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	got, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Consultoria em Cloud Computing", got.Product)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(85000)))

	missing, err := repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing, "id inexistente devuelve (nil, nil)")
}

func TestProposalRepo_UpdatePersiste(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	p, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, p)

	p.Status = entity.StatusApproved
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

func TestProposalRepo_UpdateInexistente(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	err := repo.Update(ctx, &entity.Proposal{ID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProposalRepo_DeleteInexistente(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	err := repo.Delete(ctx, "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
