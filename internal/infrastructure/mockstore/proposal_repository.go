// Package mockstore implementa los puertos de persistencia sobre el kvstore
// namespaced, simulando un backend sin red: colección de propuestas con seed
// inicial, directorio fijo de usuarios y sesión token+user.
package mockstore

import (
	"context"
	"sync"

	"github.com/agisales/proposals-api/internal/domain"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
	"github.com/agisales/proposals-api/internal/infrastructure/kvstore"
	"github.com/agisales/proposals-api/pkg/logger"
)

const keyProposals = "proposals"

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación del puerto ProposalRepository sobre el kvstore.
//
// El mutex serializa los ciclos read-modify-write dentro del proceso; entre
// procesos rige last-write-wins (limitación documentada del kvstore).
type ProposalRepo struct {
	store kvstore.Store
	log   *logger.Logger
	mu    sync.Mutex
}

// NewProposalRepository construye el adaptador de persistencia de propuestas.
func NewProposalRepository(store kvstore.Store, log *logger.Logger) *ProposalRepo {
	return &ProposalRepo{store: store, log: log}
}

// load devuelve la colección persistida; si está ausente, siembra el fixture
// (una sola vez por estado de storage vacío) y lo persiste antes de devolverlo.
func (r *ProposalRepo) load() []*entity.Proposal {
	var proposals []*entity.Proposal
	found, err := r.store.Get(keyProposals, &proposals)
	if err != nil || !found {
		seed := seedProposals()
		r.store.Set(keyProposals, seed)
		r.log.Info().Int("count", len(seed)).Msg("mockstore: colección sembrada con fixtures")
		return seed
	}
	return proposals
}

func (r *ProposalRepo) save(proposals []*entity.Proposal) {
	r.store.Set(keyProposals, proposals)
}

// GetAll devuelve la colección completa (orden más-reciente-primero).
func (r *ProposalRepo) GetAll(_ context.Context) ([]*entity.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

// GetByID busca linealmente por id; (nil, nil) si no existe.
func (r *ProposalRepo) GetByID(_ context.Context, id string) (*entity.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create inserta la propuesta al frente de la colección y persiste.
func (r *ProposalRepo) Create(_ context.Context, p *entity.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	proposals := r.load()
	r.save(append([]*entity.Proposal{p}, proposals...))
	return nil
}

// Update reemplaza la propuesta con el mismo id y persiste la colección completa.
func (r *ProposalRepo) Update(_ context.Context, p *entity.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	proposals := r.load()
	for i, existing := range proposals {
		if existing.ID == p.ID {
			proposals[i] = p
			r.save(proposals)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la propuesta por id; domain.ErrNotFound si no existe.
func (r *ProposalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	proposals := r.load()
	filtered := proposals[:0:0]
	for _, p := range proposals {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(proposals) {
		return domain.ErrNotFound
	}
	r.save(filtered)
	return nil
}
