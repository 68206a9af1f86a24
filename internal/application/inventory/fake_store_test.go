package inventory_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// memStore store en memoria con semántica de tx: fn trabaja sobre una copia que solo se publica en Commit.
type memStore struct {
	mu          sync.Mutex
	products    map[int64]entity.Product
	movements   []entity.Movement
	users       map[int64]bool
	failMovWith error // si no es nil, Create de movimientos falla con este error
}

func newMemStore() *memStore {
	return &memStore{products: map[int64]entity.Product{}, users: map[int64]bool{1: true, 2: true}}
}

func (s *memStore) addProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *memStore) product(id int64) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id]
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

func (s *memStore) RunForProduct(ctx context.Context, productID int64, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, products: map[int64]entity.Product{}}
	for id, p := range s.products {
		tx.products[id] = p
	}
	if err := fn(&memProductRepo{tx: tx}, &memMovementRepo{tx: tx}); err != nil {
		return err
	}
	s.products = tx.products
	for _, m := range tx.pending {
		m.ID = int64(len(s.movements) + 1)
		s.movements = append(s.movements, m)
	}
	return nil
}

func (s *memStore) ListByProduct(_ context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Movement
	for i := len(s.movements) - 1; i >= 0; i-- {
		if s.movements[i].ProductID == productID {
			m := s.movements[i]
			out = append(out, &m)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) Create(context.Context, *entity.Movement) error {
	return errors.New("no usar fuera de tx")
}

type memTx struct {
	store    *memStore
	products map[int64]entity.Product
	pending  []entity.Movement
}

type memProductRepo struct{ tx *memTx }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = int64(len(r.tx.products) + 1)
	r.tx.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.tx.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) DecrementQuantity(_ context.Context, id, quantity int64) error {
	p := r.tx.products[id]
	if p.Quantity < quantity {
		return &domain.InsufficientStockError{Available: p.Quantity, Requested: quantity}
	}
	p.Quantity -= quantity
	r.tx.products[id] = p
	return nil
}

func (r *memProductRepo) List(context.Context, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type memMovementRepo struct{ tx *memTx }

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.tx.store.failMovWith != nil {
		return r.tx.store.failMovWith
	}
	if !r.tx.store.users[m.UserID] {
		return domain.ErrUserNotFound
	}
	r.tx.pending = append(r.tx.pending, *m)
	return nil
}

func (r *memMovementRepo) ListByProduct(context.Context, int64, int, int) ([]*entity.Movement, error) {
	return nil, nil
}
