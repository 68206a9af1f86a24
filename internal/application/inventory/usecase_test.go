package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

func newUseCase(store *memStore) *inventory.WithdrawUseCase {
	return inventory.NewWithdrawUseCase(store, store, zerolog.Nop())
}

func seedProduct(store *memStore, qty int64, price string) {
	store.addProduct(entity.Product{ID: 1, Name: "Chocolate Ice Pop", Quantity: qty, UnitPrice: decimal.RequireFromString(price)})
}

func TestWithdraw_Exitoso_DecrementaYRegistraMovimiento(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 100, "2.5")
	uc := newUseCase(store)

	mov, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 1, ProductID: 1, Quantity: 30})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, int64(70), store.product(1).Quantity)
	assert.Equal(t, 1, store.movementCount())
	assert.Equal(t, int64(30), mov.Quantity)
	assert.True(t, decimal.RequireFromString("2.5").Equal(mov.UnitPrice), "el precio debe ser el del momento del retiro")
	assert.True(t, decimal.RequireFromString("75").Equal(mov.Total()))
	assert.False(t, mov.CreatedAt.IsZero())
}

func TestWithdraw_StockInsuficiente_ReportaDisponibleYNoModifica(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 100, "2.5")
	uc := newUseCase(store)

	mov, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 1, ProductID: 1, Quantity: 150})

	assert.Nil(t, mov)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	available, ok := domain.AvailableStock(err)
	require.True(t, ok)
	assert.Equal(t, int64(100), available)
	assert.Equal(t, int64(100), store.product(1).Quantity)
	assert.Zero(t, store.movementCount())
}

func TestWithdraw_ProductoInexistente_NotFoundSinMovimiento(t *testing.T) {
	store := newMemStore()
	uc := newUseCase(store)

	_, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 1, ProductID: 99, Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, store.movementCount())
}

func TestWithdraw_UsuarioInexistente_RollbackCompleto(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, "1")
	uc := newUseCase(store)

	_, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 42, ProductID: 1, Quantity: 3})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, int64(10), store.product(1).Quantity, "el decremento no debe persistir sin movimiento")
	assert.Zero(t, store.movementCount())
}

func TestWithdraw_CantidadInvalida(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, "1")
	uc := newUseCase(store)

	for _, qty := range []int64{0, -5} {
		_, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 1, ProductID: 1, Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", qty)
	}
	assert.Equal(t, int64(10), store.product(1).Quantity)
}

func TestWithdraw_IDsNoPositivos_NotFound(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, "1")
	uc := newUseCase(store)

	for _, id := range []int64{0, -3} {
		_, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 1, ProductID: id, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrProductNotFound, "product_id %d", id)

		_, err = uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: id, ProductID: 1, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrUserNotFound, "user_id %d", id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Equal(t, int64(10), store.product(1).Quantity)
	assert.Zero(t, store.movementCount())
}

func TestWithdraw_ErrorDeAlmacenamiento_SePropagaSinEscrituraParcial(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 10, "1")
	store.failMovWith = domain.NewStorageError("insert movement", errors.New("disk I/O error"))
	uc := newUseCase(store)

	_, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 1, ProductID: 1, Quantity: 3})

	require.ErrorIs(t, err, domain.ErrStorage)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), store.product(1).Quantity)
	assert.Zero(t, store.movementCount())
}

func TestWithdraw_SecuenciaDeRetiros_NuncaNegativo(t *testing.T) {
	store := newMemStore()
	seedProduct(store, 20, "3")
	uc := newUseCase(store)

	var withdrawn int64
	for _, qty := range []int64{5, 7, 10, 8, 1} {
		if _, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 2, ProductID: 1, Quantity: qty}); err == nil {
			withdrawn += qty
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
		assert.GreaterOrEqual(t, store.product(1).Quantity, int64(0))
	}
	assert.Equal(t, int64(20)-withdrawn, store.product(1).Quantity)
}

func TestWithdraw_Concurrente_NRetirosAgotanExistencia(t *testing.T) {
	const n = 40
	store := newMemStore()
	seedProduct(store, n, "1")
	uc := newUseCase(store)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Withdraw(context.Background(), inventory.WithdrawInput{UserID: 1, ProductID: 1, Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), store.product(1).Quantity)
	assert.Equal(t, n, store.movementCount())

	history, err := uc.ListByProduct(context.Background(), 1, 100, 0)
	require.NoError(t, err)
	assert.Len(t, history, n)
}
