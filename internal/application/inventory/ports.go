package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD acotada a un producto,
// pasando repositorios atados a esa tx. Commit si fn devuelve nil; Rollback en cualquier otro caso.
//
// Dos llamadas con el mismo productID nunca se intercalan entre la lectura de la existencia y el Commit;
// llamadas con productos distintos no se bloquean entre sí.
type TxRunner interface {
	RunForProduct(ctx context.Context, productID int64, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
