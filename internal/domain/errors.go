package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los casos esperados (no encontrado, email duplicado, stock insuficiente, entrada inválida) se distinguen
// con errors.Is; las fallas de almacenamiento llegan siempre como *StorageError.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = fmt.Errorf("producto: %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("usuario: %w", ErrNotFound)
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStorage            = errors.New("falla de almacenamiento")
)

// InsufficientStockError indica que la cantidad pedida supera la disponible.
// errors.Is(err, ErrInsufficientStock) es verdadero.
type InsufficientStockError struct {
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// StorageError envuelve un error del motor de persistencia (conexión, disco, SQL).
// No es recuperable localmente: los casos de uso lo propagan sin reintentar.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError construye el error; Op describe la operación ("get product", "commit transaction").
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// AvailableStock devuelve la cantidad disponible reportada por un error de stock insuficiente.
func AvailableStock(err error) (int64, bool) {
	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		return stockErr.Available, true
	}
	return 0, false
}
