// Package sqlite implementa los repositorios sobre SQLite embebido (gorm + gorm.io/driver/sqlite).
//
// El handle se limita a una conexión abierta: SQLite serializa las escrituras de todos modos y así
// el proceso nunca recibe SQLITE_BUSY. La exclusión por producto la aporta TxRunner (mutex por product_id).
package sqlite

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/stock-ledger/pkg/config"
)

//go:embed schema.sql
var schemaSQL string

const memoryPath = ":memory:"

// Open abre (o crea) la base SQLite con llaves foráneas activas y aplica el esquema.
func Open(ctx context.Context, cfg config.SQLiteConfig) (*gorm.DB, error) {
	path := cfg.Path
	if path == "" {
		path = memoryPath
	}
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de la base: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=%d", path, cfg.BusyTimeoutMS)
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("aplicar esquema: %w", err)
	}
	return db, nil
}

// Store agrupa el handle gorm y el TxRunner; todos los repositorios comparten la misma conexión.
type Store struct {
	db       *gorm.DB
	txRunner *TxRunner
}

// NewStore construye el store sobre un handle abierto con Open.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, txRunner: NewTxRunner(db)}
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Products() *ProductRepo   { return NewProductRepository(s.db) }
func (s *Store) Users() *UserRepo         { return NewUserRepository(s.db) }
func (s *Store) Movements() *MovementRepo { return NewMovementRepository(s.db) }
func (s *Store) Reports() *ReportRepo     { return NewReportRepository(s.db) }

// TxRunner devuelve el runner compartido (un único juego de locks por store).
func (s *Store) TxRunner() *TxRunner { return s.txRunner }
