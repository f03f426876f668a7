package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/GH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GH-BookingService/pkg/txmanager"
)

// sqlDBBeginner адаптер *sql.DB под dbmetrics.TxBeginner
type sqlDBBeginner struct {
	db *sql.DB
}

func (b *sqlDBBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTransactionManager создает transaction manager поверх голого *sql.DB,
// без обертки метрик. Используется, когда метрики выключены в конфиге.
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(&sqlDBBeginner{db: db})
}
