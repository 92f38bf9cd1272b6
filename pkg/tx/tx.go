package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager оборачивает trm-менеджер поверх pgx-пула. Применение команды
// на заказ затрагивает и строку заказа, и журнал статусов - частичное
// применение недопустимо, поэтому репозитории под fn достают транзакцию
// из контекста через CtxGetter.
type Manager struct {
	trm *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		trm: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do выполняет fn в одной транзакции с уровнем read committed.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
	)
	return m.trm.DoWithSettings(ctx, txSettings, fn)
}
