//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statustracker_test
package statustracker

import (
	"context"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
)

// Repository - append-only хранилище status-tracker-записей.
// Insert и выборки по заказам, никаких update и delete.
type Repository interface {
	Append(ctx context.Context, record entities.StatusTrackerRecord) (*entities.StatusTrackerRecord, error)
	GetByOrderID(ctx context.Context, orderID string) ([]entities.StatusTrackerRecord, error)
	GetByOrderIDs(ctx context.Context, orderIDs []string) ([]entities.StatusTrackerRecord, error)
	GetAll(ctx context.Context) ([]entities.StatusTrackerRecord, error)
}
