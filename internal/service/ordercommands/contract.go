//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordercommands_test
package ordercommands

import "context"

type Publisher interface {
	Publish(ctx context.Context, command Command) error
}
