//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commands_test
package commands

import "context"

type producer interface {
	SendMessage(ctx context.Context, topic, key string, value []byte) error
}
