package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
)

// CommandGateway кладет команды заказов в топик брокера. Публикация
// fire-and-forget: подтверждается только постановка в очередь продюсера,
// доставкой и ретраями занимается сам продюсер.
type CommandGateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *CommandGateway {
	return &CommandGateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *CommandGateway) Publish(ctx context.Context, command ordercommands.Command) error {
	payload, err := json.Marshal(command)
	if err != nil {
		return fmt.Errorf("marshal command %s: %w", command.ID, err)
	}

	start := time.Now()
	// ключ партиционирования - id заказа: порядок по одному заказу
	// сохраняется настолько, насколько его сохраняет транспорт
	err = g.producer.SendMessage(ctx, g.topic, command.OrderID, payload)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	CommandsPublishedTotal.WithLabelValues(command.Type.String(), outcome).Inc()
	CommandPublishDuration.WithLabelValues(command.Type.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("send command %s to topic %s: %w", command.ID, g.topic, err)
	}
	return nil
}
