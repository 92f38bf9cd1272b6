package order_commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	orderservice "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/order"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт - выходим
				h.log.Info("order.commands: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) - выходим
			h.log.Info("order.commands: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing применяет одну команду из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста):
// сообщение не помечается и будет доставлено повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var command ordercommands.Command
	err := json.Unmarshal(message.Value, &command)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.commands handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("command_id", command.ID),
		logger.NewField("command", command.Type.String()),
		logger.NewField("order", command.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.commands processing")

	executeFn, err := h.factory.GetHandler(command.Type)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.commands handler unknown command type")
		sess.MarkMessage(message, "")
		return false
	}

	if err := executeFn(ctx, command); err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.commands handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.commands handler order not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.commands handler failed to apply command")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.commands: applied")

	sess.MarkMessage(message, "")
	return false
}
