package app

import (
	ordercmdhandler "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/kafka-consumer/order_commands"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/order_delete"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/order_get"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/order_post"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/order_put"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/order_status_put"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/orders_get"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/background"
)

type Application struct {
	ServiceOrder         ServiceOrder
	ServiceOrderCommands ServiceOrderCommands
	BackgroundWorkers    *background.Worker
}

// ServiceOrder - читающая сторона: агрегаты собираются синхронно из БД.
type ServiceOrder interface {
	order_get.Service
	orders_get.Service
}

// ServiceOrderCommands - пишущая сторона: мутации уходят командами в Kafka,
// хендлеры отдают квитанцию, а не результат применения.
type ServiceOrderCommands interface {
	order_post.Service
	order_put.Service
	order_status_put.Service
	order_delete.Service
}

type KafkaWorkerApp struct {
	CommandHandlerFactory ordercmdhandler.HandlerFactory
}
