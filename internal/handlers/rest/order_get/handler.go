package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/dto"
	orderservice "github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/order"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	orderEntity, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderservice.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
