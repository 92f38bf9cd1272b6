package orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/dto"
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
	orders, ok := h.queryOrders(w, r)
	if !ok {
		return
	}

	ordersDTO := dto.FromOrderList(orders)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(ordersDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// queryOrders выбирает вариант выборки по query-параметрам:
// user_id и product_id взаимоисключающие.
func (h *Handler) queryOrders(w http.ResponseWriter, r *http.Request) ([]entities.Order, bool) {
	userIDStr := r.URL.Query().Get("user_id")
	productIDStr := r.URL.Query().Get("product_id")

	if userIDStr != "" && productIDStr != "" {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	switch {
	case userIDStr != "":
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return nil, false
		}
		orders, err := h.service.GetAllByUser(r.Context(), userID)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return nil, false
		}
		return orders, true

	case productIDStr != "":
		productID, err := strconv.ParseInt(productIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return nil, false
		}
		orders, err := h.service.GetAllByProduct(r.Context(), productID)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return nil, false
		}
		return orders, true

	default:
		orders, err := h.service.GetAll(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return nil, false
		}
		return orders, true
	}
}
