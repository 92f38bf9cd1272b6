package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/entities"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/handlers/rest/dto"
	"github.com/GorbunovIvan/e-commerce-platform-sub000/internal/service/ordercommands"
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
	var req dto.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModify := entities.OrderModify{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	receipt, err := h.service.Create(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, ordercommands.ErrMissingRequiredFields),
			errors.Is(err, ordercommands.ErrInvalidQuantity):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	receiptDTO := dto.FromReceipt(receipt)

	// 202: команда принята, но еще не применена
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	err = json.NewEncoder(w).Encode(receiptDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
