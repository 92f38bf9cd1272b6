package order_delete

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	id := mux.Vars(r)["id"]

	receipt, err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ordercommands.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	receiptDTO := dto.FromReceipt(receipt)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	err = json.NewEncoder(w).Encode(receiptDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
