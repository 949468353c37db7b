package order_put

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/dto"
	"service/internal/pkg/httperr"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if issues := validateOrderID(orderID); len(issues) > 0 {
		httperr.WriteValidation(w, h.log, issues)
		return
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
		httperr.WriteValidation(w, h.log, []httperr.Issue{
			{Field: "body", Message: "request body must be a JSON object"},
		})
		return
	}

	update, issues := parseUpdate(body)
	if len(issues) > 0 {
		httperr.WriteValidation(w, h.log, issues)
		return
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderID, update)
	if err != nil {
		httperr.WriteError(w, h.log, err)
		return
	}

	orderDTO := dto.Order{
		OrderID:    orderEntity.OrderID,
		CustomerID: orderEntity.CustomerID,
		Status:     orderEntity.Status.String(),
		CreatedAt:  orderEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(orderDTO); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
