package orders_get

import (
	"encoding/json"
	"net/http"

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
	filter, issues := parseFilter(r.URL.Query())
	if len(issues) > 0 {
		httperr.WriteValidation(w, h.log, issues)
		return
	}

	page, err := h.service.SearchOrders(r.Context(), filter)
	if err != nil {
		httperr.WriteError(w, h.log, err)
		return
	}

	// Data must serialize as [] rather than null on an empty page.
	result := dto.OrderSearchResult{
		Data:   make([]dto.Order, 0, len(page.Orders)),
		Total:  page.Total,
		Offset: page.Offset,
		Limit:  page.Limit,
	}
	for _, orderEntity := range page.Orders {
		result.Data = append(result.Data, dto.Order{
			OrderID:    orderEntity.OrderID,
			CustomerID: orderEntity.CustomerID,
			Status:     orderEntity.Status.String(),
			CreatedAt:  orderEntity.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
