package order_post

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
	var orderCreateDTO dto.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&orderCreateDTO); err != nil {
		httperr.WriteValidation(w, h.log, []httperr.Issue{
			{Field: "body", Message: "request body must be a JSON object"},
		})
		return
	}

	if issues := validate(orderCreateDTO); len(issues) > 0 {
		httperr.WriteValidation(w, h.log, issues)
		return
	}

	orderID, err := h.service.CreateOrder(r.Context(), orderCreateDTO.CustomerID)
	if err != nil {
		httperr.WriteError(w, h.log, err)
		return
	}

	response := dto.OrderCreateResponse{
		OrderID: orderID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
