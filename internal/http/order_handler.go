package http

import (
	"encoding/json"
	"net/http"

	"github.com/nikita1503agarwal/storefront-backend/internal/apperr"
	"github.com/nikita1503agarwal/storefront-backend/internal/model"
	"github.com/nikita1503agarwal/storefront-backend/internal/service"
)

type CreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (s *Service) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		s.writeError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	id, err := s.orderSvc.CreateOrder(r.Context(), order)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, CreateOrderResponse{
		ID:     id,
		Status: service.OrderStatusReceived,
	})
}
