package http

import (
	"encoding/json"
	"net/http"

	"github.com/nikita1503agarwal/storefront-backend/internal/apperr"
	"github.com/nikita1503agarwal/storefront-backend/internal/model"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateProductResponse struct {
	ID string `json:"id"`
}

func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Hello from the Storefront Backend!"})
}

func (s *Service) handleHello(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Hello from the backend API!"})
}

func (s *Service) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalogSvc.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, products)
}

func (s *Service) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		s.writeError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	id, err := s.catalogSvc.CreateProduct(r.Context(), product)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, CreateProductResponse{ID: id})
}
