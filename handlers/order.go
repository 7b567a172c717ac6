package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/foodcourt/models"
	"github.com/ray-remotestate/foodcourt/pricing"
)

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Items        []models.LineItemRequest `json:"items"`
		CustomerName string                   `json:"customerName"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	order, err := h.engine.PlaceOrder(r.Context(), req.Items, req.CustomerName)
	if err != nil {
		var notFound *pricing.ItemNotFoundError
		switch {
		case errors.Is(err, pricing.ErrNoItems),
			errors.Is(err, pricing.ErrCustomerRequired),
			errors.Is(err, pricing.ErrBadQuantity):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &notFound):
			writeError(w, http.StatusNotFound, notFound.Error())
		default:
			logrus.WithError(err).Error("failed to place order")
			writeError(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}
