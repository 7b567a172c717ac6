package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/foodcourt/models"
)

func (h *Handler) ListFood(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListFoodItems(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list food items")
		writeError(w, http.StatusInternalServerError, "failed to fetch food items")
		return
	}
	if items == nil {
		items = []models.FoodItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) CreateFood(w http.ResponseWriter, r *http.Request) {
	type request struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Rating string  `json:"rating"`
		Price  float64 `json:"price"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.ID == "" || req.Name == "" || req.Price == 0 {
		writeError(w, http.StatusBadRequest, "id, name, and price are required")
		return
	}
	if req.Price < 0 {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	item, err := h.catalog.CreateFoodItem(r.Context(), models.FoodItem{
		ID:     req.ID,
		Name:   req.Name,
		Rating: req.Rating,
		Price:  req.Price,
	})
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "food item already exists")
			return
		}
		logrus.WithError(err).Error("failed to create food item")
		writeError(w, http.StatusInternalServerError, "failed to add food item")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}
