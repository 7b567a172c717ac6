package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ray-remotestate/foodcourt/models"
)

type mockFoodStore struct {
	items []models.FoodItem
}

func (m *mockFoodStore) ListFoodItems(ctx context.Context) ([]models.FoodItem, error) {
	out := make([]models.FoodItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockFoodStore) CreateFoodItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	m.items = append(m.items, item)
	return item, nil
}

func listFood(t *testing.T, h *Handler) []models.FoodItem {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	w := httptest.NewRecorder()
	h.ListFood(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var items []models.FoodItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return items
}

func TestListFood_IdempotentRead(t *testing.T) {
	catalog := &mockFoodStore{items: []models.FoodItem{
		{ID: "f1", Name: "Burger", Price: 5.0},
		{ID: "f2", Name: "Fries", Price: 2.5},
	}}
	h := New(nil, catalog, nil, nil)

	first := listFood(t, h)
	second := listFood(t, h)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 items in both reads, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("reads differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestListFood_EmptyCatalog(t *testing.T) {
	h := New(nil, &mockFoodStore{}, nil, nil)

	items := listFood(t, h)
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestCreateFood(t *testing.T) {
	catalog := &mockFoodStore{}
	h := New(nil, catalog, nil, nil)

	w := postJSON(t, h.CreateFood, `{"id":"f1","name":"Burger","rating":"4.5","price":5.0}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(catalog.items) != 1 || catalog.items[0].ID != "f1" {
		t.Fatalf("unexpected catalog state: %+v", catalog.items)
	}
}

func TestCreateFood_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing id", `{"name":"Burger","price":5.0}`},
		{"missing name", `{"id":"f1","price":5.0}`},
		{"missing price", `{"id":"f1","name":"Burger"}`},
		{"negative price", `{"id":"f1","name":"Burger","price":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(nil, &mockFoodStore{}, nil, nil)
			w := postJSON(t, h.CreateFood, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}
		})
	}
}
