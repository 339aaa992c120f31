package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/app/category/contracts"
	"github.com/light-bringer/catalog-service/internal/app/category/usecases/create_category"
)

type CategoryCreator interface {
	Execute(ctx context.Context, req *create_category.Request) (string, error)
}

type CategoryGetter interface {
	Execute(ctx context.Context, categoryID string) (*contracts.CategoryDTO, error)
}

type CategoryLister interface {
	Execute(ctx context.Context) ([]*contracts.CategoryDTO, error)
}

type categoryJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCategoryJSON(dto *contracts.CategoryDTO) categoryJSON {
	return categoryJSON{
		ID:          dto.CategoryID,
		Name:        dto.Name,
		Description: dto.Description,
		IsActive:    dto.IsActive,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	create CategoryCreator
	get    CategoryGetter
	list   CategoryLister
	log    logrus.FieldLogger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(create CategoryCreator, get CategoryGetter, list CategoryLister, log logrus.FieldLogger) *CategoryHandler {
	return &CategoryHandler{create: create, get: get, list: list, log: log}
}

// Register mounts the category routes on r.
func (h *CategoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/categories", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/categories", h.List).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id}", h.Get).Methods(http.MethodGet)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	name, description, errs := body.validate()
	if len(errs) > 0 {
		respondValidation(w, h.log, errs)
		return
	}

	id, err := h.create.Execute(r.Context(), &create_category.Request{Name: name, Description: description})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	category, err := h.get.Execute(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondData(w, h.log, http.StatusCreated, "Category created successfully", toCategoryJSON(category))
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.list.Execute(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	data := make([]categoryJSON, 0, len(categories))
	for _, c := range categories {
		data = append(data, toCategoryJSON(c))
	}

	writeJSON(w, h.log, http.StatusOK, listResponse{Success: true, Count: len(data), Data: data})
}

// Get handles GET /api/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.get.Execute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondData(w, h.log, http.StatusOK, "", toCategoryJSON(category))
}
