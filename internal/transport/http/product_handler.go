package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/update_product"
)

// ProductCreator creates a product and returns its ID.
type ProductCreator interface {
	Execute(ctx context.Context, req *create_product.Request) (string, error)
}

// ProductUpdater applies a partial product update.
type ProductUpdater interface {
	Execute(ctx context.Context, req *update_product.Request) error
}

// ProductDeleter removes a product by ID.
type ProductDeleter interface {
	Execute(ctx context.Context, productID string) error
}

// ProductGetter loads a product with its category.
type ProductGetter interface {
	Execute(ctx context.Context, req *get_product.Request) (*contracts.ProductDTO, error)
}

// ProductLister returns a filtered page of products.
type ProductLister interface {
	Execute(ctx context.Context, req *list_products.Request) (*contracts.ListResult, error)
}

type productCategoryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type productJSON struct {
	ID            string               `json:"id"`
	ProductCode   string               `json:"productCode"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Price         float64              `json:"price"`
	Discount      float64              `json:"discount"`
	OriginalPrice float64              `json:"originalPrice"`
	FinalPrice    float64              `json:"finalPrice"`
	Image         string               `json:"image"`
	Status        string               `json:"status"`
	Category      *productCategoryJSON `json:"category"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func toProductJSON(dto *contracts.ProductDTO) productJSON {
	p := productJSON{
		ID:            dto.ProductID,
		ProductCode:   dto.ProductCode,
		Name:          dto.Name,
		Description:   dto.Description,
		Price:         dto.Price,
		Discount:      dto.Discount,
		OriginalPrice: dto.Price,
		FinalPrice:    dto.FinalPrice,
		Image:         dto.Image,
		Status:        dto.Status,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}
	if dto.Category != nil {
		p.Category = &productCategoryJSON{
			ID:          dto.Category.CategoryID,
			Name:        dto.Category.Name,
			Description: dto.Category.Description,
		}
	}
	return p
}

// ProductHandler serves /api/products.
type ProductHandler struct {
	create ProductCreator
	update ProductUpdater
	delete ProductDeleter
	get    ProductGetter
	list   ProductLister
	log    logrus.FieldLogger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(
	create ProductCreator,
	update ProductUpdater,
	del ProductDeleter,
	get ProductGetter,
	list ProductLister,
	log logrus.FieldLogger,
) *ProductHandler {
	return &ProductHandler{
		create: create,
		update: update,
		delete: del,
		get:    get,
		list:   list,
		log:    log,
	}
}

// Register mounts the product routes on r.
func (h *ProductHandler) Register(r *mux.Router) {
	r.HandleFunc("/products", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/products", h.List).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", h.Delete).Methods(http.MethodDelete)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createProductBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, errs := body.validate()
	if len(errs) > 0 {
		respondValidation(w, h.log, errs)
		return
	}

	id, err := h.create.Execute(r.Context(), &create_product.Request{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Discount:    in.Discount,
		Image:       in.Image,
		Status:      in.Status,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.respondProduct(w, r, id, http.StatusCreated, "Product created successfully")
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params, errs := parseListParams(r.URL.Query())
	if len(errs) > 0 {
		respondValidation(w, h.log, errs)
		return
	}

	result, err := h.list.Execute(r.Context(), &list_products.Request{
		CategoryID: params.CategoryID,
		Search:     params.Search,
		Page:       params.Page,
		Limit:      params.Limit,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	data := make([]productJSON, 0, len(result.Products))
	for _, p := range result.Products {
		data = append(data, toProductJSON(p))
	}

	writeJSON(w, h.log, http.StatusOK, listResponse{
		Success:    true,
		Count:      len(data),
		Total:      &result.Total,
		Page:       &result.Page,
		TotalPages: &result.TotalPages,
		Data:       data,
	})
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondProduct(w, r, mux.Vars(r)["id"], http.StatusOK, "")
}

// Update handles PUT /api/products/{id}. Only status, description and
// discount can change.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body updateProductBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	changes, errs := body.validate()
	if len(errs) > 0 {
		respondValidation(w, h.log, errs)
		return
	}

	id := mux.Vars(r)["id"]
	err := h.update.Execute(r.Context(), &update_product.Request{
		ProductID:   id,
		Status:      changes.Status,
		Description: changes.Description,
		Discount:    changes.Discount,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.respondProduct(w, r, id, http.StatusOK, "Product updated successfully")
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.delete.Execute(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondMessage(w, h.log, http.StatusOK, "Product deleted successfully")
}

// respondProduct reads the product back with its category populated.
func (h *ProductHandler) respondProduct(w http.ResponseWriter, r *http.Request, id string, status int, message string) {
	product, err := h.get.Execute(r.Context(), &get_product.Request{ProductID: id})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	respondData(w, h.log, status, message, toProductJSON(product))
}
