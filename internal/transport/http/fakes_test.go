package http

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	categorycontracts "github.com/light-bringer/catalog-service/internal/app/category/contracts"
	categorydomain "github.com/light-bringer/catalog-service/internal/app/category/domain"
	"github.com/light-bringer/catalog-service/internal/app/category/usecases/create_category"
	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/update_product"
	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
)

const categoryID = "6f1c2b7e-3a4d-4c5e-9f80-1a2b3c4d5e6f"

var fixedTime = time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

type fakeCategories struct {
	created *create_category.Request
	store   map[string]*categorycontracts.CategoryDTO
	err     error
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{store: map[string]*categorycontracts.CategoryDTO{
		categoryID: {CategoryID: categoryID, Name: "Electronics", Description: "Gadgets", IsActive: true, CreatedAt: fixedTime, UpdatedAt: fixedTime},
	}}
}

type categoryCreate struct{ f *fakeCategories }
type categoryGet struct{ f *fakeCategories }
type categoryList struct{ f *fakeCategories }

func (c categoryCreate) Execute(_ context.Context, req *create_category.Request) (string, error) {
	if c.f.err != nil {
		return "", c.f.err
	}
	c.f.created = req
	id := "new-category"
	c.f.store[id] = &categorycontracts.CategoryDTO{CategoryID: id, Name: req.Name, Description: req.Description, IsActive: true}
	return id, nil
}

func (c categoryGet) Execute(_ context.Context, id string) (*categorycontracts.CategoryDTO, error) {
	dto, ok := c.f.store[id]
	if !ok {
		return nil, categorydomain.ErrCategoryNotFound
	}
	return dto, nil
}

func (c categoryList) Execute(context.Context) ([]*categorycontracts.CategoryDTO, error) {
	if c.f.err != nil {
		return nil, c.f.err
	}
	return []*categorycontracts.CategoryDTO{c.f.store[categoryID]}, nil
}

type fakeProducts struct {
	store     map[string]*contracts.ProductDTO
	created   *create_product.Request
	updated   *update_product.Request
	deleted   string
	listReq   *list_products.Request
	createErr error
	updateErr error
	listErr   error
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{store: map[string]*contracts.ProductDTO{
		"prod-1": {
			ProductID:   "prod-1",
			ProductCode: "624bdd4f-9mou11",
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse",
			Price:       200,
			Discount:    25,
			FinalPrice:  150,
			Image:       "https://example.com/mouse.png",
			Status:      "In Stock",
			CategoryID:  categoryID,
			Category:    &contracts.CategorySummary{CategoryID: categoryID, Name: "Electronics", Description: "Gadgets"},
			CreatedAt:   fixedTime,
			UpdatedAt:   fixedTime,
		},
	}}
}

type productCreate struct{ f *fakeProducts }
type productUpdate struct{ f *fakeProducts }
type productDelete struct{ f *fakeProducts }
type productGet struct{ f *fakeProducts }
type productList struct{ f *fakeProducts }

func (p productCreate) Execute(_ context.Context, req *create_product.Request) (string, error) {
	if p.f.createErr != nil {
		return "", p.f.createErr
	}
	p.f.created = req
	price := req.Price.Float64()
	p.f.store["prod-2"] = &contracts.ProductDTO{
		ProductID:   "prod-2",
		ProductCode: "90015098-0abc2",
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		FinalPrice:  price,
		Image:       req.Image,
		Status:      "In Stock",
		CategoryID:  req.CategoryID,
		Category:    &contracts.CategorySummary{CategoryID: req.CategoryID, Name: "Electronics"},
	}
	return "prod-2", nil
}

func (p productUpdate) Execute(_ context.Context, req *update_product.Request) error {
	if p.f.updateErr != nil {
		return p.f.updateErr
	}
	dto, ok := p.f.store[req.ProductID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.f.updated = req
	if req.Status != nil {
		dto.Status = string(*req.Status)
	}
	return nil
}

func (p productDelete) Execute(_ context.Context, id string) error {
	if _, ok := p.f.store[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(p.f.store, id)
	p.f.deleted = id
	return nil
}

func (p productGet) Execute(_ context.Context, req *get_product.Request) (*contracts.ProductDTO, error) {
	dto, ok := p.f.store[req.ProductID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return dto, nil
}

func (p productList) Execute(_ context.Context, req *list_products.Request) (*contracts.ListResult, error) {
	if p.f.listErr != nil {
		return nil, p.f.listErr
	}
	p.f.listReq = req
	return &contracts.ListResult{
		Products:   []*contracts.ProductDTO{p.f.store["prod-1"]},
		Total:      11,
		Page:       2,
		Limit:      5,
		TotalPages: 3,
	}, nil
}

type fakeEvents struct {
	filter outbox.Filter
	events []*m_outbox.Data
}

func (e *fakeEvents) List(_ context.Context, f outbox.Filter) ([]*m_outbox.Data, int64, error) {
	e.filter = f
	return e.events, int64(len(e.events)), nil
}

type harness struct {
	categories *fakeCategories
	products   *fakeProducts
	events     *fakeEvents
	hook       *test.Hook
	log        *logrus.Logger
}

func newHarness() *harness {
	log, hook := test.NewNullLogger()
	return &harness{
		categories: newFakeCategories(),
		products:   newFakeProducts(),
		events:     &fakeEvents{},
		hook:       hook,
		log:        log,
	}
}

func (h *harness) router() http.Handler {
	return NewRouter(
		NewCategoryHandler(categoryCreate{h.categories}, categoryGet{h.categories}, categoryList{h.categories}, h.log),
		NewProductHandler(productCreate{h.products}, productUpdate{h.products}, productDelete{h.products},
			productGet{h.products}, productList{h.products}, h.log),
		NewEventsHandler(h.events, h.log),
		h.log,
	)
}
