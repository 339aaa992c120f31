// Package producttest provides in-memory fakes of the product contracts for
// use case tests.
package producttest

import (
	"context"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/app/product/repo"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
)

// Repo is an in-memory ProductRepository. Mutation builders record the
// aggregates they were given; nothing is stored until Seed is called.
type Repo struct {
	mu       sync.Mutex
	products map[string]*m_product.Data
	codes    map[string]bool

	// CodeErr is returned by CodeExists when set.
	CodeErr error

	Inserted []*domain.Product
	Updated  []*domain.Product
	Deleted  []string
	Probes   []string
}

// NewRepo creates an empty Repo.
func NewRepo() *Repo {
	return &Repo{
		products: make(map[string]*m_product.Data),
		codes:    make(map[string]bool),
	}
}

// Seed stores product as if it had been committed.
func (r *Repo) Seed(product *domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID()] = repo.DomainToData(product)
	r.codes[product.Code()] = true
}

// TakeCode marks code as held by some other product.
func (r *Repo) TakeCode(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[code] = true
}

func (r *Repo) InsertMut(product *domain.Product) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Inserted = append(r.Inserted, product)
	return spanner.Insert(m_product.TableName, []string{m_product.ProductID}, []interface{}{product.ID()})
}

func (r *Repo) UpdateMut(product *domain.Product) *spanner.Mutation {
	if repo.DirtyColumns(product) == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Updated = append(r.Updated, product)
	return spanner.Update(m_product.TableName, []string{m_product.ProductID}, []interface{}{product.ID()})
}

func (r *Repo) DeleteMut(productID string) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deleted = append(r.Deleted, productID)
	return spanner.Delete(m_product.TableName, spanner.Key{productID})
}

func (r *Repo) VersionCheck(product *domain.Product) committer.VersionCheck {
	return committer.VersionCheck{
		Table:         m_product.TableName,
		Key:           spanner.Key{product.ID()},
		VersionColumn: m_product.Version,
		Expected:      product.Version(),
	}
}

func (r *Repo) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return repo.DataToDomain(data)
}

func (r *Repo) FindByCode(_ context.Context, code string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, data := range r.products {
		if data.ProductCode == code {
			return repo.DataToDomain(data)
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *Repo) CodeExists(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Probes = append(r.Probes, code)
	if r.CodeErr != nil {
		return false, r.CodeErr
	}
	return r.codes[code], nil
}

// Categories is an in-memory CategoryChecker.
type Categories struct {
	IDs map[string]bool
	Err error
}

// NewCategories knows the given category IDs.
func NewCategories(ids ...string) *Categories {
	c := &Categories{IDs: make(map[string]bool)}
	for _, id := range ids {
		c.IDs[id] = true
	}
	return c
}

func (c *Categories) Exists(_ context.Context, categoryID string) (bool, error) {
	if c.Err != nil {
		return false, c.Err
	}
	return c.IDs[categoryID], nil
}

// Applier records commit plans instead of applying them.
type Applier struct {
	mu     sync.Mutex
	Plans  []*committer.CommitPlan
	Checks []committer.VersionCheck

	// Err is returned by both Apply methods when set.
	Err error
}

func (a *Applier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Plans = append(a.Plans, plan)
	return a.Err
}

func (a *Applier) ApplyWithVersionCheck(_ context.Context, check committer.VersionCheck, plan *committer.CommitPlan) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Checks = append(a.Checks, check)
	a.Plans = append(a.Plans, plan)
	return a.Err
}

var (
	_ contracts.ProductRepository = (*Repo)(nil)
	_ contracts.CategoryChecker   = (*Categories)(nil)
	_ committer.Applier           = (*Applier)(nil)
)
