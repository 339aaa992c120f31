package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/app/category/queries/get_category"
	"github.com/light-bringer/catalog-service/internal/app/category/queries/list_categories"
	categoryrepo "github.com/light-bringer/catalog-service/internal/app/category/repo"
	"github.com/light-bringer/catalog-service/internal/app/category/usecases/create_category"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/catalog-service/internal/app/product/repo"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/update_product"
	"github.com/light-bringer/catalog-service/internal/config"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/pkg/outbox"
	"github.com/light-bringer/catalog-service/internal/pkg/productcode"
	httptransport "github.com/light-bringer/catalog-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	HTTPHandler   http.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	return &ServiceOptions{
		SpannerClient: spannerClient,
		HTTPHandler:   NewHTTPHandler(spannerClient, clock.NewRealClock(), cfg, log),
	}, nil
}

// NewHTTPHandler wires repositories, use cases and queries into the HTTP API.
func NewHTTPHandler(client *spanner.Client, clk clock.Clock, cfg *config.Config, log logrus.FieldLogger) http.Handler {
	// 2. Create infrastructure components
	comm := committer.NewCommitter(client)
	outboxWriter := outbox.NewWriter()
	allocator := productcode.NewAllocator(clk)

	// 3. Create repositories
	categoryRepo := categoryrepo.NewCategoryRepo(client)
	categoryReadModel := categoryrepo.NewReadModel(client)
	productRepo := repo.NewProductRepo(client)
	productReadModel := repo.NewReadModel(client)

	// 4. Create command use cases (write operations)
	createCategory := create_category.NewInteractor(categoryRepo, outboxWriter, comm, clk, log)
	createProduct := create_product.NewInteractor(productRepo, categoryRepo, allocator, outboxWriter, comm, clk, log)
	updateProduct := update_product.NewInteractor(productRepo, outboxWriter, comm, clk)
	deleteProduct := delete_product.NewInteractor(productRepo, outboxWriter, comm, clk)

	// 5. Create query use cases (read operations)
	getCategory := get_category.NewQuery(categoryReadModel)
	listCategories := list_categories.NewQuery(categoryReadModel)
	getProduct := get_product.NewQuery(productReadModel)
	listProducts := list_products.NewQuery(productReadModel, cfg.DefaultPageSize, cfg.MaxPageSize)

	// 6. Create HTTP handlers
	router := httptransport.NewRouter(
		httptransport.NewCategoryHandler(createCategory, getCategory, listCategories, log),
		httptransport.NewProductHandler(createProduct, updateProduct, deleteProduct, getProduct, listProducts, log),
		httptransport.NewEventsHandler(outbox.NewReader(client), log),
		log,
	)
	return httptransport.CORS(cfg.CORSOrigin)(router)
}

// Ping checks that Spanner answers a trivial query.
func (s *ServiceOptions) Ping(ctx context.Context) error {
	iter := s.SpannerClient.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()
	if _, err := iter.Next(); err != nil {
		return fmt.Errorf("spanner ping failed: %w", err)
	}
	return nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
