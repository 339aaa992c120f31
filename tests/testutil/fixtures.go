package testutil

import (
	"context"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/models/m_category"
	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
)

// CreateTestCategory inserts an active category and returns its ID.
func CreateTestCategory(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	id := uuid.New().String()
	mut := m_category.NewModel().InsertMut(&m_category.Data{
		CategoryID:  id,
		Name:        name,
		Description: spanner.NullString{StringVal: name + " items", Valid: true},
		IsActive:    true,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test category")

	return id
}

// CreateInactiveTestCategory inserts a category with is_active = false.
func CreateInactiveTestCategory(t *testing.T, client *spanner.Client, name string) string {
	t.Helper()

	id := uuid.New().String()
	mut := m_category.NewModel().InsertMut(&m_category.Data{
		CategoryID: id,
		Name:       name,
		IsActive:   false,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create inactive test category")

	return id
}

// ProductFixture describes a product row written directly to the database.
type ProductFixture struct {
	Name       string
	Code       string
	CategoryID string
	Price      string // decimal, default "100"
	Discount   string // decimal, default "0"
	Status     string // default "In Stock"
}

// CreateTestProduct inserts a product row and returns its ID.
func CreateTestProduct(t *testing.T, client *spanner.Client, f ProductFixture) string {
	t.Helper()

	if f.Price == "" {
		f.Price = "100"
	}
	if f.Discount == "" {
		f.Discount = "0"
	}
	if f.Status == "" {
		f.Status = "In Stock"
	}
	if f.Code == "" {
		f.Code = uuid.New().String()
	}

	price, ok := new(big.Rat).SetString(f.Price)
	require.True(t, ok, "bad fixture price %q", f.Price)
	discount, ok := new(big.Rat).SetString(f.Discount)
	require.True(t, ok, "bad fixture discount %q", f.Discount)

	id := uuid.New().String()
	mut := m_product.NewModel().InsertMut(&m_product.Data{
		ProductID:   id,
		ProductCode: f.Code,
		Name:        f.Name,
		Description: "Test product description",
		Price:       *price,
		Discount:    *discount,
		Image:       "https://example.com/" + id + ".png",
		Status:      f.Status,
		CategoryID:  f.CategoryID,
		Version:     1,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test product")

	return id
}

// GetProductByID reads a products row for verification.
func GetProductByID(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	row, err := client.Single().ReadRow(context.Background(), m_product.TableName, spanner.Key{productID}, m_product.Columns)
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	require.NoError(t, row.ToStruct(&data), "failed to parse product data")
	return &data
}

// CreateTestOutboxEvent inserts an outbox event. A non-zero processedAt marks
// it processed.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType, aggregateID, status string, processedAt time.Time) string {
	t.Helper()

	id := uuid.New().String()
	mut := m_outbox.NewModel().InsertMut(&m_outbox.Data{
		EventID:     id,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: map[string]string{"test": "data"}, Valid: true},
		Status:      status,
		ProcessedAt: spanner.NullTime{Time: processedAt, Valid: !processedAt.IsZero()},
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to create test outbox event")

	return id
}

// AssertOutboxEvent verifies an outbox event of eventType exists for aggregateID.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType, aggregateID string) {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType AND aggregate_id = @aggregateID",
		Params: map[string]interface{}{"eventType": eventType, "aggregateID": aggregateID},
	})
	defer iter.Stop()

	_, err := iter.Next()
	require.NoError(t, err, "outbox event %s not found for %s", eventType, aggregateID)
}

// AssertOutboxEventCount verifies the total number of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()
	AssertRowCount(t, client, m_outbox.TableName, expectedCount)
}
