package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/models/m_category"
	"github.com/light-bringer/catalog-service/internal/models/m_outbox"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
)

const defaultTestDB = "projects/test-project/instances/test-instance/databases/catalog-test"

// SetupSpannerTest creates a test Spanner client on an emptied database and
// returns a cleanup function.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	client, err := spanner.NewClient(context.Background(), GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns SPANNER_TEST_DATABASE or the emulator default.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return defaultTestDB
}

// CleanDatabase deletes every row. Products go before categories because of
// the foreign key.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_outbox.TableName, spanner.AllKeys()),
		spanner.Delete(m_product.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean products")

	_, err = client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_category.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean categories")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
