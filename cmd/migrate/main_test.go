package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDDLStatements(t *testing.T) {
	content := `-- header comment
CREATE TABLE a (
  id STRING(36) NOT NULL,
) PRIMARY KEY (id);

-- second
CREATE UNIQUE INDEX a_by_id ON a(id);
`
	stmts := splitDDLStatements(content)

	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (\nid STRING(36) NOT NULL,\n) PRIMARY KEY (id)", stmts[0])
	assert.Equal(t, "CREATE UNIQUE INDEX a_by_id ON a(id)", stmts[1])
}

func TestSplitDDLStatements_Empty(t *testing.T) {
	assert.Empty(t, splitDDLStatements("-- only comments\n\n"))
}

func TestMigrationFiles_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o600))
	}

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "001_a.sql", filepath.Base(files[0]))
	assert.Equal(t, "002_b.sql", filepath.Base(files[1]))
}

func TestTargetPaths(t *testing.T) {
	tg := target{project: "p", instance: "i", database: "d"}
	assert.Equal(t, "projects/p/instances/i", tg.instancePath())
	assert.Equal(t, "projects/p/instances/i/databases/d", tg.databasePath())
}

func TestInitialSchemaParses(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_initial_schema.sql"))
	require.NoError(t, err)

	stmts := splitDDLStatements(string(content))
	require.NotEmpty(t, stmts)
	assert.Contains(t, stmts, "CREATE UNIQUE INDEX products_by_product_code ON products(product_code)")
}
