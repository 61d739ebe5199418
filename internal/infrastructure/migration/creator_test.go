package migration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Orders Table")
	require.NoError(t, err)
	assert.Len(t, mf.Version, 14)
	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)
	assert.Contains(t, mf.UpPath, "add_orders_table.up.sql")

	content, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Add Orders Table")
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Add Orders Table", "add_orders_table"},
		{"add-cart-index", "add_cart_index"},
		{"already_clean", "already_clean"},
		{"trailing space ", "trailing_space"},
		{"Mixed--Case__Name", "mixed_case_name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in))
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Empty(t, migrations)

	_, err = CreateMigration(dir, "first")
	require.NoError(t, err)

	migrations, err = ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Contains(t, migrations[0], "first")

	migrations, err = ListMigrations(dir + "/missing")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
