package store

import (
	"database/sql"
	"testing"

	"chicchariot/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Migrate(db), "failed to run migrations")

	return db
}

func newTestCatalog(t *testing.T, db *sql.DB) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(db)
	require.NoError(t, err)
	return catalog
}

func TestCatalogSeedsOnFirstRun(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))

	snapshot := catalog.List()
	assert.Len(t, snapshot.Items, 8)
	assert.Contains(t, snapshot.Categories, "Dresses")
	assert.Contains(t, snapshot.Categories, "Accessories")
}

func TestCatalogRehydratesInsteadOfReseeding(t *testing.T) {
	db := setupTestDB(t)

	first := newTestCatalog(t, db)
	first.AddCategory("Shoes")
	added := first.AddItem(itemFixture("Ballet Flats", "Shoes", 10))

	second := newTestCatalog(t, db)
	snapshot := second.List()
	assert.Contains(t, snapshot.Categories, "Shoes")

	item, found := second.ItemByID(added.ID)
	require.True(t, found)
	assert.Equal(t, "Ballet Flats", item.Name)
	assert.Equal(t, 10, item.Stock)
}

func TestAddItemAssignsID(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))

	item := catalog.AddItem(itemFixture("Wrap Dress", "Dresses", 5))
	assert.NotEmpty(t, item.ID)

	stored, found := catalog.ItemByID(item.ID)
	require.True(t, found)
	assert.Equal(t, item, stored)
}

func TestUpdateItemUnknownIDIsNoOp(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))

	before := catalog.List()
	ghost := itemFixture("Ghost", "Tops", 1)
	ghost.ID = "missing"
	catalog.UpdateItem(ghost)

	assert.Equal(t, before, catalog.List())
}

func TestDeleteItemIsIdempotent(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))
	item := catalog.AddItem(itemFixture("Trench Coat", "Outerwear", 3))

	catalog.DeleteItem(item.ID)
	after := catalog.List()
	catalog.DeleteItem(item.ID)

	assert.Equal(t, after, catalog.List())
	_, found := catalog.ItemByID(item.ID)
	assert.False(t, found)
}

func TestAddCategoryRejectsBlankAndDuplicate(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))

	result := catalog.AddCategory("   ")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)

	require.True(t, catalog.AddCategory("Snacks").Success)

	// Uniqueness ignores case.
	result = catalog.AddCategory("snacks")
	assert.False(t, result.Success)
}

func TestRenameCategoryCascadesToItems(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))
	require.True(t, catalog.AddCategory("Dairy & Eggs").Success)
	item := catalog.AddItem(itemFixture("Butter", "Dairy & Eggs", 12))

	result := catalog.RenameCategory("Dairy & Eggs", "Dairy")
	require.True(t, result.Success)

	snapshot := catalog.List()
	assert.Contains(t, snapshot.Categories, "Dairy")
	assert.NotContains(t, snapshot.Categories, "Dairy & Eggs")

	updated, found := catalog.ItemByID(item.ID)
	require.True(t, found)
	assert.Equal(t, "Dairy", updated.Category)

	// The old name is freed for reuse.
	assert.True(t, catalog.AddCategory("Dairy & Eggs").Success)
}

func TestRenameCategoryRejectsDuplicateTarget(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))

	result := catalog.RenameCategory("Dresses", "tops")
	assert.False(t, result.Success)

	// Renaming to itself with different casing is allowed.
	assert.True(t, catalog.RenameCategory("Dresses", "DRESSES").Success)
}

func TestDeleteCategoryLeavesItemsDangling(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))
	item := catalog.AddItem(itemFixture("Beanie", "Accessories", 7))

	catalog.DeleteCategory("Accessories")

	snapshot := catalog.List()
	assert.NotContains(t, snapshot.Categories, "Accessories")

	kept, found := catalog.ItemByID(item.ID)
	require.True(t, found)
	assert.Equal(t, "Accessories", kept.Category)
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))
	item := catalog.AddItem(itemFixture("Scarf", "Accessories", 2))

	catalog.DecrementStock(item.ID, 5)

	stock, found := catalog.StockFor(item.ID)
	require.True(t, found)
	assert.Equal(t, 0, stock)
}

func TestCatalogNotifiesSubscribers(t *testing.T) {
	catalog := newTestCatalog(t, setupTestDB(t))

	var got []CatalogSnapshot
	id := catalog.Subscribe(func(snapshot CatalogSnapshot) {
		got = append(got, snapshot)
	})

	catalog.AddCategory("Shoes")
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Categories, "Shoes")

	catalog.Unsubscribe(id)
	catalog.AddCategory("Hats")
	assert.Len(t, got, 1)
}
