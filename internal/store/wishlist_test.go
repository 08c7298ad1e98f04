package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	wishlist, err := NewWishlist(setupTestDB(t))
	require.NoError(t, err)

	item := itemFixture("Clutch", "Accessories", 5)
	item.ID = "w1"

	wishlist.Add(item)
	wishlist.Add(item)

	assert.Equal(t, 1, wishlist.Count())
	assert.True(t, wishlist.Contains("w1"))
}

func TestWishlistRemove(t *testing.T) {
	wishlist, err := NewWishlist(setupTestDB(t))
	require.NoError(t, err)

	item := itemFixture("Clutch", "Accessories", 5)
	item.ID = "w1"
	wishlist.Add(item)

	wishlist.Remove("w1")
	assert.False(t, wishlist.Contains("w1"))
	assert.Empty(t, wishlist.List())

	// Removing again is a no-op.
	wishlist.Remove("w1")
	assert.Equal(t, 0, wishlist.Count())
}

func TestWishlistPersistsAcrossRestart(t *testing.T) {
	db := setupTestDB(t)

	wishlist, err := NewWishlist(db)
	require.NoError(t, err)

	item := itemFixture("Belt", "Accessories", 9)
	item.ID = "w2"
	wishlist.Add(item)

	reloaded, err := NewWishlist(db)
	require.NoError(t, err)
	assert.Equal(t, wishlist.List(), reloaded.List())
	assert.True(t, reloaded.Contains("w2"))
}
