package collectable_test

import (
	"testing"

	"github.com/amp-labs/phantom/amount"
	"github.com/amp-labs/phantom/collectable"
	"github.com/amp-labs/phantom/hashing"
	"github.com/amp-labs/phantom/id"
	"github.com/amp-labs/phantom/instant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct{}

type seconds struct{}

type level int

var (
	_ collectable.Collectable[id.Value[user, string]]       = id.Value[user, string]{}
	_ collectable.Collectable[amount.Value[seconds, int64]]  = amount.Value[seconds, int64]{}
	_ collectable.Collectable[instant.Value[seconds, int64]] = instant.Value[seconds, int64]{}
)

func TestFromComparable_Int(t *testing.T) {
	t.Parallel()

	c := collectable.FromComparable(42)

	assert.True(t, c.Equals(42))
	assert.False(t, c.Equals(43))

	hash, err := hashing.Sha256(c)
	require.NoError(t, err)

	hash2, err := hashing.Sha256(collectable.FromComparable(42))
	require.NoError(t, err)
	assert.Equal(t, hash, hash2)

	hash3, err := hashing.Sha256(collectable.FromComparable(43))
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash3)
}

func TestFromComparable_NamedType(t *testing.T) {
	t.Parallel()

	c := collectable.FromComparable(level(3))
	assert.True(t, c.Equals(level(3)))

	named, err := hashing.Sum64(c)
	require.NoError(t, err)

	plain, err := hashing.Sum64(collectable.FromComparable(3))
	require.NoError(t, err)
	assert.Equal(t, plain, named)
}

func TestFromComparable_Struct(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }

	c := collectable.FromComparable(point{X: 1, Y: 2})
	assert.True(t, c.Equals(point{X: 1, Y: 2}))
	assert.False(t, c.Equals(point{X: 2, Y: 1}))

	same, err := hashing.Sha256(c)
	require.NoError(t, err)

	again, err := hashing.Sha256(collectable.FromComparable(point{X: 1, Y: 2}))
	require.NoError(t, err)
	assert.Equal(t, same, again)

	swapped, err := hashing.Sha256(collectable.FromComparable(point{X: 2, Y: 1}))
	require.NoError(t, err)
	assert.NotEqual(t, same, swapped)
}

func TestFromComparable_Unsupported(t *testing.T) {
	t.Parallel()

	// any is comparable, but the slice it holds cannot be hashed.
	c := collectable.FromComparable[any]([]int{1, 2})

	_, err := hashing.Sha256(c)
	require.ErrorIs(t, err, hashing.ErrUnsupportedType)
}

func TestArchetypes_AgreeWithComparable(t *testing.T) {
	t.Parallel()

	wrapped, err := hashing.Sha256(id.New[user]("alice"))
	require.NoError(t, err)

	bare, err := hashing.Sha256(collectable.FromComparable("alice"))
	require.NoError(t, err)
	assert.Equal(t, bare, wrapped)

	a, err := hashing.Sum64(amount.New[seconds](int64(60)))
	require.NoError(t, err)

	b, err := hashing.Sum64(instant.New[seconds](int64(60)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
