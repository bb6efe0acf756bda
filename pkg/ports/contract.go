package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/chempath/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPathCacheContract runs a suite of tests to verify that a PathCache implementation
// adheres to the defined interface contract.
func RunPathCacheContract(t *testing.T, cache PathCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405.000000")

	start := domain.MustCompound(2, domain.AlkylBromide)
	mid := domain.MustCompound(2, domain.Alkene)
	target := domain.MustCompound(2, domain.Alkane)

	found := domain.Outcome{
		Start:  start,
		Target: target,
		Found:  true,
		Path: domain.Path{
			Compounds: []domain.Compound{start, mid, target},
			Steps: []domain.Reaction{
				{Rule: "dehydrohalogenation", Reactant: start, Product: mid, Reagents: []string{"NaOH(alc)"}, Byproducts: []string{"H2O", "NaBr"}},
				{Rule: "hydrogenation_alkene", Reactant: mid, Product: target, Reagents: []string{"H2"}, Above: "Ni", Below: "180 - 200°C"},
			},
		},
		Visited: 7,
	}

	t.Run("Put and Get", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, found), "Put should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.True(t, got.Found)
		assert.Equal(t, found.Path.Formulas(), got.Path.Formulas())
		assert.Equal(t, found.Path.Descriptions(), got.Path.Descriptions())
		assert.True(t, got.Start.Same(start))
		assert.True(t, got.Target.Same(target))
		assert.Equal(t, 7, got.Visited)
	})

	t.Run("Not Found Outcome", func(t *testing.T) {
		k := key + "-none"
		none := domain.Outcome{Start: start, Target: domain.MustCompound(1, domain.CarboxylateSalt), Visited: 3}
		require.NoError(t, cache.Put(ctx, k, none))

		got, err := cache.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, got.Found)
		assert.Empty(t, got.Path.Steps)
		assert.Equal(t, "H-COONa", got.Target.Formula())
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, found))
		require.NoError(t, cache.Delete(ctx, key), "Delete should not return error")

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "Deleting twice is not an error")
	})

	t.Run("Isolation", func(t *testing.T) {
		k := key + "-iso"
		o := found
		o.Path.Compounds = append([]domain.Compound(nil), found.Path.Compounds...)
		require.NoError(t, cache.Put(ctx, k, o))

		// Mutating the caller's slice must not leak into the cache.
		o.Path.Compounds[0] = target

		got, err := cache.Get(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, "C2H5Br", got.Path.Compounds[0].Formula())
	})
}
