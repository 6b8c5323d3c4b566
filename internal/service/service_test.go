package service

import (
	"testing"

	"islet-durians/internal/catalog"
	"islet-durians/internal/checkout"

	"github.com/stretchr/testify/require"
)

// newTestResolver builds a resolver over the built-in catalogue.
func newTestResolver(t *testing.T) *checkout.Resolver {
	t.Helper()

	c, _, err := catalog.Build(catalog.Default())
	require.NoError(t, err)
	return checkout.NewResolver(c)
}
