package registry_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meesudzu/ocelot/internal/protocol/nbt"
	"github.com/meesudzu/ocelot/internal/protocol/registry"
)

func TestAllRegistriesDecodeAsNetworkNBT(t *testing.T) {
	require.NotEmpty(t, registry.All)
	for _, reg := range registry.All {
		require.NotEmpty(t, reg.Entries, "registry %s has no entries", reg.ID)
		for _, entry := range reg.Entries {
			nt, err := nbt.DecodeNetwork(bytes.NewReader(entry.Data))
			require.NoError(t, err, "registry %s entry %s", reg.ID, entry.ID)
			assert.Equal(t, "", nt.Name)
			_, isCompound := nt.Tag.(nbt.Compound)
			assert.True(t, isCompound, "registry %s entry %s is not a compound", reg.ID, entry.ID)
		}
	}
}

func TestRegistryOrderIsDeterministic(t *testing.T) {
	// Entries are pushed in ascending id order, whatever the iteration order
	// of the map they were built from.
	for _, reg := range registry.All {
		ids := make([]string, 0, len(reg.Entries))
		for _, entry := range reg.Entries {
			ids = append(ids, entry.ID)
		}
		sorted := append([]string(nil), ids...)
		sort.Strings(sorted)
		assert.Equal(t, sorted, ids, "registry %s entries are not in id order", reg.ID)
	}
}
