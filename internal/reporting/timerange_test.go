package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRangeByKey(t *testing.T) {
	spec, err := TimeRangeByKey("7d")
	require.NoError(t, err)
	assert.Equal(t, 7, spec.Days)
	assert.Equal(t, "Last 7 days", spec.Label)

	_, err = TimeRangeByKey("14d")
	assert.Error(t, err)

	_, err = TimeRangeByKey("")
	assert.Error(t, err, "empty key must not silently default")
}

func TestTimeRanges_CatalogIsStable(t *testing.T) {
	first := TimeRanges()
	require.NotEmpty(t, first)

	// Mutating a returned copy must not leak into the catalog.
	first[0].Days = 9999
	second := TimeRanges()
	assert.Equal(t, 7, second[0].Days)

	_, err := TimeRangeByKey(DefaultTimeRangeKey)
	assert.NoError(t, err)
}
