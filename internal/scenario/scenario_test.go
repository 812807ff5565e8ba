package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cooling-expander/internal/expand"
)

func austriaResult(t *testing.T) *expand.Result {
	t.Helper()
	res, err := expand.New().Run(AustriaInputs())
	require.NoError(t, err)
	return res
}

func TestAustriaInputs_Expand(t *testing.T) {
	res := austriaResult(t)

	// 4 thermal plants x 3 freshwater variants; 3 renewables exempt.
	assert.Equal(t, 12, len(res.Composites))
	assert.Equal(t, 4, res.Summary.BasesExpanded)
	assert.Equal(t, 3, res.Summary.BasesExempt)
	// 4 groups x 4 periods x 1 node.
	assert.Equal(t, 16, len(res.Constraints))
}

func TestBuildDocument(t *testing.T) {
	res := austriaResult(t)

	doc := BuildDocument("Austrian energy model + Water", "baseline_cooling", res, true)
	assert.Equal(t, "Austrian energy model + Water", doc.Model)
	assert.Len(t, doc.Technologies, len(res.Composites))
	assert.Len(t, doc.Shares, len(res.Constraints))
	require.NotEmpty(t, doc.Supply)
	assert.Equal(t, "extract_freshwater", doc.Supply[0].ID)

	// Records carry the stable identifying triple.
	for _, tr := range doc.Technologies {
		assert.NotEmpty(t, tr.ID)
		assert.NotEmpty(t, tr.BaseID)
		assert.NotEmpty(t, tr.VariantID)
	}

	noSupply := BuildDocument("m", "s", res, false)
	assert.Empty(t, noSupply.Supply)
}

func TestWriteReadJSON(t *testing.T) {
	res := austriaResult(t)
	doc := BuildDocument("m", "s", res, true)

	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, WriteJSON(path, doc))

	loaded, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestStore(t *testing.T) {
	store := NewStore()
	res := austriaResult(t)

	id := store.Put(res)
	require.NotEmpty(t, id)

	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, res, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Clear()
	_, ok = store.Get(id)
	assert.False(t, ok)
}
