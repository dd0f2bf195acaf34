package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStyleIDs = []string{
	"auto_cv", "anti_cv", "ethan",
	"rendercv_classic", "rendercv_engineering", "rendercv_sb2nov", "yuan",
}

func TestNewRegistry_AllStylesPresent(t *testing.T) {
	r := NewRegistry("auto_cv")

	for _, id := range allStyleIDs {
		entry, ok := r.Get(id)
		require.True(t, ok, id)
		assert.Equal(t, id, entry.ID)
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Description)
		assert.NotEmpty(t, entry.Category)
		assert.NotNil(t, entry.NewRenderer)
		assert.Equal(t, "/templates/"+id+".png", entry.PreviewImage)
	}
}

func TestNewRegistry_Backends(t *testing.T) {
	r := NewRegistry("auto_cv")

	markupStyles := []string{"auto_cv", "anti_cv", "ethan"}
	nativeStyles := []string{"rendercv_classic", "rendercv_engineering", "rendercv_sb2nov", "yuan"}

	for _, id := range markupStyles {
		entry, _ := r.Get(id)
		assert.Equal(t, BackendMarkup, entry.Backend, id)
	}
	for _, id := range nativeStyles {
		entry, _ := r.Get(id)
		assert.Equal(t, BackendNative, entry.Backend, id)
	}
}

func TestNewRegistry_ListOrderStable(t *testing.T) {
	r := NewRegistry("auto_cv")

	infos := r.List()
	require.Len(t, infos, len(allStyleIDs))
	for i, id := range allStyleIDs {
		assert.Equal(t, id, infos[i].ID)
	}
}

func TestNewRegistry_DefaultFallback(t *testing.T) {
	r := NewRegistry("ethan")
	assert.Equal(t, "ethan", r.Default().ID)

	// unknown default falls back to auto_cv
	r = NewRegistry("no_such_style")
	assert.Equal(t, "auto_cv", r.Default().ID)
}
