package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Cleanup(func() { Current = Default })

	assert.True(t, Set("nord"))
	assert.Equal(t, "nord", Current.Name)

	assert.False(t, Set("missing"))
	assert.Equal(t, "nord", Current.Name, "unknown theme leaves current unchanged")
}

func TestList(t *testing.T) {
	names := List()
	assert.Equal(t, []string{"classic", "default", "dracula", "gruvbox", "nord"}, names)
	for _, n := range names {
		assert.Equal(t, n, themes[n].Name)
	}
}
