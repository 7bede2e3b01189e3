package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssets(t *testing.T) {
	assets := Assets()

	for _, name := range []string{"index.html", "app.js", "style.css"} {
		b, err := fs.ReadFile(assets, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b, name)
	}

	index, err := fs.ReadFile(assets, "index.html")
	require.NoError(t, err)
	assert.Contains(t, string(index), `src="app.js"`)
}
