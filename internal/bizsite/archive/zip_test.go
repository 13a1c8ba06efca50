package archive

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermodeltools/bizsite/internal/bizsite/export"
)

func TestToZip_RoundTrip(t *testing.T) {
	files := []export.File{
		{Path: "index.html", Content: "<html>home</html>"},
		{Path: "services/water-extraction.html", Content: "<html>svc</html>"},
		{Path: "sitemap.xml", Content: "<urlset/>"},
	}
	data, err := ToZip(files)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 3)
	for i, zf := range zr.File {
		assert.Equal(t, files[i].Path, zf.Name)
		rc, err := zf.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, files[i].Content, string(body))
	}
}

func TestToZip_Deterministic(t *testing.T) {
	files := []export.File{{Path: "a.html", Content: "a"}, {Path: "b/c.html", Content: "c"}}
	first, err := ToZip(files)
	require.NoError(t, err)
	second, err := ToZip(files)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToZip_RejectsBadPaths(t *testing.T) {
	for _, p := range []string{"", "/index.html", `blog\post.html`, "../escape.html", "a/../b.html", "a//b.html"} {
		_, err := ToZip([]export.File{{Path: p, Content: "x"}})
		assert.Error(t, err, p)
	}
	_, err := ToZip([]export.File{{Path: "a.html"}, {Path: "a.html"}})
	assert.ErrorContains(t, err, "duplicate")
}
