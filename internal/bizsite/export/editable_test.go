package export

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeEditable(t *testing.T) {
	files := export(t, scenarioSite(), Options{})
	editable, err := MakeEditable(files)
	require.NoError(t, err)
	require.Len(t, editable, len(files))

	for i, f := range editable {
		assert.Equal(t, files[i].Path, f.Path)
		if !strings.HasSuffix(f.Path, ".html") {
			assert.Equal(t, files[i].Content, f.Content, "non-HTML files pass through")
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(editable[0].Content))
	require.NoError(t, err)

	marked := doc.Find("[" + EditAttr + "]")
	require.NotZero(t, marked.Length())
	assert.Equal(t, marked.Length(), doc.Find("main ["+EditAttr+"]").Length(), "only main content is editable")
	assert.Zero(t, doc.Find("nav ["+EditAttr+"]").Length())
	first, _ := marked.First().Attr(EditAttr)
	assert.Equal(t, "0", first)

	assert.Equal(t, 1, doc.Find(".bizsite-toolbar").Length())
	assert.Equal(t, 1, doc.Find("#bizsite-editable-script").Length())
	assert.Equal(t, 1, doc.Find("head #bizsite-editable").Length())
	path, _ := doc.Find("body").Attr("data-bizsite-path")
	assert.Equal(t, "index.html", path)
	assert.True(t, strings.HasPrefix(editable[0].Content, "<!DOCTYPE html>"))
}

func TestMakeEditable_KeepsInputUntouched(t *testing.T) {
	files := []File{{Path: "index.html", Content: "<!DOCTYPE html><html><head></head><body><main><p>Hi</p></main></body></html>"}}
	orig := files[0].Content

	editable, err := MakeEditable(files)
	require.NoError(t, err)
	assert.Equal(t, orig, files[0].Content)
	assert.Contains(t, editable[0].Content, `<p data-bizsite-edit="0">Hi</p>`)
}
