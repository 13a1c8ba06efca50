package export

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EditAttr marks elements the editable preview lets the operator change.
const EditAttr = "data-bizsite-edit"

const editableSelector = "main h1, main h2, main h3, main p, main li"

const editableStyle = `<style id="bizsite-editable">
[data-bizsite-edit]{outline:1px dashed transparent;transition:outline-color .15s}
[data-bizsite-edit]:hover{outline-color:var(--color-accent,#f59e0b);cursor:text}
[data-bizsite-edit][contenteditable="true"]{outline:2px solid var(--color-primary,#1e40af)}
.bizsite-toolbar{position:sticky;top:0;z-index:1000;display:flex;gap:.75rem;align-items:center;padding:.5rem 1rem;background:#0f172a;color:#fff;font:14px/1.4 system-ui,sans-serif}
.bizsite-toolbar button{border:0;border-radius:4px;padding:.25rem .75rem;cursor:pointer}
</style>`

const editableToolbar = `<div class="bizsite-toolbar" role="toolbar" aria-label="Editor">
  <strong>Editing preview</strong>
  <span class="bizsite-toolbar-hint">Click any heading, paragraph or list item to edit it.</span>
  <button type="button" data-bizsite-action="done">Done</button>
</div>`

const editableScript = `<script id="bizsite-editable-script">
(function(){
  var path = document.body.getAttribute('data-bizsite-path');
  function send(el){
    if (window.parent === window) return;
    window.parent.postMessage({type:'bizsite:edit', path:path, id:el.getAttribute('` + EditAttr + `'), html:el.innerHTML}, '*');
  }
  document.addEventListener('click', function(e){
    var el = e.target.closest('[` + EditAttr + `]');
    if (!el) return;
    e.preventDefault();
    el.setAttribute('contenteditable', 'true');
    el.focus();
  });
  document.addEventListener('focusout', function(e){
    var el = e.target;
    if (!el.hasAttribute || !el.hasAttribute('` + EditAttr + `')) return;
    el.removeAttribute('contenteditable');
    send(el);
  });
  var done = document.querySelector('[data-bizsite-action="done"]');
  if (done) done.addEventListener('click', function(){
    if (window.parent !== window) window.parent.postMessage({type:'bizsite:done', path:path}, '*');
  });
})();
</script>`

// MakeEditable returns a copy of files with in-page edit affordances added
// to every HTML document. Elements get stable ids of the form "<n>" in
// document order. Non-HTML files are returned unchanged.
func MakeEditable(files []File) ([]File, error) {
	out := make([]File, len(files))
	for i, f := range files {
		if !strings.HasSuffix(f.Path, ".html") {
			out[i] = f
			continue
		}
		content, err := makeEditable(f)
		if err != nil {
			return nil, &FileError{Path: f.Path, Message: "adding edit affordances", Cause: err}
		}
		out[i] = File{Path: f.Path, Content: content}
	}
	return out, nil
}

func makeEditable(f File) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(f.Content))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	doc.Find(editableSelector).Not("nav li, nav p").Each(func(i int, s *goquery.Selection) {
		s.SetAttr(EditAttr, fmt.Sprintf("%d", i))
	})

	doc.Find("head").AppendHtml(editableStyle)
	body := doc.Find("body")
	body.SetAttr("data-bizsite-path", f.Path)
	body.PrependHtml(editableToolbar)
	body.AppendHtml(editableScript)

	html, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return html, nil
}
