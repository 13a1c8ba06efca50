package output

import (
	"encoding/json"
	"fmt"
)

// SearchRecord is one searchable document.
type SearchRecord struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// SearchIndexJSON encodes the records as a JSON array. json.Marshal
// escapes <, > and &, so the result is safe inside a script element.
func SearchIndexJSON(records []SearchRecord) (string, error) {
	if records == nil {
		records = []SearchRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshaling search index: %w", err)
	}
	return string(data), nil
}

// SearchBody renders the body of search.html: a query box, a results list,
// the embedded index and a substring filter over title and description.
// The ?q= query parameter pre-fills the box.
func SearchBody(records []SearchRecord) (string, error) {
	index, err := SearchIndexJSON(records)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<section class="section search">
  <div class="container">
    <h1 class="section-title">Search</h1>
    <form class="search-form" role="search" onsubmit="return false">
      <label for="search-input" class="sr-only">Search this site</label>
      <input id="search-input" type="search" name="q" placeholder="Search services, areas and articles" autocomplete="off">
    </form>
    <p class="search-count" aria-live="polite"></p>
    <ul id="search-results" class="search-results"></ul>
  </div>
</section>
<script type="application/json" id="search-index">%s</script>
<script>
(function () {
  var records = JSON.parse(document.getElementById('search-index').textContent);
  var input = document.getElementById('search-input');
  var list = document.getElementById('search-results');
  var count = document.querySelector('.search-count');
  function render(q) {
    q = q.trim().toLowerCase();
    list.innerHTML = '';
    var hits = records.filter(function (r) {
      return !q || (r.title + ' ' + r.description).toLowerCase().indexOf(q) !== -1;
    });
    hits.forEach(function (r) {
      var li = document.createElement('li');
      var a = document.createElement('a');
      a.href = r.url;
      a.textContent = r.title;
      var p = document.createElement('p');
      p.textContent = r.description;
      var tag = document.createElement('span');
      tag.className = 'search-type';
      tag.textContent = r.type;
      li.appendChild(a);
      li.appendChild(tag);
      li.appendChild(p);
      list.appendChild(li);
    });
    count.textContent = q ? hits.length + ' result' + (hits.length === 1 ? '' : 's') : '';
  }
  var initial = new URLSearchParams(window.location.search).get('q') || '';
  input.value = initial;
  input.addEventListener('input', function () { render(input.value); });
  render(initial);
})();
</script>`, index), nil
}

// SearchCSS styles the search page.
const SearchCSS = `
.search-form input { width: 100%; padding: 14px 16px; font-size: 1.1rem; border: 1px solid var(--color-border); border-radius: var(--radius); }
.search-results { list-style: none; padding: 0; }
.search-results li { padding: 16px 0; border-bottom: 1px solid var(--color-border); }
.search-results a { font-weight: 700; font-size: 1.1rem; }
.search-type { margin-left: 8px; font-size: .75rem; text-transform: uppercase; color: var(--color-text-muted); }
.sr-only { position: absolute; width: 1px; height: 1px; overflow: hidden; clip: rect(0 0 0 0); }
`
