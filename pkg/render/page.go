package render

import (
	"html/template"
	"io"
	"strings"

	"github.com/mboehme/rfsee/pkg/catalog"
)

// detailTmpl is the per-entry page: a link back to the search page and the
// entry's relationship graph embedded as an object so node URLs stay
// clickable.
var detailTmpl = template.Must(template.New("detail").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>RFSee {{.ID}}</title>
  <style>
    body {
      margin: 20px;
      font-family: Arial, sans-serif;
    }

    object {
      width: 100%;
      height: auto;
      display: block;
    }
  </style>
</head>
<body>
<h3>{{.ID}}{{if .Title}} -- {{.Title}}{{end}} (click nodes)</h3>
<p><a href="index.html">Go back to RFSee search.</a></p>
<object type="image/svg+xml" data="{{.ID}}.svg"></object>
</body>
</html>
`))

// detailData feeds detailTmpl.
type detailData struct {
	ID    catalog.EntryID
	Title string
}

// WriteDetailPage writes the HTML page for one entry.
func WriteDetailPage(w io.Writer, id catalog.EntryID, title string) error {
	return detailTmpl.Execute(w, detailData{ID: id, Title: strings.TrimSpace(title)})
}

// indexTmpl is the global search page: every entry as a heading plus a
// client-side substring search over id and title.
var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>RFSee RFC Browser</title>

  <style>
    body {
      font-family: sans-serif;
      max-width: 700px;
      margin: 2rem auto;
      line-height: 1.6;
    }

    input {
      width: 100%;
      padding: 0.5rem;
      font-size: 1rem;
    }

    ul {
      margin: 0.5rem 0 1.5rem;
      padding-left: 1.2rem;
    }

    li {
      margin: 0.25rem 0;
    }

    .jump-highlight {
      outline: 3px solid #007acc;
      outline-offset: 4px;
    }

    hr {
      margin: 3rem 0;
    }
  </style>
</head>
<body>

  <h1>RFSee RFC Browser</h1>

  <p>
    Search for RFC numbers, names or years below and press Enter
    or click a result.
  </p>

  <input id="search" placeholder="Search RFCs…" autocomplete="off" />
  <ul id="results"></ul>

  <hr>
{{range .}}
<h4 id="{{.ID}}">{{.ID}} -- {{.Title}}</h4>
<p><a href="{{.ID}}.html">{{.ID}} -- {{.Title}}</a></p>
{{end}}
  <script>
  (() => {
    const input = document.getElementById("search");
    const results = document.getElementById("results");

    const candidates = [];
    document
      .querySelectorAll("h1[id],h2[id],h3[id],h4[id],h5[id],h6[id]")
      .forEach(h => {
        candidates.push({
          id: h.id,
          label: h.textContent.trim(),
          el: h
        });
      });

    function clearResults() {
      results.innerHTML = "";
    }

    function highlightAndScroll(el, id) {
      history.pushState(null, "", "#" + encodeURIComponent(id));
      el.scrollIntoView({ behavior: "smooth", block: "start" });
      el.classList.add("jump-highlight");
      setTimeout(() => el.classList.remove("jump-highlight"), 1200);
    }

    function render(matches) {
      clearResults();
      for (const m of matches.slice(0, 15)) {
        const li = document.createElement("li");
        const link = document.createElement("a");
        link.href = "#" + encodeURIComponent(m.id);
        link.textContent = m.label;
        link.addEventListener("click", (e) => {
          e.preventDefault();
          highlightAndScroll(m.el, m.id);
          clearResults();
        });
        li.appendChild(link);
        results.appendChild(li);
      }
    }

    function search(q) {
      q = q.trim().toLowerCase();
      if (!q) {
        clearResults();
        return;
      }

      const matches = candidates
        .map(c => {
          const hay = (c.label + " " + c.id).toLowerCase();
          const idx = hay.indexOf(q);
          return { ...c, score: idx === -1 ? Infinity : idx };
        })
        .filter(x => x.score !== Infinity)
        .sort((a, b) => a.score - b.score || a.label.length - b.label.length);

      render(matches);
    }

    input.addEventListener("input", () => search(input.value));

    input.addEventListener("keydown", (e) => {
      if (e.key === "Enter") {
        const first = results.querySelector("a");
        if (first) first.click();
      } else if (e.key === "Escape") {
        clearResults();
        input.blur();
      }
    });
  })();
  </script>

</body>
</html>
`))

// WriteIndexPage writes the global search page listing every entry in
// catalog insertion order.
func WriteIndexPage(w io.Writer, items []catalog.ListingItem) error {
	return indexTmpl.Execute(w, items)
}
