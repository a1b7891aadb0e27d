package outwriter

import (
	"html/template"
	"io"
	"time"

	"github.com/samhoang/repotwin/internal/contract"
	"github.com/samhoang/repotwin/schema"
)

// resultPage is the self-contained report: inline CSS, inline JS for
// click-to-sort columns, no external assets.
const resultPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>repotwin report</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin-bottom: 2em; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; font-size: 14px; }
th { background: #f0f0f0; cursor: pointer; user-select: none; }
th:hover { background: #e0e0e0; }
tr.best { background: #e6f7ff; font-weight: bold; }
td.num { text-align: right; }
.bar { background: #4a90d9; height: 14px; display: inline-block; }
h2 { margin-top: 1.5em; }
.footer { color: #666; font-size: 13px; }
</style>
</head>
<body>
<h1>repotwin report</h1>
<p>Scan root: <code>{{.RootPath}}</code>{{if .GeneratedAt}} &middot; generated {{.GeneratedAt}}{{end}}</p>

<h2>Ranked variants</h2>
{{if .Result.Candidates}}
<table class="sortable" id="candidates">
<thead><tr>
<th>Rank</th><th>Path</th><th>Branch</th><th>Last Commit</th><th>Status</th>
<th>Ahead</th><th>Behind</th><th>Activity</th>
</tr></thead>
<tbody>
{{range $i, $c := .Result.Candidates}}
<tr{{if $c.Best}} class="best"{{end}}>
<td class="num">{{rank $i}}</td>
<td><code>{{$c.Path}}</code></td>
<td>{{$c.Branch}}</td>
<td>{{$c.LastCommitHuman}}</td>
<td>{{if $c.Dirty}}dirty{{else}}clean{{end}}</td>
<td class="num">{{$c.AheadCount}}</td>
<td class="num">{{$c.BehindCount}}</td>
<td>{{human $c.ActivityEpoch}}</td>
</tr>
{{end}}
</tbody>
</table>
{{if .Result.BestPath}}<p>Best variant: <code>{{.Result.BestPath}}</code></p>{{end}}
{{else}}
<p>No matching repository variants found.</p>
{{end}}

{{range .Result.Diffs}}
<h2>Diff: <code>{{.BestPath}}</code> vs <code>{{.OtherPath}}</code></h2>
{{if eq .Summary.Total 0}}
<p>Trees are identical.</p>
{{else}}
<p>{{.Summary.Total}} discrepancies:
{{.Summary.OnlyInBest}} only in best,
{{.Summary.OnlyInOther}} only in other,
{{.Summary.ContentDiffers}} content differ.</p>
{{if .Records}}
<table class="sortable">
<thead><tr><th>Category</th><th>Path</th><th>Best Checksum</th><th>Other Checksum</th></tr></thead>
<tbody>
{{range .Records}}
<tr>
<td>{{.Category}}</td>
<td><code>{{.RelPath}}</code>{{if .Anomaly}} (unreadable){{end}}</td>
<td><code>{{.BestChecksum}}</code></td>
<td><code>{{.OtherChecksum}}</code></td>
</tr>
{{end}}
</tbody>
</table>
{{end}}
{{end}}
{{if .ArtifactPath}}<p class="footer">Unified diff: <code>{{.ArtifactPath}}</code></p>{{end}}
{{end}}

{{if .Result.Forensic}}
<h2>Activity timeline</h2>
<table class="sortable">
<thead><tr><th>Path</th><th>Branch</th><th>Last Activity</th><th>Timeline</th></tr></thead>
<tbody>
{{range .Result.Forensic.Rows}}
<tr>
<td><code>{{.Path}}</code></td>
<td>{{.Branch}}</td>
<td>{{.ActivityHuman}}</td>
<td><span class="bar" style="width: {{barPx .BarWidth}}px"></span></td>
</tr>
{{end}}
</tbody>
</table>
<p>Probable last active: <code>{{.Result.Forensic.ProbableLastActive}}</code></p>
{{end}}

<script>
document.querySelectorAll("table.sortable th").forEach(function (th) {
  th.addEventListener("click", function () {
    var table = th.closest("table");
    var tbody = table.querySelector("tbody");
    var idx = Array.prototype.indexOf.call(th.parentNode.children, th);
    var asc = th.dataset.asc !== "true";
    th.dataset.asc = asc;
    var rows = Array.prototype.slice.call(tbody.querySelectorAll("tr"));
    rows.sort(function (a, b) {
      var x = a.children[idx].textContent.trim();
      var y = b.children[idx].textContent.trim();
      var nx = parseFloat(x), ny = parseFloat(y);
      var cmp = (!isNaN(nx) && !isNaN(ny)) ? nx - ny : x.localeCompare(y);
      return asc ? cmp : -cmp;
    });
    rows.forEach(function (r) { tbody.appendChild(r); });
  });
});
</script>
</body>
</html>
`

var resultTemplate = template.Must(template.New("result").Funcs(template.FuncMap{
	"rank":  func(i int) int { return i + 1 },
	"human": schema.HumanEpoch,
	"barPx": func(width int) int { return width * 3 },
}).Parse(resultPage))

// writeResultHTML renders the full result as a single self-contained
// HTML document with client-side sortable tables.
func writeResultHTML(w io.Writer, result *schema.RankedResult, cfg *contract.Config) error {
	data := struct {
		Result      *schema.RankedResult
		RootPath    string
		GeneratedAt string
	}{
		Result:      result,
		RootPath:    cfg.RootPath,
		GeneratedAt: time.Now().Format(schema.HumanTimeFormat),
	}
	return resultTemplate.Execute(w, data)
}
