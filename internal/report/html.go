package report

import (
	"html/template"
	"io"

	"github.com/John-Robertt/countpdf/internal/domain"
)

type htmlSection struct {
	ID    string
	Title string
	Items []string
}

type htmlView struct {
	Report   domain.RunReport
	Sections []htmlSection
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>countpdf: {{.Report.Path}}</title>
</head>
<body>
<h1 id="base">{{.Report.Path}}</h1>
<table id="summary">
<tr><th>Folders</th><td data-key="folders">{{.Report.Summary.Folders}}</td></tr>
<tr><th>PDF</th><td data-key="pdf">{{.Report.Summary.PDF}}</td></tr>
<tr><th>DOCX</th><td data-key="docx">{{.Report.Summary.DOCX}}</td></tr>
<tr><th>TeX</th><td data-key="tex">{{.Report.Summary.TeX}}</td></tr>
<tr><th>Total</th><td data-key="total">{{.Report.Summary.Total}}</td></tr>
<tr><th>Classified</th><td data-key="classified">{{.Report.Summary.Classified}}</td></tr>
<tr><th>Unclassified</th><td data-key="unclassified">{{.Report.Summary.Unclassified}}</td></tr>
</table>
{{range .Sections}}<section id="{{.ID}}">
<h2>{{.Title}} ({{len .Items}})</h2>
<ul>
{{range .Items}}<li>{{.}}</li>
{{end}}</ul>
</section>
{{end}}<p class="generated">{{.Report.FinishedAt.Format "2006-01-02T15:04:05Z07:00"}}</p>
</body>
</html>
`))

// HTML 输出独立的 HTML 页面：摘要表 + 每个分类一节 + 未归类一节。
func HTML(w io.Writer, rr domain.RunReport) error {
	return htmlTmpl.Execute(w, htmlView{Report: rr, Sections: sections(rr)})
}

func sections(rr domain.RunReport) []htmlSection {
	out := make([]htmlSection, 0, len(domain.AllCategories)+1)
	for _, c := range domain.AllCategories {
		out = append(out, htmlSection{ID: string(c), Title: c.Label(), Items: rr.List(c)})
	}
	return append(out, htmlSection{ID: "unclassified", Title: "Unclassified", Items: rr.Unclassified})
}
