package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/countpdf/internal/domain"
)

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		name   string
		folder domain.Folder
		want   []domain.Category
	}{
		{
			name:   "single pdf",
			folder: domain.Folder{FileCount: 1, Entries: []string{"report.pdf"}},
			want:   []domain.Category{domain.CategoryPDF},
		},
		{
			name:   "single docx",
			folder: domain.Folder{FileCount: 1, Entries: []string{"report.docx"}},
			want:   []domain.Category{domain.CategoryDOCX},
		},
		{
			name:   "tex project",
			folder: domain.Folder{FileCount: 3, Entries: []string{"fig.png", "main.tex", "refs.pdf"}},
			want:   []domain.Category{domain.CategoryTeX},
		},
		{
			name:   "empty folder",
			folder: domain.Folder{},
			want:   nil,
		},
		{
			name:   "pdf plus txt",
			folder: domain.Folder{FileCount: 2, Entries: []string{"a.pdf", "notes.txt"}},
			want:   nil,
		},
		{
			name:   "single tex is not a project",
			folder: domain.Folder{FileCount: 1, Entries: []string{"main.tex"}},
			want:   nil,
		},
		{
			name:   "uppercase extension does not match",
			folder: domain.Folder{FileCount: 1, Entries: []string{"REPORT.PDF"}},
			want:   nil,
		},
		{
			name:   "hidden pdf is not matched",
			folder: domain.Folder{FileCount: 1, Entries: []string{".report.pdf"}},
			want:   nil,
		},
		{
			// 目录名匹配 *.pdf 也计入匹配数，但不计入文件数。
			name:   "dir named like pdf with one file",
			folder: domain.Folder{FileCount: 1, Entries: []string{"old.pdf", "x.txt"}},
			want:   []domain.Category{domain.CategoryPDF},
		},
		{
			name:   "two pdf matches with one file",
			folder: domain.Folder{FileCount: 1, Entries: []string{"a.pdf", "b.pdf"}},
			want:   nil,
		},
	}

	c := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Classify(tc.folder)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_RulesIndependent(t *testing.T) {
	// 自定义规则集：两条规则都命中时两者都返回，顺序与规则顺序一致。
	c := Classifier{Rules: []Rule{
		{Category: domain.CategoryTeX, Pattern: "*.tex", Files: moreThan(0), Matches: moreThan(0)},
		{Category: domain.CategoryPDF, Pattern: "*.pdf", Files: moreThan(0), Matches: moreThan(0)},
	}}

	got, err := c.Classify(domain.Folder{FileCount: 2, Entries: []string{"a.pdf", "b.tex"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{domain.CategoryTeX, domain.CategoryPDF}, got)
}

func TestCountMatches(t *testing.T) {
	n, err := CountMatches("*.tex", []string{"a.tex", "b.tex", "c.bib", ".d.tex"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountMatches(".*.tex", []string{".d.tex"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
