package domain

import (
	"time"
)

// RunReport 是对外稳定输出（stdout JSON / report 文件）的结构。
type RunReport struct {
	Path string `json:"path"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Summary ReportSummary `json:"summary"`

	Folders      []string `json:"folders"`
	PDF          []string `json:"pdf"`
	DOCX         []string `json:"docx"`
	TeX          []string `json:"tex"`
	Unclassified []string `json:"unclassified"`
}

// ReportSummary 中 Total 是三项计数之和（与原脚本的 "Number Total" 一致）；
// Classified 是至少命中一个分类的目录数（去重）。
type ReportSummary struct {
	Folders      int `json:"folders"`
	PDF          int `json:"pdf"`
	DOCX         int `json:"docx"`
	TeX          int `json:"tex"`
	Total        int `json:"total"`
	Classified   int `json:"classified"`
	Unclassified int `json:"unclassified"`
}

// NewRunReport 用 Tally 填充报告的各个列表（nil 统一为空切片，保证 JSON 稳定输出 []）。
func NewRunReport(path string, t Tally) RunReport {
	return RunReport{
		Path:         path,
		Folders:      nonNil(t.Folders),
		PDF:          nonNil(t.PDF),
		DOCX:         nonNil(t.DOCX),
		TeX:          nonNil(t.TeX),
		Unclassified: nonNil(t.Unclassified),
	}
}

// Finalize 做两件事：
// 1) 时间统一为 UTC（确保 JSON 为 RFC3339 且后缀 Z）
// 2) summary 由列表计算得出
func (r *RunReport) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	classified := make(map[string]struct{}, len(r.PDF)+len(r.DOCX)+len(r.TeX))
	for _, l := range [][]string{r.PDF, r.DOCX, r.TeX} {
		for _, p := range l {
			classified[p] = struct{}{}
		}
	}

	r.Summary = ReportSummary{
		Folders:      len(r.Folders),
		PDF:          len(r.PDF),
		DOCX:         len(r.DOCX),
		TeX:          len(r.TeX),
		Total:        len(r.PDF) + len(r.DOCX) + len(r.TeX),
		Classified:   len(classified),
		Unclassified: len(r.Unclassified),
	}
}

// List 按分类返回报告中的列表。
func (r *RunReport) List(c Category) []string {
	switch c {
	case CategoryPDF:
		return r.PDF
	case CategoryDOCX:
		return r.DOCX
	case CategoryTeX:
		return r.TeX
	default:
		return nil
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}
