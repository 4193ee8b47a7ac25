package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/John-Robertt/countpdf/internal/app/run"
	"github.com/John-Robertt/countpdf/internal/config"
	"github.com/John-Robertt/countpdf/internal/domain"
)

var _ run.Observer = (*progressUI)(nil)

// progressUI 是交互终端下的进度输出。
//
// 所有过程信息写到 stderr，不污染 stdout 的报告输出；run 层只发事件，这里决定如何展示。
type progressUI struct {
	w         io.Writer
	startedAt time.Time
}

func newProgressUI(w io.Writer) *progressUI {
	return &progressUI{w: w}
}

func (p *progressUI) OnStart(eff config.EffectiveConfig) {
	p.startedAt = time.Now()

	fmt.Fprintf(p.w, "[%s] countpdf run\n", p.startedAt.Format("15:04:05"))
	fmt.Fprintln(p.w, "配置（生效）:")
	fmt.Fprintf(p.w, "  path: %s\n", eff.Path)
	fmt.Fprintf(p.w, "  format: %s\n", orAuto(eff.Format))
	if eff.Out != "" {
		fmt.Fprintf(p.w, "  out: %s\n", eff.Out)
	}
	fmt.Fprintf(p.w, "  log_level: %s\n", eff.LogLevel)
	fmt.Fprintln(p.w)
}

func (p *progressUI) OnPhaseDone(name string, fields map[string]any, dur time.Duration) {
	switch name {
	case "scan":
		fmt.Fprintf(p.w, "扫描: folders=%d (%s)\n", intField(fields, "folders"), formatShortDuration(dur))
	case "classify":
		fmt.Fprintf(p.w, "分类: pdf=%d docx=%d tex=%d unclassified=%d (%s)\n",
			intField(fields, "pdf"),
			intField(fields, "docx"),
			intField(fields, "tex"),
			intField(fields, "unclassified"),
			formatShortDuration(dur),
		)
		fmt.Fprintf(p.w, "总耗时: %s\n\n", formatShortDuration(time.Since(p.startedAt)))
	default:
		// 兜底：未知阶段也不要静默。
		fmt.Fprintf(p.w, "%s (%s)\n", name, formatShortDuration(dur))
	}
}

func (p *progressUI) OnFolderDone(idx, total int, f domain.Folder, cats []domain.Category) {
	fmt.Fprintf(p.w, "[%d/%d] %s files=%d -> %s\n", idx, total, truncate(f.Name, 60), f.FileCount, formatCategories(cats))
}

func formatCategories(cats []domain.Category) string {
	if len(cats) == 0 {
		return "unclassified"
	}
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, "+")
}

func orAuto(s string) string {
	if s == "" {
		return "auto"
	}
	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func formatShortDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func intField(fields map[string]any, key string) int {
	if fields == nil {
		return 0
	}
	switch x := fields[key].(type) {
	case int:
		return x
	case int64:
		return int(x)
	default:
		return 0
	}
}
