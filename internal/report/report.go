// Package report 把 RunReport 渲染为 text / json / html / xlsx。
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/John-Robertt/countpdf/internal/domain"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
	FormatXLSX = "xlsx"
)

// UnknownFormatError 表示不支持的输出格式。
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("不支持的输出格式：%q（可选 text|json|html|xlsx）", e.Format)
}

// Render 按 format 把 rr 写入 w。
func Render(w io.Writer, format string, rr domain.RunReport) error {
	switch format {
	case FormatText:
		return Text(w, rr)
	case FormatJSON:
		return JSON(w, rr)
	case FormatHTML:
		return HTML(w, rr)
	case FormatXLSX:
		return XLSX(w, rr)
	default:
		return &UnknownFormatError{Format: format}
	}
}

// IsBinary 报告该格式是否为二进制输出（不适合直接写到终端）。
func IsBinary(format string) bool {
	return format == FormatXLSX
}

// JSON 输出单个 RunReport JSON 文档（带缩进，末尾换行）。
func JSON(w io.Writer, rr domain.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rr)
}
