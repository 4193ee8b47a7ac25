package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/John-Robertt/countpdf/internal/domain"
)

// Text 按固定顺序输出纯文本报告：
//
//	子目录列表
//	Number of Pdf / Docx / Tex / Total
//	未归类列表、未归类数量
//	TeX 列表
func Text(w io.Writer, rr domain.RunReport) error {
	s := rr.Summary
	lines := []string{
		formatList(rr.Folders),
		fmt.Sprintf("Number of Pdf:  %d", s.PDF),
		fmt.Sprintf("Number of Docx:  %d", s.DOCX),
		fmt.Sprintf("Number of Tex:  %d", s.TeX),
		fmt.Sprintf("Number Total:  %d", s.Total),
		formatList(rr.Unclassified),
		fmt.Sprintf("%d", s.Unclassified),
		formatList(rr.TeX),
	}
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// formatList 输出 ['a', 'b'] 形式的列表。
func formatList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(it))
	}
	b.WriteByte(']')
	return b.String()
}

// quote 默认用单引号；字符串里有单引号且没有双引号时改用双引号。
func quote(s string) string {
	q := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == q:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}
