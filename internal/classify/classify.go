// Package classify 根据目录内的文件构成，判定目录属于哪些分类。
package classify

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar"

	"github.com/John-Robertt/countpdf/internal/domain"
)

// Rule 是一条分类规则：文件总数满足 Files，且匹配 Pattern 的条目数满足 Matches。
type Rule struct {
	Category domain.Category
	Pattern  string
	Files    func(n int) bool
	Matches  func(n int) bool
}

func exactly(want int) func(int) bool { return func(n int) bool { return n == want } }
func moreThan(floor int) func(int) bool { return func(n int) bool { return n > floor } }

// DefaultRules 是固定的三条规则（顺序即输出顺序）：
// - PDF：恰好 1 个文件，且恰好 1 个条目匹配 *.pdf
// - DOCX：恰好 1 个文件，且恰好 1 个条目匹配 *.docx
// - TeX：多于 1 个文件，且至少 1 个条目匹配 *.tex
func DefaultRules() []Rule {
	return []Rule{
		{Category: domain.CategoryPDF, Pattern: "*.pdf", Files: exactly(1), Matches: exactly(1)},
		{Category: domain.CategoryDOCX, Pattern: "*.docx", Files: exactly(1), Matches: exactly(1)},
		{Category: domain.CategoryTeX, Pattern: "*.tex", Files: moreThan(1), Matches: moreThan(0)},
	}
}

// Classifier 按规则顺序逐条判定；规则之间相互独立，不短路。
type Classifier struct {
	Rules []Rule
}

// New 返回使用 DefaultRules 的 Classifier。
func New() Classifier {
	return Classifier{Rules: DefaultRules()}
}

// Classify 返回 f 命中的分类（0~N 个，按规则顺序）。
// 只有规则里的 pattern 非法时才会返回错误。
func (c Classifier) Classify(f domain.Folder) ([]domain.Category, error) {
	var out []domain.Category
	for _, r := range c.Rules {
		if !r.Files(f.FileCount) {
			continue
		}
		n, err := CountMatches(r.Pattern, f.Entries)
		if err != nil {
			return nil, fmt.Errorf("规则 %s 的 pattern %q 无效：%w", r.Category, r.Pattern, err)
		}
		if r.Matches(n) {
			out = append(out, r.Category)
		}
	}
	return out, nil
}

// CountMatches 统计 names 中匹配 pattern 的条目数。
//
// 语义对齐 shell glob：大小写敏感；以 '.' 开头的名字只能被以 '.' 开头的 pattern 匹配；
// 目录名同样参与匹配（只看名字，不看类型）。
func CountMatches(pattern string, names []string) (int, error) {
	n := 0
	for _, name := range names {
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
			continue
		}
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}
