package domain

// Tally 是一次分类遍历的结果。
//
// 分类列表按追加顺序构建；同一目录可能出现在多个列表中（三条规则相互独立）。
type Tally struct {
	Folders      []string
	PDF          []string
	DOCX         []string
	TeX          []string
	Unclassified []string
}

// List 按分类返回对应列表；未知分类返回 nil。
func (t *Tally) List(c Category) []string {
	switch c {
	case CategoryPDF:
		return t.PDF
	case CategoryDOCX:
		return t.DOCX
	case CategoryTeX:
		return t.TeX
	default:
		return nil
	}
}

// Append 把 path 追加到分类 c 的列表末尾。
func (t *Tally) Append(c Category, path string) {
	switch c {
	case CategoryPDF:
		t.PDF = append(t.PDF, path)
	case CategoryDOCX:
		t.DOCX = append(t.DOCX, path)
	case CategoryTeX:
		t.TeX = append(t.TeX, path)
	}
}
