package domain

// Category 是子目录的分类标签。
type Category string

const (
	CategoryPDF  Category = "pdf"
	CategoryDOCX Category = "docx"
	CategoryTeX  Category = "tex"
)

// AllCategories 固定分类顺序：PDF、DOCX、TeX（输出与判定都按此顺序）。
var AllCategories = []Category{CategoryPDF, CategoryDOCX, CategoryTeX}

// Label 返回用于报告展示的名称。
func (c Category) Label() string {
	switch c {
	case CategoryPDF:
		return "PDF"
	case CategoryDOCX:
		return "DOCX"
	case CategoryTeX:
		return "TeX"
	default:
		return string(c)
	}
}
