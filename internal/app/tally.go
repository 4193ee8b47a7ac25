package app

import (
	"github.com/John-Robertt/countpdf/internal/domain"
)

// FolderClassifier 判定单个目录所属的分类（0~N 个）。
type FolderClassifier interface {
	Classify(f domain.Folder) ([]domain.Category, error)
}

// Tally 对 folders 做一次遍历，把每个目录追加到它命中的分类列表中，
// 然后计算未归类集合：从完整列表出发，去掉出现在任一分类列表中的目录。
//
// - 列表顺序与 folders 顺序一致
// - 规则相互独立：同一目录可同时出现在多个分类列表中
// - 任一目录判定失败即返回错误（不产出部分结果）
func Tally(folders []domain.Folder, c FolderClassifier) (domain.Tally, error) {
	t := domain.Tally{
		Folders: make([]string, 0, len(folders)),
	}

	for _, f := range folders {
		t.Folders = append(t.Folders, f.Path)

		cats, err := c.Classify(f)
		if err != nil {
			return domain.Tally{}, err
		}
		for _, cat := range cats {
			t.Append(cat, f.Path)
		}
	}

	t.Unclassified = Unclassified(t)
	return t, nil
}

// Unclassified 返回不在任何分类列表中的目录（保持 Folders 的顺序）。
func Unclassified(t domain.Tally) []string {
	seen := make(map[string]struct{}, len(t.PDF)+len(t.DOCX)+len(t.TeX))
	for _, c := range domain.AllCategories {
		for _, p := range t.List(c) {
			seen[p] = struct{}{}
		}
	}

	out := make([]string, 0, len(t.Folders))
	for _, p := range t.Folders {
		if _, ok := seen[p]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
