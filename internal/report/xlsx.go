package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/John-Robertt/countpdf/internal/domain"
)

// SummarySheet 是 xlsx 中摘要表的名称；其后每个分类一张表，最后是 Unclassified。
const SummarySheet = "Summary"

// XLSX 输出工作簿：Summary 表 + PDF / DOCX / TeX / Unclassified 四张列表。
func XLSX(w io.Writer, rr domain.RunReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}

	s := rr.Summary
	rows := [][]any{
		{"Metric", "Count"},
		{"Folders", s.Folders},
		{"PDF", s.PDF},
		{"DOCX", s.DOCX},
		{"TeX", s.TeX},
		{"Total", s.Total},
		{"Classified", s.Classified},
		{"Unclassified", s.Unclassified},
	}
	if err := writeRows(f, SummarySheet, rows); err != nil {
		return err
	}
	if err := f.SetCellValue(SummarySheet, "D1", "Path"); err != nil {
		return err
	}
	if err := f.SetCellValue(SummarySheet, "D2", rr.Path); err != nil {
		return err
	}

	for _, sec := range sections(rr) {
		if _, err := f.NewSheet(sec.Title); err != nil {
			return err
		}
		list := make([][]any, 0, len(sec.Items)+1)
		list = append(list, []any{"Folder"})
		for _, p := range sec.Items {
			list = append(list, []any{p})
		}
		if err := writeRows(f, sec.Title, list); err != nil {
			return err
		}
		if err := f.SetColWidth(sec.Title, "A", "A", 80); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("写入 %s 第 %d 行失败：%w", sheet, i+1, err)
		}
	}
	return nil
}
