package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReport_Finalize_SummaryAndUTC(t *testing.T) {
	r := NewRunReport("/abs/base", Tally{
		Folders:      []string{"/abs/base/a", "/abs/base/b", "/abs/base/c", "/abs/base/d"},
		PDF:          []string{"/abs/base/a"},
		TeX:          []string{"/abs/base/b", "/abs/base/c"},
		Unclassified: []string{"/abs/base/d"},
	})
	r.StartedAt = time.Date(2026, 2, 9, 10, 0, 0, 0, time.FixedZone("X", 8*3600))
	r.FinishedAt = time.Date(2026, 2, 9, 10, 0, 1, 0, time.FixedZone("X", 8*3600))

	r.Finalize()

	assert.Equal(t, ReportSummary{
		Folders:      4,
		PDF:          1,
		DOCX:         0,
		TeX:          2,
		Total:        3,
		Classified:   3,
		Unclassified: 1,
	}, r.Summary)
	assert.Equal(t, r.Summary.Folders, r.Summary.Classified+r.Summary.Unclassified)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	// time.Time 在 UTC 下应输出 'Z' 后缀；空列表必须是 [] 而不是 null。
	assert.Contains(t, string(b), `"started_at":"2026-02-09T02:00:00Z"`)
	assert.Contains(t, string(b), `"docx":[]`)
}

func TestRunReport_Finalize_OverlapCountedOnce(t *testing.T) {
	// 同一目录命中两个分类：Total 按求和计，Classified 按去重计。
	r := NewRunReport("/b", Tally{
		Folders: []string{"/b/x"},
		PDF:     []string{"/b/x"},
		TeX:     []string{"/b/x"},
	})
	r.Finalize()

	assert.Equal(t, 2, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.Classified)
	assert.Equal(t, 0, r.Summary.Unclassified)
}

func TestTally_AppendAndList(t *testing.T) {
	var tl Tally
	for _, c := range AllCategories {
		tl.Append(c, "/p/"+string(c))
	}
	for _, c := range AllCategories {
		assert.Equal(t, []string{"/p/" + string(c)}, tl.List(c))
	}
	assert.Nil(t, tl.List(Category("zip")))
}
