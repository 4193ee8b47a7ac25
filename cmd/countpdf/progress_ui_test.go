package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/John-Robertt/countpdf/internal/config"
	"github.com/John-Robertt/countpdf/internal/domain"
)

func TestProgressUI_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressUI(&buf)

	p.OnStart(config.EffectiveConfig{Path: "/subs", LogLevel: "info"})
	p.OnPhaseDone("scan", map[string]any{"folders": 2}, 1500*time.Millisecond)
	p.OnFolderDone(1, 2, domain.Folder{Name: "a", FileCount: 1}, []domain.Category{domain.CategoryPDF})
	p.OnFolderDone(2, 2, domain.Folder{Name: "b"}, nil)

	out := buf.String()
	assert.Contains(t, out, "path: /subs")
	assert.Contains(t, out, "format: auto")
	assert.Contains(t, out, "扫描: folders=2 (1.5s)")
	assert.Contains(t, out, "[1/2] a files=1 -> pdf")
	assert.Contains(t, out, "[2/2] b files=0 -> unclassified")
}

func TestFormatCategories(t *testing.T) {
	assert.Equal(t, "pdf+tex", formatCategories([]domain.Category{domain.CategoryPDF, domain.CategoryTeX}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "Comunicação", truncate("Comunicação", 20))
}
