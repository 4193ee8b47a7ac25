package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubfolders_OnlyImmediateDirsSorted(t *testing.T) {
	base := t.TempDir()

	touch(t, filepath.Join(base, "b", "report.pdf"))
	touch(t, filepath.Join(base, "a", "main.tex"))
	touch(t, filepath.Join(base, "a", "refs.bib"))
	touch(t, filepath.Join(base, "a", "deep", "inner.pdf"))
	touch(t, filepath.Join(base, "loose.pdf")) // base 下的文件不是子目录
	mkdir(t, filepath.Join(base, "empty"))

	got, err := Subfolders(context.Background(), base)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"a", "b", "empty"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, filepath.Join(base, "a"), got[0].Path)

	// deep/ 是条目但不是文件。
	assert.Equal(t, []string{"deep", "main.tex", "refs.bib"}, got[0].Entries)
	assert.Equal(t, 2, got[0].FileCount)
	assert.Equal(t, 1, got[1].FileCount)
	assert.Equal(t, 0, got[2].FileCount)
	assert.Empty(t, got[2].Entries)
}

func TestSubfolders_MissingBase(t *testing.T) {
	_, err := Subfolders(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "应包装原始 OS 错误：%v", err)
}

func TestSubfolders_SymlinkFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("符号链接在 Windows 上需要额外权限")
	}
	base := t.TempDir()
	outside := t.TempDir()
	touch(t, filepath.Join(outside, "real", "paper.pdf"))
	touch(t, filepath.Join(outside, "target.docx"))

	require.NoError(t, os.Symlink(filepath.Join(outside, "real"), filepath.Join(base, "linked")))
	mkdir(t, filepath.Join(base, "sub"))
	require.NoError(t, os.Symlink(filepath.Join(outside, "target.docx"), filepath.Join(base, "sub", "x.docx")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "missing"), filepath.Join(base, "sub", "dangling.pdf")))

	got, err := Subfolders(context.Background(), base)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "linked", got[0].Name)
	assert.Equal(t, 1, got[0].FileCount)

	// 文件链接计入文件数；悬空链接只是条目。
	assert.Equal(t, "sub", got[1].Name)
	assert.Equal(t, 1, got[1].FileCount)
	assert.Equal(t, []string{"dangling.pdf", "x.docx"}, got[1].Entries)
}

func TestSubfolders_StatFailurePropagates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("符号链接在 Windows 上需要额外权限")
	}
	base := t.TempDir()
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(base, "link")))

	old := statFunc
	statFunc = func(string) (os.FileInfo, error) { return nil, os.ErrPermission }
	defer func() { statFunc = old }()

	_, err := Subfolders(context.Background(), base)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestReadFolder_NotADirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f.pdf")
	touch(t, p)

	_, err := ReadFolder(p)
	require.Error(t, err)
}

func touch(t *testing.T, path string) {
	t.Helper()
	mkdir(t, filepath.Dir(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644), "写入文件失败")
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755), "创建目录失败")
}

func TestSubdirs_SkipsFiles(t *testing.T) {
	base := t.TempDir()
	touch(t, filepath.Join(base, "x.pdf"))
	mkdir(t, filepath.Join(base, "b"))
	mkdir(t, filepath.Join(base, "a"))

	got, err := Subdirs(base)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(base, "a"), filepath.Join(base, "b")}, got)
}

func TestSubfolders_Canceled(t *testing.T) {
	base := t.TempDir()
	mkdir(t, filepath.Join(base, "a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Subfolders(ctx, base)
	require.ErrorIs(t, err, context.Canceled)
}
