package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/John-Robertt/countpdf/internal/domain"
)

// 通过可替换的函数指针，让测试能稳定模拟 Stat 失败。
var statFunc = os.Stat

// Subfolders 列出 base 的直接子目录，并读取每个子目录的条目。
//
// 任一目录不可读都会直接返回错误，由上层终止本次运行。
// ctx 在目录之间检查，取消后返回包装了 ctx.Err() 的错误。
func Subfolders(ctx context.Context, base string) ([]domain.Folder, error) {
	paths, err := Subdirs(base)
	if err != nil {
		return nil, err
	}

	folders := make([]domain.Folder, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("扫描被中断：%w", err)
		}
		f, err := ReadFolder(p)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, nil
}

// Subdirs 返回 base 的直接子目录路径（Join(base, name)）。
//
// 规则：
// - 只看一层：子目录内部的目录不会被递归
// - 指向目录的符号链接也算子目录（跟随链接判定类型）
// - 输出按名称排序（os.ReadDir 保证），避免平台差异带来的不确定性
func Subdirs(base string) ([]string, error) {
	base = filepath.Clean(base)

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("读取 base 目录 %q 失败：%w", base, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(base, e.Name())
		isDir, err := followIsDir(path, e)
		if err != nil {
			return nil, err
		}
		if isDir {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// ReadFolder 读取单个目录：记录全部条目名，并统计其中的普通文件数。
func ReadFolder(path string) (domain.Folder, error) {
	path = filepath.Clean(path)

	entries, err := os.ReadDir(path)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("读取目录 %q 失败：%w", path, err)
	}

	f := domain.Folder{
		Path:    path,
		Name:    filepath.Base(path),
		Entries: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		f.Entries = append(f.Entries, e.Name())
		if isRegularFile(filepath.Join(path, e.Name()), e) {
			f.FileCount++
		}
	}
	return f, nil
}

func followIsDir(path string, e fs.DirEntry) (bool, error) {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir(), nil
	}
	fi, err := statFunc(path)
	if err != nil {
		// 悬空链接不是目录，也不算错误。
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %q 失败：%w", path, err)
	}
	return fi.IsDir(), nil
}

// isRegularFile 跟随符号链接判定普通文件；stat 失败视为“不是文件”。
func isRegularFile(path string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := statFunc(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
