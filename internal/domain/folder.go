package domain

// Folder 描述 base 目录下的一个直接子目录（只做 ReadDir/Stat，不读文件内容）。
//
// 不变量：
// - Path = Join(base, Name)，与原脚本打印的形态一致
// - Entries 已按名称排序，包含子目录名
// - FileCount 只统计普通文件（跟随符号链接），子目录不计入
type Folder struct {
	Path      string
	Name      string
	FileCount int
	Entries   []string
}
