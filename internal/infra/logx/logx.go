// Package logx 构造本工具使用的 slog.Logger。
//
// 日志只写 stderr：stdout 保留给报告输出。
package logx

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel 把 "debug|info|warn|error" 解析为 slog.Level；未知值回退为 info。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New 返回写入 w 的文本格式 logger。
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Discard 返回丢弃所有输出的 logger（测试与库调用方未提供 logger 时使用）。
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
