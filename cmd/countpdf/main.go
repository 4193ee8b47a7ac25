package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/John-Robertt/countpdf/internal/app/run"
	"github.com/John-Robertt/countpdf/internal/config"
	"github.com/John-Robertt/countpdf/internal/domain"
	"github.com/John-Robertt/countpdf/internal/infra/fsx"
	"github.com/John-Robertt/countpdf/internal/infra/logx"
	"github.com/John-Robertt/countpdf/internal/report"
)

func main() {
	// .env 可选：不存在时静默忽略，已存在的环境变量不会被覆盖。
	_ = godotenv.Load()

	args := os.Args[1:]
	if len(args) == 0 || isHelp(args[0]) {
		printUsage(os.Stdout)
		return
	}

	switch args[0] {
	case "run":
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
			os.Exit(1)
		}
		c := cli{
			cwd:       cwd,
			stdout:    os.Stdout,
			stderr:    os.Stderr,
			stdoutTTY: isTTY(os.Stdout),
			stderrTTY: isTTY(os.Stderr),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		code := c.runCmd(ctx, args[1:])
		stop()
		if code != 0 {
			os.Exit(code)
		}
	default:
		fmt.Fprintf(os.Stderr, "未知命令：%q\n\n", args[0])
		printUsage(os.Stderr)
		os.Exit(2)
	}
}

// cli 把进程级依赖（cwd、输出流、TTY 判定）集中起来，便于测试直接驱动 runCmd。
type cli struct {
	cwd       string
	stdout    io.Writer
	stderr    io.Writer
	stdoutTTY bool
	stderrTTY bool
}

func (c cli) runCmd(ctx context.Context, args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printRunUsage(c.stdout)
			return 0
		}
	}

	ra, err := parseRunArgs(args)
	if err != nil {
		fmt.Fprintf(c.stderr, "参数错误：%v\n\n", err)
		printRunUsage(c.stderr)
		return 2
	}

	eff, err := config.LoadEffective(c.cwd, config.CLIArgs(ra))
	if err != nil {
		// 配置尚未生效，只能按 CLI 给出的级别建 logger（为空时 info）。
		logx.New(c.stderr, ra.LogLevel).Error("加载配置失败",
			slog.String("error_code", config.Code(err)),
			slog.Any("error", err),
		)
		return 1
	}

	format := eff.Format
	if format == "" {
		// stdout 非 TTY：默认输出一个 RunReport JSON，便于管道消费。
		format = report.FormatText
		if !c.stdoutTTY {
			format = report.FormatJSON
		}
	}
	if report.IsBinary(format) && eff.Out == "" && c.stdoutTTY {
		fmt.Fprintf(c.stderr, "参数错误：--format %s 输出二进制内容，请配合 --out 使用\n", format)
		return 2
	}

	logger := logx.New(c.stderr, eff.LogLevel)

	var obs run.Observer
	if c.stderrTTY {
		obs = newProgressUI(c.stderr)
	}

	rr, err := run.ExecuteWithObserver(ctx, eff, logger, obs)
	if err != nil {
		logger.Error("运行失败", slog.String("path", eff.Path), slog.Any("error", err))
		return 1
	}

	if eff.Out != "" {
		err := fsx.WriteAtomic(eff.Out, func(w io.Writer) error {
			return report.Render(w, format, rr)
		})
		if err != nil {
			logger.Error("写入报告失败", slog.String("out", eff.Out), slog.Any("error", err))
			switch {
			case fsx.IsPathTypeConflict(err):
				fmt.Fprintf(c.stderr, "--out %s 是一个目录，请指定文件路径\n", eff.Out)
			case fsx.IsCrossDevice(err):
				fmt.Fprintf(c.stderr, "--out %s 与临时文件不在同一文件系统，无法原子替换\n", eff.Out)
			}
			return 1
		}
		fmt.Fprintf(c.stderr, "report: %s\n", eff.Out)
	} else if err := report.Render(c.stdout, format, rr); err != nil {
		logger.Error("输出报告失败", slog.String("format", format), slog.Any("error", err))
		return 1
	}

	// 纯文本直接打到 stdout 时摘要已包含在正文中，不再重复。
	if eff.Out != "" || format != report.FormatText {
		emitSummary(c.stderr, rr)
	}
	return 0
}

type runArgs struct {
	Path     string
	Format   string
	Out      string
	LogLevel string
}

func parseRunArgs(args []string) (runArgs, error) {
	ra := runArgs{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		name, val, hasVal := strings.Cut(a, "=")
		switch name {
		case "--format", "--out", "--log-level":
			if !hasVal {
				if i+1 >= len(args) {
					return runArgs{}, fmt.Errorf("%s 需要一个值", name)
				}
				i++
				val = args[i]
			}
			if strings.TrimSpace(val) == "" {
				return runArgs{}, fmt.Errorf("%s 不能为空", name)
			}
			switch name {
			case "--format":
				ra.Format = val
			case "--out":
				ra.Out = val
			case "--log-level":
				ra.LogLevel = val
			}
			continue
		}

		if strings.HasPrefix(a, "-") {
			return runArgs{}, fmt.Errorf("未知参数 %q", a)
		}
		if ra.Path != "" {
			return runArgs{}, fmt.Errorf("重复的 path：%q 与 %q", ra.Path, a)
		}
		ra.Path = a
	}

	return ra, nil
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `用法：
  countpdf run [path] [--format text|json|html|xlsx] [--out FILE] [--log-level LEVEL]

命令：
  run    扫描 path 的直接子目录，按 PDF / DOCX / TeX 分类并输出统计

使用 "countpdf run --help" 查看详细说明。
`)
}

func printRunUsage(w io.Writer) {
	fmt.Fprint(w, `用法：
  countpdf run [path] [--format text|json|html|xlsx] [--out FILE] [--log-level LEVEL]

参数：
  path         base 目录（未指定则读 COUNTPDF_PATH，再读 ./countpdf.yaml 的 path）
  --format     输出格式（默认：终端 text，管道 json）
  --out        把报告原子写入 FILE，而不是 stdout（xlsx 在终端下必须指定）
  --log-level  debug|info|warn|error（默认 info；日志只写 stderr）
  -h, --help   显示帮助

规则：
  PDF   目录内恰好 1 个文件，且它匹配 *.pdf
  DOCX  目录内恰好 1 个文件，且它匹配 *.docx
  TeX   目录内多于 1 个文件，且至少 1 个匹配 *.tex
`)
}

func emitSummary(w io.Writer, rr domain.RunReport) {
	s := rr.Summary
	fmt.Fprintf(w, "完成：folders=%d pdf=%d docx=%d tex=%d unclassified=%d\n",
		s.Folders, s.PDF, s.DOCX, s.TeX, s.Unclassified,
	)
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
