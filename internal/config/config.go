package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// ErrCodeNotFound 表示既没有 path 参数也没有环境变量，且 cwd 下没有 countpdf.yaml。
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid 表示配置文件/环境变量无法读取/解析，或字段不合法。
	ErrCodeInvalid = "config_invalid"
	// ErrCodeMissingPath 表示只能依赖配置文件时，配置文件缺少 path 字段。
	ErrCodeMissingPath = "config_missing_path"
)

const (
	// FileName 是配置文件的固定文件名。
	FileName = "countpdf.yaml"
	// EnvPrefix 是环境变量前缀（COUNTPDF_PATH 等）。
	EnvPrefix = "COUNTPDF"
	// DefaultLogLevel 是日志级别的最终默认值。
	DefaultLogLevel = "info"
)

// CLIArgs 是 CLI 暴露的入口；空串表示“未指定”。
type CLIArgs struct {
	Path     string
	Format   string
	Out      string
	LogLevel string
}

// FileConfig 对应 countpdf.yaml 的解析结构。
type FileConfig struct {
	Path     string `yaml:"path"`
	Format   string `yaml:"format"`
	Out      string `yaml:"out"`
	LogLevel string `yaml:"log_level"`
}

// EnvConfig 对应 COUNTPDF_* 环境变量。
//
// 注意：这里故意不用 envconfig 标签。带标签时 envconfig 会回退读取不带前缀的同名变量，
// 而 PATH 恰好是系统变量。
type EnvConfig struct {
	Path     string
	Format   string
	Out      string
	LogLevel string `split_words:"true"`
}

// EffectiveConfig 是合并并做最小规范化后的最终配置。
//
// Path 是相对 cwd 解析后的绝对路径，用于实际读取；Display 是用户给出的形态（仅 Clean），
// 报告中的目录路径以它为前缀。Format 为空表示“由调用方按 stdout 是否为 TTY 决定”。
type EffectiveConfig struct {
	Path     string `validate:"required"`
	Display  string
	Format   string `validate:"omitempty,oneof=text json html xlsx"`
	Out      string
	LogLevel string `validate:"required,oneof=debug info warn error"`
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s：未找到配置文件 %q（也可以通过参数或 %s_PATH 指定 path）", e.Code, e.Path, EnvPrefix)
	case ErrCodeMissingPath:
		return fmt.Sprintf("%s：配置文件 %q 缺少必填字段 path", e.Code, e.Path)
	case ErrCodeInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s：配置 %q 无效：%v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s：配置 %q 无效", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

var validate = validator.New()

// LoadEffective 发现并读取配置，然后与环境变量、CLI 参数合并为最终配置。
//
// 发现规则（固定）：
// 1) CLI 或 COUNTPDF_PATH 提供 path：尝试读取 <path>/countpdf.yaml（可选）
// 2) 都未提供：必须读取 <cwd>/countpdf.yaml（必选），且其中必须包含 path
//
// 覆盖优先级（固定）：CLI > 环境变量 > 配置文件 > 默认值。
// 相对路径一律相对 cwd 解析。
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cwd, Err: err}
	}

	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: EnvPrefix + "_*", Err: err}
	}

	path := firstNonEmpty(cli.Path, env.Path)
	if path != "" {
		absPath := absCleanFrom(cwdAbs, path)
		cfgPath := filepath.Join(absPath, FileName)

		fc, _, err := readFileConfig(cfgPath)
		if err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
		}
		return merge(cwdAbs, absPath, displayPath(path), cli, env, fc, cfgPath)
	}

	cfgPath := filepath.Join(cwdAbs, FileName)
	fc, exists, err := readFileConfig(cfgPath)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}
	if !exists {
		return EffectiveConfig{}, &Error{Code: ErrCodeNotFound, Path: cfgPath, Err: os.ErrNotExist}
	}
	if strings.TrimSpace(fc.Path) == "" {
		return EffectiveConfig{}, &Error{Code: ErrCodeMissingPath, Path: cfgPath}
	}

	return merge(cwdAbs, absCleanFrom(cwdAbs, fc.Path), displayPath(fc.Path), cli, env, fc, cfgPath)
}

func merge(cwdAbs, absPath, display string, cli CLIArgs, env EnvConfig, fc FileConfig, cfgPath string) (EffectiveConfig, error) {
	eff := EffectiveConfig{
		Path:     absPath,
		Display:  display,
		Format:   strings.ToLower(firstNonEmpty(cli.Format, env.Format, fc.Format)),
		LogLevel: strings.ToLower(firstNonEmpty(cli.LogLevel, env.LogLevel, fc.LogLevel, DefaultLogLevel)),
	}
	if out := firstNonEmpty(cli.Out, env.Out, fc.Out); out != "" {
		eff.Out = absCleanFrom(cwdAbs, out)
	}

	if err := validate.Struct(eff); err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}
	return eff, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// displayPath 保留用户给出的路径形态：相对路径仍是相对路径（"./subs/" -> "subs"）。
func displayPath(p string) string {
	return filepath.Clean(strings.TrimSpace(p))
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readFileConfig 读取并解析 YAML 配置文件。
// 返回值 exists 表示该文件是否存在（不存在不算错误）。
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
