package run

import (
	"time"

	"github.com/John-Robertt/countpdf/internal/config"
	"github.com/John-Robertt/countpdf/internal/domain"
)

// Observer 用于把“运行进度/阶段/目录结果”从核心执行流程中解耦出来。
//
// run 包只负责发事件，不做任何输出（避免污染 stdout 的报告输出）。
type Observer interface {
	// OnStart 在 ExecuteWithObserver 开始时调用。
	OnStart(eff config.EffectiveConfig)
	// OnPhaseDone 在阶段结束时调用（scan / classify）。
	OnPhaseDone(name string, fields map[string]any, dur time.Duration)
	// OnFolderDone 在单个目录判定完成时调用；idx 从 1 开始。
	OnFolderDone(idx, total int, f domain.Folder, cats []domain.Category)
}
