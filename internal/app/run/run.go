package run

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/John-Robertt/countpdf/internal/app"
	"github.com/John-Robertt/countpdf/internal/classify"
	"github.com/John-Robertt/countpdf/internal/config"
	"github.com/John-Robertt/countpdf/internal/domain"
	"github.com/John-Robertt/countpdf/internal/infra/logx"
	"github.com/John-Robertt/countpdf/internal/scan"
)

// Execute 执行一次扫描 + 分类，返回对外稳定的 RunReport。
//
// 任一目录读取失败都会终止整个运行并返回错误（不产出部分报告）。
// ctx 在目录之间检查，取消后立即返回。
func Execute(ctx context.Context, eff config.EffectiveConfig, logger *slog.Logger) (domain.RunReport, error) {
	return ExecuteWithObserver(ctx, eff, logger, nil)
}

// ExecuteWithObserver 与 Execute 相同，但允许传入 Observer 以输出进度/阶段信息。
func ExecuteWithObserver(ctx context.Context, eff config.EffectiveConfig, logger *slog.Logger, obs Observer) (domain.RunReport, error) {
	if logger == nil {
		logger = logx.Discard()
	}
	started := time.Now().UTC()

	if obs != nil {
		obs.OnStart(eff)
	}
	logger.Info("开始扫描", slog.String("path", eff.Path))

	scanStarted := time.Now()
	folders, err := scan.Subfolders(ctx, eff.Path)
	if err != nil {
		return domain.RunReport{}, err
	}
	display := displayBase(eff)
	relabel(folders, display)
	scanDur := time.Since(scanStarted)

	if obs != nil {
		obs.OnPhaseDone("scan", map[string]any{"folders": len(folders)}, scanDur)
	}
	logger.Info("扫描完成", slog.Int("folders", len(folders)), slog.Duration("dur", scanDur))

	classifyStarted := time.Now()
	oc := &observedClassifier{
		inner:  classify.New(),
		total:  len(folders),
		obs:    obs,
		logger: logger,
	}
	t, err := app.Tally(folders, oc)
	if err != nil {
		return domain.RunReport{}, err
	}
	classifyDur := time.Since(classifyStarted)

	rr := domain.NewRunReport(display, t)
	rr.StartedAt = started
	rr.FinishedAt = time.Now().UTC()
	rr.Finalize()

	if obs != nil {
		obs.OnPhaseDone("classify", map[string]any{
			"pdf":          rr.Summary.PDF,
			"docx":         rr.Summary.DOCX,
			"tex":          rr.Summary.TeX,
			"unclassified": rr.Summary.Unclassified,
		}, classifyDur)
	}
	logger.Info("分类完成",
		slog.Int("pdf", rr.Summary.PDF),
		slog.Int("docx", rr.Summary.DOCX),
		slog.Int("tex", rr.Summary.TeX),
		slog.Int("unclassified", rr.Summary.Unclassified),
		slog.Duration("dur", classifyDur),
	)
	return rr, nil
}

// displayBase 返回报告中目录路径的前缀：优先用用户给出的形态，未提供时退回绝对路径。
func displayBase(eff config.EffectiveConfig) string {
	if eff.Display != "" {
		return eff.Display
	}
	return eff.Path
}

// relabel 把目录路径改写为 Join(display, name)；读取已完成，后续只用于判定与输出。
func relabel(folders []domain.Folder, display string) {
	for i := range folders {
		folders[i].Path = filepath.Join(display, folders[i].Name)
	}
}

// observedClassifier 包装 Classifier：每判定一个目录就发一次事件并记 debug 日志。
type observedClassifier struct {
	inner  app.FolderClassifier
	total  int
	done   int
	obs    Observer
	logger *slog.Logger
}

func (c *observedClassifier) Classify(f domain.Folder) ([]domain.Category, error) {
	cats, err := c.inner.Classify(f)
	if err != nil {
		return nil, err
	}
	c.done++

	c.logger.Debug("目录判定",
		slog.String("folder", f.Path),
		slog.Int("files", f.FileCount),
		slog.Any("categories", cats),
	)
	if c.obs != nil {
		c.obs.OnFolderDone(c.done, c.total, f, cats)
	}
	return cats, nil
}
