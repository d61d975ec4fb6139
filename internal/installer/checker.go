package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/bbq191/geant4-installer/internal/runner"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Checker 并发查询依赖包是否已安装
type Checker struct {
	runner     runner.Runner
	logger     *logrus.Logger
	maxWorkers int
	out        io.Writer
	quiet      bool
}

// NewChecker 创建检查器，maxWorkers <= 0 时使用 CPU 核心数
func NewChecker(r runner.Runner, maxWorkers int, logger *logrus.Logger) *Checker {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	return &Checker{
		runner:     r,
		logger:     logger,
		maxWorkers: maxWorkers,
		out:        io.Discard,
		quiet:      true,
	}
}

// WithProgress 在 out 上显示进度条
func (c *Checker) WithProgress(out io.Writer) *Checker {
	c.out = out
	c.quiet = false
	return c
}

// Check 查询方案中每个包的状态，结果顺序与 plan.Packages 一致
func (c *Checker) Check(ctx context.Context, plan *Plan) ([]PackageStatus, error) {
	results := make([]PackageStatus, len(plan.Packages))

	progress := NewCheckProgress(len(plan.Packages), c.out, c.quiet)
	defer progress.Close()

	c.logger.Debugf("使用 %d 个工作协程检查 %d 个包", c.maxWorkers, len(plan.Packages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxWorkers)

	for idx, pkg := range plan.Packages {
		idx, pkg := idx, pkg
		g.Go(func() error {
			installed, err := c.query(ctx, plan.Manager, pkg)
			if err != nil {
				return err
			}

			status := PackageStatus{Name: pkg, Installed: installed}
			results[idx] = status
			progress.Done(status)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// query 退出码 0 为已安装，其它退出码为未安装，无法执行查询命令时返回错误
func (c *Checker) query(ctx context.Context, manager PackageManager, pkg string) (bool, error) {
	cmd := manager.QueryCommand(pkg)
	err := c.runner.Run(ctx, cmd)
	if err == nil {
		return true, nil
	}

	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code >= 0 {
		c.logger.Debugf("包 %s 未安装", pkg)
		return false, nil
	}
	return false, fmt.Errorf("查询包 %s 失败: %w", pkg, err)
}

// Missing 过滤出未安装的包
func Missing(statuses []PackageStatus) []string {
	var missing []string
	for _, s := range statuses {
		if !s.Installed {
			missing = append(missing, s.Name)
		}
	}
	return missing
}
