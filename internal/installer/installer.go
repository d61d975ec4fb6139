package installer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bbq191/geant4-installer/internal/runner"
	"github.com/sirupsen/logrus"
)

// Installer 依赖安装器
type Installer struct {
	runner runner.Runner
	logger *logrus.Logger
	sudo   string
}

// NewInstaller 创建新的安装器实例，sudo 为空时直接调用包管理器
func NewInstaller(r runner.Runner, sudo string, logger *logrus.Logger) *Installer {
	return &Installer{
		runner: r,
		logger: logger,
		sudo:   sudo,
	}
}

// Install 安装指定发行版所需的全部依赖
//
// 无法识别的发行版只记录警告并返回 nil；包管理器失败时返回错误。
func (i *Installer) Install(ctx context.Context, distro, kernelRelease string) error {
	plan, err := SelectPlan(distro, kernelRelease)
	if errors.Is(err, ErrUnknownDistro) {
		i.logger.Warnf("无法识别发行版 %q，请手动安装依赖", distro)
		return nil
	}
	if err != nil {
		return err
	}

	return i.InstallPlan(ctx, plan)
}

// InstallPlan 按顺序执行方案中的命令
func (i *Installer) InstallPlan(ctx context.Context, plan *Plan) error {
	startTime := time.Now()
	i.logger.Infof("使用 %s 安装 %d 个依赖包 (%s)", plan.Manager.Name(), len(plan.Packages), plan.Family)

	for _, cmd := range plan.Commands(i.sudo) {
		cmd.Description = "Installing dependencies"
		if err := i.runner.Run(ctx, cmd); err != nil {
			return fmt.Errorf("安装依赖失败: %w", err)
		}
	}

	i.logger.Infof("依赖安装完成，耗时: %.2f秒", time.Since(startTime).Seconds())
	return nil
}
