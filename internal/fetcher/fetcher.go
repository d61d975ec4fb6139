// Package fetcher 下载并解压 Geant4 源码包
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bbq191/geant4-installer/internal/interactive"
	"github.com/bbq191/geant4-installer/internal/workspace"
	"github.com/sirupsen/logrus"
)

// 已存在源码包时的选项
const (
	ChoiceRedownload = "R"
	ChoiceSkip       = "S"
	ChoiceAbort      = "A"
)

var conflictChoices = []interactive.Choice{
	{Key: ChoiceRedownload, Label: "Redownload"},
	{Key: ChoiceSkip, Label: "Skip"},
	{Key: ChoiceAbort, Label: "Abort"},
}

// Options 下载参数
type Options struct {
	ArchiveBase string
	Timeout     time.Duration
	Retries     int
	RetryDelay  time.Duration
	Output      io.Writer // 进度条输出，nil 表示 os.Stderr
}

// Fetcher 源码获取器
type Fetcher struct {
	archiveBase string
	client      *http.Client
	retries     int
	retryDelay  time.Duration
	out         io.Writer
	logger      *logrus.Logger
}

// NewFetcher 创建源码获取器
func NewFetcher(opts Options, logger *logrus.Logger) *Fetcher {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}
	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}

	return &Fetcher{
		archiveBase: opts.ArchiveBase,
		client:      &http.Client{Timeout: opts.Timeout},
		retries:     retries,
		retryDelay:  delay,
		out:         out,
		logger:      logger,
	}
}

// Fetch 确保 layout 对应的源码包存在并解压到工作目录
func (f *Fetcher) Fetch(ctx context.Context, layout *workspace.Layout, asker *interactive.Asker) error {
	if err := layout.Ensure(); err != nil {
		return err
	}

	url := workspace.TarballURL(f.archiveBase, layout.Version)

	download := true
	if _, err := os.Stat(layout.Tarball); err == nil {
		message := fmt.Sprintf("%s already exists. Do you want to [R]edownload, [S]kip, or [A]bort?",
			workspace.TarballName(layout.Version))
		choice, err := asker.Choose(message, conflictChoices)
		if err != nil {
			return err
		}

		switch choice {
		case ChoiceRedownload:
			if err := os.Remove(layout.Tarball); err != nil {
				return fmt.Errorf("删除旧源码包失败: %w", err)
			}
		case ChoiceSkip:
			f.logger.Warnf("跳过下载，使用已有源码包: %s", layout.Tarball)
			download = false
		case ChoiceAbort:
			return interactive.ErrAborted
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("检查源码包失败: %w", err)
	}

	if download {
		f.logger.Infof("下载 Geant4 v%s 源码: %s", layout.Version, url)
		if err := f.Download(ctx, url, layout.Tarball); err != nil {
			return err
		}
	}

	f.logger.Infof("解压 %s ...", layout.Tarball)
	if err := f.Extract(layout.Tarball, layout.Root); err != nil {
		return fmt.Errorf("解压源码包失败: %w", err)
	}
	f.logger.Info("源码解压完成")
	return nil
}
