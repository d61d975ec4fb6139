package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bbq191/geant4-installer/internal/interactive"
	"github.com/sirupsen/logrus"
)

// ErrNoVersions 标签页面中没有找到任何版本
var ErrNoVersions = errors.New("could not detect Geant4 versions")

// maxPageSize 标签页面读取上限
const maxPageSize = 16 << 20

// Resolver 获取并选择发布版本
type Resolver struct {
	tagsURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewResolver 创建版本解析器
func NewResolver(tagsURL string, timeout time.Duration, logger *logrus.Logger) *Resolver {
	return &Resolver{
		tagsURL: tagsURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Fetch 下载标签页面并返回降序版本列表
func (r *Resolver) Fetch(ctx context.Context) ([]string, error) {
	r.logger.Infof("获取版本列表: %s", r.tagsURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.tagsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求标签页面失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("请求标签页面失败: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("读取标签页面失败: %w", err)
	}

	versions := Parse(string(body))
	if len(versions) == 0 {
		return nil, ErrNoVersions
	}

	r.logger.Debugf("发现 %d 个版本，最新 v%s", len(versions), versions[0])
	return versions, nil
}

// Menu 取前 size 个版本作为菜单
func Menu(versions []string, size int) []interactive.Choice {
	if size > len(versions) {
		size = len(versions)
	}

	choices := make([]interactive.Choice, 0, size)
	for i, v := range versions[:size] {
		choices = append(choices, interactive.Choice{
			Key:   fmt.Sprintf("%d", i+1),
			Label: "v" + v,
		})
	}
	return choices
}

// Choose 展示最新的 size 个版本并返回用户选择（不含前缀 v）
func Choose(asker *interactive.Asker, versions []string, size int) (string, error) {
	if len(versions) == 0 {
		return "", ErrNoVersions
	}

	choices := Menu(versions, size)
	message := fmt.Sprintf("Choose a version to install (1-%d):", len(choices))

	key, err := asker.Choose(message, choices)
	if err != nil {
		return "", err
	}

	for _, c := range choices {
		if c.Key == key {
			return c.Label[1:], nil
		}
	}
	return "", fmt.Errorf("未知的版本选项: %s", key)
}

// Lookup 检查指定版本是否在列表中，允许带 v 前缀
func Lookup(versions []string, want string) (string, bool) {
	want, err := Normalize(want)
	if err != nil {
		return "", false
	}
	for _, v := range versions {
		if v == want {
			return v, true
		}
	}
	return "", false
}
