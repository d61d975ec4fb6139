// Package shellrc 把环境别名写入用户的 shell 配置文件
package shellrc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bbq191/geant4-installer/internal/template"
	"github.com/sirupsen/logrus"
)

// DefaultProfile 默认配置文件 ~/.bashrc
func DefaultProfile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("获取用户主目录失败: %w", err)
	}
	return filepath.Join(home, ".bashrc"), nil
}

// ExpandHome 展开路径开头的 ~
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Patcher 追加别名行
type Patcher struct {
	profile string
	engine  *template.Engine
	logger  *logrus.Logger
}

// NewPatcher 创建 Patcher，profile 为空时使用 ~/.bashrc
func NewPatcher(profile string, engine *template.Engine, logger *logrus.Logger) (*Patcher, error) {
	var err error
	if profile == "" {
		profile, err = DefaultProfile()
	} else {
		profile, err = ExpandHome(profile)
	}
	if err != nil {
		return nil, err
	}
	return &Patcher{profile: profile, engine: engine, logger: logger}, nil
}

// Profile 返回目标配置文件路径
func (p *Patcher) Profile() string {
	return p.profile
}

// AddAlias 将 alias name="source <envScript>" 追加到配置文件末尾
//
// 每次调用都会追加，不检查是否已存在相同的行。
func (p *Patcher) AddAlias(name, envScript string) (string, error) {
	line, err := p.engine.AliasLine(template.AliasContext{Name: name, EnvScript: envScript})
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(p.profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("打开 %s 失败: %w", p.profile, err)
	}
	if _, err := fmt.Fprintf(f, "\n%s\n", line); err != nil {
		f.Close()
		return "", fmt.Errorf("写入 %s 失败: %w", p.profile, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	p.logger.Infof("已写入别名到 %s", p.profile)
	return line, nil
}
