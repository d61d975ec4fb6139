// Package runner 负责执行外部命令（包管理器、ccmake、make 等）
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Command 一次外部命令调用，使用参数列表而非 shell 字符串
type Command struct {
	Name        string   // 可执行文件名
	Args        []string // 参数列表
	Dir         string   // 工作目录，为空时继承当前进程
	Description string   // 日志中显示的步骤描述
	Quiet       bool     // 丢弃输出，仅关心退出状态
}

// String 返回命令的可读形式
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner 命令执行器接口
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError 命令以非零状态退出
type ExitError struct {
	Command Command
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	if e.Code >= 0 {
		return fmt.Sprintf("命令 %q 退出码 %d", e.Command.String(), e.Code)
	}
	return fmt.Sprintf("命令 %q 执行失败: %v", e.Command.String(), e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExecRunner 基于 os/exec 的执行器，标准输入输出直接连接到终端
type ExecRunner struct {
	logger *logrus.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner 创建执行器实例
func NewExecRunner(logger *logrus.Logger) *ExecRunner {
	return &ExecRunner{
		logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run 阻塞执行命令直到结束
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	if c.Description != "" {
		r.logger.Infof("%s...", c.Description)
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if !c.Quiet {
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	r.logger.Debugf("执行命令: %s (目录: %s)", c.String(), c.Dir)

	if err := cmd.Run(); err != nil {
		exitErr := &ExitError{Command: c, Code: -1, Err: err}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			exitErr.Code = ee.ExitCode()
		}
		if !c.Quiet {
			r.logger.Errorf("%s 失败: %v", describe(c), err)
		}
		return exitErr
	}

	if c.Description != "" {
		r.logger.Infof("%s 完成", c.Description)
	}
	return nil
}

func describe(c Command) string {
	if c.Description != "" {
		return c.Description
	}
	return c.Name
}
