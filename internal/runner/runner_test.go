package runner

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "make", Args: []string{"-j4"}}
	if got := c.String(); got != "make -j4" {
		t.Errorf("期望 'make -j4'，实际为 '%s'", got)
	}

	if got := (Command{Name: "make"}).String(); got != "make" {
		t.Errorf("无参数命令应只返回名称，实际为 '%s'", got)
	}
}

func TestExecRunner_Success(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("系统中没有 true 命令")
	}

	r := NewExecRunner(quietLogger())
	if err := r.Run(context.Background(), Command{Name: "true", Quiet: true}); err != nil {
		t.Errorf("执行 true 不应失败: %v", err)
	}
}

func TestExecRunner_ExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("系统中没有 sh")
	}

	r := NewExecRunner(quietLogger())
	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 3"}, Quiet: true})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("期望 ExitError，实际为 %v", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("期望退出码 3，实际为 %d", exitErr.Code)
	}
	if !strings.Contains(exitErr.Error(), "sh -c exit 3") {
		t.Errorf("错误信息应包含命令: %s", exitErr.Error())
	}
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("系统中没有 sh")
	}

	dir := t.TempDir()
	var out strings.Builder
	r := NewExecRunner(quietLogger())
	r.Stdout = &out

	if err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "pwd"}, Dir: dir}); err != nil {
		t.Fatalf("执行 pwd 失败: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), strings.TrimPrefix(dir, "/private")) {
		t.Errorf("命令应在 %s 中执行，实际输出 %q", dir, out.String())
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner(quietLogger())
	err := r.Run(context.Background(), Command{Name: "definitely-not-a-real-binary-12345", Quiet: true})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("期望 ExitError，实际为 %v", err)
	}
	if exitErr.Code != -1 {
		t.Errorf("找不到可执行文件时退出码应为 -1，实际为 %d", exitErr.Code)
	}
}
