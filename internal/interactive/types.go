// Package interactive 封装所有控制台交互，真实终端使用 survey，测试使用脚本化应答
package interactive

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoMoreAnswers 脚本化应答已用尽
var ErrNoMoreAnswers = errors.New("脚本化应答已用尽")

// Prompter 交互输入提供者
type Prompter interface {
	// Select 展示选项并返回所选下标，无法识别的输入返回 -1
	Select(message string, options []string) (int, error)

	// Input 读取一行文本
	Input(message string) (string, error)

	// Pause 阻塞直到用户按下 Enter
	Pause(message string) error
}

// OptionRenderer 由 Prompter 可选实现，表示 Select 会自行绘制选项列表
type OptionRenderer interface {
	RendersOptions() bool
}

// Choice 菜单中的一个选项，Key 为用户输入的单个字母或数字
type Choice struct {
	Key   string
	Label string
}

// String 返回带键位前缀的显示文本，如 "[R] 重新下载"
func (c Choice) String() string {
	return fmt.Sprintf("[%s] %s", c.Key, c.Label)
}

// IsEnabled 检查当前环境能否进行交互
func IsEnabled() bool {
	if v := os.Getenv("GEANT4_INTERACTIVE"); v != "" {
		return strings.ToLower(v) != "false" && v != "0"
	}
	return IsTerminal()
}

// IsTerminal 检查标准输入与标准输出是否都是终端
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ErrAborted 用户在菜单中选择了中止
var ErrAborted = errors.New("aborted by user")
