package interactive

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Asker 在 Prompter 之上实现带重试的常用问题
type Asker struct {
	prompter Prompter
	out      io.Writer
}

// NewAsker 创建 Asker，out 用于输出“输入无效”提示
func NewAsker(prompter Prompter, out io.Writer) *Asker {
	return &Asker{prompter: prompter, out: out}
}

// Prompter 返回底层交互实现
func (a *Asker) Prompter() Prompter {
	return a.prompter
}

// RendersOptions 底层 Prompter 是否自行展示选项，为 false 时调用方需要先输出菜单
func (a *Asker) RendersOptions() bool {
	r, ok := a.prompter.(OptionRenderer)
	return ok && r.RendersOptions()
}

// Choose 展示菜单直到得到有效选项，返回选项的 Key
func (a *Asker) Choose(message string, choices []Choice) (string, error) {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.String()
	}

	for {
		index, err := a.prompter.Select(message, labels)
		if err != nil {
			return "", err
		}
		if index >= 0 && index < len(choices) {
			return choices[index].Key, nil
		}
		fmt.Fprintln(a.out, "Invalid input. Try again.")
	}
}

// PositiveInt 反复询问直到得到正整数
func (a *Asker) PositiveInt(message string) (int, error) {
	for {
		answer, err := a.prompter.Input(message)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(a.out, "Invalid input. Try again.")
	}
}

// WaitEnter 阻塞直到用户确认
func (a *Asker) WaitEnter(message string) error {
	return a.prompter.Pause(message)
}
