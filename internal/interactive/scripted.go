package interactive

import (
	"strconv"
	"strings"
	"sync"
)

// ScriptedPrompter 按顺序返回预设应答
//
// Select 的应答按选项的键位匹配（"S" 匹配 "[S] ..."，"1" 匹配 "[1] ..."），
// 无法匹配时返回 -1。Pause 同样消耗一条应答。
type ScriptedPrompter struct {
	mu       sync.Mutex
	answers  []string
	Messages []string // 已展示过的提示
}

// NewScriptedPrompter 创建脚本化应答实例
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

func (s *ScriptedPrompter) next(message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Messages = append(s.Messages, message)
	if len(s.answers) == 0 {
		return "", ErrNoMoreAnswers
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Remaining 返回尚未消耗的应答数量
func (s *ScriptedPrompter) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Select 按键位匹配选项
func (s *ScriptedPrompter) Select(message string, options []string) (int, error) {
	answer, err := s.next(message)
	if err != nil {
		return -1, err
	}

	prefix := "[" + strings.ToUpper(strings.TrimSpace(answer)) + "]"
	for i, option := range options {
		if strings.HasPrefix(strings.ToUpper(option), prefix) {
			return i, nil
		}
	}

	// 纯数字应答按 1 起始的序号处理
	if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil {
		return n - 1, nil
	}
	return -1, nil
}

// Input 返回下一条应答
func (s *ScriptedPrompter) Input(message string) (string, error) {
	return s.next(message)
}

// Pause 消耗一条应答
func (s *ScriptedPrompter) Pause(message string) error {
	_, err := s.next(message)
	return err
}
