package interactive

import (
	"github.com/AlecAivazis/survey/v2"
)

// SurveyPrompter 基于 survey 的终端交互实现
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter 创建终端交互实例
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// RendersOptions survey 会绘制全部选项
func (s *SurveyPrompter) RendersOptions() bool {
	return true
}

// Select 使用方向键选择
func (s *SurveyPrompter) Select(message string, options []string) (int, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	}

	var index int
	if err := survey.AskOne(prompt, &index, s.opts...); err != nil {
		return -1, err
	}
	return index, nil
}

// Input 读取一行输入
func (s *SurveyPrompter) Input(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, s.opts...); err != nil {
		return "", err
	}
	return answer, nil
}

// Pause 等待 Enter
func (s *SurveyPrompter) Pause(message string) error {
	var ignored string
	return survey.AskOne(&survey.Input{Message: message}, &ignored, s.opts...)
}
