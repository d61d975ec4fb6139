package template

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

// Engine 模板引擎，负责内置模板的解析和渲染
type Engine struct {
	templates *template.Template // 已解析的模板集合
	logger    *logrus.Logger     // 日志记录器
}

// NewEngine 解析所有内置模板
func NewEngine(logger *logrus.Logger) (*Engine, error) {
	tmpl, err := template.New("geant4").
		Funcs(createFuncMap()).
		ParseFS(builtinTemplates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("解析内置模板失败: %w", err)
	}

	return &Engine{
		templates: tmpl,
		logger:    logger,
	}, nil
}

// createFuncMap 创建模板函数映射表
func createFuncMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap() // 加载 Sprig 标准函数库

	funcMap["shellEscape"] = shellEscape // Shell 转义
	funcMap["dquote"] = dquoteEscape     // 双引号内转义

	return funcMap
}

// Render 渲染指定模板
func (e *Engine) Render(name TemplateName, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, string(name), data); err != nil {
		e.logger.Errorf("渲染模板失败 %s: %v", name, err)
		return "", fmt.Errorf("渲染模板 %s 失败: %w", name, err)
	}

	e.logger.Debugf("已渲染模板 %s (%d 字节)", name, buf.Len())
	return buf.String(), nil
}

// Instructions 渲染 ccmake 操作说明
func (e *Engine) Instructions(ctx InstructionsContext) (string, error) {
	return e.Render(TemplateInstructions, ctx)
}

// AliasLine 渲染别名定义，如 alias geant4make="source ..."
func (e *Engine) AliasLine(ctx AliasContext) (string, error) {
	line, err := e.Render(TemplateAlias, ctx)
	if err != nil {
		return "", err
	}
	return "alias " + strings.TrimSpace(line), nil
}

func shellEscape(str string) string {
	// 简单的shell转义
	if strings.ContainsAny(str, " \t\n\"'\\$`;&|<>()*?[]{}#~!") {
		return fmt.Sprintf("'%s'", strings.ReplaceAll(str, "'", `'\''`))
	}
	return str
}

// dqEscaper 双引号内仍有特殊含义的字符
var dqEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")

// dquoteEscape 转义 str 使其可以原样放入双引号字符串
func dquoteEscape(str string) string {
	return dqEscaper.Replace(str)
}
