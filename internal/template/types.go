// Package template 渲染安装过程中生成的文本：ccmake 操作说明与 shell 别名
package template

// TemplateName 内置模板名称
type TemplateName string

const (
	TemplateInstructions TemplateName = "instructions.txt.tmpl" // ccmake 操作说明
	TemplateAlias        TemplateName = "alias.tmpl"            // shell 别名行
)

// InstructionsContext 操作说明模板的上下文
type InstructionsContext struct {
	Version       string   // Geant4 版本
	InstallPath   string   // CMAKE_INSTALL_PREFIX 应设置的路径
	SourceDir     string   // 源码目录
	BuildDir      string   // 构建目录
	ConfigureTool string   // 配置工具名称 (ccmake)
	Options       []string // 建议开启的 CMake 选项
}

// AliasContext 别名模板的上下文
type AliasContext struct {
	Name      string // 别名名称
	EnvScript string // 被 source 的环境脚本
}
