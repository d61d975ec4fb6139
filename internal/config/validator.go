package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 命令名只允许单个程序名或路径，不允许空白和 shell 元字符
var cmdnamePattern = regexp.MustCompile(`^[A-Za-z0-9._/+-]+$`)

// Validator 配置验证器
type Validator struct {
	validator *validator.Validate
}

// NewValidator 创建配置验证器并注册自定义规则
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误信息中使用配置键名
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
	})
	_ = v.RegisterValidation("cmdname", validateCmdName)

	return &Validator{validator: v}
}

// Validate 验证配置
func (cv *Validator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func validateCmdName(fl validator.FieldLevel) bool {
	return cmdnamePattern.MatchString(fl.Field().String())
}

// formatValidationError 格式化验证错误
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("验证错误格式异常: %w", err)
	}
	var messages []string

	for _, fieldErr := range validationErrors {
		fieldName := fieldErr.Field()

		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("字段 %s 是必需的", fieldName))
		case "url":
			messages = append(messages, fmt.Sprintf("字段 %s 必须是有效的 URL", fieldName))
		case "min":
			messages = append(messages, fmt.Sprintf("字段 %s 不能小于 %s", fieldName, fieldErr.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("字段 %s 不能大于 %s", fieldName, fieldErr.Param()))
		case "gt":
			messages = append(messages, fmt.Sprintf("字段 %s 必须大于 %s", fieldName, fieldErr.Param()))
		case "cmdname":
			messages = append(messages, fmt.Sprintf("字段 %s 必须是单个命令名: %q", fieldName, fieldErr.Value()))
		default:
			messages = append(messages, fmt.Sprintf("字段 %s 验证失败: %s", fieldName, fieldErr.Tag()))
		}
	}

	return fmt.Errorf("配置验证失败:\n  - %s", strings.Join(messages, "\n  - "))
}
