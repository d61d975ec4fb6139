package build

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bbq191/geant4-installer/internal/interactive"
)

// 构建目录非空时的选项
const (
	ChoiceClear = "C"
	ChoiceSkip  = "S"
	ChoiceAbort = "A"
)

var conflictChoices = []interactive.Choice{
	{Key: ChoiceClear, Label: "Clear"},
	{Key: ChoiceSkip, Label: "Skip"},
	{Key: ChoiceAbort, Label: "Abort"},
}

// isEmptyDir 判断目录是否为空，目录不存在时返回 os.ErrNotExist
func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}

// PrepareDir 准备构建目录：不存在则创建，非空则询问清空、沿用或中止
func (d *Director) PrepareDir(dir string) error {
	empty, err := isEmptyDir(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return mkdir(dir)
	case err != nil:
		return fmt.Errorf("检查构建目录失败: %w", err)
	case empty:
		return nil
	}

	fmt.Fprintf(d.out, "[WARNING] Build dir '%s' not empty.\n", dir)
	choice, err := d.asker.Choose("[C]lear, [S]kip, or [A]bort?", conflictChoices)
	if err != nil {
		return err
	}

	switch choice {
	case ChoiceClear:
		d.logger.Infof("清空构建目录: %s", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("清空构建目录失败: %w", err)
		}
		return mkdir(dir)
	case ChoiceSkip:
		d.logger.Warn("沿用已有构建目录")
		return nil
	default:
		return interactive.ErrAborted
	}
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建构建目录失败: %w", err)
	}
	return nil
}
