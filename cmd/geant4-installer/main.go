package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bbq191/geant4-installer/cmd/geant4-installer/commands"
	"github.com/bbq191/geant4-installer/internal/pipeline"
	"github.com/bbq191/geant4-installer/internal/release"
)

func main() {
	err := commands.Execute()
	if reportable(err) {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
	}
	os.Exit(exitCode(err))
}

// exitCode 成功或用户中止返回 0，其余错误返回 1
func exitCode(err error) int {
	if err == nil || errors.Is(err, pipeline.ErrAborted) {
		return 0
	}
	return 1
}

// reportable 流程已向终端输出过提示的错误不再重复打印
func reportable(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, pipeline.ErrAborted),
		errors.Is(err, pipeline.ErrUnsupportedOS),
		errors.Is(err, release.ErrNoVersions):
		return false
	}
	return true
}
