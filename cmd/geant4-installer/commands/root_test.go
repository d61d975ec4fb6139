package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootRunsInstall 不带子命令时执行安装流程
func TestRootRunsInstall(t *testing.T) {
	assert.True(t, rootCmd.Runnable())
	require.NotNil(t, rootCmd.RunE)
	assert.Error(t, rootCmd.Args(rootCmd, []string{"instal"}), "未知子命令应报错")

	for _, name := range []string{"release", "jobs", "skip-deps", "dir"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "根命令缺少 --%s", name)
		assert.NotNil(t, installCmd.Flags().Lookup(name), "install 缺少 --%s", name)
	}
}

// TestInstallFlagsShared 根命令与 install 子命令共用同一组参数
func TestInstallFlagsShared(t *testing.T) {
	t.Cleanup(func() {
		releaseFlag, jobs, skipDeps = "", 0, false
	})

	require.NoError(t, rootCmd.Flags().Set("release", "11.2.2"))
	require.NoError(t, installCmd.Flags().Set("jobs", "8"))
	require.NoError(t, rootCmd.Flags().Set("skip-deps", "true"))

	assert.Equal(t, "11.2.2", releaseFlag)
	assert.Equal(t, 8, jobs)
	assert.True(t, skipDeps)
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"install", "info", "versions", "deps", "validate", "generate"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

// TestGenerateRejectsBadRelease 非法版本号不能用来拼接工作目录
func TestGenerateRejectsBadRelease(t *testing.T) {
	t.Cleanup(func() { genRelease = "" })

	for _, bad := range []string{"../../x", "11.2/../../etc", "latest"} {
		genRelease = bad
		err := runGenerate(generateCmd, nil)
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "无效的版本号")
	}
}
