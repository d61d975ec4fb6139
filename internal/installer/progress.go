package installer

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// CheckProgress 依赖检查进度
type CheckProgress struct {
	mu          sync.Mutex
	progressBar *progressbar.ProgressBar
	total       int
	completed   int
	missing     int
}

// NewCheckProgress 创建进度显示，quiet 时不输出任何内容
func NewCheckProgress(total int, out io.Writer, quiet bool) *CheckProgress {
	cp := &CheckProgress{total: total}

	if !quiet {
		cp.progressBar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("📦 检查依赖"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerPadding: "░",
				BarStart:      "▐",
				BarEnd:        "▌",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(out)
			}),
		)
	}

	return cp
}

// Done 记录一个包检查完成
func (cp *CheckProgress) Done(status PackageStatus) {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	cp.completed++
	if !status.Installed {
		cp.missing++
	}

	if cp.progressBar != nil {
		cp.progressBar.Describe(fmt.Sprintf("📦 检查依赖 (缺失 %d)", cp.missing))
		_ = cp.progressBar.Add(1)
	}
}

// Close 结束进度显示
func (cp *CheckProgress) Close() {
	if cp.progressBar != nil {
		_ = cp.progressBar.Finish()
	}
}
