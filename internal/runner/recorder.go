package runner

import (
	"context"
	"sync"
)

// Recorder 只记录命令而不执行，供测试替换真实执行器
type Recorder struct {
	mu       sync.Mutex
	Commands []Command
	// Fail 返回非 nil 时该命令视为失败
	Fail func(Command) error
}

// Run 记录命令
func (r *Recorder) Run(ctx context.Context, c Command) error {
	r.mu.Lock()
	r.Commands = append(r.Commands, c)
	fail := r.Fail
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if fail != nil {
		if err := fail(c); err != nil {
			return &ExitError{Command: c, Code: 1, Err: err}
		}
	}
	return nil
}

// Names 返回已记录命令的字符串形式
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.Commands))
	for _, c := range r.Commands {
		names = append(names, c.String())
	}
	return names
}
