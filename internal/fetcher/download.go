package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// statusError 服务器返回了非 200 状态码
type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// retryable 4xx 中只有 408 与 429 值得重试
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		if se.Code >= 400 && se.Code < 500 {
			return se.Code == http.StatusRequestTimeout || se.Code == http.StatusTooManyRequests
		}
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Download 下载 url 到 dest，失败时按指数退避重试
func (f *Fetcher) Download(ctx context.Context, url, dest string) error {
	var lastErr error

	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			delay := f.retryDelay * time.Duration(1<<(attempt-1))
			f.logger.Warnf("下载失败: %v，%v 后重试 (%d/%d)", lastErr, delay, attempt, f.retries)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := f.downloadOnce(ctx, url, dest)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}
	}

	return fmt.Errorf("下载 %s 失败: %w", url, lastErr)
}

// downloadOnce 先写入 .part 临时文件，完成后再改名，失败时不留下残缺文件
func (f *Fetcher) downloadOnce(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{Code: resp.StatusCode}
	}

	partial := dest + ".part"
	file, err := os.OpenFile(partial, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}

	bar := f.bytesBar(resp.ContentLength, "Downloading Geant4 Source")
	_, copyErr := io.Copy(io.MultiWriter(file, bar), resp.Body)
	_ = bar.Finish()
	closeErr := file.Close()

	if copyErr != nil || closeErr != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("下载中断: %w", errors.Join(copyErr, closeErr))
	}

	if err := os.Rename(partial, dest); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("保存文件失败: %w", err)
	}
	return nil
}

// bytesBar 创建字节进度条，总大小未知时显示为旋转指示器
func (f *Fetcher) bytesBar(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(f.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(f.out)
		}),
	)
}
