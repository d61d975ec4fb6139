package fetcher

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Extract 将 tar.gz 解压到 dest，拒绝任何逃逸出 dest 的条目
func (f *Fetcher) Extract(src, dest string) error {
	file, err := os.Open(src)
	if err != nil {
		return err
	}
	defer file.Close()

	gzr, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("读取 gzip 失败: %w", err)
	}
	defer gzr.Close()

	dest, err = filepath.Abs(dest)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(f.out),
		progressbar.OptionSetDescription("Extracting Source Code"),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(f.out)
		}),
	)
	defer bar.Finish()

	tr := tar.NewReader(gzr)
	entries := 0

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("读取 tar 条目失败: %w", err)
		}

		if err := extractEntry(tr, header, dest); err != nil {
			return err
		}
		entries++
		_ = bar.Add(1)
	}

	f.logger.Debugf("已解压 %d 个条目到 %s", entries, dest)
	return nil
}

func extractEntry(tr *tar.Reader, header *tar.Header, dest string) error {
	switch header.Typeflag {
	case tar.TypeXGlobalHeader, tar.TypeXHeader:
		return nil
	}

	target, err := within(dest, header.Name)
	if err != nil {
		return err
	}
	if err := noSymlinkParents(dest, target); err != nil {
		return err
	}

	switch header.Typeflag {
	case tar.TypeDir:
		if err := removeSymlink(target); err != nil {
			return err
		}
		return os.MkdirAll(target, 0755)

	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		// 已存在的同名符号链接不能被跟随写入
		if err := removeSymlink(target); err != nil {
			return err
		}
		mode := os.FileMode(header.Mode).Perm() | 0600
		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return err
		}
		return out.Close()

	case tar.TypeSymlink:
		if filepath.IsAbs(header.Linkname) {
			return fmt.Errorf("拒绝绝对路径符号链接: %s -> %s", header.Name, header.Linkname)
		}
		if _, err := within(dest, filepath.Join(filepath.Dir(header.Name), header.Linkname)); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return os.Symlink(header.Linkname, target)
	}

	// 其它类型（设备文件、硬链接等）在源码包中不会出现
	return nil
}

// within 返回 name 在 dest 下的路径，name 逃逸出 dest 时返回错误
func within(dest, name string) (string, error) {
	target := filepath.Join(dest, name)
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", fmt.Errorf("非法的归档路径: %s", name)
	}
	return target, nil
}

// noSymlinkParents 检查 target 在 dest 下的每一级父目录，任何一级是符号链接即拒绝
func noSymlinkParents(dest, target string) error {
	rel, err := filepath.Rel(dest, filepath.Dir(target))
	if err != nil || rel == "." {
		return err
	}

	current := dest
	for _, part := range strings.Split(rel, string(os.PathSeparator)) {
		current = filepath.Join(current, part)
		info, err := os.Lstat(current)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("拒绝经由符号链接写入: %s", target)
		}
	}
	return nil
}

// removeSymlink 删除 path 处的符号链接，普通文件与目录保持不变
func removeSymlink(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return os.Remove(path)
	}
	return nil
}
