// Package release 解析 Geant4 的发布标签并让用户选择版本
package release

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// tagPattern 匹配 v<major>.<minor>[.<patch>]
var tagPattern = regexp.MustCompile(`v(\d+\.\d+(?:\.\d+)?)`)

// versionPattern 完整匹配不带前缀的版本号
var versionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)

// Normalize 去掉 v/V 前缀并检查版本号格式，返回可用于拼接路径的版本号
func Normalize(version string) (string, error) {
	v := strings.TrimSpace(version)
	if len(v) > 0 && (v[0] == 'v' || v[0] == 'V') {
		v = v[1:]
	}
	if !versionPattern.MatchString(v) || !semver.IsValid("v"+v) || tuple(v) == nil {
		return "", fmt.Errorf("无效的版本号: %q", version)
	}
	return v, nil
}

// Parse 从标签页面中提取去重后的版本号，按数值元组降序排列
func Parse(page string) []string {
	seen := make(map[string]bool)
	var versions []string

	for _, m := range tagPattern.FindAllStringSubmatch(page, -1) {
		v := m[1]
		if seen[v] {
			continue
		}
		seen[v] = true

		// 前导零或溢出的数字不是合法的发布标签
		if !semver.IsValid("v"+v) || tuple(v) == nil {
			continue
		}
		versions = append(versions, v)
	}

	Sort(versions)
	return versions
}

// Sort 按数值元组降序排序
func Sort(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) > 0
	})
}

// Compare 逐段比较数值元组，前缀相同时段数少的更小（11.2 < 11.2.0）
func Compare(a, b string) int {
	ta, tb := tuple(a), tuple(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		switch {
		case ta[i] < tb[i]:
			return -1
		case ta[i] > tb[i]:
			return 1
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}
	return 0
}

func tuple(v string) []int {
	parts := strings.Split(v, ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		nums = append(nums, n)
	}
	return nums
}
