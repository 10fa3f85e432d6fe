package util

import (
	"fmt"
	"strconv"
)

// ParseLimit 解析列表数量参数，空字符串时返回默认值
func ParseLimit(s string, def, max int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer, got %q", s)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("limit must be between 1 and %d, got %d", max, n)
	}
	return n, nil
}
