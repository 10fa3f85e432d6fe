package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 学习路径列表分页
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

const RequestIDHeader = "X-Request-ID"
