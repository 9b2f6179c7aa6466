/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

var (
	log  *slog.Logger
	once sync.Once
)

const DateTimeMilli = "2006-01-02 15:04:05.000"

// ParseLevel 将 debug|info|warn|error 转换为 slog.Level，未知值按 info 处理。
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init 根据级别初始化全局日志，输出到 stderr，stdout 留给重命名计划。
// level: debug|info|warn|error
func Init(level string) {
	InitWithWriter(level, os.Stderr)
}

// InitWithWriter 与 Init 相同，但允许指定输出目标（测试中使用 bytes.Buffer）。
func InitWithWriter(level string, w io.Writer) {
	lvl := ParseLevel(level)
	handler := tint.NewHandler(w, &tint.Options{
		AddSource:  lvl == slog.LevelDebug,
		Level:      lvl,
		NoColor:    !isTerminal(w),
		TimeFormat: DateTimeMilli,
	})
	log = slog.New(handler)
}

// isTerminal 判断输出目标是否为支持颜色的终端
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	// Ensure the file descriptor is within the valid int range
	if fd > uintptr(^uint(0)>>1) {
		return false
	}
	return term.IsTerminal(int(fd))
}

// ensure 初始化默认 logger（仅在第一次访问且未手动 Init 时）。
func ensure() {
	once.Do(func() {
		if log == nil {
			Init("info")
		}
	})
}

// Log 返回全局 logger。
func Log() *slog.Logger {
	ensure()
	return log
}

// Helper wrappers
func Debug(msg string, args ...any) { Log().Debug(msg, args...) }
func Info(msg string, args ...any)  { Log().Info(msg, args...) }
func Warn(msg string, args ...any)  { Log().Warn(msg, args...) }
func Error(msg string, args ...any) { Log().Error(msg, args...) }
