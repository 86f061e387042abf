// Package logger 提供 projstat 的控制台日志能力。
// 日志格式为 "[HH:MM:SS] [LEVEL] message"，支持级别过滤，
// 输出到终端时自动着色。
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// 日志级别，数值越大越重要。
const (
	levelTrace int = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger 向 writer 输出带时间戳的日志，可并发使用。
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger 创建控制台日志器。
// writer 为 nil 时所有日志被丢弃；logLevel 非法或为空时使用 info。
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
		now:         time.Now,
	}
}

// isTerminal 判断 writer 是否为支持颜色的终端。
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok || file == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// SetColorOutput 强制开启或关闭颜色输出。
func (cl *ConsoleLogger) SetColorOutput(enabled bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.colorOutput = enabled
}

// Level 返回当前生效的日志级别。
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

// ValidLogLevel 判断字符串是否为合法的日志级别。
func ValidLogLevel(level string) bool {
	return normalizeLogLevel(level) == strings.ToLower(strings.TrimSpace(level))
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace 输出 trace 级别日志。
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug 输出 debug 级别日志。
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo 输出 info 级别日志。
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn 输出 warn 级别日志。
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError 输出 error 级别日志。
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogVisit 记录遍历过程中被接受的路径（目录或文件），info 级别，绿色。
func (cl *ConsoleLogger) LogVisit(path string) {
	cl.logColored("INFO", color.FgGreen, path)
}

// LogSkip 记录被跳过的文件及原因，info 级别，黄色。
func (cl *ConsoleLogger) LogSkip(path string, reason string) {
	cl.logColored("INFO", color.FgYellow, fmt.Sprintf("Skipping %s due to %s", path, reason))
}

// logColored 与 logWithLevel 相同，但消息正文整体着色。
func (cl *ConsoleLogger) logColored(level string, attr color.Attribute, message string) {
	if cl.colorOutput {
		message = color.New(attr).Sprint(message)
	}
	cl.logWithLevel(level, message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := cl.now().Format("15:04:05")
	var formatted string
	if cl.colorOutput {
		formatted = formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	_, _ = io.WriteString(cl.writer, formatted)
}

// formatWithColor 为级别标签着色。
func formatWithColor(ts, level, message string) string {
	var coloredLevel string

	switch level {
	case "TRACE":
		coloredLevel = color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		coloredLevel = color.New(color.FgCyan).Sprint(level)
	case "INFO":
		coloredLevel = color.New(color.FgBlue).Sprint(level)
	case "WARN":
		coloredLevel = color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		coloredLevel = color.New(color.FgRed).Sprint(level)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}
