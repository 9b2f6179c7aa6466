/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"renamer/pkg/logger"
)

// ErrInvalidPattern 表示源模式无法编译为正则表达式。
var ErrInvalidPattern = errors.New("invalid pattern")

// placeholderRe 匹配源模式中的 {name} 占位符。
var placeholderRe = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

// VariableMap 占位符名称 -> 捕获文本，每个匹配文件一份。
type VariableMap map[string]string

// Options 控制占位符之间文本的解释方式。
type Options struct {
	// Literal 为 true 时占位符之间的文本按字面量处理（"{a}.{b}" 中的 "." 只匹配点号），
	// 默认按正则表达式解释。
	Literal bool
}

// Matcher 是编译后的源模式，每个占位符对应一个同名捕获组。
type Matcher struct {
	re    *regexp.Regexp
	names []string // 去重后的占位符名称，按首次出现排序
}

// Compile 将包含 {name} 占位符的源模式编译为 Matcher。
// 每个占位符替换为贪婪捕获组 (?P<name>.+)。
// 同名占位符不会报错：构建 VariableMap 时最后一个参与匹配的组生效。
func Compile(source string, opts Options) (*Matcher, error) {
	var (
		b     strings.Builder
		names []string
		seen  = make(map[string]struct{})
		last  int
	)
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(source, -1) {
		b.WriteString(segment(source[last:loc[0]], opts.Literal))
		name := source[loc[2]:loc[3]]
		if _, dup := seen[name]; dup {
			logger.Log().Warn("源模式中存在重复的占位符，后者覆盖前者", "name", name, "pattern", source)
		} else {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		b.WriteString("(?P<" + name + ">.+)")
		last = loc[1]
	}
	b.WriteString(segment(source[last:], opts.Literal))

	expr := b.String()
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, source, err)
	}
	logger.Log().Debug("源模式编译完成", "pattern", source, "regexp", expr, "placeholders", names)
	return &Matcher{re: re, names: names}, nil
}

func segment(s string, literal bool) string {
	if literal {
		return regexp.QuoteMeta(s)
	}
	return s
}

// Names 返回占位符名称（去重，按出现顺序）。
func (m *Matcher) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// String 返回最终使用的正则表达式。
func (m *Matcher) String() string { return m.re.String() }
