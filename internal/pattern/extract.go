/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pattern

import (
	"renamer/pkg/logger"
)

// Match 对单个名称执行匹配。未匹配或任一占位符未参与匹配时返回 false。
func (m *Matcher) Match(name string) (VariableMap, bool) {
	loc := m.re.FindStringSubmatchIndex(name)
	if loc == nil {
		return nil, false
	}
	wanted := make(map[string]struct{}, len(m.names))
	for _, n := range m.names {
		wanted[n] = struct{}{}
	}
	vars := make(VariableMap, len(m.names))
	for i, group := range m.re.SubexpNames() {
		if _, ok := wanted[group]; !ok {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			continue
		}
		vars[group] = name[start:end]
	}
	if len(vars) != len(m.names) {
		return nil, false
	}
	return vars, true
}

// Extract 对候选名称逐个匹配，返回匹配成功的名称及其 VariableMap。
// 两个切片等长且一一对应；未匹配的名称被移出批次而不是中止整个操作。
func (m *Matcher) Extract(names []string) ([]string, []VariableMap) {
	matched := make([]string, 0, len(names))
	maps := make([]VariableMap, 0, len(names))
	for _, name := range names {
		vars, ok := m.Match(name)
		if !ok {
			logger.Log().Debug("名称不匹配源模式，已跳过", "name", name)
			continue
		}
		matched = append(matched, name)
		maps = append(maps, vars)
	}
	logger.Log().Debug("占位符提取完成", "candidates", len(names), "matched", len(matched))
	return matched, maps
}

// ExtractNamedGroups 将 source 作为正则表达式编译并对 names 执行提取。
func ExtractNamedGroups(names []string, source string) ([]string, []VariableMap, error) {
	m, err := Compile(source, Options{})
	if err != nil {
		return nil, nil, err
	}
	matched, maps := m.Extract(names)
	return matched, maps, nil
}
