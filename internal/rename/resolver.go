/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package rename

import (
	"fmt"
	"path/filepath"
	"strings"

	"renamer/internal/metadata"
	"renamer/internal/pattern"
	"renamer/internal/tmpl"
	"renamer/internal/wildcard"
	"renamer/pkg/logger"
)

// Batch 是同一目录下待重命名的有序名称列表。
type Batch struct {
	Dir   string
	Names []string
}

// valueSource 变量值的来源，按优先级排列。
type valueSource int

const (
	fromCaptured valueSource = iota
	fromMetadata
	fromWildcard
)

func (s valueSource) String() string {
	switch s {
	case fromCaptured:
		return "captured"
	case fromMetadata:
		return "metadata"
	}
	return "wildcard"
}

// column 是目标模板中的一个片段，变量片段的来源在解析前一次性确定。
type column struct {
	token  tmpl.Token
	spec   tmpl.VarSpec
	source valueSource
	key    metadata.Key
}

// resolved 是模板展开后的结果，Names 与 Targets 一一对应。
type resolved struct {
	Names    []string
	Targets  []string
	Excluded []FileError // 元数据不可用而被移出批次的文件
}

// resolver 将目标模板展开为每个文件的最终名称。
type resolver struct {
	provider metadata.Provider
	wildcard bool
}

// classify 为每个变量片段确定来源：捕获变量 > 元数据 > 通配符。
func (r *resolver) classify(tokens []tmpl.Token, captured pattern.VariableMap) ([]column, error) {
	cols := make([]column, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == tmpl.Literal {
			cols = append(cols, column{token: tok})
			continue
		}
		spec, err := tmpl.ParseVarSpec(tok.Text)
		if err != nil {
			return nil, err
		}
		col := column{token: tok, spec: spec}
		if _, ok := captured[spec.Base]; ok {
			col.source = fromCaptured
		} else if key, ok := metadataKey(spec); ok {
			col.source = fromMetadata
			col.key = key
		} else if r.wildcard && wildcard.IsWildcard(spec.Base) {
			col.source = fromWildcard
		} else {
			return nil, fmt.Errorf("%w: 无法解析变量 %s", tmpl.ErrInvalidTemplate, tok.Text)
		}
		logger.Log().Debug("变量来源", "token", tok.Text, "from", col.source)
		cols = append(cols, col)
	}
	return cols, nil
}

func metadataKey(spec tmpl.VarSpec) (metadata.Key, bool) {
	switch metadata.Kind(spec.Base) {
	case metadata.Audio, metadata.Video, metadata.Image:
	default:
		return metadata.Key{}, false
	}
	if !spec.HasModifier {
		return metadata.Key{}, false
	}
	return metadata.ParseKey(spec.Base + ":" + spec.Modifier)
}

// resolve 按列展开目标模板。
// 元数据列最先读取：任一字段缺失的文件被移出批次，之后再生成序号与随机数，保证下标对应关系不偏移。
func (r *resolver) resolve(batch Batch, maps []pattern.VariableMap, target string) (*resolved, error) {
	if len(maps) != len(batch.Names) {
		return nil, fmt.Errorf("%w: %d 个文件对应 %d 组变量", ErrBatchLengthMismatch, len(batch.Names), len(maps))
	}
	tokens, err := tmpl.Tokenize(target)
	if err != nil {
		return nil, err
	}
	if len(batch.Names) == 0 {
		return &resolved{}, nil
	}
	cols, err := r.classify(tokens, maps[0])
	if err != nil {
		return nil, err
	}

	names, maps, metaValues, excluded := r.lookupMetadata(batch, maps, cols)
	out := &resolved{Names: names, Targets: make([]string, len(names)), Excluded: excluded}
	if len(names) == 0 {
		return out, nil
	}

	b := make([]strings.Builder, len(names))
	for ci, col := range cols {
		if col.token.Kind == tmpl.Literal {
			for i := range b {
				b[i].WriteString(col.token.Text)
			}
			continue
		}
		values, err := r.columnValues(col, names, maps, metaValues[ci])
		if err != nil {
			return nil, err
		}
		if len(values) != len(names) {
			return nil, fmt.Errorf("%w: %s 产生 %d 个值，批次有 %d 个文件", ErrBatchLengthMismatch, col.token.Text, len(values), len(names))
		}
		for i, v := range values {
			b[i].WriteString(v)
		}
	}
	for i := range b {
		out.Targets[i] = b[i].String()
	}
	return out, nil
}

// lookupMetadata 读取所有元数据列，返回保留下来的文件及其变量、按列下标索引的元数据值。
func (r *resolver) lookupMetadata(batch Batch, maps []pattern.VariableMap, cols []column) ([]string, []pattern.VariableMap, map[int][]string, []FileError) {
	metaCols := make([]int, 0)
	for ci, col := range cols {
		if col.token.Kind == tmpl.Variable && col.source == fromMetadata {
			metaCols = append(metaCols, ci)
		}
	}
	values := make(map[int][]string, len(metaCols))
	if len(metaCols) == 0 {
		return batch.Names, maps, values, nil
	}

	var (
		names    []string
		kept     []pattern.VariableMap
		excluded []FileError
	)
	for i, name := range batch.Names {
		path := filepath.Join(batch.Dir, name)
		row := make([]string, len(metaCols))
		var failed error
		for j, ci := range metaCols {
			v, err := r.provider.Lookup(path, cols[ci].key)
			if err != nil {
				failed = err
				break
			}
			row[j] = v
		}
		if failed != nil {
			logger.Log().Warn("元数据不可用，已从批次中移除", "name", name, "error", failed)
			excluded = append(excluded, FileError{Name: name, Err: failed})
			continue
		}
		names = append(names, name)
		kept = append(kept, maps[i])
		for j, ci := range metaCols {
			values[ci] = append(values[ci], row[j])
		}
	}
	return names, kept, values, excluded
}

// columnValues 生成单个变量列的值并应用转换。
// 截取只作用于捕获变量与 source/prefix/suffix；大小写转换作用于所有来源。
func (r *resolver) columnValues(col column, names []string, maps []pattern.VariableMap, meta []string) ([]string, error) {
	var (
		values   []string
		sliceable bool
	)
	switch col.source {
	case fromCaptured:
		values = make([]string, len(names))
		for i, vars := range maps {
			v, ok := vars[col.spec.Base]
			if !ok {
				return nil, fmt.Errorf("%w: %s 缺少变量 %s", ErrBatchLengthMismatch, names[i], col.spec.Base)
			}
			values[i] = v
		}
		sliceable = true
	case fromMetadata:
		values = meta
	case fromWildcard:
		var err error
		values, err = wildcard.Expand(names, col.spec)
		if err != nil {
			return nil, err
		}
		sliceable = wildcard.Sliceable(col.spec.Base)
	}
	if sliceable && col.spec.HasModifier {
		values = tmpl.ApplySlice(values, tmpl.ParseSlice(col.spec.Modifier))
	}
	return tmpl.ApplyCase(values, col.spec.Case), nil
}
