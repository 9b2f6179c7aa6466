/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMetadataUnavailable 表示文件类型不符、字段缺失或解析失败。
// 调用方按文件处理：排除该文件并给出警告，不中止整个批次。
var ErrMetadataUnavailable = errors.New("metadata unavailable")

// Kind 是元数据来源。
type Kind string

const (
	Audio Kind = "audio"
	Video Kind = "video"
	Image Kind = "image"
)

// Key 标识一个元数据字段，例如 {image:width}。
type Key struct {
	Kind  Kind
	Field string
}

func (k Key) String() string {
	return "{" + string(k.Kind) + ":" + k.Field + "}"
}

// Provider 按路径读取单个元数据字段，无副作用。
type Provider interface {
	Lookup(path string, key Key) (string, error)
}

// ParseKey 解析 "{image:width}" 或 "image:width"。
// 只有来源已知且子键被该来源识别时返回 true；视频标签为自由键名，任意非空标识符均可。
func ParseKey(token string) (Key, bool) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
		token = token[1 : len(token)-1]
	}
	kind, field, ok := strings.Cut(token, ":")
	if !ok || field == "" {
		return Key{}, false
	}
	key := Key{Kind: Kind(kind), Field: field}
	switch key.Kind {
	case Audio:
		_, known := audioFrames[field]
		return key, known
	case Image:
		_, known := lookupImageField(field)
		return key, known
	case Video:
		return key, isIdentifier(field)
	}
	return Key{}, false
}

func isIdentifier(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		default:
			return false
		}
	}
	return s != ""
}

// Reader 是默认 Provider，按 Key.Kind 分派到音频、视频与图片读取器。
type Reader struct {
	Video *VideoReader
}

// NewReader 创建使用系统 ffprobe 的默认读取器。
func NewReader() *Reader {
	return &Reader{Video: NewVideoReader()}
}

// Lookup 实现 Provider。
func (r *Reader) Lookup(path string, key Key) (string, error) {
	var (
		value string
		err   error
	)
	switch key.Kind {
	case Audio:
		value, err = lookupAudio(path, key.Field)
	case Video:
		video := r.Video
		if video == nil {
			video = NewVideoReader()
		}
		value, err = video.Lookup(path, key.Field)
	case Image:
		value, err = lookupImage(path, key.Field)
	default:
		return "", fmt.Errorf("%w: 未知来源 %s", ErrMetadataUnavailable, key)
	}
	if err != nil {
		if errors.Is(err, ErrMetadataUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s %s: %v", ErrMetadataUnavailable, key, path, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s 在 %s 中为空", ErrMetadataUnavailable, key, path)
	}
	return value, nil
}
