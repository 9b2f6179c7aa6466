/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultProbeTimeout 单个文件 ffprobe 调用的超时时间。
const DefaultProbeTimeout = 30 * time.Second

// ProbeFunc 返回 ffprobe -print_format json 的原始输出。
type ProbeFunc func(ctx context.Context, path string) ([]byte, error)

// VideoReader 通过 ffprobe 读取容器与视频流信息。
type VideoReader struct {
	Probe   ProbeFunc
	Timeout time.Duration
}

// NewVideoReader 使用 PATH 中的 ffprobe。
func NewVideoReader() *VideoReader {
	return &VideoReader{Probe: ffprobe, Timeout: DefaultProbeTimeout}
}

func ffprobe(ctx context.Context, path string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return out, nil
}

// Lookup 读取单个视频字段。
// 内置字段: width height codec duration format bit_rate frame_rate；
// 其余键名依次在容器标签与主视频流标签中查找（不区分大小写）。
func (v *VideoReader) Lookup(path, field string) (string, error) {
	timeout := v.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	data, err := v.Probe(ctx, path)
	if err != nil {
		return "", err
	}
	info, err := parseProbe(data)
	if err != nil {
		return "", err
	}
	value, ok := info.field(field)
	if !ok {
		return "", fmt.Errorf("%w: 视频字段 %q 不存在", ErrMetadataUnavailable, field)
	}
	return value, nil
}

type probeOutput struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	FormatName string            `json:"format_name"`
	Duration   string            `json:"duration"`
	BitRate    string            `json:"bit_rate"`
	Tags       map[string]string `json:"tags"`
}

type probeStream struct {
	CodecName    string            `json:"codec_name"`
	CodecType    string            `json:"codec_type"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	AvgFrameRate string            `json:"avg_frame_rate"`
	Disposition  map[string]int    `json:"disposition"`
	Tags         map[string]string `json:"tags"`
}

// videoInfo 是一次 ffprobe 调用的结果，只保留主视频流。
type videoInfo struct {
	format  probeFormat
	primary *probeStream
}

func parseProbe(data []byte) (*videoInfo, error) {
	var raw probeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("解析 ffprobe JSON 失败: %w", err)
	}
	info := &videoInfo{format: raw.Format}
	for i := range raw.Streams {
		s := &raw.Streams[i]
		if s.CodecType == "video" && s.Disposition["attached_pic"] != 1 {
			info.primary = s
			break
		}
	}
	return info, nil
}

func (v *videoInfo) field(name string) (string, bool) {
	switch name {
	case "duration":
		return nonEmpty(v.format.Duration)
	case "format":
		return nonEmpty(v.format.FormatName)
	case "bit_rate":
		return nonEmpty(v.format.BitRate)
	}
	if v.primary != nil {
		switch name {
		case "width":
			return positive(v.primary.Width)
		case "height":
			return positive(v.primary.Height)
		case "codec":
			return nonEmpty(v.primary.CodecName)
		case "frame_rate":
			return nonEmpty(v.primary.AvgFrameRate)
		}
	}
	if value, ok := findTag(v.format.Tags, name); ok {
		return value, true
	}
	if v.primary != nil {
		return findTag(v.primary.Tags, name)
	}
	return "", false
}

func findTag(tags map[string]string, name string) (string, bool) {
	if value, ok := tags[name]; ok && value != "" {
		return value, true
	}
	for k, value := range tags {
		if strings.EqualFold(k, name) && value != "" {
			return value, true
		}
	}
	return "", false
}

func nonEmpty(s string) (string, bool) { return s, s != "" }

func positive(n int) (string, bool) {
	if n <= 0 {
		return "", false
	}
	return strconv.Itoa(n), true
}
