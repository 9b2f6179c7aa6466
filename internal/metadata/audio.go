/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package metadata

import (
	"fmt"

	"renamer/pkg/charset"
	"renamer/pkg/logger"

	"github.com/bogem/id3v2"
)

// audioFrames 子键到 ID3v2 文本帧的映射（v2.3 与 v2.4 相同的部分）。
var audioFrames = map[string]string{
	"title":         "TIT2",
	"artist":        "TPE1",
	"album":         "TALB",
	"year":          "", // v2.3 为 TYER，v2.4 为 TDRC
	"genre":         "TCON",
	"track":         "TRCK",
	"disc":          "TPOS",
	"date_recorded": "TDRC",
	"date_released": "TDRL",
	"duration":      "TLEN",
}

func lookupAudio(path, field string) (string, error) {
	frameID, ok := audioFrames[field]
	if !ok {
		return "", fmt.Errorf("%w: 不支持的音频字段 %q", ErrMetadataUnavailable, field)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", fmt.Errorf("读取 ID3 标签失败: %w", err)
	}
	defer tag.Close()

	if field == "year" {
		frameID = "TYER"
		if tag.Version() == 4 {
			frameID = "TDRC"
		}
	}
	frame := tag.GetTextFrame(frameID)
	if frame.Encoding.Key != id3v2.EncodingISO.Key {
		return frame.Text, nil
	}
	text, enc := charset.RepairLatin1(frame.Text)
	if enc != charset.EncodingLatin1 {
		logger.Log().Debug("已还原误标为 ISO-8859-1 的标签文本", "path", path, "frame", frameID, "encoding", enc)
	}
	return text, nil
}
