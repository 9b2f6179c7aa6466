/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package charset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// 旧版 ID3v2.3 标签常把 GBK/GB18030 或 UTF-8 字节标记为 ISO-8859-1。
// 本包检测并还原这类乱码，无法判定时保持原值。

// Supported encodings 标识字符串常量。
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-sig"
	EncodingGB18030 = "gb18030"
	EncodingLatin1  = "iso-8859-1"
	EncodingUnknown = "unknown"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Detect 检测字节切片的编码：utf-8-sig, utf-8, gb18030，否则 unknown。空数据视作 UTF-8。
func Detect(data []byte) string {
	switch {
	case len(data) == 0:
		return EncodingUTF8
	case bytes.HasPrefix(data, utf8BOM):
		return EncodingUTF8BOM
	case utf8.Valid(data):
		return EncodingUTF8
	case isGB18030(data):
		return EncodingGB18030
	}
	return EncodingUnknown
}

// isGB18030 严格模式解码无错误即认为是 GB18030。
func isGB18030(data []byte) bool {
	out, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
	return err == nil && !bytes.ContainsRune(out, utf8.RuneError)
}

// Decode 将字节统一转换为 UTF-8 字符串，并返回检测到的原始编码。
// 未知编码时非法字节替换为 U+FFFD，并返回警告性质的错误，字符串仍可用。
func Decode(data []byte) (string, string, error) {
	enc := Detect(data)
	switch enc {
	case EncodingUTF8BOM:
		return string(data[len(utf8BOM):]), enc, nil
	case EncodingUTF8:
		return string(data), enc, nil
	case EncodingGB18030:
		out, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
		if err != nil {
			return string(out), enc, fmt.Errorf("gb18030 解码失败: %w", err)
		}
		return string(out), enc, nil
	}
	fixed := bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
	return string(fixed), enc, fmt.Errorf("编码未知，非法字节已替换为 U+FFFD")
}

// latin1Bytes 将全部码点 <= 0xFF 的字符串还原为原始字节。
// 不含高位字节（纯 ASCII）或含有更大码点时返回 false。
func latin1Bytes(s string) ([]byte, bool) {
	out := make([]byte, 0, len(s))
	high := false
	for _, r := range s {
		if r > 0xFF {
			return nil, false
		}
		if r >= 0x80 {
			high = true
		}
		out = append(out, byte(r))
	}
	return out, high
}

// RepairLatin1 还原被误当作 ISO-8859-1 解码的文本。
// 原始字节是合法 UTF-8 或 GB18030 时返回解码结果与编码名，否则原样返回 s 与 EncodingLatin1。
func RepairLatin1(s string) (string, string) {
	raw, ok := latin1Bytes(s)
	if !ok {
		return s, EncodingLatin1
	}
	switch text, enc, err := Decode(raw); {
	case err != nil:
		return s, EncodingLatin1
	case enc == EncodingUTF8 || enc == EncodingUTF8BOM || enc == EncodingGB18030:
		return text, enc
	}
	return s, EncodingLatin1
}
