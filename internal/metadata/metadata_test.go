/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package metadata

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		token string
		want  Key
		ok    bool
	}{
		{"{image:width}", Key{Kind: Image, Field: "width"}, true},
		{"image:ISO", Key{Kind: Image, Field: "ISO"}, true},
		{"{audio:title}", Key{Kind: Audio, Field: "title"}, true},
		{"audio:date_recorded", Key{Kind: Audio, Field: "date_recorded"}, true},
		{"{video:creation_time}", Key{Kind: Video, Field: "creation_time"}, true},
		{"{image:shoe_size}", Key{Kind: Image, Field: "shoe_size"}, false},
		{"{audio:lyrics}", Key{Kind: Audio, Field: "lyrics"}, false},
		{"{video:a b}", Key{Kind: Video, Field: "a b"}, false},
		{"{image}", Key{}, false},
		{"{image:}", Key{}, false},
		{"{doc:title}", Key{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.token)
			assert.Equal(t, "{"+string(tt.want.Kind)+":"+tt.want.Field+"}", got.String())
		}
	}
}

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	path := filepath.Join(dir, "pic.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestImageDimensionFallback(t *testing.T) {
	path := writePNG(t, t.TempDir(), 12, 7)
	r := NewReader()

	width, err := r.Lookup(path, Key{Kind: Image, Field: "width"})
	require.NoError(t, err)
	assert.Equal(t, "12", width)

	height, err := r.Lookup(path, Key{Kind: Image, Field: "height"})
	require.NoError(t, err)
	assert.Equal(t, "7", height)

	// PNG 没有 EXIF，其他字段不可用
	_, err = r.Lookup(path, Key{Kind: Image, Field: "make"})
	assert.True(t, errors.Is(err, ErrMetadataUnavailable))
}

func TestUnavailableForPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
	r := &Reader{Video: &VideoReader{Probe: func(context.Context, string) ([]byte, error) {
		return nil, errors.New("not a media file")
	}}}

	for _, key := range []Key{
		{Kind: Image, Field: "width"},
		{Kind: Audio, Field: "title"},
		{Kind: Video, Field: "width"},
		{Kind: "doc", Field: "title"},
	} {
		_, err := r.Lookup(path, key)
		assert.True(t, errors.Is(err, ErrMetadataUnavailable), key.String())
	}
}

// writeMP3 写出一个只含少量音频字节的文件，并由 edit 写入 ID3v2 标签。
func writeMP3(t *testing.T, version byte, edit func(tag *id3v2.Tag)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.mp3")
	require.NoError(t, os.WriteFile(path, make([]byte, 256), 0o644))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	tag.SetVersion(version)
	edit(tag)
	require.NoError(t, tag.Save())
	require.NoError(t, tag.Close())
	return path
}

// latin1 把每个字节当作一个 ISO-8859-1 字符，模拟误标编码的标签。
func latin1(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}

func TestAudioLookup(t *testing.T) {
	gb, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte("周杰伦"))
	require.NoError(t, err)

	tagged := func(tag *id3v2.Tag) {
		tag.SetTitle("Song")
		tag.SetYear("2020")
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, "3/12")
		tag.AddTextFrame("TPE1", id3v2.EncodingISO, latin1(gb))
		tag.AddTextFrame("TALB", id3v2.EncodingISO, "Café")
	}
	v4 := writeMP3(t, 4, tagged)
	v3 := writeMP3(t, 3, tagged)

	tests := []struct {
		path  string
		field string
		want  string
	}{
		{v4, "title", "Song"},
		{v4, "year", "2020"},
		{v4, "track", "3/12"},
		{v4, "artist", "周杰伦"},
		{v4, "album", "Café"},
		{v3, "title", "Song"},
		{v3, "year", "2020"},
		{v3, "track", "3/12"},
		{v3, "artist", "周杰伦"},
	}
	r := NewReader()
	for _, tt := range tests {
		got, err := r.Lookup(tt.path, Key{Kind: Audio, Field: tt.field})
		require.NoError(t, err, tt.field)
		assert.Equal(t, tt.want, got, tt.field)
	}

	_, err = r.Lookup(v4, Key{Kind: Audio, Field: "genre"})
	assert.True(t, errors.Is(err, ErrMetadataUnavailable))
}

func TestUnavailableForMissingFile(t *testing.T) {
	_, err := NewReader().Lookup(filepath.Join(t.TempDir(), "gone.mp3"), Key{Kind: Audio, Field: "artist"})
	assert.True(t, errors.Is(err, ErrMetadataUnavailable))
}

const sampleProbe = `{
  "streams": [
    {"codec_name": "mjpeg", "codec_type": "video", "width": 300, "height": 300, "disposition": {"attached_pic": 1}},
    {"codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080,
     "avg_frame_rate": "24000/1001", "disposition": {"attached_pic": 0},
     "tags": {"handler_name": "VideoHandler"}},
    {"codec_name": "aac", "codec_type": "audio"}
  ],
  "format": {
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "61.480000",
    "bit_rate": "4521339",
    "tags": {"creation_time": "2024-05-01T10:00:00.000000Z", "TITLE": "Holiday"}
  }
}`

func TestVideoLookup(t *testing.T) {
	var gotPath string
	r := &Reader{Video: &VideoReader{Probe: func(_ context.Context, path string) ([]byte, error) {
		gotPath = path
		return []byte(sampleProbe), nil
	}}}

	tests := map[string]string{
		"width":         "1920",
		"height":        "1080",
		"codec":         "h264",
		"duration":      "61.480000",
		"frame_rate":    "24000/1001",
		"creation_time": "2024-05-01T10:00:00.000000Z",
		"title":         "Holiday",
		"handler_name":  "VideoHandler",
	}
	for field, want := range tests {
		got, err := r.Lookup("clip.mp4", Key{Kind: Video, Field: field})
		require.NoError(t, err, field)
		assert.Equal(t, want, got, field)
	}
	assert.Equal(t, "clip.mp4", gotPath)

	_, err := r.Lookup("clip.mp4", Key{Kind: Video, Field: "director"})
	assert.True(t, errors.Is(err, ErrMetadataUnavailable))
}

func TestVideoLookupBadJSON(t *testing.T) {
	v := &VideoReader{Probe: func(context.Context, string) ([]byte, error) {
		return []byte("{"), nil
	}}
	_, err := (&Reader{Video: v}).Lookup("clip.mp4", Key{Kind: Video, Field: "width"})
	assert.True(t, errors.Is(err, ErrMetadataUnavailable))
}

func TestVideoWithoutVideoStream(t *testing.T) {
	info, err := parseProbe([]byte(`{"streams":[{"codec_type":"audio"}],"format":{"duration":"3.0"}}`))
	require.NoError(t, err)
	_, ok := info.field("width")
	assert.False(t, ok)
	d, ok := info.field("duration")
	assert.True(t, ok)
	assert.Equal(t, "3.0", d)
}
