/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package metadata

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageFields 子键到 EXIF 字段的映射。
var imageFields = map[string]exif.FieldName{
	"width":                    exif.PixelXDimension,
	"height":                   exif.PixelYDimension,
	"create_date":              exif.DateTimeDigitized,
	"make":                     exif.Make,
	"model":                    exif.Model,
	"software":                 exif.Software,
	"orientation":              exif.Orientation,
	"exposure_time":            exif.ExposureTime,
	"f_number":                 exif.FNumber,
	"iso_speed_ratings":        exif.ISOSpeedRatings,
	"ISO":                      exif.ISOSpeedRatings,
	"exposure_program":         exif.ExposureProgram,
	"aperture_value":           exif.ApertureValue,
	"max_aperture_value":       exif.MaxApertureValue,
	"metering_mode":            exif.MeteringMode,
	"flash":                    exif.Flash,
	"focal_length":             exif.FocalLength,
	"subject_distance":         exif.SubjectDistance,
	"color_space":              exif.ColorSpace,
	"datetime_original":        exif.DateTimeOriginal,
	"components_configuration": exif.ComponentsConfiguration,
	"compression":              exif.Compression,
	"shutter_speed_value":      exif.ShutterSpeedValue,
	"brightness_value":         exif.BrightnessValue,
	"exposure_bias_value":      exif.ExposureBiasValue,
	"GPSLatitude":              exif.GPSLatitude,
	"GPSLongitude":             exif.GPSLongitude,
	"GPSAltitude":              exif.GPSAltitude,
	"GPSAltitudeRef":           exif.GPSAltitudeRef,
	"GPSTimeStamp":             exif.GPSTimeStamp,
}

// 宽高在 EXIF 中缺失时依次尝试的备用字段
var dimensionFallback = map[string]exif.FieldName{
	"width":  exif.ImageWidth,
	"height": exif.ImageLength,
}

func lookupImageField(field string) (exif.FieldName, bool) {
	name, ok := imageFields[field]
	return name, ok
}

func lookupImage(path, field string) (string, error) {
	name, ok := lookupImageField(field)
	if !ok {
		return "", fmt.Errorf("%w: 不支持的图片字段 %q", ErrMetadataUnavailable, field)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	x, exifErr := exif.Decode(f)
	if exifErr == nil {
		if value, ok := exifValue(x, field, name); ok {
			return value, nil
		}
	}

	// 无 EXIF 的 PNG / GIF / BMP / WebP 仍可通过解码头部得到宽高
	if _, isDim := dimensionFallback[field]; isDim {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return "", err
		}
		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			return "", fmt.Errorf("解码图片头部失败: %w", err)
		}
		if field == "width" {
			return strconv.Itoa(cfg.Width), nil
		}
		return strconv.Itoa(cfg.Height), nil
	}

	if exifErr != nil {
		return "", fmt.Errorf("读取 EXIF 失败: %w", exifErr)
	}
	return "", fmt.Errorf("%w: EXIF 字段 %s 不存在", ErrMetadataUnavailable, name)
}

func exifValue(x *exif.Exif, field string, name exif.FieldName) (string, bool) {
	switch field {
	case "GPSLatitude", "GPSLongitude":
		lat, long, err := x.LatLong()
		if err != nil {
			return "", false
		}
		if field == "GPSLatitude" {
			return strconv.FormatFloat(lat, 'f', 6, 64), true
		}
		return strconv.FormatFloat(long, 'f', 6, 64), true
	}

	tag, err := x.Get(name)
	if err != nil {
		if fallback, ok := dimensionFallback[field]; ok {
			tag, err = x.Get(fallback)
		}
		if err != nil {
			return "", false
		}
	}
	return tagString(tag), true
}

// tagString 将 TIFF 标签转换为文件名友好的文本。
func tagString(tag *tiff.Tag) string {
	if tag.Format() == tiff.StringVal {
		if s, err := tag.StringVal(); err == nil {
			return strings.TrimRight(s, "\x00 ")
		}
	}
	return strings.Trim(tag.String(), `"`)
}
