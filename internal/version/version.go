/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package version

import (
	"fmt"
	"runtime"
)

// 以下变量在构建时通过 -ldflags -X 注入。
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// GetAbout 返回 about 命令展示的基本信息。
func GetAbout() string {
	return fmt.Sprintf("renamer %s\n基于模板的批量重命名工具\ncommit: %s\nbuilt:  %s\ngo:     %s %s/%s",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
