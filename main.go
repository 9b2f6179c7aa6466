/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package main

import (
	"renamer/cmd"
)

func main() {
	cmd.Execute()
}

// go build -ldflags="-s -w -X 'renamer/internal/version.Version=v1.0.0' -X 'renamer/internal/version.Commit=$(git rev-parse HEAD)' -X 'renamer/internal/version.BuildDate=$(date +%Y-%m-%d_%H:%M:%S)'" -o release/renamer .
