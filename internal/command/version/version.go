// Package version 提供版本信息与 version 命令。
//
// 构建时可通过 -ldflags 注入：
//
//	go build -ldflags "-X github.com/lwmacct/260120-go-tsconfig-helper/internal/command/version.Version=v1.2.0"
package version

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
)

var (
	// Version 版本号，未注入时从构建信息读取。
	Version = ""
	// Commit 提交哈希，未注入时从构建信息读取。
	Commit = ""
)

// Info 是版本信息。
type Info struct {
	App     string `json:"app" yaml:"app"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Go      string `json:"go" yaml:"go"`
}

// Get 返回版本信息。
func Get() Info {
	info := Info{App: command.AppName, Version: Version, Commit: Commit, Go: runtime.Version()}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && info.Commit == "" {
				info.Commit = s.Value
			}
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}

	return info
}

// String 返回单行版本描述。
func (i Info) String() string {
	s := i.App + " " + i.Version
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		s += " (" + commit + ")"
	}

	return s + " " + i.Go
}

// Command version 命令
var Command = New()

// New 创建 version 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "显示版本信息",
		Action: action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("json") {
		cfg, err := command.LoadSettings(cmd)
		if err != nil {
			return err
		}
		printer, err := command.NewPrinter(cmd, cfg)
		if err != nil {
			return err
		}
		return printer.Data(Get())
	}
	_, err := fmt.Fprintln(command.Stdout(cmd), Get().String())

	return err
}
