//go:build mage

// Package main 包含 tsconfig-helper 的 Mage 构建目标。
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir    = "bin"
	modPath   = "github.com/lwmacct/260120-go-tsconfig-helper"
	cliName   = "tsconfig-helper"
	serveName = "tsconfig-helper-server"
)

// Default 未指定目标时执行 Build。
var Default = Build

// ldflags 把版本信息写入 internal/command/version。
func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version, _ = sh.Output("git", "describe", "--tags", "--always", "--dirty")
	}
	commit, _ := sh.Output("git", "rev-parse", "HEAD")

	pkg := modPath + "/internal/command/version"
	return strings.Join([]string{
		"-s -w",
		fmt.Sprintf("-X %s.Version=%s", pkg, version),
		fmt.Sprintf("-X %s.Commit=%s", pkg, commit),
	}, " ")
}

// Build 编译 CLI 与独立服务端到 bin/。
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}

	flags := ldflags()
	targets := map[string]string{
		cliName:   ".",
		serveName: "./cmd/server",
	}
	for name, pkg := range targets {
		out := filepath.Join(binDir, name)
		if err := sh.RunV("go", "build", "-trimpath", "-ldflags", flags, "-o", out, pkg); err != nil {
			return fmt.Errorf("go build %s: %w", pkg, err)
		}
		fmt.Printf("Built %s\n", out)
	}

	return nil
}

// Test 运行全部测试。
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Lint 运行 go vet 与 golangci-lint (若已安装)。
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := sh.Output("golangci-lint", "version"); err != nil {
		fmt.Println("golangci-lint not found, skipping")
		return nil
	}

	return sh.RunV("golangci-lint", "run", "./...")
}

// Check 依次执行 Lint 与 Test。
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Install 安装 CLI 到 GOBIN。
func Install() error {
	return sh.RunV("go", "install", "-trimpath", "-ldflags", ldflags(), ".")
}

// Clean 删除构建产物。
func Clean() error {
	return sh.Rm(binDir)
}
