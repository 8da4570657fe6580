//go:build mage

// Package main provides build targets for the portfolio server using Mage.
//
// Usage:
//
//	mage build     Compile server and portfolioctl to bin/
//	mage test      Run all tests
//	mage testE2E   Run only the full-stack tests
//	mage lint      Run golangci-lint
//	mage run       Build and start the server with a local data dir
//	mage clean     Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryDir = "bin"

var binaries = map[string]string{
	"portfolio":    "./cmd/server",
	"portfolioctl": "./cmd/portfolioctl",
}

// version is stamped into main.version of both binaries.
func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(out) == "" {
		return "dev"
	}
	return strings.TrimSpace(out)
}

// Build compiles both binaries to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	ldflags := fmt.Sprintf("-X main.version=%s", version())
	for name, pkg := range binaries {
		if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, name), pkg); err != nil {
			return err
		}
	}
	return nil
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestE2E runs the full-stack tests that boot the router over each backend.
func TestE2E() error {
	return sh.RunV("go", "test", "-v", "./internal/testserver/...", "./cmd/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Run builds and starts the server with data under ./data and debug logging.
func Run() error {
	mg.Deps(Build)
	env := map[string]string{
		"PORTFOLIO_DATA_DIR":  "data",
		"PORTFOLIO_LOG_LEVEL": "debug",
	}
	return sh.RunWithV(env, filepath.Join(binaryDir, "portfolio"))
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
