//go:build mage
// +build mage

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary      = "./longlines"
	versionFlag = "github.com/rwx-cloud/longlines/cmd/longlines/config.Version"
)

// Default is the default build target.
var Default = Build

// All cleans output, builds, tests, and lints.
func All(ctx context.Context) error {
	for _, t := range []func(context.Context) error{Clean, Build, Test, Lint} {
		if err := t(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Build builds the longlines CLI.
func Build(ctx context.Context) error {
	ldflags, err := getLdflags()
	if err != nil {
		return err
	}

	args := []string{"build", "-ldflags", ldflags, "-o", binary}
	if os.Getenv("CGO_ENABLED") == "0" {
		args = append(args, "-a")
	}

	return sh.RunV("go", append(args, "./cmd/longlines")...)
}

// Clean removes any generated artifacts from the repository.
func Clean(ctx context.Context) error {
	return sh.Rm(binary)
}

// Lint runs the linter & performs static-analysis checks.
func Lint(ctx context.Context) error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// LintFix applies lint fixes and tidies go.mod.
func LintFix(ctx context.Context) error {
	if err := sh.RunV("golangci-lint", "run", "--fix", "./..."); err != nil {
		return err
	}

	return sh.RunV("go", "mod", "tidy")
}

func UnitTest(ctx context.Context) error {
	return goTest("./internal/...", "./cmd/...")
}

// IntegrationTest runs the end-to-end suite against a freshly built binary.
func IntegrationTest(ctx context.Context) error {
	mg.CtxDeps(ctx, Build)
	return goTest("./test/...")
}

func Test(ctx context.Context) error {
	mg.SerialCtxDeps(ctx, UnitTest, IntegrationTest)
	return nil
}

func goTest(packages ...string) error {
	args := []string{"test", "-parallel", "4"}
	if os.Getenv("REPORT") != "" {
		args = append(args, "-v")
	}

	return sh.RunV("go", append(args, packages...)...)
}

func getLdflags() (string, error) {
	if ldflags := os.Getenv("LDFLAGS"); ldflags != "" {
		return ldflags, nil
	}

	sha, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("-X %s=git-%s", versionFlag, strings.TrimSpace(string(sha))), nil
}
