//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/ghannotate"
	binPath    = "bin/ghannotate"
)

// Default target - build the binary
var Default = Build

// Build builds the ghannotate binary with version metadata.
func Build() error {
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitVersion(), gitCommit(), date)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/ghannotate")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}

// QA runs formatting, vet, tests and build in order.
func QA() {
	mg.SerialDeps(Lint.Vet, Test.All, Build)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Format fails if any file needs gofmt.
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	mg.Deps(Lint.Format)
	return sh.RunV("go", "vet", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with the race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage writes coverage.out and prints per-function coverage.
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil || out == "" {
		return "dev"
	}
	return out
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || out == "" {
		return "unknown"
	}
	return out
}
