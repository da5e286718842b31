//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "phonconv"
	binDir     = "bin"
	versionPkg = "codeberg.org/snonux/phonconv/internal.Version"
)

// Default target to run when none is specified
var Default = Build

func ldflags() string {
	version := os.Getenv("PHONCONV_VERSION")
	if version == "" {
		return ""
	}
	return fmt.Sprintf("-X %s=%s", versionPkg, version)
}

// Build compiles the phonconv binary into ./bin
func Build() error {
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binDir, binaryName), "./cmd/phonconv")
}

// Install installs phonconv into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/phonconv")
}

// Test runs all unit tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll(binDir)
}
