// Package main provides build targets for the knownfolders project
// using Mage.
//
// Usage:
//
//	mage build         Compile the knownfolder binary to bin/
//	mage test          Run all tests
//	mage crosscheck    Vet the Windows build from any host
//	mage lint          Run golangci-lint
//	mage clean         Remove build artifacts
//	mage install       Install knownfolder to GOPATH/bin

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "knownfolder"
	binaryDir  = "bin"
	cmdDir     = "./cmd/knownfolder"
)

// Build compiles the knownfolder binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Crosscheck vets the Windows build so syscall-facing code is
// exercised by CI hosts of any platform.
func Crosscheck() error {
	return sh.RunWithV(map[string]string{"GOOS": "windows"}, "go", "vet", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install installs the knownfolder binary to GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", cmdDir)
}
