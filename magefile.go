//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target
var Default = Build

// Build compiles the csvtrans binary
func Build() error {
	fmt.Println("Building csvtrans...")
	return sh.RunV("go", "build", "-o", "csvtrans", "./cmd/csvtrans")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/csvtrans")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("csvtrans")
}
