//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools:
// - github.com/matryer/moq (go generate ./internal/service/...)
