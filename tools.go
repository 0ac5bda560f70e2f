//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They pin mockgen, invoked through
// go generate, so go.mod and go.sum stay in sync on a fresh checkout.
package prompt_lab

import (
	_ "go.uber.org/mock/mockgen"
)
