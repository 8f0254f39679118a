//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through go generate on contract/contract.go. Importing it
// here keeps it pinned in go.mod so mocks regenerate the same on every checkout.
package medical_panel

import (
	_ "go.uber.org/mock/mockgen"
)
