// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// ksm is a thin command-line surface over the go-keeper-sdk core: it loads
// the client configuration, talks to the vault through the secrets service,
// and prints resolved values. All secret handling lives in the SDK packages.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("ksm: %v", err)
		os.Exit(1)
	}
}
