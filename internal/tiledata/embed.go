// Package tiledata provides embedded tile definitions and utilities for
// loading them.
package tiledata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
