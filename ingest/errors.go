// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for ingestion.

package ingest

import (
	"errors"
	"fmt"
)

// ErrNoColumns indicates a Spec that selects no node, edge or pair column.
var ErrNoColumns = errors.New("ingest: no columns selected")

// ErrColumnPair indicates a directed column pair with an empty source or target.
var ErrColumnPair = errors.New("ingest: incomplete column pair")

// ErrDecode indicates malformed CSV or YAML input.
var ErrDecode = errors.New("ingest: cannot decode input")

// method tags used for error context
const (
	methodBuild         = "Build"
	methodReadCSV       = "ReadCSV"
	methodDecodeDataset = "DecodeDataset"
)

func wrapf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
