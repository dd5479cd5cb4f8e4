/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for serializing command output to
// various formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with proper indentation
//   - YAML: human-readable configuration format
//   - Table: human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(recipes); err != nil {
//	    log.Fatal(err)
//	}
package serializer

// Serializer is an interface for serializing command output.
// Implementations of this interface can serialize data to various formats
// such as JSON, YAML, or plain text tables.
type Serializer interface {
	Serialize(data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
