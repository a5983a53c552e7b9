// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	// LookupEnv returns the value of the variable named by key and whether
	// it was present at all.
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// LookupEnv returns the value of the environment variable named by the key
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a fixed set of variables.
// A nil MapReader reports every variable as unset.
type MapReader map[string]string

// LookupEnv returns the value stored for key
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
