// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package testoptimization

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInitialized is returned by creation operations invoked before
// Initialize or after Shutdown.
var ErrNotInitialized = errors.New("test optimization library is not initialized")

// EncodingError reports a string that cannot cross the native boundary.
// It is raised before any native call is made.
type EncodingError struct {
	Field string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s contains an embedded null byte", e.Field)
}

// checkNoEmbeddedNul rejects strings the C side would silently truncate.
func checkNoEmbeddedNul(field, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return &EncodingError{Field: field}
	}
	return nil
}

// checkStrings validates every outbound string of a call before the first
// allocation. Arguments alternate field names and values.
func checkStrings(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := checkNoEmbeddedNul(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
