// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package testoptimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNoEmbeddedNul(t *testing.T) {
	assert.NoError(t, checkNoEmbeddedNul("tag key", "plain value"))
	assert.NoError(t, checkNoEmbeddedNul("tag key", ""))
	assert.NoError(t, checkNoEmbeddedNul("tag key", "unicode ✓ data"))

	err := checkNoEmbeddedNul("tag key", "bad\x00value")
	require.Error(t, err)

	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.Equal(t, "tag key", encodingErr.Field)
	assert.Equal(t, "tag key contains an embedded null byte", err.Error())
}

func TestCheckStrings(t *testing.T) {
	assert.NoError(t, checkStrings())
	assert.NoError(t, checkStrings("field one", "ok", "field two", "also ok"))

	err := checkStrings("field one", "ok", "field two", "broken\x00")
	require.Error(t, err)

	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.Equal(t, "field two", encodingErr.Field)
}
