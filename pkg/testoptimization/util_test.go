// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build testoptimization

package testoptimization

import (
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueArrayRoundTrip(t *testing.T) {
	// Reset memory counters
	ResetMemoryStats()

	input := map[string]string{
		"plain":     "value",
		"empty":     "",
		"separator": "a=b,c;d",
		"unicode":   "значение ✓",
	}

	array, err := makeKeyValueArray("tag", input)
	require.NoError(t, err)
	decoded := decodeKeyValueArray(array)
	freeKeyValueArray(array)

	assert.Equal(t, input, decoded)

	// Check for leaks
	assertMemoryBalanced(t)
}

func TestKeyValueArrayEmpty(t *testing.T) {
	ResetMemoryStats()

	array, err := makeKeyValueArray("tag", nil)
	require.NoError(t, err)
	assert.True(t, array.data == nil)
	assert.Zero(t, int(array.len))

	freeKeyValueArray(array)
	assert.Zero(t, Allocations())
	assert.Zero(t, Frees())
}

func TestKeyValueArrayRejectsEmbeddedNul(t *testing.T) {
	ResetMemoryStats()

	_, err := makeKeyValueArray("tag", map[string]string{"bad\x00key": "value"})
	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)

	_, err = makeKeyValueArray("tag", map[string]string{"key": "bad\x00value"})
	require.Error(t, err)

	// Validation runs before the first allocation, so there is nothing to
	// free.
	assert.Zero(t, Allocations())
}

func TestKeyNumberArrayRoundTrip(t *testing.T) {
	ResetMemoryStats()

	input := map[string]float64{
		"mean":   12.5,
		"median": -3,
		"zero":   0,
	}

	array, err := makeKeyNumberArray("measure", input)
	require.NoError(t, err)
	decoded := decodeKeyNumberArray(array)
	freeKeyNumberArray(array)

	assert.Equal(t, input, decoded)
	assertMemoryBalanced(t)
}

func TestUnixTimeCodec(t *testing.T) {
	now := time.Now()
	unixTime := toUnixTime(now)

	assert.Equal(t, uint64(now.Unix()), uint64(unixTime.sec))
	assert.Equal(t, uint64(now.Nanosecond()), uint64(unixTime.nsec))
	assert.True(t, goTime(unixTime).Equal(now))
}

func TestBoolCodec(t *testing.T) {
	assert.True(t, goBool(cBool(true)))
	assert.False(t, goBool(cBool(false)))
	assert.True(t, goBool(255))
}

func TestOptionalStringIsNullWhenEmpty(t *testing.T) {
	assert.True(t, trackedCStringOpt("") == nil)

	ptr := trackedCStringOpt("present")
	require.True(t, ptr != nil)
	trackedFree(unsafe.Pointer(ptr))
}

func TestGoStringSafeNil(t *testing.T) {
	assert.Equal(t, "", goStringSafe(nil))
}

func TestOptionalIntPointer(t *testing.T) {
	assert.True(t, cIntPtr(nil) == nil)

	line := 42
	ptr := cIntPtr(&line)
	require.True(t, ptr != nil)
	assert.Equal(t, 42, int(*ptr))
}
