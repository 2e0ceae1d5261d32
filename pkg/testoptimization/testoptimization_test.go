// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build testoptimization

package testoptimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeShutdownCycles(t *testing.T) {
	require.True(t, Shutdown())

	// Reset memory counters
	ResetMemoryStats()

	for i := 0; i < 3; i++ {
		require.True(t, InitializeMock(), "initialize failed on cycle %d", i)
		require.True(t, Shutdown(), "shutdown failed on cycle %d", i)
	}

	// Check for leaks
	assertMemoryBalanced(t)
}

func TestInitializeIsIdempotentWithinCycle(t *testing.T) {
	setupMock(t)
	assert.True(t, InitializeMock())
	assert.True(t, Initialize())
}

func TestShutdownIsIdempotent(t *testing.T) {
	setupMock(t)
	assert.True(t, Shutdown())
	assert.True(t, Shutdown())
}

func TestOperationsBeforeInitialize(t *testing.T) {
	require.True(t, Shutdown())

	_, err := CreateSession("gotest", "")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = CreateSpan(1, "operation", "", "", "")
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.False(t, Session{}.SetStringTag("key", "value"))
	assert.False(t, Session{}.Close(0))
	assert.False(t, Test{}.Close(StatusPass))
	assert.False(t, Test{}.Log("message", ""))

	assert.Zero(t, GetSettings())
	assert.Zero(t, GetFlakyTestRetriesSettings())
	assert.Empty(t, GetKnownTests())
	assert.Empty(t, GetSkippableTests())
	assert.Empty(t, GetTestManagementTests())

	assert.False(t, MockTracerReset())
	assert.Nil(t, MockTracerFinishedSpans())
	assert.Nil(t, MockTracerOpenSpans())

	// Benchmark setters short-circuit on empty input before the lifecycle
	// guard; non-empty input hits the guard.
	assert.True(t, Test{}.SetBenchmarkNumberData("timings", nil))
	assert.False(t, Test{}.SetBenchmarkNumberData("timings", map[string]float64{"mean": 1}))
}

func TestInitializeRejectsEmbeddedNul(t *testing.T) {
	require.True(t, Shutdown())

	assert.False(t, InitializeWithOptions(InitOptions{
		Language:      "go\x00go",
		UseMockTracer: true,
	}))
	assert.False(t, isInitialized())

	assert.False(t, InitializeWithOptions(InitOptions{
		GlobalTags:    map[string]string{"bad\x00key": "value"},
		UseMockTracer: true,
	}))
	assert.False(t, isInitialized())
}

func TestClosePanickingShutsDown(t *testing.T) {
	setupMock(t)

	session, err := CreateSession("gotest", "")
	require.NoError(t, err)

	assert.True(t, session.ClosePanicking())
	assert.False(t, isInitialized())
}
