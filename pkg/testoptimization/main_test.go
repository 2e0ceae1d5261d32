// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build testoptimization

package testoptimization

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	ret := m.Run()
	Shutdown()
	os.Exit(ret)
}

// setupMock (re)initializes the library with the mock tracer and drops any
// spans recorded by earlier tests, so every test observes only its own.
func setupMock(t *testing.T) {
	t.Helper()
	require.True(t, InitializeMock(), "mock initialization failed")
	require.True(t, MockTracerReset(), "mock tracer reset failed")
}

// assertMemoryBalanced checks that every tracked C allocation was released.
func assertMemoryBalanced(t *testing.T) {
	t.Helper()
	assert.Equal(t, Allocations(), Frees(), "tracked C allocations and frees diverged")
}

// findSpanByOperation returns the first recorded span with the given
// operation name.
func findSpanByOperation(spans []MockSpan, operation string) (MockSpan, bool) {
	for _, span := range spans {
		if span.OperationName == operation {
			return span, true
		}
	}
	return MockSpan{}, false
}

// createTestChain builds a session, module, suite and test for tests that
// need a live test entity.
func createTestChain(t *testing.T, name string) (Session, Module, Suite, Test) {
	t.Helper()
	session, err := CreateSession("gotest", "")
	require.NoError(t, err)
	module, err := session.CreateModule("demo/package", "gotest", "")
	require.NoError(t, err)
	suite, err := module.CreateSuite("demo_test.go")
	require.NoError(t, err)
	test, err := suite.CreateTest(name)
	require.NoError(t, err)
	return session, module, suite, test
}
