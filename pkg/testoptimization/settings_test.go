// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build testoptimization

package testoptimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSettingsWithMockTracer(t *testing.T) {
	setupMock(t)

	// The mock tracer runs without a backend, so every toggle stays at its
	// default.
	settings := GetSettings()
	assert.False(t, settings.ItrEnabled)
	assert.False(t, settings.TestsSkipping)
	assert.False(t, settings.EarlyFlakeDetection.Enabled)
	assert.False(t, settings.TestManagement.Enabled)
}

func TestGetFlakyTestRetriesSettingsWithMockTracer(t *testing.T) {
	setupMock(t)

	// The concrete budget is backend defined; without one the compiled
	// defaults apply and are never negative.
	settings := GetFlakyTestRetriesSettings()
	assert.GreaterOrEqual(t, settings.RetryCount, 0)
	assert.GreaterOrEqual(t, settings.TotalRetryCount, 0)
}

func TestCatalogsEmptyWithMockTracer(t *testing.T) {
	setupMock(t)

	knownTests := GetKnownTests()
	assert.NotNil(t, knownTests)
	assert.Empty(t, knownTests)

	skippableTests := GetSkippableTests()
	assert.NotNil(t, skippableTests)
	assert.Empty(t, skippableTests)

	managedTests := GetTestManagementTests()
	assert.NotNil(t, managedTests)
	assert.Empty(t, managedTests)
}
