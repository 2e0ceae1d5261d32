// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package testoptimization

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestStatusString(t *testing.T) {
	assert.Equal(t, "pass", StatusPass.String())
	assert.Equal(t, "fail", StatusFail.String())
	assert.Equal(t, "skip", StatusSkip.String())
	assert.Equal(t, "unknown", TestStatus(42).String())
}

func TestInitOptionsDefaults(t *testing.T) {
	options := InitOptions{}.withDefaults()

	assert.Equal(t, "go", options.Language)
	assert.Equal(t, "go", options.RuntimeName)
	assert.Equal(t, runtime.Version(), options.RuntimeVersion)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, options.WorkingDirectory)
}

func TestInitOptionsDefaultsKeepExplicitValues(t *testing.T) {
	options := InitOptions{
		Language:         "rust",
		RuntimeName:      "cargo",
		RuntimeVersion:   "1.80",
		WorkingDirectory: "/tmp/project",
	}.withDefaults()

	assert.Equal(t, "rust", options.Language)
	assert.Equal(t, "cargo", options.RuntimeName)
	assert.Equal(t, "1.80", options.RuntimeVersion)
	assert.Equal(t, "/tmp/project", options.WorkingDirectory)
}

func TestBuildKnownTestsMap(t *testing.T) {
	entries := []knownTest{
		{moduleName: "module-a", suiteName: "suite-a", testName: "TestOne"},
		{moduleName: "module-a", suiteName: "suite-a", testName: "TestTwo"},
		{moduleName: "module-a", suiteName: "suite-b", testName: "TestThree"},
		{moduleName: "module-b", suiteName: "suite-c", testName: "TestFour"},
	}

	knownTests := buildKnownTestsMap(entries)

	require.Len(t, knownTests, 2)
	assert.Equal(t, []string{"TestOne", "TestTwo"}, knownTests["module-a"]["suite-a"])
	assert.Equal(t, []string{"TestThree"}, knownTests["module-a"]["suite-b"])
	assert.Equal(t, []string{"TestFour"}, knownTests["module-b"]["suite-c"])
}

func TestBuildKnownTestsMapEmpty(t *testing.T) {
	knownTests := buildKnownTestsMap(nil)
	assert.NotNil(t, knownTests)
	assert.Empty(t, knownTests)
}

func TestBuildSkippableTestsMapKeepsParameterizedVariants(t *testing.T) {
	entries := []SkippableTest{
		{SuiteName: "suite-a", TestName: "TestOne", Parameters: `{"arch":"amd64"}`},
		{SuiteName: "suite-a", TestName: "TestOne", Parameters: `{"arch":"arm64"}`},
		{SuiteName: "suite-b", TestName: "TestTwo"},
	}

	skippableTests := buildSkippableTestsMap(entries)

	require.Len(t, skippableTests, 2)
	require.Len(t, skippableTests["suite-a"]["TestOne"], 2)
	assert.Equal(t, `{"arch":"amd64"}`, skippableTests["suite-a"]["TestOne"][0].Parameters)
	assert.Equal(t, `{"arch":"arm64"}`, skippableTests["suite-a"]["TestOne"][1].Parameters)
	assert.Len(t, skippableTests["suite-b"]["TestTwo"], 1)
}

func TestBuildSkippableTestsMapEmpty(t *testing.T) {
	assert.Empty(t, buildSkippableTestsMap(nil))
}

func TestBuildTestManagementTestsMapFirstEntryWins(t *testing.T) {
	entries := []TestManagementTest{
		{ModuleName: "module-a", SuiteName: "suite-a", TestName: "TestOne", Quarantined: true},
		{ModuleName: "module-a", SuiteName: "suite-a", TestName: "TestOne", Quarantined: false, Disabled: true},
		{ModuleName: "module-a", SuiteName: "suite-a", TestName: "TestTwo", AttemptToFix: true},
	}

	managedTests := buildTestManagementTestsMap(entries)

	require.Len(t, managedTests["module-a"]["suite-a"], 2)
	first := managedTests["module-a"]["suite-a"]["TestOne"]
	assert.True(t, first.Quarantined)
	assert.False(t, first.Disabled)
	assert.True(t, managedTests["module-a"]["suite-a"]["TestTwo"].AttemptToFix)
}

func TestBuildTestManagementTestsMapEmpty(t *testing.T) {
	assert.Empty(t, buildTestManagementTestsMap(nil))
}

func TestSettingsZeroValue(t *testing.T) {
	var settings Settings

	assert.False(t, settings.CodeCoverage)
	assert.False(t, settings.ItrEnabled)
	assert.False(t, settings.EarlyFlakeDetection.Enabled)
	assert.Zero(t, settings.EarlyFlakeDetection.SlowTestRetries.FiveS)
	assert.False(t, settings.TestManagement.Enabled)
	assert.Zero(t, settings.TestManagement.AttemptToFixRetries)
}

func TestHandleZeroValues(t *testing.T) {
	assert.Zero(t, Session{}.SessionID())
	assert.Zero(t, Module{}.ModuleID())
	assert.Zero(t, Suite{}.SuiteID())
	assert.Zero(t, Test{}.TestID())
	assert.Zero(t, Span{}.SpanID())
}
