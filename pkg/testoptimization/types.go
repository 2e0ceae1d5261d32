// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package testoptimization

import (
	"os"
	"runtime"
	"time"
)

// TestStatus is the outcome reported when closing a test.
type TestStatus uint8

const (
	// StatusPass marks a passing test.
	StatusPass TestStatus = iota
	// StatusFail marks a failing test.
	StatusFail
	// StatusSkip marks a skipped test.
	StatusSkip
)

func (s TestStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusSkip:
		return "skip"
	}
	return "unknown"
}

// InitOptions configures the native library at initialization time. All
// fields are optional; empty fields fall back to the values of the current
// process (language "go", runtime name "go", the Go runtime version and the
// current working directory).
type InitOptions struct {
	Language         string
	RuntimeName      string
	RuntimeVersion   string
	WorkingDirectory string

	// EnvironmentVariables are applied by the native library on top of the
	// process environment before it reads its own configuration.
	EnvironmentVariables map[string]string

	// GlobalTags are merged into every span the library emits.
	GlobalTags map[string]string

	// UseMockTracer redirects all telemetry to the in-memory mock tracer
	// instead of a live transport.
	UseMockTracer bool
}

func (o InitOptions) withDefaults() InitOptions {
	if o.Language == "" {
		o.Language = "go"
	}
	if o.RuntimeName == "" {
		o.RuntimeName = "go"
	}
	if o.RuntimeVersion == "" {
		o.RuntimeVersion = runtime.Version()
	}
	if o.WorkingDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			o.WorkingDirectory = wd
		}
	}
	return o
}

// SpanStartOptions configures CreateSpanWithOptions. Only OperationName is
// required.
type SpanStartOptions struct {
	OperationName string
	ServiceName   string
	ResourceName  string
	SpanType      string
	StringTags    map[string]string
	NumberTags    map[string]float64
}

// Session is the handle of a test session, the root of the entity tree.
// The zero value means the session was not created.
type Session struct {
	sessionID uint64
}

// SessionID returns the native id of the session.
func (s Session) SessionID() uint64 { return s.sessionID }

// Module is the handle of a test module created under a session.
type Module struct {
	moduleID  uint64
	sessionID uint64
}

// ModuleID returns the native id of the module.
func (m Module) ModuleID() uint64 { return m.moduleID }

// SessionID returns the native id of the session the module belongs to.
func (m Module) SessionID() uint64 { return m.sessionID }

// Suite is the handle of a test suite created under a module.
type Suite struct {
	suiteID   uint64
	moduleID  uint64
	sessionID uint64
}

// SuiteID returns the native id of the suite.
func (s Suite) SuiteID() uint64 { return s.suiteID }

// ModuleID returns the native id of the module the suite belongs to.
func (s Suite) ModuleID() uint64 { return s.moduleID }

// SessionID returns the native id of the session the suite belongs to.
func (s Suite) SessionID() uint64 { return s.sessionID }

// Test is the handle of a single test created under a suite.
type Test struct {
	testID    uint64
	suiteID   uint64
	moduleID  uint64
	sessionID uint64
}

// TestID returns the native id of the test.
func (t Test) TestID() uint64 { return t.testID }

// SuiteID returns the native id of the suite the test belongs to.
func (t Test) SuiteID() uint64 { return t.suiteID }

// ModuleID returns the native id of the module the test belongs to.
func (t Test) ModuleID() uint64 { return t.moduleID }

// SessionID returns the native id of the session the test belongs to.
func (t Test) SessionID() uint64 { return t.sessionID }

// Span is the handle of a custom span attached to any entity of the tree.
type Span struct {
	spanID   uint64
	parentID uint64
}

// SpanID returns the native id of the span.
func (s Span) SpanID() uint64 { return s.spanID }

// ParentID returns the id of the entity the span was attached to.
func (s Span) ParentID() uint64 { return s.parentID }

// EarlyFlakeDetectionSlowRetries holds the retry counts applied to tests
// slower than the named durations.
type EarlyFlakeDetectionSlowRetries struct {
	FiveS   int
	TenS    int
	ThirtyS int
	FiveM   int
}

// EarlyFlakeDetectionSettings holds the early flake detection policy.
type EarlyFlakeDetectionSettings struct {
	Enabled                bool
	SlowTestRetries        EarlyFlakeDetectionSlowRetries
	FaultySessionThreshold int
}

// TestManagementSettings holds the test management policy.
type TestManagementSettings struct {
	Enabled             bool
	AttemptToFixRetries int
}

// Settings are the feature toggles and policies the native library computed
// for the current repository.
type Settings struct {
	CodeCoverage            bool
	EarlyFlakeDetection     EarlyFlakeDetectionSettings
	FlakyTestRetriesEnabled bool
	ItrEnabled              bool
	RequireGit              bool
	TestsSkipping           bool
	KnownTestsEnabled       bool
	TestManagement          TestManagementSettings
}

// FlakyTestRetriesSettings holds the retry budget for flaky tests.
type FlakyTestRetriesSettings struct {
	RetryCount      int
	TotalRetryCount int
}

// SkippableTest describes a test the backend marked as eligible to skip.
// CustomConfigurationsJSON is kept as the opaque JSON document the backend
// sent.
type SkippableTest struct {
	SuiteName                string
	TestName                 string
	Parameters               string
	CustomConfigurationsJSON string
}

// TestManagementTest describes the remediation policy of a single test.
type TestManagementTest struct {
	ModuleName   string
	SuiteName    string
	TestName     string
	Quarantined  bool
	Disabled     bool
	AttemptToFix bool
}

// MockSpan is a span recorded by the mock tracer, fully copied into Go
// owned memory.
type MockSpan struct {
	SpanID        uint64
	TraceID       uint64
	ParentSpanID  uint64
	StartTime     time.Time
	FinishTime    time.Time
	OperationName string
	StringTags    map[string]string
	NumberTags    map[string]float64
}

// knownTest is one decoded record of the known tests catalog.
type knownTest struct {
	moduleName string
	suiteName  string
	testName   string
}

// buildKnownTestsMap groups known test records by module and suite,
// appending test names in catalog order.
func buildKnownTestsMap(entries []knownTest) map[string]map[string][]string {
	knownTests := make(map[string]map[string][]string)
	for _, entry := range entries {
		suites, ok := knownTests[entry.moduleName]
		if !ok {
			suites = make(map[string][]string)
			knownTests[entry.moduleName] = suites
		}
		suites[entry.suiteName] = append(suites[entry.suiteName], entry.testName)
	}
	return knownTests
}

// buildSkippableTestsMap groups skippable test records by suite and test
// name, appending records in catalog order so parameterized variants of the
// same test stay together.
func buildSkippableTestsMap(entries []SkippableTest) map[string]map[string][]SkippableTest {
	skippableTests := make(map[string]map[string][]SkippableTest)
	for _, entry := range entries {
		tests, ok := skippableTests[entry.SuiteName]
		if !ok {
			tests = make(map[string][]SkippableTest)
			skippableTests[entry.SuiteName] = tests
		}
		tests[entry.TestName] = append(tests[entry.TestName], entry)
	}
	return skippableTests
}

// buildTestManagementTestsMap groups test management records by module,
// suite and test name. The first record seen for a test wins; repeats are
// ignored.
func buildTestManagementTestsMap(entries []TestManagementTest) map[string]map[string]map[string]TestManagementTest {
	managedTests := make(map[string]map[string]map[string]TestManagementTest)
	for _, entry := range entries {
		suites, ok := managedTests[entry.ModuleName]
		if !ok {
			suites = make(map[string]map[string]TestManagementTest)
			managedTests[entry.ModuleName] = suites
		}
		tests, ok := suites[entry.SuiteName]
		if !ok {
			tests = make(map[string]TestManagementTest)
			suites[entry.SuiteName] = tests
		}
		if _, ok := tests[entry.TestName]; !ok {
			tests[entry.TestName] = entry
		}
	}
	return managedTests
}
