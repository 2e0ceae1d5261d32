// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build testoptimization

package testoptimization

/*
#include <stdlib.h>
#include "test_optimization.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/DataDog/test-optimization-native/pkg/util/log"
)

// CreateTest adds a test to the suite. The name is required.
func (s Suite) CreateTest(name string) (Test, error) {
	if !isInitialized() {
		return Test{}, ErrNotInitialized
	}
	if err := checkNoEmbeddedNul("test name", name); err != nil {
		return Test{}, err
	}

	cName := trackedCString(name)
	defer trackedFree(unsafe.Pointer(cName))

	now := nowUnixTime()
	result := C.topt_test_create(C.topt_SuiteId(s.suiteID), cName, &now)
	if !goBool(result.valid) {
		return Test{}, fmt.Errorf("the native library could not create test %q", name)
	}

	test := Test{
		testID:    uint64(result.test_id),
		suiteID:   s.suiteID,
		moduleID:  s.moduleID,
		sessionID: s.sessionID,
	}
	log.Debugf("created test %d (%q) in suite %d", test.testID, name, s.suiteID)
	return test, nil
}

// SetStringTag attaches a string tag to the suite.
func (s Suite) SetStringTag(key, value string) bool {
	if !entityGuard("SetStringTag", "suite", s.suiteID, "tag key", key, "tag value", value) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	cValue := trackedCString(value)
	defer trackedFree(unsafe.Pointer(cValue))
	ok := goBool(C.topt_suite_set_string_tag(C.topt_SuiteId(s.suiteID), cKey, cValue))
	return debugRejected("SetStringTag", "suite", s.suiteID, ok)
}

// SetNumberTag attaches a numeric tag to the suite.
func (s Suite) SetNumberTag(key string, value float64) bool {
	if !entityGuard("SetNumberTag", "suite", s.suiteID, "tag key", key) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	ok := goBool(C.topt_suite_set_number_tag(C.topt_SuiteId(s.suiteID), cKey, C.double(value)))
	return debugRejected("SetNumberTag", "suite", s.suiteID, ok)
}

// SetError marks the suite as errored.
func (s Suite) SetError(errorType, errorMessage, errorStacktrace string) bool {
	if !entityGuard("SetError", "suite", s.suiteID,
		"error type", errorType,
		"error message", errorMessage,
		"error stacktrace", errorStacktrace,
	) {
		return false
	}
	cType := trackedCString(errorType)
	defer trackedFree(unsafe.Pointer(cType))
	cMessage := trackedCString(errorMessage)
	defer trackedFree(unsafe.Pointer(cMessage))
	cStacktrace := trackedCString(errorStacktrace)
	defer trackedFree(unsafe.Pointer(cStacktrace))
	ok := goBool(C.topt_suite_set_error(C.topt_SuiteId(s.suiteID), cType, cMessage, cStacktrace))
	return debugRejected("SetError", "suite", s.suiteID, ok)
}

// SetSource records the source file the suite was defined in. Line bounds
// are optional; nil pointers cross as NULL.
func (s Suite) SetSource(file string, startLine, endLine *int) bool {
	if !entityGuard("SetSource", "suite", s.suiteID, "source file", file) {
		return false
	}
	cFile := trackedCString(file)
	defer trackedFree(unsafe.Pointer(cFile))
	ok := goBool(C.topt_suite_set_source(C.topt_SuiteId(s.suiteID), cFile, cIntPtr(startLine), cIntPtr(endLine)))
	return debugRejected("SetSource", "suite", s.suiteID, ok)
}

// Close finishes the suite, stamping the current time.
func (s Suite) Close() bool {
	if !entityGuard("Close", "suite", s.suiteID) {
		return false
	}
	now := nowUnixTime()
	ok := goBool(C.topt_suite_close(C.topt_SuiteId(s.suiteID), &now))
	return debugRejected("Close", "suite", s.suiteID, ok)
}
