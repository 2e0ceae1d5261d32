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
	"unsafe"

	"github.com/DataDog/test-optimization-native/pkg/util/log"
)

// SetStringTag attaches a string tag to the test.
func (t Test) SetStringTag(key, value string) bool {
	if !entityGuard("SetStringTag", "test", t.testID, "tag key", key, "tag value", value) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	cValue := trackedCString(value)
	defer trackedFree(unsafe.Pointer(cValue))
	ok := goBool(C.topt_test_set_string_tag(C.topt_TestId(t.testID), cKey, cValue))
	return debugRejected("SetStringTag", "test", t.testID, ok)
}

// SetNumberTag attaches a numeric tag to the test.
func (t Test) SetNumberTag(key string, value float64) bool {
	if !entityGuard("SetNumberTag", "test", t.testID, "tag key", key) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	ok := goBool(C.topt_test_set_number_tag(C.topt_TestId(t.testID), cKey, C.double(value)))
	return debugRejected("SetNumberTag", "test", t.testID, ok)
}

// SetError marks the test as errored.
func (t Test) SetError(errorType, errorMessage, errorStacktrace string) bool {
	if !entityGuard("SetError", "test", t.testID,
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
	ok := goBool(C.topt_test_set_error(C.topt_TestId(t.testID), cType, cMessage, cStacktrace))
	return debugRejected("SetError", "test", t.testID, ok)
}

// SetTestSource records the source location of the test definition. Line
// bounds are optional; nil pointers cross as NULL.
func (t Test) SetTestSource(file string, startLine, endLine *int) bool {
	if !entityGuard("SetTestSource", "test", t.testID, "source file", file) {
		return false
	}
	cFile := trackedCString(file)
	defer trackedFree(unsafe.Pointer(cFile))
	ok := goBool(C.topt_test_set_source(C.topt_TestId(t.testID), cFile, cIntPtr(startLine), cIntPtr(endLine)))
	return debugRejected("SetTestSource", "test", t.testID, ok)
}

// SetCoverageData sends one coverage payload naming the source files the
// test touched. The upload is fire and forget: the native library handles
// errors internally and nothing is reported back.
func (t Test) SetCoverageData(files []string) {
	if !isInitialized() {
		log.Warnf("SetCoverageData called on test %d while the library is not initialized", t.testID)
		return
	}
	if len(files) == 0 {
		return
	}
	for _, file := range files {
		if err := checkNoEmbeddedNul("coverage file", file); err != nil {
			log.Errorf("SetCoverageData on test %d: %v", t.testID, err)
			return
		}
	}

	data := trackedMalloc(C.size_t(len(files)) * coverageFileSize)
	for i, file := range files {
		record := (*C.topt_TestCoverageFile)(unsafe.Add(data, C.size_t(i)*coverageFileSize))
		record.filename = trackedCString(file)
		record.bitmap = nil
		record.bitmap_len = 0
	}
	defer func() {
		for i := range files {
			record := (*C.topt_TestCoverageFile)(unsafe.Add(data, C.size_t(i)*coverageFileSize))
			trackedFree(unsafe.Pointer(record.filename))
		}
		trackedFree(data)
	}()

	coverage := C.topt_TestCoverage{
		session_id: C.topt_SessionId(t.sessionID),
		suite_id:   C.topt_SuiteId(t.suiteID),
		test_id:    C.topt_TestId(t.testID),
		files:      (*C.topt_TestCoverageFile)(data),
		files_len:  C.size_t(len(files)),
	}
	C.topt_send_code_coverage_payload(&coverage, 1)
	log.Debugf("sent a coverage payload with %d files for test %d", len(files), t.testID)
}

// SetBenchmarkNumberData attaches one group of numeric benchmark measures
// to the test. Empty groups report success without crossing the boundary.
func (t Test) SetBenchmarkNumberData(measureType string, data map[string]float64) bool {
	if len(data) == 0 {
		return true
	}
	if !entityGuard("SetBenchmarkNumberData", "test", t.testID, "measure type", measureType) {
		return false
	}
	array, err := makeKeyNumberArray("measure", data)
	if err != nil {
		log.Errorf("SetBenchmarkNumberData on test %d: %v", t.testID, err)
		return false
	}
	defer freeKeyNumberArray(array)
	cMeasureType := trackedCString(measureType)
	defer trackedFree(unsafe.Pointer(cMeasureType))
	ok := goBool(C.topt_test_set_benchmark_number_data(C.topt_TestId(t.testID), cMeasureType, array))
	return debugRejected("SetBenchmarkNumberData", "test", t.testID, ok)
}

// SetBenchmarkStringData is the string counterpart of
// SetBenchmarkNumberData.
func (t Test) SetBenchmarkStringData(measureType string, data map[string]string) bool {
	if len(data) == 0 {
		return true
	}
	if !entityGuard("SetBenchmarkStringData", "test", t.testID, "measure type", measureType) {
		return false
	}
	array, err := makeKeyValueArray("measure", data)
	if err != nil {
		log.Errorf("SetBenchmarkStringData on test %d: %v", t.testID, err)
		return false
	}
	defer freeKeyValueArray(array)
	cMeasureType := trackedCString(measureType)
	defer trackedFree(unsafe.Pointer(cMeasureType))
	ok := goBool(C.topt_test_set_benchmark_string_data(C.topt_TestId(t.testID), cMeasureType, array))
	return debugRejected("SetBenchmarkStringData", "test", t.testID, ok)
}

// Log forwards one log line to the native library. Tags are optional comma
// separated key:value pairs; an empty string crosses as NULL.
func (t Test) Log(message, tags string) bool {
	if !entityGuard("Log", "test", t.testID, "log message", message, "log tags", tags) {
		return false
	}
	cMessage := trackedCString(message)
	defer trackedFree(unsafe.Pointer(cMessage))
	cTags := trackedCStringOpt(tags)
	defer trackedFree(unsafe.Pointer(cTags))
	ok := goBool(C.topt_test_log(C.topt_TestId(t.testID), cMessage, cTags))
	return debugRejected("Log", "test", t.testID, ok)
}

// Close finishes the test with the given status, stamping the current
// time.
func (t Test) Close(status TestStatus) bool {
	return t.close(status, "")
}

// CloseWithSkipReason finishes the test as skipped. An empty reason closes
// the test exactly like Close(StatusSkip).
func (t Test) CloseWithSkipReason(reason string) bool {
	return t.close(StatusSkip, reason)
}

func (t Test) close(status TestStatus, skipReason string) bool {
	if !entityGuard("Close", "test", t.testID, "skip reason", skipReason) {
		return false
	}
	cReason := trackedCStringOpt(skipReason)
	defer trackedFree(unsafe.Pointer(cReason))

	now := nowUnixTime()
	options := C.topt_TestCloseOptions{
		status:      C.topt_TestStatus(status),
		finish_time: &now,
		skip_reason: cReason,
	}
	ok := goBool(C.topt_test_close(C.topt_TestId(t.testID), options))
	return debugRejected("Close", "test", t.testID, ok)
}
