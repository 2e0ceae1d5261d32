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

// CreateSuite adds a suite to the module. The name is required.
func (m Module) CreateSuite(name string) (Suite, error) {
	if !isInitialized() {
		return Suite{}, ErrNotInitialized
	}
	if err := checkNoEmbeddedNul("suite name", name); err != nil {
		return Suite{}, err
	}

	cName := trackedCString(name)
	defer trackedFree(unsafe.Pointer(cName))

	now := nowUnixTime()
	result := C.topt_suite_create(C.topt_ModuleId(m.moduleID), cName, &now)
	if !goBool(result.valid) {
		return Suite{}, fmt.Errorf("the native library could not create suite %q", name)
	}

	suite := Suite{
		suiteID:   uint64(result.suite_id),
		moduleID:  m.moduleID,
		sessionID: m.sessionID,
	}
	log.Debugf("created suite %d (%q) in module %d", suite.suiteID, name, m.moduleID)
	return suite, nil
}

// SetStringTag attaches a string tag to the module.
func (m Module) SetStringTag(key, value string) bool {
	if !entityGuard("SetStringTag", "module", m.moduleID, "tag key", key, "tag value", value) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	cValue := trackedCString(value)
	defer trackedFree(unsafe.Pointer(cValue))
	ok := goBool(C.topt_module_set_string_tag(C.topt_ModuleId(m.moduleID), cKey, cValue))
	return debugRejected("SetStringTag", "module", m.moduleID, ok)
}

// SetNumberTag attaches a numeric tag to the module.
func (m Module) SetNumberTag(key string, value float64) bool {
	if !entityGuard("SetNumberTag", "module", m.moduleID, "tag key", key) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	ok := goBool(C.topt_module_set_number_tag(C.topt_ModuleId(m.moduleID), cKey, C.double(value)))
	return debugRejected("SetNumberTag", "module", m.moduleID, ok)
}

// SetError marks the module as errored.
func (m Module) SetError(errorType, errorMessage, errorStacktrace string) bool {
	if !entityGuard("SetError", "module", m.moduleID,
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
	ok := goBool(C.topt_module_set_error(C.topt_ModuleId(m.moduleID), cType, cMessage, cStacktrace))
	return debugRejected("SetError", "module", m.moduleID, ok)
}

// Close finishes the module, stamping the current time.
func (m Module) Close() bool {
	if !entityGuard("Close", "module", m.moduleID) {
		return false
	}
	now := nowUnixTime()
	ok := goBool(C.topt_module_close(C.topt_ModuleId(m.moduleID), &now))
	return debugRejected("Close", "module", m.moduleID, ok)
}
