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
	"errors"
	"fmt"
	"unsafe"

	"github.com/DataDog/test-optimization-native/pkg/util/log"
)

// CreateSession starts a test session, the root entity of a run. Both
// parameters are optional; empty strings let the native library pick its
// own defaults. The creation time is stamped by the SDK.
func CreateSession(framework, frameworkVersion string) (Session, error) {
	if !isInitialized() {
		return Session{}, ErrNotInitialized
	}
	if err := checkStrings("framework", framework, "framework version", frameworkVersion); err != nil {
		return Session{}, err
	}

	cFramework := trackedCStringOpt(framework)
	defer trackedFree(unsafe.Pointer(cFramework))
	cFrameworkVersion := trackedCStringOpt(frameworkVersion)
	defer trackedFree(unsafe.Pointer(cFrameworkVersion))

	now := nowUnixTime()
	result := C.topt_session_create(cFramework, cFrameworkVersion, &now)
	if !goBool(result.valid) {
		return Session{}, errors.New("the native library could not create the session")
	}

	session := Session{sessionID: uint64(result.session_id)}
	log.Debugf("created session %d", session.sessionID)
	return session, nil
}

// CreateModule adds a module to the session. The name is required; the
// framework fields are optional.
func (s Session) CreateModule(name, frameworkName, frameworkVersion string) (Module, error) {
	if !isInitialized() {
		return Module{}, ErrNotInitialized
	}
	if err := checkStrings(
		"module name", name,
		"framework name", frameworkName,
		"framework version", frameworkVersion,
	); err != nil {
		return Module{}, err
	}

	cName := trackedCString(name)
	defer trackedFree(unsafe.Pointer(cName))
	cFrameworkName := trackedCStringOpt(frameworkName)
	defer trackedFree(unsafe.Pointer(cFrameworkName))
	cFrameworkVersion := trackedCStringOpt(frameworkVersion)
	defer trackedFree(unsafe.Pointer(cFrameworkVersion))

	now := nowUnixTime()
	result := C.topt_module_create(C.topt_SessionId(s.sessionID), cName, cFrameworkName, cFrameworkVersion, &now)
	if !goBool(result.valid) {
		return Module{}, fmt.Errorf("the native library could not create module %q", name)
	}

	module := Module{
		moduleID:  uint64(result.module_id),
		sessionID: s.sessionID,
	}
	log.Debugf("created module %d (%q) in session %d", module.moduleID, name, s.sessionID)
	return module, nil
}

// SetStringTag attaches a string tag to the session. The boolean reports
// whether the native library accepted it.
func (s Session) SetStringTag(key, value string) bool {
	if !entityGuard("SetStringTag", "session", s.sessionID, "tag key", key, "tag value", value) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	cValue := trackedCString(value)
	defer trackedFree(unsafe.Pointer(cValue))
	ok := goBool(C.topt_session_set_string_tag(C.topt_SessionId(s.sessionID), cKey, cValue))
	return debugRejected("SetStringTag", "session", s.sessionID, ok)
}

// SetNumberTag attaches a numeric tag to the session.
func (s Session) SetNumberTag(key string, value float64) bool {
	if !entityGuard("SetNumberTag", "session", s.sessionID, "tag key", key) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	ok := goBool(C.topt_session_set_number_tag(C.topt_SessionId(s.sessionID), cKey, C.double(value)))
	return debugRejected("SetNumberTag", "session", s.sessionID, ok)
}

// SetError marks the session as errored. All three fields may be empty but
// still cross the boundary as empty strings.
func (s Session) SetError(errorType, errorMessage, errorStacktrace string) bool {
	if !entityGuard("SetError", "session", s.sessionID,
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
	ok := goBool(C.topt_session_set_error(C.topt_SessionId(s.sessionID), cType, cMessage, cStacktrace))
	return debugRejected("SetError", "session", s.sessionID, ok)
}

// Close finishes the session with the exit code of the test run. The
// finish time is stamped by the SDK; the library is left running so the
// caller can still read settings or start another session before Shutdown.
func (s Session) Close(exitCode int) bool {
	return s.close(exitCode, false)
}

// ClosePanicking finishes the session of a process that is unwinding: the
// exit code is forced to 1 and the library is shut down before returning,
// so a dying process never records a masked success and never skips the
// final flush.
func (s Session) ClosePanicking() bool {
	return s.close(1, true)
}

func (s Session) close(exitCode int, panicking bool) bool {
	ok := false
	if !isInitialized() {
		log.Warnf("Close called on session %d while the library is not initialized", s.sessionID)
	} else {
		now := nowUnixTime()
		ok = goBool(C.topt_session_close(C.topt_SessionId(s.sessionID), C.int(exitCode), &now))
		debugRejected("Close", "session", s.sessionID, ok)
	}
	if panicking {
		Shutdown()
	}
	return ok
}
