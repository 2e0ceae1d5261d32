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
	"os"
	"sync"
	"unsafe"

	"go.uber.org/atomic"

	"github.com/DataDog/test-optimization-native/pkg/config"
	"github.com/DataDog/test-optimization-native/pkg/util/log"
	"github.com/DataDog/test-optimization-native/pkg/version"
)

var (
	// initLock serializes initialize and shutdown transitions. The atomic
	// flag answers the cheap "is the library usable" reads performed by
	// every other operation.
	initLock    sync.Mutex
	initialized = atomic.NewBool(false)

	logSetupOnce sync.Once
)

// isInitialized reports whether the native library is between a successful
// Initialize and the matching Shutdown.
func isInitialized() bool {
	return initialized.Load()
}

func setupLogging() {
	logSetupOnce.Do(func() {
		if err := config.SetupLogger(); err != nil {
			fmt.Fprintf(os.Stderr, "cannot set up the test optimization logger: %v\n", err)
		}
	})
}

// Initialize starts the native library with default options. The mock
// tracer can be requested through the TEST_OPTIMIZATION_SDK_MOCK_TRACER
// environment variable.
func Initialize() bool {
	return InitializeWithOptions(InitOptions{
		UseMockTracer: config.SDK.GetBool("mock_tracer"),
	})
}

// InitializeMock starts the native library with the in-memory mock tracer,
// keeping every span observable through the MockTracer functions instead
// of sending it anywhere.
func InitializeMock() bool {
	return InitializeWithOptions(InitOptions{UseMockTracer: true})
}

// InitializeWithOptions starts the native library. It is idempotent: extra
// calls while initialized log a warning and report success. After Shutdown
// a new call starts a fresh cycle.
func InitializeWithOptions(options InitOptions) bool {
	setupLogging()

	initLock.Lock()
	defer initLock.Unlock()

	if initialized.Load() {
		log.Warnf("the test optimization library is already initialized")
		return true
	}

	options = options.withDefaults()
	if err := checkStrings(
		"language", options.Language,
		"runtime name", options.RuntimeName,
		"runtime version", options.RuntimeVersion,
		"working directory", options.WorkingDirectory,
	); err != nil {
		log.Errorf("cannot initialize the test optimization library: %v", err)
		return false
	}

	environmentVariables, err := makeKeyValueArray("environment variable", options.EnvironmentVariables)
	if err != nil {
		log.Errorf("cannot initialize the test optimization library: %v", err)
		return false
	}
	defer freeKeyValueArray(environmentVariables)

	globalTags, err := makeKeyValueArray("global tag", options.GlobalTags)
	if err != nil {
		log.Errorf("cannot initialize the test optimization library: %v", err)
		return false
	}
	defer freeKeyValueArray(globalTags)

	if err := initializePlatform(); err != nil {
		log.Errorf("cannot bootstrap the native library runtime: %v", err)
		return false
	}

	cLanguage := trackedCString(options.Language)
	defer trackedFree(unsafe.Pointer(cLanguage))
	cRuntimeName := trackedCString(options.RuntimeName)
	defer trackedFree(unsafe.Pointer(cRuntimeName))
	cRuntimeVersion := trackedCString(options.RuntimeVersion)
	defer trackedFree(unsafe.Pointer(cRuntimeVersion))
	cWorkingDirectory := trackedCString(options.WorkingDirectory)
	defer trackedFree(unsafe.Pointer(cWorkingDirectory))

	initOptions := C.topt_InitOptions{
		language:          cLanguage,
		runtime_name:      cRuntimeName,
		runtime_version:   cRuntimeVersion,
		working_directory: cWorkingDirectory,
		use_mock_tracer:   cBool(options.UseMockTracer),
	}
	if environmentVariables.len > 0 {
		initOptions.environment_variables = &environmentVariables
	}
	if globalTags.len > 0 {
		initOptions.global_tags = &globalTags
	}

	if !goBool(C.topt_initialize(initOptions)) {
		log.Errorf("the native test optimization library refused to initialize")
		return false
	}

	initialized.Store(true)
	log.Infof("test optimization SDK %s initialized (language %s, runtime %s %s)",
		version.SDKVersion, options.Language, options.RuntimeName, options.RuntimeVersion)
	return true
}

// Shutdown flushes pending payloads and stops the native library. It is
// idempotent; calling it while not initialized reports success. After
// Shutdown the library can be initialized again.
func Shutdown() bool {
	initLock.Lock()
	defer initLock.Unlock()

	if !initialized.Load() {
		return true
	}

	ok := goBool(C.topt_shutdown())
	if ok {
		log.Infof("test optimization SDK shut down")
	} else {
		log.Errorf("the native test optimization library failed to shut down")
	}
	initialized.Store(false)
	log.Flush()
	return ok
}
