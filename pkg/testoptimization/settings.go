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

// GetSettings returns the feature toggles and policies the native library
// computed for the current repository. Calls before Initialize log a
// warning and return the zero value.
func GetSettings() Settings {
	if !isInitialized() {
		log.Warnf("GetSettings called while the library is not initialized")
		return Settings{}
	}

	response := C.topt_get_settings()
	return Settings{
		CodeCoverage: goBool(response.code_coverage),
		EarlyFlakeDetection: EarlyFlakeDetectionSettings{
			Enabled: goBool(response.early_flake_detection.enabled),
			SlowTestRetries: EarlyFlakeDetectionSlowRetries{
				FiveS:   int(response.early_flake_detection.slow_test_retries.five_s),
				TenS:    int(response.early_flake_detection.slow_test_retries.ten_s),
				ThirtyS: int(response.early_flake_detection.slow_test_retries.thirty_s),
				FiveM:   int(response.early_flake_detection.slow_test_retries.five_m),
			},
			FaultySessionThreshold: int(response.early_flake_detection.faulty_session_threshold),
		},
		FlakyTestRetriesEnabled: goBool(response.flaky_test_retries_enabled),
		ItrEnabled:              goBool(response.itr_enabled),
		RequireGit:              goBool(response.require_git),
		TestsSkipping:           goBool(response.tests_skipping),
		KnownTestsEnabled:       goBool(response.known_tests_enabled),
		TestManagement: TestManagementSettings{
			Enabled:             goBool(response.test_management.enabled),
			AttemptToFixRetries: int(response.test_management.attempt_to_fix_retries),
		},
	}
}

// GetFlakyTestRetriesSettings returns the retry budget for flaky tests.
func GetFlakyTestRetriesSettings() FlakyTestRetriesSettings {
	if !isInitialized() {
		log.Warnf("GetFlakyTestRetriesSettings called while the library is not initialized")
		return FlakyTestRetriesSettings{}
	}

	settings := C.topt_get_flaky_test_retries_settings()
	return FlakyTestRetriesSettings{
		RetryCount:      int(settings.retry_count),
		TotalRetryCount: int(settings.total_retry_count),
	}
}

// GetKnownTests returns the catalog of tests the backend already observed,
// as module name → suite name → test names in catalog order. An empty
// catalog decodes to an empty map.
func GetKnownTests() map[string]map[string][]string {
	if !isInitialized() {
		log.Warnf("GetKnownTests called while the library is not initialized")
		return map[string]map[string][]string{}
	}

	array := C.topt_get_known_tests()
	defer C.topt_free_known_tests(array)

	entries := make([]knownTest, 0, int(array.len))
	if array.data != nil {
		for i := C.size_t(0); i < array.len; i++ {
			record := (*C.topt_KnownTest)(unsafe.Add(unsafe.Pointer(array.data), i*knownTestSize))
			entries = append(entries, knownTest{
				moduleName: goStringSafe(record.module_name),
				suiteName:  goStringSafe(record.suite_name),
				testName:   goStringSafe(record.test_name),
			})
		}
	}
	log.Debugf("fetched %d known tests", len(entries))
	return buildKnownTestsMap(entries)
}

// GetSkippableTests returns the tests the backend marked as safe to skip,
// as suite name → test name → entries. One test can carry several entries
// with different parameters or configurations.
func GetSkippableTests() map[string]map[string][]SkippableTest {
	if !isInitialized() {
		log.Warnf("GetSkippableTests called while the library is not initialized")
		return map[string]map[string][]SkippableTest{}
	}

	array := C.topt_get_skippable_tests()
	defer C.topt_free_skippable_tests(array)

	entries := make([]SkippableTest, 0, int(array.len))
	if array.data != nil {
		for i := C.size_t(0); i < array.len; i++ {
			record := (*C.topt_SkippableTest)(unsafe.Add(unsafe.Pointer(array.data), i*skippableTestSize))
			entries = append(entries, SkippableTest{
				SuiteName:                goStringSafe(record.suite_name),
				TestName:                 goStringSafe(record.test_name),
				Parameters:               goStringSafe(record.parameters),
				CustomConfigurationsJSON: goStringSafe(record.custom_configurations_json),
			})
		}
	}
	log.Debugf("fetched %d skippable tests", len(entries))
	return buildSkippableTestsMap(entries)
}

// GetTestManagementTests returns the remediation policies keyed by module,
// suite and test name. When the backend repeats a test the first entry
// wins.
func GetTestManagementTests() map[string]map[string]map[string]TestManagementTest {
	if !isInitialized() {
		log.Warnf("GetTestManagementTests called while the library is not initialized")
		return map[string]map[string]map[string]TestManagementTest{}
	}

	array := C.topt_get_test_management_tests()
	defer C.topt_free_test_management_tests(array)

	entries := make([]TestManagementTest, 0, int(array.len))
	if array.data != nil {
		for i := C.size_t(0); i < array.len; i++ {
			record := (*C.topt_TestManagementTestProperties)(unsafe.Add(unsafe.Pointer(array.data), i*testManagementTestSize))
			entries = append(entries, TestManagementTest{
				ModuleName:   goStringSafe(record.module_name),
				SuiteName:    goStringSafe(record.suite_name),
				TestName:     goStringSafe(record.test_name),
				Quarantined:  goBool(record.quarantined),
				Disabled:     goBool(record.disabled),
				AttemptToFix: goBool(record.attempt_to_fix),
			})
		}
	}
	log.Debugf("fetched %d test management entries", len(entries))
	return buildTestManagementTestsMap(entries)
}
