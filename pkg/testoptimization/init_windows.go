// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build testoptimization && windows

package testoptimization

/*
extern void _rt0_amd64_windows_lib();
*/
import "C"

import "sync"

var platformOnce sync.Once

// Static libraries produced by the Go toolchain do not start their runtime
// when loaded on Windows, so the entry point must be called by hand exactly
// once before the first native call.
func initializePlatform() error {
	platformOnce.Do(func() {
		C._rt0_amd64_windows_lib()
	})
	return nil
}
