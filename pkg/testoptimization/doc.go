// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

// Package testoptimization is the Go binding for the native test
// optimization library. It exposes the test session, module, suite, test
// and span hierarchy, plus the settings and catalogs the library computes
// for the current repository.
//
// The binding itself holds no test intelligence: every operation marshals
// its arguments to the C function table of the library and reports the
// library's answer. Entity handles are plain value types carrying numeric
// ids and can be copied and used from any goroutine.
//
// All functions that reach the native library are compiled only with the
// "testoptimization" build tag, since linking requires an installed native
// library. Without the tag the package contains just the declared types.
package testoptimization
