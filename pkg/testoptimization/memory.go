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
	"expvar"
	"unsafe"
)

var (
	allocations = expvar.Int{}
	frees       = expvar.Int{}

	memoryStats = expvar.NewMap("TestOptimizationMemoryStats")
)

func init() {
	memoryStats.Set("Allocations", &allocations)
	memoryStats.Set("Frees", &frees)
}

// trackedCString copies a Go string to the C heap and counts the
// allocation. Release with trackedFree.
func trackedCString(str string) *C.char {
	allocations.Add(1)
	return C.CString(str)
}

// trackedCStringOpt maps the empty string to NULL. Only used for fields the
// library documents as optional.
func trackedCStringOpt(str string) *C.char {
	if str == "" {
		return nil
	}
	return trackedCString(str)
}

// trackedMalloc allocates size bytes on the C heap and counts the
// allocation.
func trackedMalloc(size C.size_t) unsafe.Pointer {
	allocations.Add(1)
	return C.malloc(size)
}

// trackedFree releases a tracked allocation. NULL pointers are ignored so
// optional fields can be released unconditionally.
func trackedFree(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	frees.Add(1)
	C.free(ptr)
}

// ResetMemoryStats zeroes the allocation counters. Used by tests to check
// that a sequence of calls released everything it allocated.
func ResetMemoryStats() {
	allocations.Set(0)
	frees.Set(0)
}

// Allocations returns the number of C heap allocations since the last
// reset.
func Allocations() int64 {
	return allocations.Value()
}

// Frees returns the number of C heap releases since the last reset.
func Frees() int64 {
	return frees.Value()
}
