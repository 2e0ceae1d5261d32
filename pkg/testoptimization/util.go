// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build testoptimization

package testoptimization

/*
#include <stdlib.h>
#include "test_optimization.h"
#cgo LDFLAGS: -ltestoptimization
#cgo !windows LDFLAGS: -lresolv
#cgo darwin LDFLAGS: -framework CoreFoundation -framework IOKit -framework Security
*/
import "C"

import (
	"time"
	"unsafe"

	"github.com/DataDog/test-optimization-native/pkg/util/log"
)

// Struct sizes used to walk the flat arrays exchanged with the library.
const (
	keyValuePairSize       = C.size_t(unsafe.Sizeof(C.topt_KeyValuePair{}))
	keyNumberPairSize      = C.size_t(unsafe.Sizeof(C.topt_KeyNumberPair{}))
	knownTestSize          = C.size_t(unsafe.Sizeof(C.topt_KnownTest{}))
	skippableTestSize      = C.size_t(unsafe.Sizeof(C.topt_SkippableTest{}))
	coverageFileSize       = C.size_t(unsafe.Sizeof(C.topt_TestCoverageFile{}))
	testManagementTestSize = C.size_t(unsafe.Sizeof(C.topt_TestManagementTestProperties{}))
	mockSpanSize           = C.size_t(unsafe.Sizeof(C.topt_MockSpan{}))
)

// nowUnixTime samples the wall clock in the two field representation of the
// library. The nsec field holds the sub second remainder.
func nowUnixTime() C.topt_UnixTime {
	return toUnixTime(time.Now())
}

// toUnixTime converts a Go time.Time to a native timestamp.
func toUnixTime(t time.Time) C.topt_UnixTime {
	return C.topt_UnixTime{
		sec:  C.Uint64(t.Unix()),
		nsec: C.Uint64(t.Nanosecond()),
	}
}

// goTime converts a native timestamp back to Go's time.Time.
func goTime(t C.topt_UnixTime) time.Time {
	return time.Unix(int64(t.sec), int64(t.nsec))
}

// cBool converts a Go bool to the one byte boolean of the library.
func cBool(value bool) C.Bool {
	if value {
		return C.Bool(1)
	}
	return C.Bool(0)
}

// goBool converts a native boolean to a Go bool. Any nonzero value is true.
func goBool(value C.Bool) bool {
	return value != 0
}

// goStringSafe decodes a possibly NULL C string to a Go string.
func goStringSafe(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// cIntPtr turns an optional Go int into a nullable C int pointer. The
// library copies the value during the call and never retains the pointer.
func cIntPtr(v *int) *C.int {
	if v == nil {
		return nil
	}
	value := C.int(*v)
	return &value
}

// makeKeyValueArray flattens a string map into one contiguous block of
// key/value pairs sized exactly to the element count. Empty maps encode as
// a null array without touching the C heap. The caller owns the result and
// must release it with freeKeyValueArray. Validation runs for the whole map
// before the first allocation, so a failed call leaves nothing to free.
func makeKeyValueArray(field string, m map[string]string) (C.topt_KeyValueArray, error) {
	array := C.topt_KeyValueArray{}
	if len(m) == 0 {
		return array, nil
	}

	for key, value := range m {
		if err := checkNoEmbeddedNul(field+" key", key); err != nil {
			return array, err
		}
		if err := checkNoEmbeddedNul(field+" value", value); err != nil {
			return array, err
		}
	}

	data := trackedMalloc(C.size_t(len(m)) * keyValuePairSize)
	i := C.size_t(0)
	for key, value := range m {
		pair := (*C.topt_KeyValuePair)(unsafe.Add(data, i*keyValuePairSize))
		pair.key = trackedCString(key)
		pair.value = trackedCString(value)
		i++
	}

	array.data = (*C.topt_KeyValuePair)(data)
	array.len = C.size_t(len(m))
	return array, nil
}

// freeKeyValueArray releases a key/value array built by makeKeyValueArray.
func freeKeyValueArray(array C.topt_KeyValueArray) {
	if array.data == nil {
		return
	}
	for i := C.size_t(0); i < array.len; i++ {
		pair := (*C.topt_KeyValuePair)(unsafe.Add(unsafe.Pointer(array.data), i*keyValuePairSize))
		trackedFree(unsafe.Pointer(pair.key))
		trackedFree(unsafe.Pointer(pair.value))
	}
	trackedFree(unsafe.Pointer(array.data))
}

// makeKeyNumberArray is the numeric counterpart of makeKeyValueArray.
func makeKeyNumberArray(field string, m map[string]float64) (C.topt_KeyNumberArray, error) {
	array := C.topt_KeyNumberArray{}
	if len(m) == 0 {
		return array, nil
	}

	for key := range m {
		if err := checkNoEmbeddedNul(field+" key", key); err != nil {
			return array, err
		}
	}

	data := trackedMalloc(C.size_t(len(m)) * keyNumberPairSize)
	i := C.size_t(0)
	for key, value := range m {
		pair := (*C.topt_KeyNumberPair)(unsafe.Add(data, i*keyNumberPairSize))
		pair.key = trackedCString(key)
		pair.value = C.double(value)
		i++
	}

	array.data = (*C.topt_KeyNumberPair)(data)
	array.len = C.size_t(len(m))
	return array, nil
}

// freeKeyNumberArray releases a key/number array built by makeKeyNumberArray.
func freeKeyNumberArray(array C.topt_KeyNumberArray) {
	if array.data == nil {
		return
	}
	for i := C.size_t(0); i < array.len; i++ {
		pair := (*C.topt_KeyNumberPair)(unsafe.Add(unsafe.Pointer(array.data), i*keyNumberPairSize))
		trackedFree(unsafe.Pointer(pair.key))
	}
	trackedFree(unsafe.Pointer(array.data))
}

// entityGuard gates entity mutators: the library must be initialized and
// every outbound string must be encodable. Arguments after the entity id
// alternate field names and values, as in checkStrings.
func entityGuard(operation, entity string, id uint64, pairs ...string) bool {
	if !isInitialized() {
		log.Warnf("%s called on %s %d while the library is not initialized", operation, entity, id)
		return false
	}
	if err := checkStrings(pairs...); err != nil {
		log.Errorf("%s on %s %d: %v", operation, entity, id, err)
		return false
	}
	return true
}

// debugRejected traces a mutator the native library refused and passes the
// result through.
func debugRejected(operation, entity string, id uint64, ok bool) bool {
	if !ok {
		log.Debugf("the native library rejected %s on %s %d", operation, entity, id)
	}
	return ok
}

// decodeKeyValueArray copies a native key/value array into a Go map. A null
// pointer or a zero length both decode to an empty map.
func decodeKeyValueArray(array C.topt_KeyValueArray) map[string]string {
	m := make(map[string]string, int(array.len))
	if array.data == nil {
		return m
	}
	for i := C.size_t(0); i < array.len; i++ {
		pair := (*C.topt_KeyValuePair)(unsafe.Add(unsafe.Pointer(array.data), i*keyValuePairSize))
		if pair.key == nil {
			continue
		}
		m[C.GoString(pair.key)] = goStringSafe(pair.value)
	}
	return m
}

// decodeKeyNumberArray copies a native key/number array into a Go map.
func decodeKeyNumberArray(array C.topt_KeyNumberArray) map[string]float64 {
	m := make(map[string]float64, int(array.len))
	if array.data == nil {
		return m
	}
	for i := C.size_t(0); i < array.len; i++ {
		pair := (*C.topt_KeyNumberPair)(unsafe.Add(unsafe.Pointer(array.data), i*keyNumberPairSize))
		if pair.key == nil {
			continue
		}
		m[C.GoString(pair.key)] = float64(pair.value)
	}
	return m
}
