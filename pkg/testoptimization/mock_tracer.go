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

// MockTracerReset drops every span the mock tracer recorded so far. Only
// meaningful after initializing with the mock tracer enabled.
func MockTracerReset() bool {
	if !isInitialized() {
		log.Warnf("MockTracerReset called while the library is not initialized")
		return false
	}
	return goBool(C.topt_debug_mock_tracer_reset())
}

// MockTracerFinishedSpans returns every span the mock tracer finished
// since the last reset, fully copied into Go owned memory.
func MockTracerFinishedSpans() []MockSpan {
	if !isInitialized() {
		log.Warnf("MockTracerFinishedSpans called while the library is not initialized")
		return nil
	}

	array := C.topt_debug_mock_tracer_get_finished_spans()
	defer C.topt_debug_mock_tracer_free_mock_span_array(array)
	return decodeMockSpans(array)
}

// MockTracerOpenSpans returns every span currently open in the mock
// tracer.
func MockTracerOpenSpans() []MockSpan {
	if !isInitialized() {
		log.Warnf("MockTracerOpenSpans called while the library is not initialized")
		return nil
	}

	array := C.topt_debug_mock_tracer_get_open_spans()
	defer C.topt_debug_mock_tracer_free_mock_span_array(array)
	return decodeMockSpans(array)
}

// decodeMockSpans copies a native mock span array into Go owned records.
// The native array stays untouched; the caller still frees it.
func decodeMockSpans(array C.topt_MockSpanArray) []MockSpan {
	spans := make([]MockSpan, 0, int(array.len))
	if array.data == nil {
		return spans
	}
	for i := C.size_t(0); i < array.len; i++ {
		record := (*C.topt_MockSpan)(unsafe.Add(unsafe.Pointer(array.data), i*mockSpanSize))
		spans = append(spans, MockSpan{
			SpanID:        uint64(record.span_id),
			TraceID:       uint64(record.trace_id),
			ParentSpanID:  uint64(record.parent_span_id),
			StartTime:     goTime(record.start_time),
			FinishTime:    goTime(record.finish_time),
			OperationName: goStringSafe(record.operation_name),
			StringTags:    decodeKeyValueArray(record.string_tags),
			NumberTags:    decodeKeyNumberArray(record.number_tags),
		})
	}
	return spans
}
