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

// CreateSpan starts a custom span under any entity id: a session, module,
// suite, test or another span. Only the operation name is required.
func CreateSpan(parentID uint64, operationName, serviceName, resourceName, spanType string) (Span, error) {
	return CreateSpanWithOptions(parentID, SpanStartOptions{
		OperationName: operationName,
		ServiceName:   serviceName,
		ResourceName:  resourceName,
		SpanType:      spanType,
	})
}

// CreateSpanWithOptions starts a custom span with tags applied atomically
// at creation. The start time is stamped by the SDK.
func CreateSpanWithOptions(parentID uint64, options SpanStartOptions) (Span, error) {
	if !isInitialized() {
		return Span{}, ErrNotInitialized
	}
	if options.OperationName == "" {
		return Span{}, errors.New("a span needs a non empty operation name")
	}
	if err := checkStrings(
		"operation name", options.OperationName,
		"service name", options.ServiceName,
		"resource name", options.ResourceName,
		"span type", options.SpanType,
	); err != nil {
		return Span{}, err
	}

	stringTags, err := makeKeyValueArray("string tag", options.StringTags)
	if err != nil {
		return Span{}, err
	}
	defer freeKeyValueArray(stringTags)

	numberTags, err := makeKeyNumberArray("number tag", options.NumberTags)
	if err != nil {
		return Span{}, err
	}
	defer freeKeyNumberArray(numberTags)

	cOperationName := trackedCString(options.OperationName)
	defer trackedFree(unsafe.Pointer(cOperationName))
	cServiceName := trackedCStringOpt(options.ServiceName)
	defer trackedFree(unsafe.Pointer(cServiceName))
	cResourceName := trackedCStringOpt(options.ResourceName)
	defer trackedFree(unsafe.Pointer(cResourceName))
	cSpanType := trackedCStringOpt(options.SpanType)
	defer trackedFree(unsafe.Pointer(cSpanType))

	now := nowUnixTime()
	spanOptions := C.topt_SpanStartOptions{
		operation_name: cOperationName,
		service_name:   cServiceName,
		resource_name:  cResourceName,
		span_type:      cSpanType,
		start_time:     &now,
	}
	if stringTags.len > 0 {
		spanOptions.string_tags = &stringTags
	}
	if numberTags.len > 0 {
		spanOptions.number_tags = &numberTags
	}

	result := C.topt_span_create(C.topt_TslvId(parentID), spanOptions)
	if !goBool(result.valid) {
		return Span{}, fmt.Errorf("the native library could not create span %q", options.OperationName)
	}

	span := Span{
		spanID:   uint64(result.span_id),
		parentID: parentID,
	}
	log.Debugf("created span %d (%q) under parent %d", span.spanID, options.OperationName, parentID)
	return span, nil
}

// SetStringTag attaches a string tag to the span.
func (s Span) SetStringTag(key, value string) bool {
	if !entityGuard("SetStringTag", "span", s.spanID, "tag key", key, "tag value", value) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	cValue := trackedCString(value)
	defer trackedFree(unsafe.Pointer(cValue))
	ok := goBool(C.topt_span_set_string_tag(C.topt_TslvId(s.spanID), cKey, cValue))
	return debugRejected("SetStringTag", "span", s.spanID, ok)
}

// SetNumberTag attaches a numeric tag to the span.
func (s Span) SetNumberTag(key string, value float64) bool {
	if !entityGuard("SetNumberTag", "span", s.spanID, "tag key", key) {
		return false
	}
	cKey := trackedCString(key)
	defer trackedFree(unsafe.Pointer(cKey))
	ok := goBool(C.topt_span_set_number_tag(C.topt_TslvId(s.spanID), cKey, C.double(value)))
	return debugRejected("SetNumberTag", "span", s.spanID, ok)
}

// SetError marks the span as errored.
func (s Span) SetError(errorType, errorMessage, errorStacktrace string) bool {
	if !entityGuard("SetError", "span", s.spanID,
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
	ok := goBool(C.topt_span_set_error(C.topt_TslvId(s.spanID), cType, cMessage, cStacktrace))
	return debugRejected("SetError", "span", s.spanID, ok)
}

// Close finishes the span, stamping the current time.
func (s Span) Close() bool {
	if !entityGuard("Close", "span", s.spanID) {
		return false
	}
	now := nowUnixTime()
	ok := goBool(C.topt_span_close(C.topt_TslvId(s.spanID), &now))
	return debugRejected("Close", "span", s.spanID, ok)
}
