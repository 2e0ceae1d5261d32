// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

// Package version defines the version of the SDK.
package version

// SDKVersion contains the version of the test optimization SDK.
// It is populated at build time using build flags.
var SDKVersion string

// Commit is populated with the short commit hash from which the SDK was built.
var Commit string

var sdkVersionDefault = "0.4.0"

func init() {
	if SDKVersion == "" {
		SDKVersion = sdkVersionDefault
	}
}
