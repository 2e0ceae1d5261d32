// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package log

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/cihub/seelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, buffer *bytes.Buffer) seelog.LoggerInterface {
	t.Helper()
	l, err := seelog.LoggerFromWriterWithMinLevelAndFormat(bufio.NewWriter(buffer), seelog.TraceLvl, "[%LEVEL] %Msg\n")
	require.NoError(t, err)
	return l
}

func TestLogLevelGating(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	l, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, seelog.TraceLvl, "[%LEVEL] %Msg\n")
	require.NoError(t, err)
	SetupLogger(l, "warn")

	Debugf("gated line %d", 1)
	Infof("gated line %d", 2)
	Warnf("kept line %d", 3) //nolint:errcheck

	w.Flush()
	assert.NotContains(t, b.String(), "gated line")
	assert.Contains(t, b.String(), "[WARN] kept line 3")
}

func TestChangeLogLevel(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	l, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, seelog.TraceLvl, "[%LEVEL] %Msg\n")
	require.NoError(t, err)
	SetupLogger(l, "warn")

	require.NoError(t, ChangeLogLevel("debug"))
	assert.Equal(t, seelog.DebugLvl, GetLogLevel())

	Debugf("now visible")
	w.Flush()
	assert.Contains(t, b.String(), "[DEBUG] now visible")

	assert.Error(t, ChangeLogLevel("notalevel"))
}

func TestWarnfReturnsMessage(t *testing.T) {
	var b bytes.Buffer
	SetupLogger(newBufferLogger(t, &b), "warn")

	err := Warnf("native call failed with code %d", 7)
	require.Error(t, err)
	assert.Equal(t, "native call failed with code 7", err.Error())
}

func TestEarlyLogsReplayedOnSetup(t *testing.T) {
	// Force the pre-setup state so the buffering path is exercised no
	// matter which test ran first.
	logger = nil
	bufferMutex.Lock()
	bufferLogsBeforeInit = true
	logsBuffer = []func(){}
	bufferMutex.Unlock()

	Infof("early line %d", 1)

	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	l, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, seelog.TraceLvl, "[%LEVEL] %Msg\n")
	require.NoError(t, err)
	SetupLogger(l, "debug")

	w.Flush()
	assert.Contains(t, b.String(), "[INFO] early line 1")
}
