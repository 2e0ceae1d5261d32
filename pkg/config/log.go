// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package config

import (
	"fmt"
	"strings"

	seelog "github.com/cihub/seelog"

	"github.com/DataDog/test-optimization-native/pkg/util/log"
)

const logFileMaxSize = 10 * 1024 * 1024         // 10MB
const logDateFormat = "2006-01-02 15:04:05 MST" // see time.Format for format syntax

// SetupLogger builds the seelog logger described by the "log_level" and
// "log_file" settings and installs it as the SDK logger.
func SetupLogger() error {
	return setupLogger(SDK.GetString("log_level"), SDK.GetString("log_file"))
}

func setupLogger(logLevel, logFile string) error {
	configTemplate := `<seelog minlevel="%s">
    <outputs formatid="common">
        <console />`
	if logFile != "" {
		configTemplate += fmt.Sprintf(`<rollingfile type="size" filename="%s" maxsize="%d" maxrolls="1" />`, logFile, logFileMaxSize)
	}
	configTemplate += `</outputs>
    <formats>
        <format id="common" format="%%Date(%s) | %%LEVEL | (%%RelFile:%%Line) | %%Msg%%n"/>
    </formats>
</seelog>`
	config := fmt.Sprintf(configTemplate, strings.ToLower(logLevel), logDateFormat)

	logger, err := seelog.LoggerFromConfigAsString(config)
	if err != nil {
		return err
	}
	log.SetupLogger(logger, logLevel)
	return nil
}
