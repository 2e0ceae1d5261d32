// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

// Package config stores the SDK configuration, fed from
// TEST_OPTIMIZATION_SDK_* environment variables.
package config

import (
	"strings"
	"sync"

	"github.com/DataDog/viper"
)

// Environment variables honored by the build tooling that installs the
// native library. They have no effect on the runtime contract of the SDK
// and are only exported here so build scripts share a single definition.
const (
	// EnvSkipNativeInstall disables the automatic download of the native
	// library at build time.
	EnvSkipNativeInstall = "TEST_OPTIMIZATION_SDK_SKIP_NATIVE_INSTALL"
	// EnvNativeSearchPath points the build at a directory already
	// containing the native library.
	EnvNativeSearchPath = "TEST_OPTIMIZATION_SDK_NATIVE_SEARCH_PATH"
	// EnvDownloadURLFormat overrides the URL template used to fetch the
	// native library, for air-gapped or development setups.
	EnvDownloadURLFormat = "TEST_OPTIMIZATION_DOWNLOAD_URL_FORMAT"
)

const envPrefix = "TEST_OPTIMIZATION_SDK"

// SDK is the global configuration object
var SDK Config

// Config is the interface the rest of the SDK uses to read configuration.
type Config interface {
	Set(key string, value interface{})
	SetDefault(key string, value interface{})
	BindEnv(input ...string)
	BindEnvAndSetDefault(key string, value interface{})
	IsSet(key string) bool
	Get(key string) interface{}
	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetFloat64(key string) float64
}

// safeConfig wraps viper with a lock for concurrent access
type safeConfig struct {
	*viper.Viper
	sync.RWMutex
	envPrefix string
}

// NewConfig returns a new Config with the given name and environment prefix
func NewConfig(name string, prefix string, envKeyReplacer *strings.Replacer) Config {
	config := safeConfig{
		Viper:     viper.New(),
		envPrefix: prefix,
	}
	config.SetConfigName(name)
	config.SetEnvPrefix(prefix)
	config.SetEnvKeyReplacer(envKeyReplacer)
	config.SetTypeByDefaultValue(true)
	return &config
}

func (c *safeConfig) Set(key string, value interface{}) {
	c.Lock()
	defer c.Unlock()
	c.Viper.Set(key, value)
}

func (c *safeConfig) SetDefault(key string, value interface{}) {
	c.Lock()
	defer c.Unlock()
	c.Viper.SetDefault(key, value)
}

func (c *safeConfig) BindEnv(input ...string) {
	c.Lock()
	defer c.Unlock()
	c.Viper.BindEnv(input...) //nolint:errcheck
}

// BindEnvAndSetDefault binds an environment variable and sets a default for
// the given key in a single step.
func (c *safeConfig) BindEnvAndSetDefault(key string, value interface{}) {
	c.SetDefault(key, value)
	c.BindEnv(key)
}

func (c *safeConfig) IsSet(key string) bool {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.IsSet(key)
}

func (c *safeConfig) Get(key string) interface{} {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.Get(key)
}

func (c *safeConfig) GetString(key string) string {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.GetString(key)
}

func (c *safeConfig) GetBool(key string) bool {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.GetBool(key)
}

func (c *safeConfig) GetInt(key string) int {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.GetInt(key)
}

func (c *safeConfig) GetFloat64(key string) float64 {
	c.RLock()
	defer c.RUnlock()
	return c.Viper.GetFloat64(key)
}

func init() {
	SDK = NewConfig("test-optimization-sdk", envPrefix, strings.NewReplacer(".", "_"))
	initConfig(SDK)
}

// initConfig declares the settings of the SDK and their defaults
func initConfig(config Config) {
	config.BindEnvAndSetDefault("log_level", "warn")
	config.BindEnvAndSetDefault("log_file", "")
	// mock_tracer redirects all telemetry to the in-memory mock tracer, so
	// CI jobs can flip it without a code change.
	config.BindEnvAndSetDefault("mock_tracer", false)
}
