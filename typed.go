// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"time"

	"github.com/spf13/cast"
)

// String returns the setting value coerced to a string.
func (c *Config) String(key string) (string, error) {
	v, err := c.Get(key)
	if err != nil {
		return "", err
	}
	return cast.ToStringE(v)
}

// Bool returns the setting value coerced to a bool.
func (c *Config) Bool(key string) (bool, error) {
	v, err := c.Get(key)
	if err != nil {
		return false, err
	}
	return cast.ToBoolE(v)
}

// Int returns the setting value coerced to an int.
func (c *Config) Int(key string) (int, error) {
	v, err := c.Get(key)
	if err != nil {
		return 0, err
	}
	return cast.ToIntE(v)
}

// Float64 returns the setting value coerced to a float64.
func (c *Config) Float64(key string) (float64, error) {
	v, err := c.Get(key)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// Duration returns the setting value coerced to a time.Duration.
func (c *Config) Duration(key string) (time.Duration, error) {
	v, err := c.Get(key)
	if err != nil {
		return 0, err
	}
	return cast.ToDurationE(v)
}

// Strings returns the setting value coerced to a []string.
func (c *Config) Strings(key string) ([]string, error) {
	v, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	return cast.ToStringSliceE(v)
}
