// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"testing"
	"time"

	"github.com/z5labs/strata/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typedSchema(t *testing.T) *schema.Schema {
	t.Helper()

	s, err := schema.New(func(b *schema.Builder) {
		b.Setting("name", schema.Default("app"))
		b.Setting("port", schema.Default("8080"))
		b.Setting("debug", schema.Default(true))
		b.Setting("ratio", schema.Default(0.5))
		b.Setting("timeout", schema.Default("5s"))
		b.Setting("hosts", schema.Default([]string{"a", "b"}))
	})
	require.NoError(t, err)
	return s
}

func TestConfig_TypedGetters(t *testing.T) {
	t.Run("will coerce values to the requested type", func(t *testing.T) {
		cfg := New(typedSchema(t))

		name, err := cfg.String("name")
		require.NoError(t, err)
		assert.Equal(t, "app", name)

		port, err := cfg.Int("port")
		require.NoError(t, err)
		assert.Equal(t, 8080, port)

		debug, err := cfg.Bool("debug")
		require.NoError(t, err)
		assert.True(t, debug)

		ratio, err := cfg.Float64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.5, ratio)

		timeout, err := cfg.Duration("timeout")
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, timeout)

		hosts, err := cfg.Strings("hosts")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, hosts)
	})

	t.Run("will propagate UndefinedSettingError", func(t *testing.T) {
		cfg := New(typedSchema(t))

		_, err := cfg.String("bogus")
		var uerr UndefinedSettingError
		assert.ErrorAs(t, err, &uerr)
	})

	t.Run("will fail on values which cannot be coerced", func(t *testing.T) {
		cfg := New(typedSchema(t))
		require.NoError(t, cfg.Set("port", "not a number"))

		_, err := cfg.Int("port")
		assert.Error(t, err)
	})
}
