// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYaml_Apply(t *testing.T) {
	t.Run("will apply nested yaml to the tree", func(t *testing.T) {
		cfg := New(treeSchema(t))

		err := cfg.Load(FromYaml(strings.NewReader(`
one: Hello
two:
  three: World
`)))
		require.NoError(t, err)

		v, err := cfg.Get("one")
		require.NoError(t, err)
		assert.Equal(t, "Hello", v)

		v, err = cfg.Get("two.three")
		require.NoError(t, err)
		assert.Equal(t, "World", v)
	})

	t.Run("will fail with InvalidYamlError on malformed input", func(t *testing.T) {
		cfg := New(treeSchema(t))

		err := cfg.Load(FromYaml(strings.NewReader("one: [unclosed")))

		var yerr InvalidYamlError
		require.ErrorAs(t, err, &yerr)
		assert.NotEmpty(t, yerr.Error())
	})

	t.Run("will surface undeclared keys as UndefinedSettingError", func(t *testing.T) {
		cfg := New(treeSchema(t))

		err := cfg.Load(FromYaml(strings.NewReader("bogus: 1")))

		var uerr UndefinedSettingError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "bogus", uerr.Key)
	})

	t.Run("will let later sources override earlier ones", func(t *testing.T) {
		cfg := New(treeSchema(t))

		err := cfg.Load(
			FromYaml(strings.NewReader("one: first")),
			FromYaml(strings.NewReader("one: second")),
		)
		require.NoError(t, err)

		v, err := cfg.Get("one")
		require.NoError(t, err)
		assert.Equal(t, "second", v)
	})
}
