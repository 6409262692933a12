// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type section struct {
	Name  string `gluamapper:"name"`
	Count int    `gluamapper:"count"`
}

type testConfiguration struct {
	Capacity int               `gluamapper:"capacity"`
	Values   []int64           `gluamapper:"values"`
	Script   string            `gluamapper:"script"`
	Section  section           `gluamapper:"section"`
	Levels   map[string]string `gluamapper:"levels"`
}

const testScript = `
local M = {}
M.capacity = 5 * 20
M.values = { 30, 10, 20 }
M.script = arg[0] .. ".lua"
M.section = {
    name = "from-" .. prefix,
    count = 3,
}
M.levels = {
    main = "info",
    DEFAULT = "error",
}
return M
`

func writeFile(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err)
	fileName := filepath.Join(dir, "test.conf")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0600))
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, testScript)
	defer os.RemoveAll(filepath.Dir(fileName))

	config := testConfiguration{
		Capacity: 7,
		Script:   "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{"prefix": "test"})
	require.NoError(t, err)

	assert.Equal(t, 100, config.Capacity)
	assert.Equal(t, []int64{30, 10, 20}, config.Values)
	assert.Equal(t, fileName+".lua", config.Script)
	assert.Equal(t, section{Name: "from-test", Count: 3}, config.Section)
	assert.Equal(t, "info", config.Levels["main"])
	assert.Equal(t, "error", config.Levels["DEFAULT"])
}

func TestDefaultsKept(t *testing.T) {
	fileName := writeFile(t, "return { capacity = 2 }\n")
	defer os.RemoveAll(filepath.Dir(fileName))

	config := testConfiguration{
		Script: "default",
	}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &config, nil))
	assert.Equal(t, 2, config.Capacity)
	assert.Equal(t, "default", config.Script)
}

func TestInvalidTargets(t *testing.T) {
	config := testConfiguration{}
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile("x", config, nil))

	n := 3
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile("x", &n, nil))
}

func TestScriptErrors(t *testing.T) {
	fileName := writeFile(t, "return 42\n")
	defer os.RemoveAll(filepath.Dir(fileName))

	config := testConfiguration{}
	assert.Equal(t, fault.ErrInvalidConfiguration, configuration.ParseConfigurationFile(fileName, &config, nil))

	bad := writeFile(t, "this is not lua\n")
	defer os.RemoveAll(filepath.Dir(bad))
	assert.Error(t, configuration.ParseConfigurationFile(bad, &config, nil))

	assert.Error(t, configuration.ParseConfigurationFile(filepath.Join(os.TempDir(), "does-not-exist.conf"), &config, nil))
}
