// cmd/attrevents/commands/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Filesystem (t.TempDir)
// PURPOSE: Test CLI commands end to end against a scene file

package commands_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theodox/attributeEvents/cmd/attrevents/commands"
	"github.com/theodox/attributeEvents/pkg/notifier"
	"github.com/theodox/attributeEvents/pkg/scene"
	"github.com/theodox/attributeEvents/pkg/scene/scenefile"
)

func writeScene(t *testing.T) string {
	t.Helper()
	m := scene.NewMemory()
	m.AddObject("pCube1")
	m.AddObject("pSphere1")

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, scenefile.Save(path, m))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAddThenList(t *testing.T) {
	path := writeScene(t)

	_, err := runCommand(t, "--scene", path, "add", "pCube1", "translate", "notify")
	require.NoError(t, err)

	out, err := runCommand(t, "--scene", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pCube1")
	assert.Contains(t, out, "translate")
	assert.Contains(t, out, "notify")
	assert.NotContains(t, out, "pSphere1", "objects without events are not listed")
}

func TestAddMissingObject(t *testing.T) {
	path := writeScene(t)

	_, err := runCommand(t, "--scene", path, "add", "ghost", "translate", "notify")
	require.Error(t, err)
}

func TestRemove(t *testing.T) {
	path := writeScene(t)

	_, err := runCommand(t, "--scene", path, "add", "pCube1", "translate", "notify")
	require.NoError(t, err)
	_, err = runCommand(t, "--scene", path, "remove", "pCube1", "translate", "notify")
	require.NoError(t, err)

	out, err := runCommand(t, "--scene", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no stored events")
}

func TestOff(t *testing.T) {
	path := writeScene(t)

	_, err := runCommand(t, "--scene", path, "add", "pCube1", "translate", "notify")
	require.NoError(t, err)
	_, err = runCommand(t, "--scene", path, "add", "pCube1", "rotate", "spin")
	require.NoError(t, err)

	_, err = runCommand(t, "--scene", path, "off", "pCube1")
	require.NoError(t, err)

	m, err := scenefile.Load(path)
	require.NoError(t, err)
	_, ok, err := m.Get("pCube1", "changeEvents")
	require.NoError(t, err)
	assert.False(t, ok, "off strips the stored list entirely")
}

func TestReactivate(t *testing.T) {
	path := writeScene(t)

	_, err := runCommand(t, "--scene", path, "add", "pCube1", "translate", "notify")
	require.NoError(t, err)

	out, err := runCommand(t, "--scene", path, "reactivate",
		"--set", "pCube1.translate=1 0 0")
	require.NoError(t, err)
	assert.Contains(t, out, "pCube1")
	assert.Contains(t, out, "1 event(s) active")
}

func TestReactivateReportsMalformedObjects(t *testing.T) {
	m := scene.NewMemory()
	m.AddObject("good")
	m.AddObject("broken")

	record, err := notifier.New("translate", "notify").StorageRecord()
	require.NoError(t, err)
	require.NoError(t, m.Set("good", "changeEvents", []string{record}))
	m.SetRawMeta("broken", "changeEvents", []string{"{{{ not json"})

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, scenefile.Save(path, m))

	out, err := runCommand(t, "--scene", path, "reactivate")
	require.Error(t, err, "a failing object is reported in the exit status")
	assert.Contains(t, out, "good")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "1 event(s) active")
}

func TestNoSceneFlag(t *testing.T) {
	_, err := runCommand(t, "list")
	require.Error(t, err)
}
