// pkg/scene/scenefile/scenefile_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Filesystem (t.TempDir)
// PURPOSE: Test scene persistence across save/load

package scenefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/notifier"
	"github.com/theodox/attributeEvents/pkg/scene"
	"github.com/theodox/attributeEvents/pkg/scene/scenefile"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m := scene.NewMemory()
	m.AddObject("pCube1")
	require.NoError(t, m.SetAttr("pCube1", "translate", "1 2 3"))

	record, err := notifier.New("translate", "notify").StorageRecord()
	require.NoError(t, err)
	require.NoError(t, m.Set("pCube1", "changeEvents", []string{record}))

	path := filepath.Join(t.TempDir(), "scenes", "test.yaml")
	require.NoError(t, scenefile.Save(path, m))

	loaded, err := scenefile.Load(path)
	require.NoError(t, err)

	assert.True(t, loaded.Exists("pCube1"))
	assert.Equal(t, "1 2 3", loaded.GetAttr("pCube1", "translate"))

	records, ok, err := loaded.Get("pCube1", "changeEvents")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, records, 1)

	d, err := notifier.FromStorageRecord(records[0])
	require.NoError(t, err)
	assert.True(t, notifier.New("translate", "notify").Equal(d))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenefile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSceneFileRead))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects: [not: a: mapping"), 0644))

	_, err := scenefile.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSceneFileRead))
}

func TestBuildDoesNotFireCallbacks(t *testing.T) {
	doc := &scenefile.Document{
		Objects: map[string]scenefile.ObjectDoc{
			"pSphere1": {Attributes: map[string]string{"visibility": "1"}},
		},
	}

	m := scenefile.Build(doc)
	assert.True(t, m.Exists("pSphere1"))
	assert.Equal(t, "1", m.GetAttr("pSphere1", "visibility"))
}
