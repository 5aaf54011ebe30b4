// pkg/paths/paths_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test path resolution

package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/theodox/attributeEvents/pkg/paths"
)

func TestConfigFile(t *testing.T) {
	p := paths.ConfigFile()
	assert.True(t, filepath.IsAbs(p))
	assert.True(t, strings.HasSuffix(p, filepath.Join("attrevents", "attrevents.toml")))
}

func TestLogFile(t *testing.T) {
	p := paths.LogFile()
	assert.True(t, filepath.IsAbs(p))
	assert.True(t, strings.HasSuffix(p, filepath.Join("attrevents", "attrevents.log")))
}

func TestDataDir(t *testing.T) {
	p := paths.DataDir()
	assert.True(t, filepath.IsAbs(p))
	assert.Equal(t, "attrevents", filepath.Base(p))
}
