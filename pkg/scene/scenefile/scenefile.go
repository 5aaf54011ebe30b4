// Package scenefile persists a Memory scene to a YAML document, standing
// in for the host's own scene-file persistence. Object metadata, and with
// it any stored notifier descriptors, survives the round trip.
package scenefile

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/scene"
	"github.com/theodox/attributeEvents/pkg/types"
)

// Document is the on-disk shape of a scene.
type Document struct {
	Objects map[string]ObjectDoc `yaml:"objects"`
}

// ObjectDoc holds one object's attributes and metadata.
type ObjectDoc struct {
	Attributes map[string]string   `yaml:"attributes,omitempty"`
	Metadata   map[string][]string `yaml:"metadata,omitempty"`
}

// Export captures the current state of a Memory scene as a Document.
// Live subscriptions are session state and are deliberately not captured.
func Export(m *scene.Memory) *Document {
	doc := &Document{Objects: make(map[string]ObjectDoc)}
	for _, ref := range m.Objects() {
		doc.Objects[string(ref)] = ObjectDoc{
			Attributes: m.Attributes(ref),
			Metadata:   m.Metadata(ref),
		}
	}
	return doc
}

// Build constructs a fresh Memory scene from a Document.
func Build(doc *Document) *scene.Memory {
	m := scene.NewMemory()
	for name, obj := range doc.Objects {
		ref := types.ObjectRef(name)
		m.AddObject(ref)
		for attr, value := range obj.Attributes {
			// no subscriptions exist yet, so this cannot fire anything
			_ = m.SetAttr(ref, attr, value)
		}
		for key, records := range obj.Metadata {
			_ = m.Set(ref, key, records)
		}
	}
	return m
}

// Load reads a scene file and builds a Memory scene from it.
func Load(path string) (*scene.Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSceneFileRead, "cannot read scene file %s", path)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSceneFileRead, "scene file %s is not valid YAML", path)
	}
	return Build(&doc), nil
}

// Save writes a Memory scene to path, creating parent directories as
// needed.
func Save(path string, m *scene.Memory) error {
	raw, err := yaml.Marshal(Export(m))
	if err != nil {
		return errors.Wrap(err, errors.ErrSceneFileWrite, "cannot serialize scene")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrSceneFileWrite, "cannot create directory for %s", path)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrSceneFileWrite, "cannot write scene file %s", path)
	}
	return nil
}
