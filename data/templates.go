package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"ebiten-pathsim/components"
	"ebiten-pathsim/ecs"
)

//go:embed templates/*.json
var defaultTemplates embed.FS

// Vec is a JSON-friendly 2D vector
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EntityTemplate describes how to spawn one kind of entity
type EntityTemplate struct {
	// Basic info
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Description text

	// Visual appearance
	Size     Vec     `json:"size"`     // Box size in pixels
	Color    string  `json:"color"`    // Tint in hex format (e.g. "#0000FF")
	Texture  string  `json:"texture"`  // Optional image path
	Rotation float64 `json:"rotation"` // Initial rotation in degrees

	// Motion
	Velocity Vec     `json:"velocity"` // Fixed initial velocity, pixels per second
	Speed    float64 `json:"speed"`    // Used with a random heading when velocity is zero

	// Components lists the component names to attach. Transform is implied.
	Components  []string `json:"components"`
	SpawnWeight int      `json:"spawnWeight"` // Relative chance of spawning (higher = more common)

	signature ecs.Signature
	color     components.Color
}

// Signature returns the set of components the template attaches
func (t *EntityTemplate) Signature() ecs.Signature {
	return t.signature
}

// Tint returns the parsed Color
func (t *EntityTemplate) Tint() components.Color {
	return t.color
}

// Has reports whether the template attaches the component
func (t *EntityTemplate) Has(c ecs.ComponentType) bool {
	return t.signature.Has(c)
}

// validate checks required fields and resolves names and colors
func (t *EntityTemplate) validate() error {
	if t.ID == "" {
		return fmt.Errorf("template ID cannot be empty")
	}
	if t.Size.X <= 0 || t.Size.Y <= 0 {
		return fmt.Errorf("template '%s' has non-positive size %vx%v", t.ID, t.Size.X, t.Size.Y)
	}
	if t.SpawnWeight < 0 {
		return fmt.Errorf("template '%s' has negative spawn weight", t.ID)
	}

	sig := ecs.NewSignature(components.TransformID)
	for _, name := range t.Components {
		id, ok := components.GetComponentIDByName(name)
		if !ok {
			return fmt.Errorf("template '%s' names unknown component %q", t.ID, name)
		}
		sig = sig.With(id)
	}
	t.signature = sig

	t.color = components.White
	if t.Color != "" {
		c, err := components.ParseHexColor(t.Color)
		if err != nil {
			return fmt.Errorf("template '%s': %w", t.ID, err)
		}
		t.color = c
	}
	return nil
}

// EntityTemplateManager manages all entity templates
type EntityTemplateManager struct {
	Templates map[string]*EntityTemplate
}

// NewEntityTemplateManager creates a new template manager
func NewEntityTemplateManager() *EntityTemplateManager {
	return &EntityTemplateManager{
		Templates: make(map[string]*EntityTemplate),
	}
}

// LoadDefaults loads the templates built into the binary
func (m *EntityTemplateManager) LoadDefaults() error {
	return m.LoadTemplatesFromFS(defaultTemplates, "templates")
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory
func (m *EntityTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	if _, err := os.Stat(dirPath); err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}
	return m.LoadTemplatesFromFS(os.DirFS(dirPath), ".")
}

// LoadTemplatesFromFS loads all JSON template files in dir of fsys
func (m *EntityTemplateManager) LoadTemplatesFromFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		if err := m.LoadTemplate(raw); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// LoadTemplate parses and validates a single JSON template. A template with
// an ID already loaded replaces the old one.
func (m *EntityTemplateManager) LoadTemplate(raw []byte) error {
	var template EntityTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return err
	}

	if err := template.validate(); err != nil {
		return err
	}

	m.Templates[template.ID] = &template
	return nil
}

// GetTemplate returns a template by ID
func (m *EntityTemplateManager) GetTemplate(id string) (*EntityTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// IDs returns every template ID in sorted order
func (m *EntityTemplateManager) IDs() []string {
	ids := make([]string, 0, len(m.Templates))
	for id := range m.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of loaded templates
func (m *EntityTemplateManager) Len() int {
	return len(m.Templates)
}
