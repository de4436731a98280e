package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarkerDefinition describes the product metafield used as the
// "most popular" marker. The defaults match what downstream themes read;
// deployments can override them with a YAML file.
type MarkerDefinition struct {
	Name        string `yaml:"name"`
	Namespace   string `yaml:"namespace"`
	Key         string `yaml:"key"`
	Description string `yaml:"description"`
}

// DefaultMarkerDefinition returns the compiled-in marker definition.
func DefaultMarkerDefinition() MarkerDefinition {
	return MarkerDefinition{
		Name:        "Most Popular Monthly",
		Namespace:   "custom",
		Key:         "most_popular_monthly",
		Description: "Follow The Herd: Most popular product of the month",
	}
}

// LoadMarkerDefinition loads a marker definition from a YAML file, falling
// back to the defaults for any omitted field. An empty path returns the
// defaults unchanged.
func LoadMarkerDefinition(path string) (MarkerDefinition, error) {
	def := DefaultMarkerDefinition()

	if strings.TrimSpace(path) == "" {
		return def, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return MarkerDefinition{}, fmt.Errorf("reading marker definition %s: %w", path, err)
	}

	var override MarkerDefinition
	if err := yaml.Unmarshal(data, &override); err != nil {
		return MarkerDefinition{}, fmt.Errorf("parsing marker definition %s: %w", path, err)
	}

	if override.Name != "" {
		def.Name = override.Name
	}
	if override.Namespace != "" {
		def.Namespace = override.Namespace
	}
	if override.Key != "" {
		def.Key = override.Key
	}
	if override.Description != "" {
		def.Description = override.Description
	}

	if strings.ContainsAny(def.Namespace, " \t") || strings.ContainsAny(def.Key, " \t") {
		return MarkerDefinition{}, fmt.Errorf("marker definition %s: namespace and key must not contain whitespace", path)
	}

	return def, nil
}
