// Package domain defines the core types for autoconda.
package domain

import (
	"gopkg.in/yaml.v3"
)

const (
	// EnvFileName is the preferred environment descriptor file name.
	EnvFileName = "environment.yml"

	// EnvFileNameAlt is the alternative descriptor file name. It is only
	// consulted when EnvFileName is absent at the same directory level.
	EnvFileNameAlt = "environment.yaml"
)

// Environment is the parsed content of an environment descriptor file.
// It is created once per invocation and never written back.
type Environment struct {
	// ConfigPath is the absolute path of the descriptor file.
	ConfigPath string

	// Name is the conda environment name, empty when the descriptor has
	// no usable "name" key.
	Name string

	// Channels and Dependencies are informational extras surfaced by the
	// info command. They carry no invariants.
	Channels     []string
	Dependencies []Dependency
}

// Dependency is a single entry of the descriptor's dependencies list.
// Conda allows both plain spec strings ("python=3.9") and nested
// mappings such as {pip: [requests]}.
type Dependency struct {
	// Spec holds the entry when it is a plain string.
	Spec string

	// Group holds the key of a nested mapping entry (e.g. "pip"), with
	// the nested specs in GroupSpecs.
	Group      string
	GroupSpecs []string
}

// UnmarshalYAML accepts either a scalar spec or a single-key mapping of
// a group name to a list of specs.
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&d.Spec)
	}

	var group map[string][]string
	if err := node.Decode(&group); err != nil {
		return err
	}
	for name, specs := range group {
		d.Group = name
		d.GroupSpecs = specs
	}
	return nil
}

// String renders the dependency the way it appeared in the descriptor.
func (d Dependency) String() string {
	if d.Spec != "" {
		return d.Spec
	}
	return d.Group
}
