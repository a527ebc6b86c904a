package domain_test

import (
	"testing"

	"github.com/condatools/autoconda/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDependency_UnmarshalScalar(t *testing.T) {
	var deps []domain.Dependency
	err := yaml.Unmarshal([]byte("[python=3.9, numpy]"), &deps)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "python=3.9", deps[0].Spec)
	assert.Equal(t, "python=3.9", deps[0].String())
}

func TestDependency_UnmarshalGroup(t *testing.T) {
	var deps []domain.Dependency
	err := yaml.Unmarshal([]byte("- pip:\n    - requests\n    - flask\n"), &deps)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "pip", deps[0].Group)
	assert.Equal(t, []string{"requests", "flask"}, deps[0].GroupSpecs)
	assert.Equal(t, "pip", deps[0].String())
}
