package envfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/condatools/autoconda/internal/adapters/envfile"
	"github.com/condatools/autoconda/internal/adapters/fs"
	"github.com/condatools/autoconda/internal/core/domain"
	"github.com/condatools/autoconda/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLocator(t *testing.T, fsys *fstest.MapFS) *envfile.Locator {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return envfile.NewLocator(fs.NewMapFSAdapter("/work", fsys), mockLogger)
}

func TestLocate_NearestWins(t *testing.T) {
	fsys := &fstest.MapFS{
		"environment.yml":       {Data: []byte("name: outer\n")},
		"sub/environment.yml":   {Data: []byte("name: inner\n")},
		"sub/deep/keepdir/.git": {Data: []byte{}},
	}
	l := newLocator(t, fsys)

	path, err := l.Locate("/work/sub")
	require.NoError(t, err)
	assert.Equal(t, "/work/sub/environment.yml", path)
}

func TestLocate_YmlBeatsYamlAtSameLevel(t *testing.T) {
	fsys := &fstest.MapFS{
		"sub/environment.yml":  {Data: []byte("name: preferred\n")},
		"sub/environment.yaml": {Data: []byte("name: ignored\n")},
	}
	l := newLocator(t, fsys)

	path, err := l.Locate("/work/sub")
	require.NoError(t, err)
	assert.Equal(t, "/work/sub/environment.yml", path)
}

func TestLocate_YamlFallback(t *testing.T) {
	fsys := &fstest.MapFS{
		"sub/environment.yaml": {Data: []byte("name: fallback\n")},
	}
	l := newLocator(t, fsys)

	path, err := l.Locate("/work/sub")
	require.NoError(t, err)
	assert.Equal(t, "/work/sub/environment.yaml", path)
}

func TestLocate_WalksUpToAncestor(t *testing.T) {
	fsys := &fstest.MapFS{
		"environment.yml": {Data: []byte("name: test-env\n")},
		"a/b/placeholder": {Data: []byte{}},
	}
	l := newLocator(t, fsys)

	path, err := l.Locate("/work/a/b")
	require.NoError(t, err)
	assert.Equal(t, "/work/environment.yml", path)
}

func TestLocate_NotFoundUpToRoot(t *testing.T) {
	// The simulated root lets the walk run past /work up to / without
	// ever touching the real filesystem.
	fsys := &fstest.MapFS{
		"a/b/placeholder": {Data: []byte{}},
	}
	l := newLocator(t, fsys)

	_, err := l.Locate("/work/a/b")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestResolve_TwoLevelsBelowRoot(t *testing.T) {
	fsys := &fstest.MapFS{
		"environment.yml": {Data: []byte("name: test-env\n")},
		"a/b/placeholder": {Data: []byte{}},
	}
	l := newLocator(t, fsys)

	env, err := l.Resolve("/work/a/b")
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.Equal(t, "test-env", env.Name)
	assert.Equal(t, "/work/environment.yml", env.ConfigPath)
}

func TestResolve_NotFoundIsNil(t *testing.T) {
	fsys := &fstest.MapFS{
		"placeholder": {Data: []byte{}},
	}
	l := newLocator(t, fsys)

	env, err := l.Resolve("/work")
	require.NoError(t, err)
	assert.Nil(t, env)
}

func TestResolve_MalformedYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	fsys := &fstest.MapFS{
		"environment.yml": {Data: []byte("name: [unbalanced\n")},
	}
	l := envfile.NewLocator(fs.NewMapFSAdapter("/work", fsys), mockLogger)

	env, err := l.Resolve("/work")
	require.NoError(t, err)
	assert.Nil(t, env)
}

func TestResolve_NonMappingDocument(t *testing.T) {
	fsys := &fstest.MapFS{
		"environment.yml": {Data: []byte("- just\n- a\n- list\n")},
	}
	l := newLocator(t, fsys)

	env, err := l.Resolve("/work")
	require.NoError(t, err)
	assert.Nil(t, env)
}

func TestResolve_DependenciesWithoutName(t *testing.T) {
	fsys := &fstest.MapFS{
		"environment.yml": {Data: []byte("dependencies: [python=3.9, numpy]\n")},
	}
	l := newLocator(t, fsys)

	env, err := l.Resolve("/work")
	require.NoError(t, err)
	assert.Nil(t, env)
}

func TestResolve_MissingNameIsDiagnosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.Contains(msg, domain.ErrNameMissing.Error())
	})).Times(1)

	fsys := &fstest.MapFS{
		"environment.yml": {Data: []byte("dependencies: [python=3.9]\n")},
	}
	l := envfile.NewLocator(fs.NewMapFSAdapter("/work", fsys), mockLogger)

	env, err := l.Resolve("/work")
	require.NoError(t, err)
	assert.Nil(t, env)
}

func TestResolve_RoundTripOnRealFilesystem(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "environment.yml"), []byte("name: X\n"), 0o600)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	l := envfile.NewLocator(fs.NewOSFS(), mockLogger)
	env, err := l.Resolve(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.Equal(t, "X", env.Name)
}

func TestParse_FullDescriptor(t *testing.T) {
	content := `name: science
channels:
  - conda-forge
  - defaults
dependencies:
  - python=3.9
  - numpy
  - pip:
      - requests
`
	fsys := &fstest.MapFS{
		"environment.yml": {Data: []byte(content)},
	}
	l := newLocator(t, fsys)

	env, err := l.Parse("/work/environment.yml")
	require.NoError(t, err)
	assert.Equal(t, "science", env.Name)
	assert.Equal(t, []string{"conda-forge", "defaults"}, env.Channels)
	require.Len(t, env.Dependencies, 3)
	assert.Equal(t, "python=3.9", env.Dependencies[0].Spec)
	assert.Equal(t, "numpy", env.Dependencies[1].Spec)
	assert.Equal(t, "pip", env.Dependencies[2].Group)
	assert.Equal(t, []string{"requests"}, env.Dependencies[2].GroupSpecs)
}

func TestParse_ReadFailurePropagates(t *testing.T) {
	fsys := &fstest.MapFS{}
	l := newLocator(t, fsys)

	_, err := l.Parse("/work/environment.yml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrConfigUnparseable))
}
