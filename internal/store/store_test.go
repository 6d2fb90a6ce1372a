package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIssuersFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "issuers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadIssuersMissingFileUsesDefaults(t *testing.T) {
	s := NewReferenceStore(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	issuers, err := s.LoadIssuers()
	require.NoError(t, err)
	assert.Equal(t, DefaultIssuers, issuers)
}

func TestLoadIssuersFromFile(t *testing.T) {
	path := writeIssuersFile(t, "issuers:\n  - Max Life\n  - Bajaj Allianz\n")
	s := NewReferenceStore(path)

	issuers, err := s.LoadIssuers()
	require.NoError(t, err)
	assert.Equal(t, []string{"Max Life", "Bajaj Allianz"}, issuers)
}

func TestLoadIssuersEmptyFileUsesDefaults(t *testing.T) {
	path := writeIssuersFile(t, "issuers: []\n")
	s := NewReferenceStore(path)

	issuers, err := s.LoadIssuers()
	require.NoError(t, err)
	assert.Equal(t, DefaultIssuers, issuers)
}

func TestLoadIssuersInvalidYAML(t *testing.T) {
	path := writeIssuersFile(t, "issuers: [unclosed\n")
	s := NewReferenceStore(path)

	_, err := s.LoadIssuers()
	assert.Error(t, err)
}

func TestFindConfigFileRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0750))
	path := filepath.Join(dir, "config", "issuers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("issuers: []\n"), 0600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	s := NewReferenceStore("")
	found, err := s.FindConfigFile("issuers.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", "issuers.yaml"), found)
}

func TestDefaultIssuersOrder(t *testing.T) {
	// Order is priority and LIC must stay first.
	require.NotEmpty(t, DefaultIssuers)
	assert.Equal(t, "LIC", DefaultIssuers[0])
}
