package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINVISION_TEST_VALUE=from-file\n"), 0600))
	t.Setenv("FINVISION_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("FINVISION_TEST_VALUE"))

	loaded, err := LoadEnv(envFile)
	require.NoError(t, err)
	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "from-file", os.Getenv("FINVISION_TEST_VALUE"))
}

func TestLoadEnv_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINVISION_TEST_VALUE=from-file\n"), 0600))
	t.Setenv("FINVISION_TEST_VALUE", "from-env")

	_, err := LoadEnv(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", os.Getenv("FINVISION_TEST_VALUE"))
}

func TestLoadEnv_DiscoversFile(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	loaded, err := LoadEnv("")
	require.NoError(t, err)
	assert.Equal(t, "", loaded, "no .env present")

	require.NoError(t, os.WriteFile(".env", []byte("FINVISION_DISCOVERED=yes\n"), 0600))
	t.Setenv("FINVISION_DISCOVERED", "")
	require.NoError(t, os.Unsetenv("FINVISION_DISCOVERED"))

	loaded, err = LoadEnv("")
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "yes", os.Getenv("FINVISION_DISCOVERED"))
}

func TestLoadEnv_MissingExplicitFile(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FINVISION_GETENV", "value")
	assert.Equal(t, "value", GetEnv("FINVISION_GETENV", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FINVISION_GETENV_UNSET_KEY", "fallback"))
}

// testChdir changes the working directory to dir for the duration of the
// test and restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory %s: %v", wd, err)
		}
	})
}
