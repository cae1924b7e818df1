package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crikeyrc")
	contents := "realname = Potato Johnson\nnick = spudly\nusername = pjohnson\npassword = hunter2\nserver_addr = 127.0.0.1:6667\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Potato Johnson", data.Realname)
	require.Equal(t, "spudly", data.Nick)
	require.Equal(t, "pjohnson", data.Username)
	require.Equal(t, "hunter2", data.Password)
	require.Equal(t, "127.0.0.1:6667", data.ServerAddr)
}

func TestLoadIgnoresUnknownOption(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crikeyrc")
	contents := "nick = spudly\nnotareloption = whatever\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "spudly", data.Nick)
}

func TestFindPathCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := FindPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "crikeyrc"), path)

	data, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "spudly", data.Nick)
	require.Equal(t, "127.0.0.1:6667", data.ServerAddr)
}
