package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kalibox/kalibox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// stubExecutable points executablePath at a throwaway file for the duration
// of a test.
func stubExecutable(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	self := filepath.Join(dir, "kalibox")
	require.NoError(t, os.WriteFile(self, []byte("#!/bin/sh\n"), 0755))

	orig := executablePath
	executablePath = func() (string, error) { return self, nil }
	t.Cleanup(func() { executablePath = orig })

	return self
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	return &config.Config{
		ProjectDir: filepath.Join(base, "kali_sandbox"),
		DataDir:    filepath.Join(base, "sandbox"),
	}
}

func TestScaffold_CreatesEverything(t *testing.T) {
	stubExecutable(t)
	cfg := testConfig(t)

	require.NoError(t, Scaffold(cfg, "docker compose"))

	assert.DirExists(t, cfg.ProjectDir)
	assert.DirExists(t, cfg.DataDir)

	entries, err := os.ReadDir(cfg.ProjectDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"Dockerfile", "docker-compose.yml", "USAGE.md", "kalibox"}, names)
}

func TestScaffold_DockerfileContent(t *testing.T) {
	stubExecutable(t)
	cfg := testConfig(t)

	require.NoError(t, Scaffold(cfg, "docker compose"))

	data, err := os.ReadFile(filepath.Join(cfg.ProjectDir, DockerfileName))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "FROM kalilinux/kali-rolling")
	assert.Contains(t, content, "ENV DEBIAN_FRONTEND=noninteractive")
	assert.Contains(t, content, "kali-linux-headless")
	assert.Contains(t, content, "nmap")
	assert.Contains(t, content, `CMD ["/bin/bash"]`)
}

func TestScaffold_ManifestContent(t *testing.T) {
	stubExecutable(t)
	cfg := testConfig(t)

	require.NoError(t, Scaffold(cfg, "docker compose"))

	data, err := os.ReadFile(cfg.ManifestPath())
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))

	svc, ok := m.Services[config.ServiceName]
	require.True(t, ok, "service %q missing from manifest", config.ServiceName)
	assert.Equal(t, ".", svc.Build)
	assert.Equal(t, config.EnvironmentName, svc.ContainerName)
	assert.True(t, svc.TTY)
	assert.True(t, svc.StdinOpen)
	require.Len(t, svc.Volumes, 1)
	assert.Equal(t, cfg.DataDir+":"+config.MountPoint, svc.Volumes[0])
	assert.Equal(t, config.StaticAddress, svc.Networks[config.NetworkName].IPv4Address)

	net, ok := m.Networks[config.NetworkName]
	require.True(t, ok, "network %q missing from manifest", config.NetworkName)
	assert.Equal(t, "bridge", net.Driver)
	require.Len(t, net.IPAM.Config, 1)
	assert.Equal(t, config.Subnet, net.IPAM.Config[0].Subnet)
}

func TestScaffold_UsageGuideEmbedsPaths(t *testing.T) {
	stubExecutable(t)
	cfg := testConfig(t)

	require.NoError(t, Scaffold(cfg, "docker-compose"))

	data, err := os.ReadFile(filepath.Join(cfg.ProjectDir, UsageName))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, cfg.ProjectDir)
	assert.Contains(t, content, cfg.DataDir)
	assert.Contains(t, content, "docker-compose up --build -d")
	assert.Contains(t, content, config.EnvironmentName)
}

func TestScaffold_NeverRewritesExistingFiles(t *testing.T) {
	stubExecutable(t)
	cfg := testConfig(t)

	require.NoError(t, Scaffold(cfg, "docker compose"))

	// Simulate a manual edit.
	edited := []byte("# edited by hand\n")
	require.NoError(t, os.WriteFile(cfg.ManifestPath(), edited, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ProjectDir, DockerfileName), edited, 0644))

	require.NoError(t, Scaffold(cfg, "docker compose"))

	data, err := os.ReadFile(cfg.ManifestPath())
	require.NoError(t, err)
	assert.Equal(t, edited, data, "manifest was rewritten")

	data, err = os.ReadFile(filepath.Join(cfg.ProjectDir, DockerfileName))
	require.NoError(t, err)
	assert.Equal(t, edited, data, "Dockerfile was rewritten")
}

func TestScaffold_DataDirContentsUntouched(t *testing.T) {
	stubExecutable(t)
	cfg := testConfig(t)

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	keep := filepath.Join(cfg.DataDir, "loot.txt")
	require.NoError(t, os.WriteFile(keep, []byte("hashes"), 0644))

	require.NoError(t, Scaffold(cfg, "docker compose"))

	data, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.Equal(t, "hashes", string(data))
}

func TestScaffold_CopiesExecutable(t *testing.T) {
	self := stubExecutable(t)
	cfg := testConfig(t)

	require.NoError(t, Scaffold(cfg, "docker compose"))

	copied := filepath.Join(cfg.ProjectDir, filepath.Base(self))
	info, err := os.Stat(copied)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}
