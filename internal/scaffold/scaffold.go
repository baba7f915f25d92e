// Package scaffold materializes the project directory on first use: the
// image definition, the compose manifest, the usage guide, and a copy of the
// CLI binary. Files that already exist are never rewritten, so manual edits
// survive re-runs.
package scaffold

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/kalibox/kalibox/internal/config"
)

// DockerfileName is the image definition filename in the project directory.
const DockerfileName = "Dockerfile"

// UsageName is the usage guide filename in the project directory.
const UsageName = "USAGE.md"

// packages is the fixed toolset installed into the image.
var packages = []string{
	"kali-linux-headless",
	"curl",
	"dnsutils",
	"git",
	"iproute2",
	"iputils-ping",
	"metasploit-framework",
	"net-tools",
	"nikto",
	"nmap",
	"procps",
	"sqlmap",
	"vim",
	"wordlists",
}

// executablePath is swapped out in tests so scaffolding does not copy the
// test binary around.
var executablePath = os.Executable

// Scaffold creates the project and data directories and writes any generated
// file that is not already present. composeCommand is the detected compose
// form, embedded verbatim into the usage guide.
func Scaffold(cfg *config.Config, composeCommand string) error {
	for _, dir := range []string{cfg.ProjectDir, cfg.DataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	dockerfile, err := renderTemplate("Dockerfile.tmpl", dockerfileData())
	if err != nil {
		return err
	}
	if err := writeIfAbsent(filepath.Join(cfg.ProjectDir, DockerfileName), dockerfile, 0644); err != nil {
		return err
	}

	manifest, err := renderManifest(cfg)
	if err != nil {
		return err
	}
	if err := writeIfAbsent(cfg.ManifestPath(), manifest, 0644); err != nil {
		return err
	}

	usage, err := renderTemplate("USAGE.md.tmpl", usageData(cfg, composeCommand))
	if err != nil {
		return err
	}
	if err := writeIfAbsent(filepath.Join(cfg.ProjectDir, UsageName), usage, 0644); err != nil {
		return err
	}

	return copySelf(cfg.ProjectDir)
}

// dockerfileData holds the template values for the image definition.
func dockerfileData() any {
	return struct {
		BaseImage  string
		Packages   []string
		MountPoint string
	}{
		BaseImage:  config.BaseImage,
		Packages:   packages,
		MountPoint: config.MountPoint,
	}
}

// usageData holds the template values for the usage guide.
func usageData(cfg *config.Config, composeCommand string) any {
	return struct {
		ProjectDir      string
		DataDir         string
		MountPoint      string
		ComposeCommand  string
		EnvironmentName string
		NetworkName     string
		Subnet          string
		StaticAddress   string
	}{
		ProjectDir:      cfg.ProjectDir,
		DataDir:         cfg.DataDir,
		MountPoint:      config.MountPoint,
		ComposeCommand:  composeCommand,
		EnvironmentName: config.EnvironmentName,
		NetworkName:     config.NetworkName,
		Subnet:          config.Subnet,
		StaticAddress:   config.StaticAddress,
	}
}

// renderTemplate executes an embedded template by name.
func renderTemplate(name string, data any) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// writeIfAbsent writes content only when no file exists at path. Existing
// files are left untouched, preserving manual edits.
func writeIfAbsent(path string, content []byte, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// copySelf copies the running executable into the project directory so the
// environment can be managed from there after installation.
func copySelf(projectDir string) error {
	self, err := executablePath()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}

	dst := filepath.Join(projectDir, filepath.Base(self))
	if _, err := os.Stat(dst); err == nil {
		return nil
	}

	src, err := os.Open(self)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", self, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to copy executable to %s: %w", dst, err)
	}
	return nil
}
