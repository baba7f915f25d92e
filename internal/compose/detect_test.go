package compose

import (
	"os/exec"
	"testing"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "plugin form",
			cmd:  Command{Bin: "docker", Prefix: []string{"compose"}},
			want: "docker compose",
		},
		{
			name: "legacy form",
			cmd:  Command{Bin: "docker-compose"},
			want: "docker-compose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectRuntime_FindsDocker(t *testing.T) {
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not available")
	}

	runtime, err := DetectRuntime()
	if err != nil {
		t.Skipf("docker present but not working: %v", err)
	}

	if runtime != "docker" {
		t.Errorf("expected docker, got %s", runtime)
	}
}

func TestDetectRuntime_ErrorWhenMissing(t *testing.T) {
	if _, err := exec.LookPath("docker"); err == nil {
		t.Skip("docker is available, missing-runtime path not tested")
	}

	if _, err := DetectRuntime(); err != ErrNoRuntime {
		t.Errorf("expected ErrNoRuntime, got %v", err)
	}
}

func TestDetectCompose_PrefersPlugin(t *testing.T) {
	runtime, err := DetectRuntime()
	if err != nil {
		t.Skip("no container runtime available")
	}
	if err := exec.Command(runtime, "compose", "version").Run(); err != nil {
		t.Skip("compose plugin not available")
	}

	cmd, err := DetectCompose(runtime)
	if err != nil {
		t.Fatalf("DetectCompose() failed: %v", err)
	}

	if cmd.String() != "docker compose" {
		t.Errorf("expected plugin form, got %q", cmd.String())
	}
}
