package shellsetup

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectShellInternal(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		envComspec    string
		parent        func() string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "falls back to parent shell",
			goos:          "linux",
			parent:        func() string { return "/usr/bin/bash" },
			expectedShell: "bash",
		},
		{
			name:          "windows prefers COMSPEC",
			goos:          "windows",
			envComspec:    `C:\Windows\System32\cmd.exe`,
			expectedShell: "cmd",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				switch key {
				case "SHELL":
					return tt.envShell
				case "COMSPEC":
					return tt.envComspec
				default:
					return ""
				}
			}
			got := detectShellInternal(tt.goos, env, tt.parent)
			if got != tt.expectedShell {
				t.Fatalf("detectShellInternal() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestPrintWritesWrapperForShell(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{shell: "bash", want: []string{"seldir() {", `--result-file="$seldir_result"`, `cd "$seldir_dest"`}},
		{shell: "/usr/bin/zsh", want: []string{"seldir() {", "mktemp"}},
		{shell: "fish", want: []string{"function seldir", "builtin cd"}},
		{shell: "powershell.exe", want: []string{"function seldir {", "Set-Location"}},
		{shell: "tcsh", want: []string{"alias seldir", "/opt/bin/seldir"}},
		{shell: "cmd", want: []string{"%%d", "%*"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			err := Print(&buf, tt.shell, Config{Executable: "/opt/bin/seldir"})
			if err != nil {
				t.Fatalf("Print() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Fatalf("Print(%q) output missing %q:\n%s", tt.shell, want, buf.String())
				}
			}
		})
	}
}

func TestPrintRejectsUnknownShell(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, "nushell", Config{Executable: "seldir"}); err == nil {
		t.Fatal("expected error for unsupported shell")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPrintDetectsShellWhenNoOverride(t *testing.T) {
	t.Setenv("SHELL", "")
	var buf bytes.Buffer
	cfg := Config{
		Executable:   "seldir",
		DetectParent: func() string { return "fish" },
	}
	if err := Print(&buf, "", cfg); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if !strings.Contains(buf.String(), "function seldir") {
		t.Fatalf("expected fish wrapper, got:\n%s", buf.String())
	}
}

func TestNormalizeShellName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "-zsh", want: "zsh"},
		{in: `"C:\Program Files\PowerShell\7\pwsh.exe" -NoLogo`, want: "pwsh"},
		{in: "/bin/bash --login", want: "bash"},
	}
	for _, tt := range tests {
		if got := normalizeShellName(tt.in); got != tt.want {
			t.Errorf("normalizeShellName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
