package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable is the seldir binary the wrapper calls; empty means the
	// running executable.
	Executable string
}

const posixWrapper = `seldir() {
    seldir_result=$(mktemp "${TMPDIR:-/tmp}/seldir_result.XXXXXX") || return 1
    command %[1]s --result-file="$seldir_result" "$@"
    seldir_status=$?
    if [ -f "$seldir_result" ] && [ ! -L "$seldir_result" ]; then
        seldir_dest=$(cat "$seldir_result" 2>/dev/null)
        if [ -n "$seldir_dest" ] && [ -d "$seldir_dest" ]; then
            cd "$seldir_dest" || seldir_status=$?
        fi
    fi
    rm -f "$seldir_result" 2>/dev/null
    return $seldir_status
}
`

const fishWrapper = `function seldir
    set -l seldir_result (mktemp (set -q TMPDIR; and echo $TMPDIR; or echo /tmp)/seldir_result.XXXXXX)
    or return 1
    command %[1]s --result-file="$seldir_result" $argv
    set -l seldir_status $status
    if test -f "$seldir_result" -a ! -L "$seldir_result"
        set -l seldir_dest (cat "$seldir_result" 2>/dev/null)
        if test -n "$seldir_dest" -a -d "$seldir_dest"
            builtin cd "$seldir_dest"
        end
    end
    rm -f "$seldir_result" 2>/dev/null
    return $seldir_status
end
`

const pwshWrapper = `function seldir {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    $resultFile = [System.IO.Path]::GetTempFileName()
    try {
        & %[1]s "--result-file=$resultFile" @Args
        $dest = Get-Content $resultFile -Raw -ErrorAction SilentlyContinue
        if ($dest) {
            $dest = $dest.Trim()
            if (Test-Path $dest -PathType Container) {
                Set-Location $dest
            }
        }
    } finally {
        Remove-Item $resultFile -ErrorAction SilentlyContinue
    }
}
`

const cmdWrapper = `:: Save as seldir.cmd and run "call seldir.cmd" from cmd.exe sessions.
@echo off
for /f "delims=" %%%%d in ('%[1]s %%*') do (
    if not "%%%%d"=="" cd /d "%%%%d"
)
`

// Print writes the shell function that runs seldir and changes into the
// directory it selects. shellOverride picks the shell; empty means detect.
func Print(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "seldir"
		}
	}

	script, err := wrapperFor(shell, exe)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}

func wrapperFor(shell, exe string) (string, error) {
	quoted := strconv.Quote(exe)
	switch shell {
	case "bash", "zsh", "sh", "ksh", "dash":
		return fmt.Sprintf(posixWrapper, quoted), nil
	case "fish":
		return fmt.Sprintf(fishWrapper, quoted), nil
	case "pwsh":
		return fmt.Sprintf(pwshWrapper, quoted), nil
	case "tcsh", "csh":
		return fmt.Sprintf("alias seldir 'cd \"`%s \\!*`\"'\n", exe), nil
	case "cmd":
		return fmt.Sprintf(cmdWrapper, quoted), nil
	default:
		return "", fmt.Errorf("unsupported shell %q", shell)
	}
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		if shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell == "cmd" || shell == "pwsh" {
			return shell
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

// normalizeShellName reduces a shell path or command line to its lowercase
// executable name.
func normalizeShellName(value string) string {
	value = extractExecutable(strings.TrimSpace(value))
	if value == "" {
		return ""
	}

	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimPrefix(strings.TrimSpace(base), "-")
}

func extractExecutable(value string) string {
	if value == "" {
		return ""
	}

	for _, quote := range []string{`"`, `'`} {
		if rest, ok := strings.CutPrefix(value, quote); ok {
			if idx := strings.Index(rest, quote); idx >= 0 {
				return rest[:idx]
			}
			return rest
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
