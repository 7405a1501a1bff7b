package main

import (
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv()
	if code := run([]string{"version"}, env); code != ExitSuccess {
		t.Errorf("run(version) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "fontbundle") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv()
	if code := run([]string{"help"}, env); code != ExitSuccess {
		t.Errorf("run(help) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "Usage: fontbundle") {
		t.Errorf("help output = %q", stdout.String())
	}
}

func TestRunHelpBundle(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv()
	if code := run([]string{"help", "bundle"}, env); code != ExitSuccess {
		t.Errorf("run(help bundle) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "fontbundle bundle") {
		t.Errorf("help bundle output = %q", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := newTestEnv()
	if code := run([]string{"explode"}, env); code != ExitUsage {
		t.Errorf("run(explode) = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Unknown command: explode") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunBareInvocationIsBundle(t *testing.T) {
	t.Parallel()

	// No input stylesheet in the working directory: the default bundle
	// command must fail with the missing-input exit code and a diagnostic.
	env, _, stderr := newTestEnv()
	env.Config.Input.File = "definitely-missing-katex.min.css"

	if code := run(nil, env); code != ExitIO {
		t.Errorf("run() = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "input stylesheet not found") {
		t.Errorf("stderr = %q, want missing-input diagnostic", stderr.String())
	}
}

func TestRunFlagFirstArgumentIsBundle(t *testing.T) {
	t.Parallel()

	env, _, _ := newTestEnv()
	env.Config.Input.File = "definitely-missing-katex.min.css"

	if code := run([]string{"-q"}, env); code != ExitIO {
		t.Errorf("run(-q) = %d, want %d", code, ExitIO)
	}
}
