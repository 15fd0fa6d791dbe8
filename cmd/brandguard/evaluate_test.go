package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func resetExitCode(t *testing.T) {
	t.Helper()
	exitCode = 0
	t.Cleanup(func() { exitCode = 0 })
}

func TestEvaluateFailureSetsExitCode(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	resetExitCode(t)

	evaluateFlags.text = "damn, this is hell to use, you idiots"
	evaluateFlags.file = ""
	evaluateFlags.brand = ""
	evaluateFlags.safetyOnly = true
	evaluateFlags.complianceOnly = false
	evaluateFlags.format = "text"
	evaluateFlags.safetyWeight = 0
	evaluateFlags.brandWeight = 0
	t.Cleanup(func() { evaluateFlags.safetyOnly = false })

	var out bytes.Buffer
	evaluateCmd.SetOut(&out)

	// The command must return normally so deferred cleanup runs; the
	// failing outcome is reported through the exit code instead.
	if err := runEvaluate(evaluateCmd, nil); err != nil {
		t.Fatalf("runEvaluate() error = %v", err)
	}
	if exitCode != 1 {
		t.Errorf("exitCode = %d, want 1", exitCode)
	}
	if out.Len() == 0 {
		t.Error("no result output written")
	}
}

func TestBrandsLintFailureSetsExitCode(t *testing.T) {
	resetExitCode(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	brandsLintFlags.file = path
	brandsLintFlags.dir = ""
	brandsLintFlags.format = "text"

	var out bytes.Buffer
	brandsLintCmd.SetOut(&out)

	if err := runBrandsLint(brandsLintCmd, nil); err != nil {
		t.Fatalf("runBrandsLint() error = %v", err)
	}
	if exitCode != 1 {
		t.Errorf("exitCode = %d, want 1", exitCode)
	}
}
