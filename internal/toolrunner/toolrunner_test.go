package toolrunner

import (
	"bytes"
	"context"
	"runtime"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		line string
		want Severity
	}{
		{"error TS1005: ';' expected.", SeverityError},
		{"Error: something broke", SeverityError},
		{"warning: unused variable", SeverityWarning},
		{"WARNING deprecated flag", SeverityWarning},
		{"src/index.ts:10:5: error TS2304: cannot find name", SeverityError},
		{"src/index.ts:3:1: warning no-unused-vars", SeverityWarning},
		{"compiling 12 files", SeverityInfo},
		{"", SeverityInfo},
	}
	for _, c := range cases {
		if got := Classify(c.line); got != c.want {
			t.Fatalf("Classify(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestResult_Failed(t *testing.T) {
	if (Result{ExitCode: 1}).Failed(false) != true {
		t.Fatalf("nonzero exit must fail")
	}
	if (Result{Errors: 2}).Failed(false) != true {
		t.Fatalf("error lines must fail")
	}
	if (Result{Warnings: 1}).Failed(false) != false {
		t.Fatalf("warnings alone must pass by default")
	}
	if (Result{Warnings: 1}).Failed(true) != true {
		t.Fatalf("warnings must fail under warnings-as-errors")
	}
}

func TestRun_CountsAndForwardsLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test drives /bin/sh")
	}
	var out bytes.Buffer
	res, err := Run(context.Background(), []string{
		"sh", "-c", `echo "info line"; echo "warning: w1"; echo "error: e1" 1>&2; exit 0`,
	}, Options{Out: &out})
	if err == nil {
		t.Fatalf("a run with error lines must fail, got %+v", res)
	}
	if res.Warnings != 1 || res.Errors != 1 {
		t.Fatalf("counts = %+v", res)
	}
	text := out.String()
	for _, want := range []string{"info line", "warning: w1", "error: e1"} {
		if !bytes.Contains([]byte(text), []byte(want)) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRun_WarningsAsErrors(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test drives /bin/sh")
	}
	var out bytes.Buffer
	argv := []string{"sh", "-c", `echo "warning: only"`}

	if _, err := Run(context.Background(), argv, Options{Out: &out}); err != nil {
		t.Fatalf("warnings alone should pass: %v", err)
	}
	if _, err := Run(context.Background(), argv, Options{Out: &out, WarningsAsErrors: true}); err == nil {
		t.Fatalf("warnings-as-errors should fail the run")
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test drives /bin/sh")
	}
	var out bytes.Buffer
	res, err := Run(context.Background(), []string{"sh", "-c", "exit 3"}, Options{Out: &out})
	if err == nil {
		t.Fatalf("nonzero exit should fail")
	}
	if res.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", res.ExitCode)
	}
}

func TestRun_EmptyCommandLine(t *testing.T) {
	if _, err := Run(context.Background(), nil, Options{}); err == nil {
		t.Fatalf("expected error for empty argv")
	}
}
