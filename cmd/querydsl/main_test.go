package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kailas-cloud/querydsl"
	"github.com/kailas-cloud/querydsl/internal/template"
)

const spamTemplate = `boosting:
  positive: {term: {status: active}}
  negative: {term: {flag: spam}}
  negative_boost: 0.2
`

func writeTemplate(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTemplate(t, dir, "a.yaml", spamTemplate)
	b := writeTemplate(t, dir, "b.json",
		`{"boosting":{"positive":{"match_all":{}},"negative":{"term":{"lang":"cobol"}},"negative_boost":0.5,"boost":2}}`)

	var out bytes.Buffer
	if err := renderFiles(context.Background(), &out, []string{a, b}, renderOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"boosting":{"positive":{"term":{"status":"active"}},"negative":{"term":{"flag":"spam"}},"negative_boost":0.2}}` + "\n" +
		`{"boosting":{"positive":{"match_all":{}},"negative":{"term":{"lang":"cobol"}},"negative_boost":0.5,"boost":2}}` + "\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRenderFiles_Pretty(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), "a.yaml", spamTemplate)

	var out bytes.Buffer
	err := renderFiles(context.Background(), &out, []string{path}, renderOptions{Pretty: true, Indent: "  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "\n  \"boosting\": {\n    \"positive\"") {
		t.Errorf("output not indented:\n%s", out.String())
	}
}

func TestRenderFiles_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	bad := writeTemplate(t, dir, "bad.yaml", "boosting: {positive: active, negative: {match_all: {}}, negative_boost: 0.2}\n")
	good := writeTemplate(t, dir, "good.yaml", spamTemplate)
	missing := filepath.Join(dir, "missing.yaml")

	var out bytes.Buffer
	err := renderFiles(context.Background(), &out, []string{bad, good, missing}, renderOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, querydsl.ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch in chain", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist in chain", err)
	}
	if strings.Count(out.String(), "\n") != 1 {
		t.Errorf("expected exactly the good template rendered, got:\n%s", out.String())
	}
}

func TestRenderFiles_Strict(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "wide.yaml",
		"boosting: {positive: {match_all: {}}, negative: {match_all: {}}, negative_boost: 1.5}\n")

	var out bytes.Buffer
	if err := renderFiles(context.Background(), &out, []string{path}, renderOptions{}); err != nil {
		t.Fatalf("permissive render failed: %v", err)
	}

	out.Reset()
	err := renderFiles(context.Background(), &out, []string{path}, renderOptions{Strict: true})
	if !errors.Is(err, querydsl.ErrNegativeBoostOutOfRange) {
		t.Errorf("err = %v, want ErrNegativeBoostOutOfRange", err)
	}
	if out.Len() != 0 {
		t.Errorf("strict failure wrote output: %s", out.String())
	}
}

func TestRootCmd_Render(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "a.yaml", spamTemplate)
	cfgPath := writeTemplate(t, dir, "cfg.yaml", "logging:\n  level: error\nmetrics:\n  textfile: "+filepath.Join(dir, "querydsl.prom")+"\n")
	t.Setenv("ENV", "test")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"render", "--config", cfgPath, path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", err, errOut.String())
	}

	q, err := template.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != q.String() {
		t.Errorf("output = %s, want %s", got, q.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "querydsl.prom")); err != nil {
		t.Errorf("metrics textfile not written: %v", err)
	}
}

func TestRootCmd_RenderRequiresArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without templates")
	}
}

func TestRootCmd_Version(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "querydsl dev") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLoadConfig_MissingDefaultFallsBack(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := loadConfig("local", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.Indent != 2 {
		t.Errorf("indent = %d, want default 2", cfg.Render.Indent)
	}

	if _, err := loadConfig("local", "nope.yaml"); err == nil {
		t.Error("expected error for explicit missing config")
	}
}

func TestExecute_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir, "a.yaml", spamTemplate)
	badCfg := writeTemplate(t, dir, "bad.yaml", "logging:\n  level: loud\n")
	goodCfg := writeTemplate(t, dir, "good.yaml", "logging:\n  level: error\n")
	badTmpl := writeTemplate(t, dir, "broken.yaml", "boosting: {positive: {match_all: {}}}\n")

	tests := []struct {
		name    string
		env     string
		args    []string
		wantMsg string
	}{
		{"invalid config", "test", []string{"render", "--config", badCfg, tmpl}, "logging.level"},
		{"missing templates", "test", []string{"render"}, "requires at least 1 arg"},
		{"unknown env", "staging", []string{"render", "--config", goodCfg, tmpl}, "unknown environment"},
		{"unknown command", "test", []string{"explode"}, "unknown command"},
		{"render failure", "test", []string{"render", "--config", goodCfg, badTmpl}, "boosting.negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", tt.env)

			var out, errOut bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs(tt.args)

			if code := execute(context.Background(), cmd); code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if !strings.Contains(errOut.String(), tt.wantMsg) {
				t.Errorf("stderr = %q, want it to mention %q", errOut.String(), tt.wantMsg)
			}
		})
	}
}

func TestExecute_Success(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir, "a.yaml", spamTemplate)
	cfg := writeTemplate(t, dir, "cfg.yaml", "logging:\n  level: error\n")
	t.Setenv("ENV", "test")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"render", "--config", cfg, tmpl})

	if code := execute(context.Background(), cmd); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr: %s", errOut.String())
	}
}
