package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommandText(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.ada", "begin x := 1 end")
	stdout, _, err := run(t, "parse", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{"begin StatementPart", `token number "1" line 1`, "end StatementPart"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output lacks %q:\n%s", want, stdout)
		}
	}
}

func TestParseCommandTree(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.ada", "begin call p(a) end")
	stdout, _, err := run(t, "parse", "--format", "tree", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal([]byte(stdout), &tree); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if tree["production"] != "StatementPart" {
		t.Errorf("root production = %v", tree["production"])
	}
}

func TestParseCommandEntry(t *testing.T) {
	path := writeSource(t, t.TempDir(), "expr.ada", "a + b * 2")
	stdout, _, err := run(t, "parse", "-e", "Expression", "-f", "json", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if !strings.Contains(lines[0], `"production":"Expression"`) {
		t.Errorf("first event = %s", lines[0])
	}
}

func TestParseCommandSyntaxError(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.ada", "begin\n  x := \nend")
	_, stderr, err := run(t, "parse", "-f", "none", path)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	want := path + ":3: expected identifier, number, or ( on line: 3 (found 'end')"
	if !strings.HasPrefix(stderr, want) {
		t.Errorf("stderr =\n%s\nwant prefix\n%s", stderr, want)
	}
	if !strings.Contains(stderr, "in AssignmentStatement on line: 2") {
		t.Errorf("stderr lacks the enclosing production:\n%s", stderr)
	}
}

func TestParseCommandBadFormat(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.ada", "begin x := 1 end")
	_, _, err := run(t, "parse", "-f", "xml", path)
	if err == nil || errors.Is(err, errReported) {
		t.Errorf("err = %v, want an unknown format error", err)
	}
}

func TestScanCommand(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.ada", "begin x := 1 end")
	stdout, _, err := run(t, "scan", path)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := strings.Join([]string{
		"1:1\tbegin\t\"begin\"",
		"1:7\tidentifier\t\"x\"",
		"1:9\t:=\t\":=\"",
		"1:12\tnumber\t\"1\"",
		"1:14\tend\t\"end\"",
		"1:17\tend of input\t\"\"",
		"",
	}, "\n")
	if stdout != want {
		t.Errorf("output =\n%s\nwant\n%s", stdout, want)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.ada", "begin x := 1 end")
	writeSource(t, dir, "b.ada", "begin while x < 1 loop x := x + 1 end loop end")
	writeSource(t, dir, "c.ada", "begin if x then y := 1 end if end")
	writeSource(t, dir, "readme.md", "# not checked")

	stdout, _, err := run(t, "check", dir)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	for _, want := range []string{
		"[OK] " + filepath.Join(dir, "a.ada"),
		"[OK] " + filepath.Join(dir, "b.ada"),
		"[ERROR] " + filepath.Join(dir, "c.ada") + ":1: expected a conditional operator",
		"Files checked: 3",
		"Errors: 1",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output lacks %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = run(t, "check", filepath.Join(dir, "a.ada"))
	if err != nil {
		t.Fatalf("check a.ada: %v\n%s", err, stdout)
	}
}

func TestCheckCommandConfig(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.src", "begin x := 1 end")
	writeSource(t, dir, "other.ada", "garbage")
	cfg := writeSource(t, t.TempDir(), "minada.toml", "[check]\nextensions = [\".src\"]\n")

	stdout, _, err := run(t, "--config", cfg, "check", dir)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Files checked: 1") {
		t.Errorf("output =\n%s", stdout)
	}
}

func TestGrammarCommand(t *testing.T) {
	stdout, _, err := run(t, "grammar")
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}
	if !strings.HasPrefix(stdout, "grammar ok: 15 nonterminals") {
		t.Errorf("output = %q", stdout)
	}

	_, stderr, err := run(t, "grammar", "--start", "Program")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stderr, "Program") {
		t.Errorf("stderr = %q", stderr)
	}
}
