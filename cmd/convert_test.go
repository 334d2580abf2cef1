package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/designer-cli/internal/designer"
)

const loginCS = `this.loginGroup = new System.Windows.Forms.GroupBox();
this.userBox = new System.Windows.Forms.TextBox();
this.rememberCheck = new System.Windows.Forms.CheckBox();
this.submit = new System.Windows.Forms.Button();
this.loginGroup.Controls.Add(this.userBox);
this.loginGroup.Controls.Add(this.rememberCheck);
this.loginGroup.Location = new System.Drawing.Point(10, 10);
this.loginGroup.Size = new System.Drawing.Size(220, 90);
this.userBox.Location = new System.Drawing.Point(8, 20);
this.userBox.Size = new System.Drawing.Size(200, 20);
this.rememberCheck.Text = "Remember me";
this.submit.Text = "Sign in";
this.submit.Visible = true;
`

const loginVB = `Me.submit = New System.Windows.Forms.Button()
Me.submit.Text = "Sign in"
`

func TestConvertCommand_Flags(t *testing.T) {
	flags := convertCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"output", "string"},
		{"flat", "bool"},
		{"types", "string"},
		{"type-prefix", "string"},
		{"strict", "bool"},
		{"jobs", "int"},
		{"name", "string"},
		{"control", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestConvertCommand_SingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Login.Designer.cs", loginCS)
	out, err := executeCommand(t, nil, "convert", path)
	if err != nil {
		t.Fatal(err)
	}
	want := designer.Convert(loginCS, "Login.Designer.cs") + "\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestConvertCommand_Stdin(t *testing.T) {
	out, err := executeCommand(t, strings.NewReader(loginVB), "convert", "--name", "Login.Designer.vb")
	if err != nil {
		t.Fatal(err)
	}
	var nodes []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &nodes); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(nodes) != 1 || nodes[0]["text"] != "Sign in" {
		t.Errorf("unexpected nodes: %v", nodes)
	}

	// Without --name the C# dialect is assumed and nothing matches.
	out, err = executeCommand(t, strings.NewReader(loginVB), "convert", "-")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected [], got %s", out)
	}
}

func TestConvertCommand_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "Login.Designer.cs", loginCS)
	b := writeFile(t, dir, "Login.Designer.vb", loginVB)

	out, err := executeCommand(t, nil, "convert", "--jobs", "1", b, a)
	if err != nil {
		t.Fatal(err)
	}
	var results []struct {
		File  string                   `json:"file"`
		Nodes []map[string]interface{} `json:"nodes"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(results) != 2 || results[0].File != b || results[1].File != a {
		t.Fatalf("results out of order: %+v", results)
	}
	if len(results[0].Nodes) != 1 || len(results[1].Nodes) != 2 {
		t.Errorf("unexpected node counts: %d, %d", len(results[0].Nodes), len(results[1].Nodes))
	}
}

func TestConvertCommand_TypesAndFlat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Login.Designer.cs", loginCS)
	out, err := executeCommand(t, nil, "convert", "--types", "input", "--flat", path)
	if err != nil {
		t.Fatal(err)
	}
	var flat []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &flat); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(flat) != 2 {
		t.Fatalf("expected 2 input nodes, got %d: %v", len(flat), flat)
	}
	if flat[0]["name"] != "userBox" || flat[0]["path"] != "userBox" {
		t.Errorf("unexpected first node: %v", flat[0])
	}
}

func TestConvertCommand_YAMLAndPrefix(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Login.Designer.cs", loginCS)
	out, err := executeCommand(t, nil, "convert", "--format", "yaml", "--type-prefix", "RadJav.GUI.", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "type: RadJav.GUI.Container") || !strings.Contains(out, "visibility: true") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}

func TestConvertCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Login.Designer.cs", loginCS)
	outPath := filepath.Join(dir, "ui.json")

	out, err := executeCommand(t, nil, "convert", "-o", outPath, path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "[\n    {") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}

func TestConvertCommand_Strict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Empty.Designer.cs", "// nothing here\n")

	if _, err := executeCommand(t, nil, "convert", path); err != nil {
		t.Errorf("non-strict conversion should succeed, got %v", err)
	}
	_, err := executeCommand(t, nil, "convert", "--strict", path)
	if !errors.Is(err, errNoControls) {
		t.Errorf("expected errNoControls, got %v", err)
	}
}

func TestConvertCommand_Control(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Login.Designer.cs", loginCS)
	out, err := executeCommand(t, nil, "convert", "--control", "loginGroup", path)
	if err != nil {
		t.Fatal(err)
	}
	var nodes []struct {
		Name     string `json:"name"`
		Children []struct {
			Name string `json:"name"`
		} `json:"children"`
	}
	if err := json.Unmarshal([]byte(out), &nodes); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(nodes) != 1 || nodes[0].Name != "loginGroup" || len(nodes[0].Children) != 2 {
		t.Errorf("unexpected subtree: %+v", nodes)
	}

	// Nested controls are found too.
	out, err = executeCommand(t, nil, "convert", "--control", "userBox", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"name": "userBox"`) || strings.Contains(out, "loginGroup") {
		t.Errorf("unexpected output:\n%s", out)
	}

	_, err = executeCommand(t, nil, "convert", "--control", "nope", path)
	if !errors.Is(err, errControlNotFound) {
		t.Errorf("expected errControlNotFound, got %v", err)
	}
}

func TestConvertFiles_MissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "A.Designer.cs", loginCS)
	_, err := convertFiles(context.Background(), []string{ok, filepath.Join(dir, "missing.cs")}, 2, designer.Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestConvertFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"C.cs", "A.cs", "B.vb", "D.cs"} {
		paths = append(paths, writeFile(t, dir, name, loginCS))
	}
	results, err := convertFiles(context.Background(), paths, 0, designer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range results {
		if r.File != paths[i] {
			t.Errorf("result %d: file %q, want %q", i, r.File, paths[i])
		}
	}
	if len(results[2].Nodes) != 0 {
		t.Errorf("C# source in a .vb file should yield no nodes, got %d", len(results[2].Nodes))
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" Button, ,input,")
	if len(got) != 2 || got[0] != "Button" || got[1] != "input" {
		t.Errorf("splitList = %v", got)
	}
	if splitList("") != nil {
		t.Error("splitList(\"\") should be nil")
	}
}
