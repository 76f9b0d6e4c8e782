package yamlconf

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/confmix/confmix/construct"
	"github.com/confmix/confmix/template"
)

func jstr(t *testing.T, v any) string {
	t.Helper()
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	v, err := Load("name: app\nport: 8080\n")
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"app","port":8080}`
	if got := jstr(t, v); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadEnvTag(t *testing.T) {
	t.Setenv("CONFMIX_TEST_STAGE", "prod")
	v, err := Load("stage: !ENV CONFMIX_TEST_STAGE\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := jstr(t, v); got != `{"stage":"prod"}` {
		t.Errorf("got %s", got)
	}
}

func TestLoadEnvDisabled(t *testing.T) {
	t.Setenv("CONFMIX_TEST_STAGE", "prod")
	_, err := Load("stage: !ENV CONFMIX_TEST_STAGE\n",
		LoadMode(construct.ModeFull), EnableEnv(false))
	if !errors.Is(err, construct.ErrUnknownTag) {
		t.Errorf("got %v want %v", err, construct.ErrUnknownTag)
	}
}

func TestLoadInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "db.yaml", "host: localhost\n")
	v, err := Load("db: !include db.yaml\n", IncludeBase(dir))
	if err != nil {
		t.Fatal(err)
	}
	if got := jstr(t, v); got != `{"db":{"host":"localhost"}}` {
		t.Errorf("got %s", got)
	}
}

func TestLoadResolveStrings(t *testing.T) {
	v, err := Load("greeting: hi $[user]\n",
		ResolveStrings(true),
		Engine(template.NewExprEngine(map[string]any{"user": "ada"})))
	if err != nil {
		t.Fatal(err)
	}
	if got := jstr(t, v); got != `{"greeting":"hi ada"}` {
		t.Errorf("got %s", got)
	}
}

func TestLoadFileInherit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", `
name: base
version: "1.0"
settings:
  timeout: 30
  retries: 3
`)
	feature := writeFile(t, dir, "feature.yaml", `
INHERIT: base.yaml
name: feature
settings:
  timeout: 60
`)
	v, err := LoadFile(feature, ResolveInherit(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"feature","settings":{"retries":3,"timeout":60},"version":"1.0"}`
	if got := jstr(t, v); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadFileInheritList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "x: from-a\ny: from-a\n")
	writeFile(t, dir, "b.yaml", "y: from-b\nz: from-b\n")
	child := writeFile(t, dir, "child.yaml", `
INHERIT: [a.yaml, b.yaml]
w: from-child
`)
	v, err := LoadFile(child, ResolveInherit(true))
	if err != nil {
		t.Fatal(err)
	}
	// earlier parents take precedence over later ones
	want := `{"w":"from-child","x":"from-a","y":"from-a","z":"from-b"}`
	if got := jstr(t, v); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadFileInheritChain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "root.yaml", "a: root\nb: root\nc: root\n")
	writeFile(t, dir, "mid.yaml", "INHERIT: root.yaml\nb: mid\n")
	leaf := writeFile(t, dir, "leaf.yaml", "INHERIT: mid.yaml\nc: leaf\n")
	v, err := LoadFile(leaf, ResolveInherit(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":"root","b":"mid","c":"leaf"}`
	if got := jstr(t, v); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadFileInheritSubdir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "shared"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "shared"), "base.yaml", "from: shared\n")
	child := writeFile(t, dir, "child.yaml", "INHERIT: shared/base.yaml\nown: 1\n")
	v, err := LoadFile(child, ResolveInherit(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"from":"shared","own":1}`
	if got := jstr(t, v); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadFileInheritCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "INHERIT: b.yaml\n")
	writeFile(t, dir, "b.yaml", "INHERIT: a.yaml\n")
	_, err := LoadFile(filepath.Join(dir, "a.yaml"), ResolveInherit(true))
	if !errors.Is(err, ErrInheritCycle) {
		t.Errorf("got %v want %v", err, ErrInheritCycle)
	}
}

func TestLoadFileInheritSelfCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "INHERIT: a.yaml\n")
	_, err := LoadFile(filepath.Join(dir, "a.yaml"), ResolveInherit(true))
	if !errors.Is(err, ErrInheritCycle) {
		t.Errorf("got %v want %v", err, ErrInheritCycle)
	}
}

func TestLoadFileInheritMissingParent(t *testing.T) {
	dir := t.TempDir()
	child := writeFile(t, dir, "child.yaml", "INHERIT: missing.yaml\n")
	_, err := LoadFile(child, ResolveInherit(true))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v want %v", err, fs.ErrNotExist)
	}
}

func TestLoadFileInheritBadValue(t *testing.T) {
	dir := t.TempDir()
	child := writeFile(t, dir, "child.yaml", "INHERIT: {not: a-path}\n")
	_, err := LoadFile(child, ResolveInherit(true))
	if !errors.Is(err, ErrBadInherit) {
		t.Errorf("got %v want %v", err, ErrBadInherit)
	}
}

func TestLoadFileInheritDisabled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "x: 1\n")
	child := writeFile(t, dir, "child.yaml", "INHERIT: base.yaml\ny: 2\n")
	v, err := LoadFile(child)
	if err != nil {
		t.Fatal(err)
	}
	// without resolution the directive stays in the document
	want := `{"INHERIT":"base.yaml","y":2}`
	if got := jstr(t, v); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestLoadStringInheritNeedsSourceDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "x: 1\n")
	text := "INHERIT: base.yaml\ny: 2\n"

	// no source directory: the directive stays as parsed
	v, err := Load(text, ResolveInherit(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := jstr(t, v); got != `{"INHERIT":"base.yaml","y":2}` {
		t.Errorf("got %s", got)
	}

	// with one, resolution proceeds
	v, err = Load(text, ResolveInherit(true), SourceDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if got := jstr(t, v); got != `{"x":1,"y":2}` {
		t.Errorf("got %s", got)
	}
}

func TestLoadFileInheritEmptyDirective(t *testing.T) {
	dir := t.TempDir()
	child := writeFile(t, dir, "child.yaml", "INHERIT:\ny: 2\n")
	v, err := LoadFile(child, ResolveInherit(true))
	if err != nil {
		t.Fatal(err)
	}
	// a null directive is consumed without loading parents
	if got := jstr(t, v); got != `{"y":2}` {
		t.Errorf("got %s", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v want %v", err, fs.ErrNotExist)
	}
}
