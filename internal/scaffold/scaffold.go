package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/toolforge-labs/toolforge/internal/metadata"
)

// Data holds the template variables available to tool project templates.
type Data struct {
	Name        string // e.g., "Photo Renamer"
	Slug        string // derived: "photo-renamer"
	PackageName string // derived: "photo_renamer"
	Requirement string
	Category    string
	Version     string // semver, e.g., "0.1.0"
	Year        int
}

// Result holds the outcome of a tool scaffold generation. Files are
// slash-separated paths relative to ToolDir, in creation order.
type Result struct {
	ToolDir    string
	ProjectDir string
	Files      []string
}

// NewData creates a Data with derived fields populated.
func NewData(name, requirement, category string) *Data {
	slug := Slugify(name)
	return &Data{
		Name:        name,
		Slug:        slug,
		PackageName: strings.ReplaceAll(slug, "-", "_"),
		Requirement: requirement,
		Category:    category,
		Version:     "0.1.0",
		Year:        time.Now().Year(),
	}
}

// Slugify lowercases a tool name and folds spaces and underscores to
// hyphens, yielding the directory and package-index name.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	return slug
}

type templateFile struct {
	src  string
	dest func(*Data) string
}

// templates maps embedded template sources to their rendered locations.
// Destinations under project/src depend on the derived package name, so
// they are computed per generation. Order here is the creation order
// reported to the caller.
var templates = []templateFile{
	{"requirement_analysis.md.tmpl", func(*Data) string { return "requirement_analysis.md" }},
	{"development_log.md.tmpl", func(*Data) string { return "development_log.md" }},
	{"evaluation.md.tmpl", func(*Data) string { return "evaluation.md" }},
	{"readme.md.tmpl", func(*Data) string { return "project/README.md" }},
	{"pyproject.toml.tmpl", func(*Data) string { return "project/pyproject.toml" }},
	{"package_init.py.tmpl", func(d *Data) string { return "project/src/" + d.PackageName + "/__init__.py" }},
	{"main.py.tmpl", func(d *Data) string { return "project/src/" + d.PackageName + "/main.py" }},
}

// Generate scaffolds a tool directory with tracking notes and a Python
// project skeleton. The tool directory must not already exist. Metadata
// is written first and validated against its schema, so a tool that fails
// validation leaves no project files behind.
func Generate(data *Data, toolDir string) (*Result, error) {
	if _, err := os.Stat(toolDir); err == nil {
		return nil, fmt.Errorf("tool %q already exists at %s", data.Name, toolDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking tool directory: %w", err)
	}

	if err := os.MkdirAll(toolDir, 0755); err != nil {
		return nil, fmt.Errorf("creating tool directory: %w", err)
	}

	result := &Result{
		ToolDir:    toolDir,
		ProjectDir: filepath.Join(toolDir, "project"),
	}

	meta := metadata.New(data.Name, data.Requirement, data.Category)
	if err := meta.Save(filepath.Join(toolDir, metadata.FileName)); err != nil {
		return nil, fmt.Errorf("writing metadata: %w", err)
	}
	result.Files = append(result.Files, metadata.FileName)

	for _, tf := range templates {
		tmplBytes, err := fs.ReadFile(scaffoldFS, "templates/"+tf.src)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tf.src, err)
		}

		tmpl, err := template.New(tf.src).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", tf.src, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", tf.src, err)
		}

		rel := tf.dest(data)
		outPath := filepath.Join(toolDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", rel, err)
		}

		result.Files = append(result.Files, rel)
	}

	return result, nil
}
