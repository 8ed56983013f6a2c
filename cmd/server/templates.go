package main

import (
	"fmt"
	"html/template"
	"path/filepath"
)

const templatesDir = "templates"

// LoadTemplates parses every *.html under dir.
func LoadTemplates(dir string) (*template.Template, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}
	return template.New("").ParseFiles(files...)
}
