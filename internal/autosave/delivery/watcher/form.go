package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"realtime-client/internal/autosave"
)

func isFormFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	switch filepath.Ext(base) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadForm reads a form file. The form is named after the file.
func loadForm(path string) (autosave.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return autosave.Form{}, err
	}

	var f autosave.Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return autosave.Form{}, fmt.Errorf("%w: %s: %v", autosave.ErrInvalidForm, path, err)
	}
	f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if f.Fields == nil {
		f.Fields = map[string]string{}
	}
	return f, nil
}
