package source

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tessdev/holiday-service/internal/model"
)

// Supported holiday file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// File reads holidays from a document on disk.
//
// The file is read on every call, so edits show up on the next request
// without a restart. Accepted shapes:
//
//	JSON: [{"name": "New Year's Day", "date": "2024-01-01"}]
//
//	TOML: [[holidays]]
//	      name = "New Year's Day"
//	      date = "2024-01-01"
//
//	YAML: holidays:
//	        - name: New Year's Day
//	          date: "2024-01-01"
//
// Record order in the file is preserved.
type File struct {
	path   string
	format string
}

// fileDocument is the TOML/YAML envelope; JSON uses a bare array.
type fileDocument struct {
	Holidays []model.Holiday `toml:"holidays" yaml:"holidays"`
}

// NewFile creates a file source. An empty format is detected from the
// file extension.
func NewFile(path, format string) (*File, error) {
	if format == "" {
		format = DetectFormat(path)
	}

	switch format {
	case FormatJSON, FormatTOML, FormatYAML:
	default:
		return nil, errors.Errorf("cannot determine holiday file format of %q", path)
	}

	return &File{path: path, format: format}, nil
}

// DetectFormat maps a file extension to a format, or "" if unknown.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

func (f *File) GetAll(_ context.Context) ([]model.Holiday, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrap(err, "read holiday file")
	}

	var holidays []model.Holiday
	switch f.format {
	case FormatJSON:
		err = json.Unmarshal(data, &holidays)
	case FormatTOML:
		var doc fileDocument
		err = toml.Unmarshal(data, &doc)
		holidays = doc.Holidays
	case FormatYAML:
		var doc fileDocument
		err = yaml.Unmarshal(data, &doc)
		holidays = doc.Holidays
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s holiday file %s", f.format, f.path)
	}

	if err := model.ValidateAll(holidays); err != nil {
		return nil, errors.Wrapf(err, "holiday file %s", f.path)
	}

	if holidays == nil {
		holidays = []model.Holiday{}
	}
	return holidays, nil
}
