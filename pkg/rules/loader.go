package rules

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FormatForPath picks the rules format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrRulesLoad, "unsupported rules file extension %q, use .toml, .yaml or .json", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Load reads and decodes the rules file at path.
func Load(path string) (*File, error) {
	logger := logging.GetLogger("rules.loader")

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "rules file %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read rules file %s", path).
			WithDetail("path", path)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "failed to parse %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("rules", len(f.Rules)).
		Msg("Rules file loaded")
	return f, nil
}

// Parse decodes rules data in the given format. Unknown fields are
// rejected so typos in field names surface instead of being ignored.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, errors.ErrRulesLoad, "invalid TOML")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.ErrRulesLoad, "invalid YAML")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, errors.ErrRulesLoad, "invalid JSON")
		}
	default:
		return nil, errors.Newf(errors.ErrRulesLoad, "unknown rules format %q", format)
	}
	return &f, nil
}
