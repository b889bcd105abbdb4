// Package profile writes generated complex modifications into a
// Karabiner-Elements profile.
//
// Only the complex_modifications key of the selected profile is replaced.
// Everything else in karabiner.json, including the other profiles, devices
// and global settings, is carried over untouched.
package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/karabiner"
	"github.com/arthur-debert/karabuild/pkg/logging"
	"github.com/arthur-debert/karabuild/pkg/paths"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DryRunName is accepted as a profile name and turns on dry-run mode.
const DryRunName = "--dry-run"

// Target selects the profile to update.
type Target struct {
	// Name is the profile name as shown in the Karabiner-Elements UI.
	Name string
	// DryRun prints the result instead of writing it.
	DryRun bool
	// KarabinerJSON overrides the location of karabiner.json.
	KarabinerJSON string
}

// Path returns the karabiner.json the target refers to.
func (t Target) Path() string {
	if t.KarabinerJSON != "" {
		return paths.ExpandHome(t.KarabinerJSON)
	}
	return paths.KarabinerConfigFile()
}

// Writer updates profiles on a filesystem.
type Writer struct {
	fs  afero.Fs
	out io.Writer
}

// NewWriter creates a Writer. Messages and dry-run output go to out.
func NewWriter(fs afero.Fs, out io.Writer) *Writer {
	return &Writer{fs: fs, out: out}
}

// Write updates the real karabiner.json.
func Write(target Target, cm karabiner.ComplexModifications, out io.Writer) error {
	return NewWriter(afero.NewOsFs(), out).Write(target, cm)
}

// Write replaces the complex modifications of the target profile.
func (w *Writer) Write(target Target, cm karabiner.ComplexModifications) error {
	logger := logging.GetLogger("profile")

	if target.Name == DryRunName {
		target.DryRun = true
	}

	value, err := marshal(cm)
	if err != nil {
		return err
	}

	if target.DryRun {
		doc, err := dryRunDocument(target.Name, value)
		if err != nil {
			return err
		}
		logger.Debug().Str("profile", target.Name).Msg("Dry run, printing profile")
		_, err = w.out.Write(doc)
		return err
	}

	path := target.Path()
	data, err := w.read(path)
	if err != nil {
		return err
	}

	index, err := findProfile(data, target.Name, path)
	if err != nil {
		return err
	}

	updated, err := sjson.SetRawBytes(data, fmt.Sprintf("profiles.%d.complex_modifications", index), value)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to update profile")
	}

	if err := w.writeAtomic(path, pretty.Pretty(updated)); err != nil {
		return err
	}

	logger.Info().
		Str("profile", target.Name).
		Str("path", path).
		Int("rules", len(cm.Rules)).
		Msg("Profile updated")
	_, err = fmt.Fprintf(w.out, "✓ Profile %s updated.\n", target.Name)
	return err
}

// Profiles lists the profile names found in the target's karabiner.json.
func (w *Writer) Profiles(target Target) ([]string, error) {
	data, err := w.read(target.Path())
	if err != nil {
		return nil, err
	}
	return profileNames(data), nil
}

func (w *Writer) read(path string) ([]byte, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "karabiner config %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read karabiner config %s", path).
			WithDetail("path", path)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Newf(errors.ErrInvalidInput, "karabiner config %s is not valid JSON", path).
			WithDetail("path", path)
	}
	return data, nil
}

// writeAtomic writes through a temporary file in the same directory so a
// failed write never leaves a truncated karabiner.json behind.
func (w *Writer) writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := w.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create temporary file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmpName)
	}
	if err := w.fs.Chmod(tmpName, mode); err != nil {
		_ = w.fs.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot set mode on %s", tmpName)
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		_ = w.fs.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", path).
			WithDetail("path", path)
	}
	return nil
}

func findProfile(data []byte, name, path string) (int, error) {
	index := -1
	gjson.GetBytes(data, "profiles").ForEach(func(key, value gjson.Result) bool {
		if value.Get("name").String() == name {
			index = int(key.Int())
			return false
		}
		return true
	})
	if index < 0 {
		available := profileNames(data)
		return 0, errors.Newf(errors.ErrProfileNotFound,
			"profile %q not found in %s; check the profile name in the Karabiner-Elements UI or create the profile",
			name, path).
			WithDetail("profile", name).
			WithDetail("path", path).
			WithDetail("available", available)
	}
	return index, nil
}

func profileNames(data []byte) []string {
	var names []string
	for _, n := range gjson.GetBytes(data, "profiles.#.name").Array() {
		names = append(names, n.String())
	}
	return names
}

func dryRunDocument(name string, value []byte) ([]byte, error) {
	doc, err := sjson.SetBytes([]byte(`{"profiles":[{}]}`), "profiles.0.name", name)
	if err == nil {
		doc, err = sjson.SetRawBytes(doc, "profiles.0.complex_modifications", value)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to build dry-run document")
	}
	return pretty.Pretty(doc), nil
}

func marshal(cm karabiner.ComplexModifications) ([]byte, error) {
	if cm.Rules == nil {
		cm.Rules = []karabiner.Rule{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cm); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode complex modifications")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
