// Package config loads contactconv settings from a YAML file.
//
// Every field is optional; missing fields keep the library defaults.
//
//	replace_same_key: false
//	max_input_bytes: 0
//	quoted_printable:
//	  charset: UTF-8
//	phone:
//	  keys: [TEL;CELL;PREF, TEL;CELL, TEL;WORK]
//	  on_conflict: overwrite   # or keep
//	log:
//	  backend: none            # zap | logrus | slog
//	  level: info              # debug | info | warn | error
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/contactconv"
	"github.com/unkn0wn-root/contactconv/normalize"
)

// Log backends accepted in log.backend.
const (
	BackendNone   = "none"
	BackendZap    = "zap"
	BackendLogrus = "logrus"
	BackendSlog   = "slog"
)

// QuotedPrintable configures the quoted-printable pass.
type QuotedPrintable struct {
	Charset string `yaml:"charset,omitempty"`
}

// Phone configures the phone reducer pass.
type Phone struct {
	Keys       []string `yaml:"keys,omitempty"`
	OnConflict string   `yaml:"on_conflict,omitempty"`
}

// Log selects the logging backend and level.
type Log struct {
	Backend string `yaml:"backend,omitempty"`
	Level   string `yaml:"level,omitempty"`
}

// File models the YAML config file.
type File struct {
	ReplaceSameKey  bool            `yaml:"replace_same_key"`
	MaxInputBytes   int             `yaml:"max_input_bytes"`
	QuotedPrintable QuotedPrintable `yaml:"quoted_printable"`
	Phone           Phone           `yaml:"phone"`
	Log             Log             `yaml:"log"`
}

// Default returns the settings used when no file is given.
func Default() File {
	return File{
		Log: Log{Backend: BackendNone, Level: "info"},
	}
}

// Load reads and validates the file at path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(b)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML over Default and validates the result.
// Unknown fields are rejected.
func Parse(b []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks enumerated values and limits.
func (f File) Validate() error {
	if f.MaxInputBytes < 0 {
		return fmt.Errorf("max_input_bytes must be >= 0, got %d", f.MaxInputBytes)
	}
	if _, err := normalize.ParseConflict(f.Phone.OnConflict); err != nil {
		return err
	}
	for i, k := range f.Phone.Keys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("phone.keys[%d] is empty", i)
		}
	}
	switch strings.ToLower(f.Log.Backend) {
	case "", BackendNone, BackendZap, BackendLogrus, BackendSlog:
	default:
		return fmt.Errorf("unknown log backend %q", f.Log.Backend)
	}
	switch strings.ToLower(f.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", f.Log.Level)
	}
	return nil
}

// Options maps the file onto converter options. decode and reduce come from
// the command line; logger may be nil.
func (f File) Options(decode, reduce bool, logger contactconv.Logger) (contactconv.Options, error) {
	conflict, err := normalize.ParseConflict(f.Phone.OnConflict)
	if err != nil {
		return contactconv.Options{}, err
	}
	return contactconv.Options{
		Logger:                 logger,
		Decode:                 decode,
		Reduce:                 reduce,
		ReplaceSameKey:         f.ReplaceSameKey,
		MaxInputBytes:          f.MaxInputBytes,
		QuotedPrintableCharset: f.QuotedPrintable.Charset,
		PhoneKeys:              f.Phone.Keys,
		PhoneConflict:          conflict,
	}, nil
}
