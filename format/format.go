// Package format names the configuration formats confmix understands and
// holds the codec registry that maps each format to its parser and
// serializer.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	AutoFormat Format = iota
	YAMLFormat
	TOMLFormat
	JSONFormat
	INIFormat
)

var (
	ErrBadFormat = errors.New("bad format")
	ErrParse     = errors.New("parse error")
	ErrDump      = errors.New("dump error")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"a":    AutoFormat,
		"auto": AutoFormat,
		"y":    YAMLFormat,
		"yml":  YAMLFormat,
		"yaml": YAMLFormat,
		"t":    TOMLFormat,
		"toml": TOMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"i":    INIFormat,
		"ini":  INIFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case AutoFormat:
		return []byte("auto"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case INIFormat:
		return []byte("ini"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsAuto() bool { return f == AutoFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsTOML() bool { return f == TOMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsINI() bool  { return f == INIFormat }

// Suffix returns the canonical file extension for this format (including the
// dot).
func (f Format) Suffix() string {
	switch f {
	case YAMLFormat:
		return ".yaml"
	case TOMLFormat:
		return ".toml"
	case JSONFormat:
		return ".json"
	case INIFormat:
		return ".ini"
	default:
		return ""
	}
}

var suffixes = map[string]Format{
	".yaml":  YAMLFormat,
	".yml":   YAMLFormat,
	".toml":  TOMLFormat,
	".tml":   TOMLFormat,
	".json":  JSONFormat,
	".jsonc": JSONFormat,
	".ini":   INIFormat,
	".cfg":   INIFormat,
	".conf":  INIFormat,
	".env":   INIFormat,
}

// FromPath infers a format from a file extension.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := suffixes[ext]
	if !ok {
		return 0, fmt.Errorf("%w: no format for extension %q", ErrBadFormat, ext)
	}
	return f, nil
}

// AllFormats returns all concrete formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, TOMLFormat, JSONFormat, INIFormat}
}
