package format

import (
	"errors"
	"fmt"
)

// Format is a text notation a document can be read from or written to.
type Format int

const (
	GBLNFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"g":    GBLNFormat,
		"gbln": GBLNFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
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
	case GBLNFormat:
		return []byte("gbln"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
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

func (f Format) IsGBLN() bool { return f == GBLNFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case GBLNFormat:
		return ".gbln"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FormatOf guesses the format of a file from its name, defaulting to
// GBLN.
func FormatOf(path string) Format {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		if hasSuffix(path, f.Suffix()) {
			return f
		}
	}
	if hasSuffix(path, ".yml") {
		return YAMLFormat
	}
	return GBLNFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{GBLNFormat, JSONFormat, YAMLFormat}
}
