// Package profile loads usage profiles from YAML or JSON documents and
// applies key=value overrides on top of them.
//
// Numeric values are coerced rather than rejected: empty, unparsable,
// non-finite or negative input becomes 0. Enumerations (streaming quality,
// devices, connection) and unknown keys are rejected.
package profile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
)

// SchemaVersion is the version written by Encode.
const SchemaVersion = "1.0.0"

// supportedSchema is the range of schema versions Parse accepts.
const supportedSchema = "^1.0.0"

// maxDocumentBytes caps how much of a profile file is read.
const maxDocumentBytes = 1 << 20

// Format is a profile document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (want .yaml, .yml or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Document is the on-disk shape of a profile.
type Document struct {
	SchemaVersion string         `json:"schema_version,omitempty" yaml:"schema_version,omitempty" validate:"omitempty,semver"`
	Name          string         `json:"name,omitempty" yaml:"name,omitempty" validate:"max=128"`
	Usage         map[string]any `json:"usage" yaml:"usage"`
}

// Options controls how a document becomes a UsageProfile.
type Options struct {
	// UseDefaults starts from footprint.DefaultProfile so keys missing
	// from the document keep their default values. Otherwise missing
	// quantities are zero.
	UseDefaults bool
}

// Profile is a loaded usage profile.
type Profile struct {
	Name   string
	Source string
	Usage  footprint.UsageProfile
}

// Base returns the starting profile for opts: DefaultProfile, or a
// profile with every quantity zero. The zero profile keeps hd streaming so
// a later youtube_hours or netflix_hours override is not silently priced
// at zero.
func Base(opts Options) footprint.UsageProfile {
	if opts.UseDefaults {
		return footprint.DefaultProfile()
	}
	return footprint.UsageProfile{
		YouTubeQuality: footprint.QualityHD,
		NetflixQuality: footprint.QualityHD,
	}
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance per process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads and parses the profile at path.
func LoadFile(ctx context.Context, path string, opts Options) (Profile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Profile{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("opening profile: %w", err)
	}
	defer f.Close()

	p, err := Load(ctx, f, format, opts)
	if err != nil {
		return Profile{}, fmt.Errorf("loading profile %s: %w", path, err)
	}
	p.Source = path
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Load reads a document from r and parses it.
func Load(ctx context.Context, r io.Reader, format Format, opts Options) (Profile, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDocumentBytes+1))
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return Profile{}, fmt.Errorf("%w: document exceeds %d bytes", ErrInvalidDocument, maxDocumentBytes)
	}
	return Parse(ctx, data, format, opts)
}

// Parse decodes and validates a document and converts it to a Profile.
func Parse(ctx context.Context, data []byte, format Format, opts Options) (Profile, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Profile{}, fmt.Errorf("parsing YAML profile: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Profile{}, fmt.Errorf("parsing JSON profile: %w", err)
		}
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return FromDocument(ctx, doc, opts)
}

// FromDocument validates doc and converts it to a Profile.
func FromDocument(ctx context.Context, doc Document, opts Options) (Profile, error) {
	if err := checkDocument(doc); err != nil {
		return Profile{}, err
	}

	usage := Base(opts)
	if err := applyValues(ctx, &usage, doc.Usage); err != nil {
		return Profile{}, err
	}
	return Profile{Name: doc.Name, Usage: usage}, nil
}

func checkDocument(doc Document) error {
	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Field() == "SchemaVersion" {
				return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedSchema, doc.SchemaVersion)
			}
			return fmt.Errorf("%w: %s fails %q", ErrInvalidDocument, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if doc.SchemaVersion == "" {
		return nil
	}
	v, err := semver.NewVersion(doc.SchemaVersion)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, doc.SchemaVersion, err)
	}
	c, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, v, supportedSchema)
	}
	return nil
}

// Apply returns base with string overrides applied. Keys and values
// follow the same rules as document usage entries.
func Apply(ctx context.Context, base footprint.UsageProfile, overrides map[string]string) (footprint.UsageProfile, error) {
	values := make(map[string]any, len(overrides))
	for k, v := range overrides {
		values[k] = v
	}
	result := cloneUsage(base)
	if err := applyValues(ctx, &result, values); err != nil {
		return base, err
	}
	return result, nil
}

// applyValues sets each key of values on u, in sorted key order so the
// first reported error is deterministic.
func applyValues(ctx context.Context, u *footprint.UsageProfile, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	logger := logging.FromContext(ctx)
	for _, rawKey := range keys {
		key := strings.ToLower(strings.TrimSpace(rawKey))
		value := values[rawKey]

		if f, ok := lookupQuantity(key); ok {
			q, exact := coerceValue(value)
			if !exact {
				logger.Debug().
					Str("component", "profile").
					Str("field", key).
					Interface("value", value).
					Msg("coerced usage value to 0")
			}
			*f.ptr(u) = q
			continue
		}

		if err := applyEnum(u, key, value); err != nil {
			return err
		}
	}
	return nil
}

func applyEnum(u *footprint.UsageProfile, key string, value any) error {
	switch key {
	case KeyYouTubeQuality, KeyNetflixQuality:
		s, err := enumString(key, value)
		if err != nil {
			return err
		}
		q, err := footprint.ParseQuality(strings.ToLower(s))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == KeyYouTubeQuality {
			u.YouTubeQuality = q
		} else {
			u.NetflixQuality = q
		}
	case KeyDevices:
		devices, err := parseDevices(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		u.Devices = devices
	case KeyConnection:
		s, err := enumString(key, value)
		if err != nil {
			return err
		}
		c, err := footprint.ParseConnection(strings.ToLower(s))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		u.Connection = c
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return nil
}

func cloneUsage(u footprint.UsageProfile) footprint.UsageProfile {
	c := u
	if u.Devices != nil {
		c.Devices = append([]footprint.DeviceKind(nil), u.Devices...)
	}
	return c
}

// ToDocument converts a usage profile to its on-disk shape.
func ToDocument(name string, u footprint.UsageProfile) Document {
	usage := make(map[string]any, len(quantityFields)+4)
	for _, f := range quantityFields {
		usage[f.name] = *f.ptr(&u)
	}
	usage[KeyYouTubeQuality] = string(u.YouTubeQuality)
	usage[KeyNetflixQuality] = string(u.NetflixQuality)
	devices := make([]string, len(u.Devices))
	for i, d := range u.Devices {
		devices[i] = string(d)
	}
	usage[KeyDevices] = devices
	usage[KeyConnection] = string(u.Connection)

	return Document{SchemaVersion: SchemaVersion, Name: name, Usage: usage}
}

// Encode writes doc to w in format.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding YAML profile: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML profile: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding JSON profile: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
