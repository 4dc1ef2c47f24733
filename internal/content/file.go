package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"pkt.systems/termfolio/schema"
)

// Format names a content file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts yaml, yml or toml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported content format %q (use yaml or toml)", name)
	}
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("content file %q has no extension", path)
	}
	return ParseFormat(ext)
}

// LoadFile reads, defaults and validates a portfolio document.
func LoadFile(path string) (schema.Portfolio, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return schema.Portfolio{}, errors.New("content file path is required")
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return schema.Portfolio{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Portfolio{}, fmt.Errorf("read content: %w", err)
	}
	p, err := Decode(data, format)
	if err != nil {
		return schema.Portfolio{}, fmt.Errorf("%s: %w", path, err)
	}
	p = FillDefaults(p)
	if err := Validate(p); err != nil {
		return schema.Portfolio{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode parses data without defaulting or validation.
func Decode(data []byte, format Format) (schema.Portfolio, error) {
	var p schema.Portfolio
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return p, nil
			}
			return schema.Portfolio{}, fmt.Errorf("%w: parse yaml: %v", schema.ErrInvalidContent, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return schema.Portfolio{}, fmt.Errorf("%w: parse toml: %v", schema.ErrInvalidContent, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return schema.Portfolio{}, fmt.Errorf("%w: unknown toml key %q", schema.ErrInvalidContent, undecoded[0].String())
		}
	default:
		return schema.Portfolio{}, fmt.Errorf("unsupported content format %q", format)
	}
	return p, nil
}

// Encode renders p in the requested format.
func Encode(p schema.Portfolio, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(p); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported content format %q", format)
	}
	return buf.Bytes(), nil
}

// FillDefaults replaces missing sections with the built-in fixtures.
// An explicitly empty list is kept as is.
func FillDefaults(p schema.Portfolio) schema.Portfolio {
	def := Default()
	fillString(&p.Profile.Name, def.Profile.Name)
	fillString(&p.Profile.Handle, def.Profile.Handle)
	fillString(&p.Profile.About, def.Profile.About)
	fillString(&p.Profile.Whoami, def.Profile.Whoami)
	fillString(&p.Profile.Resume, def.Profile.Resume)
	fillString(&p.Profile.LeetCode, def.Profile.LeetCode)
	fillString(&p.Profile.GFG, def.Profile.GFG)
	if p.Projects == nil {
		p.Projects = def.Projects
	}
	if p.SkillCategories == nil {
		p.SkillCategories = def.SkillCategories
	}
	if p.Achievements == nil {
		p.Achievements = def.Achievements
	}
	if p.SocialLinks == nil {
		p.SocialLinks = def.SocialLinks
	}
	if p.MotivationQuotes == nil {
		p.MotivationQuotes = def.MotivationQuotes
	}
	if statsEmpty(p.Stats) {
		p.Stats = def.Stats
	}
	return p
}

func fillString(dst *string, fallback string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = fallback
	}
}

func statsEmpty(s schema.Stats) bool {
	return s.ProblemsSolved == 0 &&
		s.EasyProblems == 0 &&
		s.MediumProblems == 0 &&
		s.HardProblems == 0 &&
		len(s.Languages) == 0 &&
		s.Skills == (schema.SkillStats{})
}
