package scheme

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemeConfig is the YAML shape of one declaratively-configured custom
// scheme. Pattern and the normalization fields are optional; an omitted
// pattern means the scheme matches everything.
type SchemeConfig struct {
	Name string `yaml:"name"`
	// Pattern is an anchored regular expression the value must match.
	Pattern string `yaml:"pattern"`
	// Prefixes are stripped from the front of the value (case-insensitive)
	// during normalization, e.g. a "myscheme:" label or a resolver URL.
	Prefixes []string `yaml:"prefixes"`
	// Lowercase lowercases the value after prefix stripping.
	Lowercase bool `yaml:"lowercase"`
	// Filter lists scheme names to suppress when this scheme matches.
	Filter []string `yaml:"filter"`
	// URLTemplate renders the landing page, with {scheme} and {pid}
	// placeholders, e.g. "{scheme}://example.org/records/{pid}".
	URLTemplate string `yaml:"url_template"`
}

// SchemeFile is the top-level YAML config format.
type SchemeFile struct {
	Schemes []SchemeConfig `yaml:"schemes"`
}

// LoadYAML parses declarative custom-scheme registrations from YAML bytes.
// Unknown keys are rejected, so a misspelled config field fails loudly
// instead of silently taking a default.
func LoadYAML(data []byte) ([]Registration, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file SchemeFile
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing scheme YAML: %w", err)
	}

	regs := make([]Registration, 0, len(file.Schemes))
	for i := range file.Schemes {
		cfg := file.Schemes[i]
		if cfg.Name == "" {
			return nil, fmt.Errorf("scheme %d: missing name", i)
		}
		regs = append(regs, Registration{Name: cfg.Name, Factory: cfg.factory()})
	}
	return regs, nil
}

// LoadPath loads declarative custom-scheme registrations from a YAML file
// or from every .yaml/.yml file under a directory.
func LoadPath(path string) ([]Registration, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return loadFile(path)
	}

	var regs []Registration
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAMLFile(p) {
			return nil
		}
		fileRegs, err := loadFile(p)
		if err != nil {
			return err
		}
		regs = append(regs, fileRegs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func loadFile(path string) ([]Registration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	regs, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return regs, nil
}

func isYAMLFile(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// factory compiles the declarative fields into a Config factory.
func (c SchemeConfig) factory() Factory {
	return func() (*Config, error) {
		cfg := &Config{Filter: c.Filter}

		if c.Pattern != "" {
			re, err := regexp.Compile(c.Pattern)
			if err != nil {
				return nil, fmt.Errorf("pattern for %q: %w", c.Name, err)
			}
			cfg.Validator = re.MatchString
		}

		if len(c.Prefixes) > 0 || c.Lowercase {
			prefixes := c.Prefixes
			lower := c.Lowercase
			cfg.Normalizer = func(val string) string {
				for _, p := range prefixes {
					if len(val) >= len(p) && strings.EqualFold(val[:len(p)], p) {
						val = val[len(p):]
						break
					}
				}
				if lower {
					val = strings.ToLower(val)
				}
				return val
			}
		}

		if c.URLTemplate != "" {
			tmpl := c.URLTemplate
			cfg.URLGenerator = func(urlScheme, pid string) string {
				return strings.NewReplacer("{scheme}", urlScheme, "{pid}", pid).Replace(tmpl)
			}
		}

		return cfg, nil
	}
}
