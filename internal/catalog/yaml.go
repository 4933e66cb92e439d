package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlCatalog is the on-disk shape of a word pack:
//
//	id: animals
//	title: Animals
//	levels:
//	  - name: Cattle
//	    pairs:
//	      - [inka, inka]
//	      - {singular: ihene, plural: ihene}
type yamlCatalog struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title"`
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Name  string     `yaml:"name,omitempty"`
	Pairs []yamlPair `yaml:"pairs"`
}

// yamlPair accepts either a two-item sequence or a singular/plural mapping.
type yamlPair struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

func (p *yamlPair) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var words []string
		if err := node.Decode(&words); err != nil {
			return err
		}
		if len(words) != 2 {
			return fmt.Errorf("line %d: pair needs exactly 2 words, got %d", node.Line, len(words))
		}
		p.Singular, p.Plural = words[0], words[1]
		return nil
	case yaml.MappingNode:
		type plain yamlPair
		return node.Decode((*plain)(p))
	default:
		return fmt.Errorf("line %d: pair must be a list or a mapping", node.Line)
	}
}

// ParseYAML decodes and validates a YAML word pack.
func ParseYAML(data []byte) (Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Catalog{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	c := Catalog{
		ID:     yc.ID,
		Title:  yc.Title,
		Levels: make([]Level, 0, len(yc.Levels)),
	}
	for _, yl := range yc.Levels {
		level := Level{Name: yl.Name, Pairs: make([]WordPair, 0, len(yl.Pairs))}
		for _, yp := range yl.Pairs {
			level.Pairs = append(level.Pairs, WordPair{Singular: yp.Singular, Plural: yp.Plural})
		}
		c.Levels = append(c.Levels, level)
	}

	if err := Validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// MarshalYAML encodes a catalog in the same format ParseYAML reads.
func MarshalYAML(c Catalog) ([]byte, error) {
	yc := yamlCatalog{ID: c.ID, Title: c.Title}
	for _, l := range c.Levels {
		yl := yamlLevel{Name: l.Name}
		for _, p := range l.Pairs {
			yl.Pairs = append(yl.Pairs, yamlPair{Singular: p.Singular, Plural: p.Plural})
		}
		yc.Levels = append(yc.Levels, yl)
	}
	return yaml.Marshal(yc)
}

// LoadFile reads a word pack from disk. A pack without an id takes the file
// name, and one without a title takes its id.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := ParseYAML(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	if c.ID == "" {
		base := filepath.Base(path)
		c.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if c.Title == "" {
		c.Title = c.ID
	}
	return c, nil
}
