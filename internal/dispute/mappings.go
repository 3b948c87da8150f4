package dispute

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed mappings.yaml
var defaultMappingsYAML []byte

type canonicalName struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
}

type reasonRule struct {
	ReasonContains []string `yaml:"reason_contains"`
	OriginContains []string `yaml:"origin_contains"`
	Responsible    string   `yaml:"responsible"`
	Specific       string   `yaml:"specific"`
}

type mappingsFile struct {
	Restaurants struct {
		Fallback  string          `yaml:"fallback"`
		Canonical []canonicalName `yaml:"canonical"`
	} `yaml:"restaurants"`
	Reasons struct {
		Fallback struct {
			Responsible string `yaml:"responsible"`
			Specific    string `yaml:"specific"`
		} `yaml:"fallback"`
		Rules []reasonRule `yaml:"rules"`
	} `yaml:"reasons"`
}

// Mappings holds the restaurant canonicalization table and the reason
// classification rules. Loaded once at startup and read-only afterwards.
type Mappings struct {
	fallbackName string
	byVariant    map[string]string

	reasonRules    []reasonRule
	fallbackReason Classification
}

// Classification is the normalized (responsible party, specific reason) pair.
type Classification struct {
	ResponsibleParty string `json:"responsibleParty"`
	SpecificReason   string `json:"specificReason"`
}

// LoadMappings reads the mapping table from path, or falls back to the
// embedded default table when path is empty.
func LoadMappings(path string) (*Mappings, error) {
	raw := defaultMappingsYAML
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read mappings file: %w", err)
		}
		raw = b
	}
	var f mappingsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse mappings: %w", err)
	}

	m := &Mappings{
		fallbackName: f.Restaurants.Fallback,
		byVariant:    make(map[string]string),
		reasonRules:  f.Reasons.Rules,
		fallbackReason: Classification{
			ResponsibleParty: f.Reasons.Fallback.Responsible,
			SpecificReason:   f.Reasons.Fallback.Specific,
		},
	}
	if m.fallbackName == "" {
		m.fallbackName = "Desconhecido"
	}
	for _, c := range f.Restaurants.Canonical {
		// Canonical names map to themselves so normalization is idempotent.
		m.byVariant[foldName(c.Name)] = c.Name
		for _, v := range c.Variants {
			m.byVariant[foldName(v)] = c.Name
		}
	}
	return m, nil
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
