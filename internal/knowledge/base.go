// Package knowledge holds the static topic table: normalized aliases
// mapped to descriptive text. The table is built once at process start
// and read-only afterwards.
package knowledge

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/envirosense/actionserver/pkg/ports"
	"gopkg.in/yaml.v3"
)

const (
	descCO   = "Carbon Monoxide (CO) is a toxic gas produced by incomplete burning of fuels. In high concentrations, it reduces oxygen in the bloodstream."
	descSO2  = "Sulphur Dioxide (SO₂) is a gas from burning fossil fuels like coal and oil. It harms the respiratory system and contributes to acid rain."
	descO3   = "Ground-level Ozone (O₃) is a major pollutant created when sunlight reacts with emissions from vehicles and industry. It is a key component of smog."
	descNO2  = "Nitrogen Dioxide (NO₂) comes from burning fuel, mainly from vehicles and power plants. It can irritate the respiratory system."
	descPM25 = "PM2.5 are fine inhalable particles that can travel deep into the respiratory tract, reaching the lungs and causing serious health issues."
	descPM10 = "PM10 are coarse inhalable particles from sources like dust and construction. They can irritate the eyes, nose, and throat."
)

func builtinEntries() map[string]string {
	return map[string]string{
		"carbon monoxide":  descCO,
		"co":               descCO,
		"sulphur dioxide":  descSO2,
		"so2":              descSO2,
		"ozone":            descO3,
		"o3":               descO3,
		"nitrogen dioxide": descNO2,
		"no2":              descNO2,
		"pm2.5":            descPM25,
		"pm10":             descPM10,
	}
}

// Base is the read-only alias table.
type Base struct {
	entries map[string]string
	aliases []string
}

// New builds a base from alias→description entries. Aliases are
// normalized to lower case.
func New(entries map[string]string) *Base {
	b := &Base{entries: make(map[string]string, len(entries))}
	for alias, desc := range entries {
		b.entries[strings.ToLower(alias)] = desc
	}
	for alias := range b.entries {
		b.aliases = append(b.aliases, alias)
	}
	sort.Strings(b.aliases)
	return b
}

// Builtin returns the base over the built-in pollutant entries.
func Builtin() *Base {
	return New(builtinEntries())
}

// FromSource loads the table once from an external source.
func FromSource(ctx context.Context, src ports.KnowledgeSource) (*Base, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge source: %w", err)
	}
	return New(entries), nil
}

// LoadFile reads a YAML file of alias→description entries.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}
	return New(entries), nil
}

// Describe looks up the description for an alias, case-insensitively.
func (b *Base) Describe(alias string) (string, bool) {
	desc, ok := b.entries[strings.ToLower(alias)]
	return desc, ok
}

// Scan returns every known alias occurring in text as a case-insensitive
// substring, ordered by position of first appearance. It is the fallback
// when entity extraction produced nothing.
func (b *Base) Scan(text string) []string {
	lowered := strings.ToLower(text)

	type match struct {
		alias string
		index int
	}
	var matches []match
	for _, alias := range b.aliases {
		if i := strings.Index(lowered, alias); i >= 0 {
			matches = append(matches, match{alias: alias, index: i})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].index < matches[j].index
	})

	found := make([]string, 0, len(matches))
	for _, m := range matches {
		found = append(found, m.alias)
	}
	return found
}

// Len returns the number of known aliases.
func (b *Base) Len() int {
	return len(b.entries)
}
