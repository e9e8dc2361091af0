package triage

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/gestation"
)

//go:embed advice.yaml
var defaultAdviceYAML []byte

// AdviceTable maps a symptom display name and a trimester label to one or more
// advice lines. It is read-only once built.
type AdviceTable struct {
	entries map[string]map[gestation.Trimester][]string
}

// adviceLines accepts either a YAML scalar or a sequence of scalars, so the
// rest of the package only ever sees a list.
type adviceLines []string

func (l *adviceLines) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = adviceLines{node.Value}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := node.Decode(&lines); err != nil {
			return err
		}
		*l = lines
		return nil
	default:
		return fmt.Errorf("line %d: advice must be a string or a list of strings", node.Line)
	}
}

// LoadAdviceTable parses a YAML advice table. Trimester keys must be one of
// the ordinal labels ("1st Trimester", ...); case and surrounding space in the
// file are forgiven, and keys are stored canonically.
func LoadAdviceTable(r io.Reader) (*AdviceTable, error) {
	var raw map[string]map[string]adviceLines
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode advice table: %w", err)
	}

	t := &AdviceTable{entries: make(map[string]map[gestation.Trimester][]string, len(raw))}
	for symptom, byLabel := range raw {
		name := strings.TrimSpace(symptom)
		if name == "" {
			return nil, fmt.Errorf("advice table: empty symptom name")
		}
		row := make(map[gestation.Trimester][]string, len(byLabel))
		for label, lines := range byLabel {
			tr, ok := gestation.ParseTrimesterLabel(label)
			if !ok {
				return nil, fmt.Errorf("advice table: symptom %q: unknown trimester %q", name, label)
			}
			if len(lines) == 0 {
				continue
			}
			row[tr] = append([]string(nil), lines...)
		}
		t.entries[name] = row
	}
	return t, nil
}

// LoadAdviceTableFile reads an advice table from a YAML file on disk.
func LoadAdviceTableFile(path string) (*AdviceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open advice table: %w", err)
	}
	defer f.Close()
	return LoadAdviceTable(f)
}

// Lookup returns the advice for symptom in the given trimester. Both keys must
// match exactly: "2nd trimester" is not "2nd Trimester". A missing symptom, an
// unrecognised label or a missing pair all report false.
func (t *AdviceTable) Lookup(symptom, trimesterLabel string) ([]string, bool) {
	tr, ok := trimesterByLabel[trimesterLabel]
	if !ok {
		return nil, false
	}
	lines, ok := t.entries[symptom][tr]
	if !ok {
		return nil, false
	}
	return append([]string(nil), lines...), true
}

var trimesterByLabel = map[string]gestation.Trimester{
	gestation.First.Label():  gestation.First,
	gestation.Second.Label(): gestation.Second,
	gestation.Third.Label():  gestation.Third,
}

// Len returns the number of symptoms in the table.
func (t *AdviceTable) Len() int {
	return len(t.entries)
}

var defaultAdvice = mustLoadAdvice(defaultAdviceYAML)

func mustLoadAdvice(data []byte) *AdviceTable {
	t, err := LoadAdviceTable(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("embedded advice table: %v", err))
	}
	return t
}

// DefaultAdviceTable returns the compiled-in advice table.
func DefaultAdviceTable() *AdviceTable {
	return defaultAdvice
}
