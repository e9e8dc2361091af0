// Package triage turns a selection of catalog and custom symptoms into an
// aggregate urgency and an ordered list of trimester-specific advice.
package triage

import "fmt"

const (
	// NoAdviceLine is used when the advice table has no entry for a symptom
	// in the requested trimester.
	NoAdviceLine = "No specific advice for this symptom and trimester."

	Disclaimer = "This advice is for informational purposes only. Always consult with your healthcare provider for medical advice."
)

// customSymptomAdvice is shared by every custom symptom.
var customSymptomAdvice = []string{
	"Track when this symptom occurs and what might trigger it",
	"Note the severity and duration of the symptom",
	"Discuss this symptom with your healthcare provider at your next appointment",
	"Rest and stay hydrated",
	"Consider keeping a symptom journal to share with your doctor",
}

// CustomSymptomAdvice returns the generic self-care list given for custom
// symptoms.
func CustomSymptomAdvice() []string {
	return append([]string(nil), customSymptomAdvice...)
}

// AdviceItem is one card of the advice bundle.
type AdviceItem struct {
	Title       string   `json:"title" yaml:"title"`
	AdviceLines []string `json:"advice_lines" yaml:"advice_lines"`
}

// Result is the outcome of a triage run.
type Result struct {
	Urgency    Urgency      `json:"urgency" yaml:"urgency"`
	Guidance   string       `json:"guidance" yaml:"guidance"`
	Bundle     []AdviceItem `json:"bundle" yaml:"bundle"`
	Disclaimer string       `json:"disclaimer" yaml:"disclaimer"`
}

// Composer triages symptom selections against a catalog and advice table.
// It holds no mutable state and is safe for concurrent use.
type Composer struct {
	catalog *Catalog
	advice  *AdviceTable
}

// NewComposer builds a composer. Nil arguments fall back to the compiled-in
// catalog and advice table.
func NewComposer(catalog *Catalog, advice *AdviceTable) *Composer {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if advice == nil {
		advice = DefaultAdviceTable()
	}
	return &Composer{catalog: catalog, advice: advice}
}

var defaultComposer = NewComposer(nil, nil)

// Compose runs the default composer.
func Compose(ids []int, custom []CustomSymptom, trimesterLabel string) Result {
	return defaultComposer.Compose(ids, custom, trimesterLabel)
}

func (c *Composer) Catalog() *Catalog {
	return c.catalog
}

// Compose aggregates urgency and builds the advice bundle. Catalog items come
// first in the order of ids, then custom items in the order given.
func (c *Composer) Compose(ids []int, custom []CustomSymptom, trimesterLabel string) Result {
	u := c.Urgency(ids, custom)
	return Result{
		Urgency:    u,
		Guidance:   u.Guidance(),
		Bundle:     c.Bundle(ids, custom, trimesterLabel),
		Disclaimer: Disclaimer,
	}
}

// Urgency is the max of the catalog defaults of ids, with unknown ids counting
// as Low. Any custom symptom lifts a Low result to Medium and never higher.
func (c *Composer) Urgency(ids []int, custom []CustomSymptom) Urgency {
	highest := Low
	for _, id := range ids {
		s, ok := c.catalog.Lookup(id)
		if !ok {
			continue
		}
		highest = MaxUrgency(highest, s.Urgency)
	}
	if len(custom) > 0 && highest == Low {
		highest = Medium
	}
	return highest
}

// Bundle builds the ordered advice items. Unknown catalog ids are skipped and a
// repeated id yields one item at its first position.
func (c *Composer) Bundle(ids []int, custom []CustomSymptom, trimesterLabel string) []AdviceItem {
	items := make([]AdviceItem, 0, len(ids)+len(custom))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		s, ok := c.catalog.Lookup(id)
		if !ok {
			continue
		}
		lines, ok := c.advice.Lookup(s.Name, trimesterLabel)
		if !ok {
			lines = []string{NoAdviceLine}
		}
		items = append(items, AdviceItem{
			Title:       fmt.Sprintf("Advice for %s", s.Name),
			AdviceLines: lines,
		})
	}
	for _, cs := range custom {
		items = append(items, AdviceItem{
			Title:       fmt.Sprintf("Managing %s", cs.Name),
			AdviceLines: CustomSymptomAdvice(),
		})
	}
	return items
}
