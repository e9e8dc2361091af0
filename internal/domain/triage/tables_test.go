package triage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/gestation"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 10, c.Len())

	s, ok := c.Lookup(6)
	require.True(t, ok)
	assert.Equal(t, "Dizziness", s.Name)
	assert.Equal(t, High, s.Urgency)
	assert.Len(t, s.CareTips, 5)

	_, ok = c.Lookup(11)
	assert.False(t, ok)

	names := make([]string, 0, c.Len())
	for _, s := range c.Symptoms() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Nausea", "Headache", "Fatigue", "Back Pain", "Swelling",
		"Dizziness", "Cramps", "Insomnia", "Heartburn", "Mood Swings",
	}, names)
}

func TestCatalog_Immutable(t *testing.T) {
	c := DefaultCatalog()
	s, _ := c.Lookup(1)
	s.CareTips[0] = "mutated"
	s.Urgency = High

	again, _ := c.Lookup(1)
	assert.NotEqual(t, "mutated", again.CareTips[0])
	assert.Equal(t, Low, again.Urgency)
}

func TestNewCatalog_FirstDuplicateWins(t *testing.T) {
	c := NewCatalog([]Symptom{
		{ID: 1, Name: "A", Urgency: High},
		{ID: 1, Name: "B", Urgency: Low},
	})
	assert.Equal(t, 1, c.Len())
	s, _ := c.Lookup(1)
	assert.Equal(t, "A", s.Name)
}

func TestDefaultAdviceTable_CoversCatalog(t *testing.T) {
	table := DefaultAdviceTable()
	for _, s := range DefaultCatalog().Symptoms() {
		for _, tr := range []gestation.Trimester{gestation.First, gestation.Second, gestation.Third} {
			lines, ok := table.Lookup(s.Name, tr.Label())
			assert.True(t, ok, "%s / %s", s.Name, tr.Label())
			assert.NotEmpty(t, lines)
		}
	}
}

func TestLoadAdviceTable_NormalizesStringOrList(t *testing.T) {
	src := `
Nausea:
  1st Trimester: Single line.
  2nd Trimester:
    - First line.
    - Second line.
`
	table, err := LoadAdviceTable(strings.NewReader(src))
	require.NoError(t, err)

	lines, ok := table.Lookup("Nausea", "1st Trimester")
	require.True(t, ok)
	assert.Equal(t, []string{"Single line."}, lines)

	lines, ok = table.Lookup("Nausea", "2nd Trimester")
	require.True(t, ok)
	assert.Equal(t, []string{"First line.", "Second line."}, lines)

	_, ok = table.Lookup("Nausea", "3rd Trimester")
	assert.False(t, ok)
}

func TestLoadAdviceTable_CanonicalizesFileLabels(t *testing.T) {
	table, err := LoadAdviceTable(strings.NewReader("Nausea:\n  \" 1ST trimester \": Sip water.\n"))
	require.NoError(t, err)

	lines, ok := table.Lookup("Nausea", "1st Trimester")
	require.True(t, ok)
	assert.Equal(t, []string{"Sip water."}, lines)

	_, ok = table.Lookup("Nausea", "1ST trimester")
	assert.False(t, ok)
}

func TestLoadAdviceTable_Errors(t *testing.T) {
	_, err := LoadAdviceTable(strings.NewReader("Nausea:\n  9th Trimester: nope\n"))
	assert.Error(t, err)

	_, err = LoadAdviceTable(strings.NewReader("Nausea:\n  1st Trimester:\n    key: value\n"))
	assert.Error(t, err)

	table, err := LoadAdviceTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestLoadAdviceTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Headache:\n  3rd Trimester: Call your midwife.\n"), 0o644))

	table, err := LoadAdviceTableFile(path)
	require.NoError(t, err)

	c := NewComposer(nil, table)
	r := c.Compose([]int{idHeadache, idNausea}, nil, "3rd Trimester")
	require.Len(t, r.Bundle, 2)
	assert.Equal(t, []string{"Call your midwife."}, r.Bundle[0].AdviceLines)
	assert.Equal(t, []string{NoAdviceLine}, r.Bundle[1].AdviceLines)

	_, err = LoadAdviceTableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestUrgency_TextRoundTrip(t *testing.T) {
	for _, u := range []Urgency{Low, Medium, High} {
		b, err := json.Marshal(u)
		require.NoError(t, err)

		var got Urgency
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, u, got)
	}

	var u Urgency
	assert.Error(t, json.Unmarshal([]byte(`"critical"`), &u))
	_, err := Urgency(7).MarshalText()
	assert.Error(t, err)
}

func TestUrgency_Ordering(t *testing.T) {
	assert.True(t, Low < Medium && Medium < High)
	assert.Equal(t, High, MaxUrgency(Low, High))
	assert.Equal(t, Medium, MaxUrgency(Medium, Low))
	assert.Equal(t, "medium", Medium.String())

	parsed, err := ParseUrgency(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, High, parsed)
}

func TestNewCustomSymptom_AssignsID(t *testing.T) {
	a := NewCustomSymptom("Tingling")
	b := NewCustomSymptom("Tingling")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Tingling", a.Name)
}
