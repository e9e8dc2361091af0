package triage

import "github.com/google/uuid"

// Symptom is a predefined catalog entry. Urgency is the default urgency and
// does not vary by trimester.
type Symptom struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Urgency     Urgency  `json:"urgency" yaml:"urgency"`
	CareTitle   string   `json:"care_title" yaml:"care_title"`
	CareTips    []string `json:"care_tips" yaml:"care_tips"`
}

// CustomSymptom is a free-text symptom entered by the user. It has no catalog
// entry and no intrinsic urgency.
type CustomSymptom struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// NewCustomSymptom assigns a fresh opaque id to name.
func NewCustomSymptom(name string) CustomSymptom {
	return CustomSymptom{ID: uuid.NewString(), Name: name}
}

// Catalog is an immutable, ordered list of predefined symptoms.
type Catalog struct {
	symptoms []Symptom
	byID     map[int]int
}

// NewCatalog copies symptoms into a catalog. On duplicate ids the first entry
// wins.
func NewCatalog(symptoms []Symptom) *Catalog {
	c := &Catalog{
		symptoms: make([]Symptom, 0, len(symptoms)),
		byID:     make(map[int]int, len(symptoms)),
	}
	for _, s := range symptoms {
		if _, dup := c.byID[s.ID]; dup {
			continue
		}
		c.byID[s.ID] = len(c.symptoms)
		c.symptoms = append(c.symptoms, cloneSymptom(s))
	}
	return c
}

// Lookup returns the symptom with the given id.
func (c *Catalog) Lookup(id int) (Symptom, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Symptom{}, false
	}
	return cloneSymptom(c.symptoms[i]), true
}

// Symptoms returns the catalog in display order.
func (c *Catalog) Symptoms() []Symptom {
	out := make([]Symptom, len(c.symptoms))
	for i, s := range c.symptoms {
		out[i] = cloneSymptom(s)
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.symptoms)
}

func cloneSymptom(s Symptom) Symptom {
	s.CareTips = append([]string(nil), s.CareTips...)
	return s
}

var defaultCatalog = NewCatalog([]Symptom{
	{
		ID: 1, Name: "Nausea", Description: "Morning sickness", Urgency: Low,
		CareTitle: "Managing Nausea",
		CareTips: []string{
			"Eat small, frequent meals throughout the day",
			"Try ginger tea or ginger candies",
			"Avoid strong smells that trigger nausea",
			"Stay hydrated with small sips of water",
			"Consider vitamin B6 supplements (consult your doctor first)",
		},
	},
	{
		ID: 2, Name: "Headache", Description: "Head pain or tension", Urgency: Medium,
		CareTitle: "Headache Relief",
		CareTips: []string{
			"Rest in a dark, quiet room",
			"Apply a cold or warm compress to your head",
			"Practice relaxation techniques",
			"Stay hydrated",
			"Consult your doctor before taking any medication",
		},
	},
	{
		ID: 3, Name: "Fatigue", Description: "Feeling tired or exhausted", Urgency: Low,
		CareTitle: "Managing Fatigue",
		CareTips: []string{
			"Take short naps when possible",
			"Prioritize getting 7-9 hours of sleep at night",
			"Eat iron-rich foods",
			"Stay hydrated and maintain a balanced diet",
			"Light exercise like walking can boost energy",
		},
	},
	{
		ID: 4, Name: "Back Pain", Description: "Lower or upper back discomfort", Urgency: Medium,
		CareTitle: "Back Pain Relief",
		CareTips: []string{
			"Practice good posture",
			"Use a pregnancy support belt",
			"Apply heat to sore areas",
			"Sleep with a pregnancy pillow",
			"Try prenatal yoga or gentle stretching",
		},
	},
	{
		ID: 5, Name: "Swelling", Description: "Swelling in hands, feet, or face", Urgency: Medium,
		CareTitle: "Reducing Swelling",
		CareTips: []string{
			"Elevate your feet when sitting or lying down",
			"Avoid standing for long periods",
			"Wear comfortable, supportive shoes",
			"Reduce sodium intake",
			"Stay hydrated and avoid excessive heat",
		},
	},
	{
		ID: 6, Name: "Dizziness", Description: "Feeling lightheaded or dizzy", Urgency: High,
		CareTitle: "Managing Dizziness",
		CareTips: []string{
			"Change positions slowly",
			"Stay hydrated",
			"Eat small, frequent meals",
			"Avoid hot showers or baths",
			"If severe or accompanied by other symptoms, contact your doctor immediately",
		},
	},
	{
		ID: 7, Name: "Cramps", Description: "Muscle cramps", Urgency: High,
		CareTitle: "Relieving Cramps",
		CareTips: []string{
			"Stay hydrated",
			"Gentle stretching",
			"Apply warm (not hot) compress to the area",
			"Rest on your left side",
			"If severe or rhythmic, contact your healthcare provider immediately",
		},
	},
	{
		ID: 8, Name: "Insomnia", Description: "Difficulty sleeping", Urgency: Low,
		CareTitle: "Improving Sleep",
		CareTips: []string{
			"Establish a regular sleep schedule",
			"Create a comfortable sleep environment",
			"Use pregnancy pillows for support",
			"Avoid caffeine and large meals before bed",
			"Practice relaxation techniques like deep breathing",
		},
	},
	{
		ID: 9, Name: "Heartburn", Description: "Acid reflux or burning sensation", Urgency: Low,
		CareTitle: "Heartburn Relief",
		CareTips: []string{
			"Eat smaller, more frequent meals",
			"Avoid spicy, fatty, or acidic foods",
			"Stay upright after eating",
			"Sleep with your upper body elevated",
			"Talk to your doctor about safe antacids",
		},
	},
	{
		ID: 10, Name: "Mood Swings", Description: "Emotional changes or mood fluctuations", Urgency: Medium,
		CareTitle: "Managing Mood Swings",
		CareTips: []string{
			"Practice self-care and relaxation techniques",
			"Get regular exercise",
			"Ensure adequate sleep",
			"Connect with other pregnant women or support groups",
			"Talk to your healthcare provider if mood changes are severe",
		},
	},
})

// DefaultCatalog returns the compiled-in symptom catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
