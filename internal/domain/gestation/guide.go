package gestation

// WeekGuide is the week-by-week summary shown on the tracker: the baby's
// length, a size comparison and the precautions, common symptoms and tips for
// that stage.
type WeekGuide struct {
	Week           int       `json:"week" yaml:"week"`
	ReferenceWeek  int       `json:"reference_week" yaml:"reference_week"`
	WeeksRemaining int       `json:"weeks_remaining" yaml:"weeks_remaining"`
	Trimester      Trimester `json:"trimester" yaml:"trimester"`
	BabyLength     string    `json:"baby_length" yaml:"baby_length"`
	SizeComparison string    `json:"size_comparison" yaml:"size_comparison"`
	Precautions    []string  `json:"precautions" yaml:"precautions"`
	Symptoms       []string  `json:"symptoms" yaml:"symptoms"`
	Tips           []string  `json:"tips" yaml:"tips"`
}

type guideEntry struct {
	babyLength     string
	sizeComparison string
	precautions    []string
	symptoms       []string
	tips           []string
}

const (
	defaultBabyLength     = "Growing"
	defaultSizeComparison = "Your little miracle"
)

var (
	defaultPrecautions = []string{"Consult your healthcare provider"}
	defaultSymptoms    = []string{"Every pregnancy is unique"}
	defaultTips        = []string{"Take care of yourself"}
)

// guideWeeks is ascending; closestGuideWeek relies on it for tie-breaking.
var guideWeeks = []int{8, 12, 20, 28, 36}

var weekGuides = map[int]guideEntry{
	8: {
		babyLength:     "0.6 inches",
		sizeComparison: "Size of a raspberry",
		precautions: []string{
			"Take prenatal vitamins daily",
			"Avoid alcohol and smoking",
			"Limit caffeine intake",
			"Get adequate rest",
			"Stay hydrated",
		},
		symptoms: []string{"Morning sickness", "Fatigue", "Breast tenderness", "Frequent urination"},
		tips:     []string{"Eat small, frequent meals", "Get plenty of sleep", "Start gentle exercise"},
	},
	12: {
		babyLength:     "2.1 inches",
		sizeComparison: "Size of a lime",
		precautions: []string{
			"Continue prenatal vitamins",
			"Schedule first trimester screening",
			"Avoid raw fish and undercooked meat",
			"Maintain good hygiene",
			"Monitor weight gain",
		},
		symptoms: []string{"Reduced morning sickness", "Increased energy", "Visible baby bump"},
		tips:     []string{"Start telling family and friends", "Consider maternity clothes", "Stay active"},
	},
	20: {
		babyLength:     "6.5 inches",
		sizeComparison: "Size of a banana",
		precautions: []string{
			"Schedule anatomy scan",
			"Monitor fetal movements",
			"Maintain healthy diet",
			"Avoid sleeping on back",
			"Wear comfortable shoes",
		},
		symptoms: []string{"Feeling baby movements", "Growing belly", "Back pain", "Heartburn"},
		tips:     []string{"Start prenatal classes", "Plan nursery", "Practice relaxation techniques"},
	},
	28: {
		babyLength:     "14.8 inches",
		sizeComparison: "Size of an eggplant",
		precautions: []string{
			"Monitor blood pressure",
			"Watch for preeclampsia signs",
			"Get glucose screening test",
			"Count fetal movements daily",
			"Prepare birth plan",
		},
		symptoms: []string{"Shortness of breath", "Swollen feet", "Braxton Hicks contractions"},
		tips:     []string{"Pack hospital bag", "Install car seat", "Practice breathing exercises"},
	},
	36: {
		babyLength:     "18.7 inches",
		sizeComparison: "Size of a romaine lettuce",
		precautions: []string{
			"Weekly doctor visits",
			"Monitor contractions",
			"Watch for labor signs",
			"Avoid travel",
			"Rest frequently",
		},
		symptoms: []string{"Pelvic pressure", "Frequent urination", "Difficulty sleeping"},
		tips:     []string{"Finalize birth plan", "Prepare for breastfeeding", "Rest as much as possible"},
	},
}

// Guide returns the tracker summary for weeks, taken from the closest
// reference week. A week equally far from two reference weeks uses the
// earlier one, so week 10 reads week 8 and week 16 reads week 12.
func Guide(weeks int) WeekGuide {
	ref := closestGuideWeek(weeks)
	return buildGuide(weeks, ref, weekGuides[ref])
}

// GuideWeeks returns the reference weeks in ascending order.
func GuideWeeks() []int {
	return append([]int(nil), guideWeeks...)
}

func closestGuideWeek(weeks int) int {
	best := guideWeeks[0]
	for _, w := range guideWeeks[1:] {
		if abs(w-weeks) < abs(best-weeks) {
			best = w
		}
	}
	return best
}

func buildGuide(weeks, ref int, e guideEntry) WeekGuide {
	remaining := termWeeks - weeks
	if remaining < 0 {
		remaining = 0
	}
	return WeekGuide{
		Week:           weeks,
		ReferenceWeek:  ref,
		WeeksRemaining: remaining,
		Trimester:      TrimesterForWeeks(weeks),
		BabyLength:     orDefault(e.babyLength, defaultBabyLength),
		SizeComparison: orDefault(e.sizeComparison, defaultSizeComparison),
		Precautions:    linesOrDefault(e.precautions, defaultPrecautions),
		Symptoms:       linesOrDefault(e.symptoms, defaultSymptoms),
		Tips:           linesOrDefault(e.tips, defaultTips),
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// linesOrDefault always copies so callers cannot reach the package tables.
func linesOrDefault(lines, def []string) []string {
	if len(lines) == 0 {
		lines = def
	}
	return append([]string(nil), lines...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
