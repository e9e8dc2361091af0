package gestation

// FallbackBabySize is shown before the first bucket of the size table.
const FallbackBabySize = "precious baby 👶🏾"

const (
	sizeBucketWidth = 4
	largestBucket   = 40
)

// babySizes maps 4-week buckets to a fruit/vegetable comparison.
var babySizes = map[int]string{
	4:  "poppy seed 🌱",
	8:  "kidney bean 🫘",
	12: "lime 🍋",
	16: "avocado 🥑",
	20: "banana 🍌",
	24: "corn 🌽",
	28: "eggplant 🍆",
	32: "jicama 🟤",
	36: "papaya 🟠",
	40: "pumpkin 🎃",
}

// BabySizeForWeeks returns the size label for the bucket at or below weeks.
// Weeks past the largest bucket use the week-40 label.
func BabySizeForWeeks(weeks int) string {
	if weeks < sizeBucketWidth {
		return FallbackBabySize
	}
	bucket := weeks / sizeBucketWidth * sizeBucketWidth
	if bucket > largestBucket {
		bucket = largestBucket
	}
	if label, ok := babySizes[bucket]; ok {
		return label
	}
	return FallbackBabySize
}

// BabySizeBuckets returns a copy of the size table.
func BabySizeBuckets() map[int]string {
	out := make(map[int]string, len(babySizes))
	for k, v := range babySizes {
		out[k] = v
	}
	return out
}
