package bmi

// Category of a computed body mass index value.
type Category string

const (
	CategoryUnderweight Category = "underweight"
	CategoryNormal      Category = "normal"
	CategoryOverweight  Category = "overweight"
	CategoryObese       Category = "obese"
)

type Result struct {
	BMI            float64  `json:"bmi"`
	Category       Category `json:"category"`
	Recommendation string   `json:"recommendation"`
}

var recommendations = map[Category]string{
	CategoryUnderweight: "You may be underweight. Consider consulting a healthcare provider or nutritionist to develop a healthy weight gain plan with nutrient-rich foods and appropriate exercise.",
	CategoryNormal:      "You're at a healthy weight! Maintain it through a balanced diet rich in fruits, vegetables, whole grains, and regular physical activity (150 minutes of moderate exercise weekly).",
	CategoryOverweight:  "You're in the overweight range. Focus on portion control, increase physical activity to 200-300 minutes weekly, and choose whole foods over processed options. Small, sustainable changes work best.",
	CategoryObese:       "Your BMI indicates obesity, which increases health risks. Consult with healthcare professionals for a comprehensive plan including nutrition counseling, structured exercise, and possibly medical support. Aim for gradual, sustainable weight loss of 1-2 pounds per week.",
}

// Calculate computes the body mass index for the given height and weight
// and classifies it. Inputs must be positive, callers validate them at the
// HTTP boundary.
func Calculate(heightCm, weightKg float64) Result {
	heightMeters := heightCm / 100
	value := weightKg / (heightMeters * heightMeters)
	category := Categorize(value)
	return Result{
		BMI:            value,
		Category:       category,
		Recommendation: recommendations[category],
	}
}

// Categorize maps a BMI value to its category. Interval bounds are
// half-open, the lower bound belongs to the higher category.
func Categorize(value float64) Category {
	switch {
	case value < 18.5:
		return CategoryUnderweight
	case value < 25:
		return CategoryNormal
	case value < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func ValidCategory(c Category) bool {
	switch c {
	case CategoryUnderweight, CategoryNormal, CategoryOverweight, CategoryObese:
		return true
	default:
		return false
	}
}
