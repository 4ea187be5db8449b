package bmi

// WalkingRecommendation is a fixed daily walking bundle for a BMI category.
type WalkingRecommendation struct {
	DailySteps int      `json:"dailySteps"`
	Duration   string   `json:"duration"`
	Intensity  string   `json:"intensity"`
	Tips       []string `json:"tips"`
}

var walkingPlans = map[Category]WalkingRecommendation{
	CategoryUnderweight: {
		DailySteps: 7000,
		Duration:   "20-30 minutes",
		Intensity:  "Light to moderate",
		Tips: []string{
			"Focus on building strength alongside walking",
			"Ensure adequate nutrition to support activity",
			"Don't overexert - rest is important for recovery",
			"Consider resistance training 2-3 times per week",
		},
	},
	CategoryNormal: {
		DailySteps: 10000,
		Duration:   "30-45 minutes",
		Intensity:  "Moderate pace",
		Tips: []string{
			"Maintain your healthy habits",
			"Vary your routes to keep it interesting",
			"Try interval walking for extra benefits",
			"Include some hills for added challenge",
		},
	},
	CategoryOverweight: {
		DailySteps: 12000,
		Duration:   "45-60 minutes",
		Intensity:  "Moderate to brisk",
		Tips: []string{
			"Break walks into 2-3 sessions if needed",
			"Focus on consistency over intensity",
			"Combine with dietary changes for best results",
			"Track your progress to stay motivated",
		},
	},
	CategoryObese: {
		DailySteps: 8000,
		Duration:   "30-40 minutes",
		Intensity:  "Start slow, build gradually",
		Tips: []string{
			"Begin with 10-minute walks, 3 times daily",
			"Choose comfortable, supportive shoes",
			"Walk on flat, even surfaces initially",
			"Consult your doctor before starting",
			"Listen to your body and rest when needed",
		},
	},
}

// DefaultWalkingPlan is returned to callers without a profile.
func DefaultWalkingPlan() WalkingRecommendation {
	return WalkingRecommendation{
		DailySteps: 10000,
		Duration:   "30-45 minutes",
		Intensity:  "Moderate pace",
		Tips: []string{
			"Start with 5-10 minutes if you're new to walking",
			"Walk at a pace where you can talk but not sing",
			"Gradually increase your duration each week",
			"Stay hydrated before, during, and after walking",
		},
	}
}

// WalkingPlan is a pure lookup of the walking bundle for the given category.
func WalkingPlan(category Category) WalkingRecommendation {
	plan, ok := walkingPlans[category]
	if !ok {
		return DefaultWalkingPlan()
	}
	return plan
}
