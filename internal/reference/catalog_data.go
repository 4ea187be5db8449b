package reference

var heartRateReferences = []HeartRateReference{
	{
		AgeGroup:     "Newborns (0-1 month)",
		RestingMin:   70,
		RestingMax:   190,
		MaxHeartRate: 220,
		ModerateMin:  110,
		ModerateMax:  154,
	},
	{
		AgeGroup:     "Infants (1-11 months)",
		RestingMin:   80,
		RestingMax:   160,
		MaxHeartRate: 220,
		ModerateMin:  110,
		ModerateMax:  154,
	},
	{
		AgeGroup:     "Children (1-2 years)",
		RestingMin:   80,
		RestingMax:   130,
		MaxHeartRate: 215,
		ModerateMin:  108,
		ModerateMax:  151,
	},
	{
		AgeGroup:     "Children (3-4 years)",
		RestingMin:   80,
		RestingMax:   120,
		MaxHeartRate: 210,
		ModerateMin:  105,
		ModerateMax:  147,
	},
	{
		AgeGroup:     "Children (5-6 years)",
		RestingMin:   75,
		RestingMax:   115,
		MaxHeartRate: 205,
		ModerateMin:  103,
		ModerateMax:  144,
	},
	{
		AgeGroup:     "Children (7-9 years)",
		RestingMin:   70,
		RestingMax:   110,
		MaxHeartRate: 200,
		ModerateMin:  100,
		ModerateMax:  140,
	},
	{
		AgeGroup:     "Children (10-15 years)",
		RestingMin:   60,
		RestingMax:   100,
		MaxHeartRate: 195,
		ModerateMin:  98,
		ModerateMax:  137,
	},
	{
		AgeGroup:     "Adults (18-25 years)",
		RestingMin:   60,
		RestingMax:   100,
		MaxHeartRate: 195,
		ModerateMin:  98,
		ModerateMax:  137,
	},
	{
		AgeGroup:     "Adults (26-35 years)",
		RestingMin:   60,
		RestingMax:   100,
		MaxHeartRate: 190,
		ModerateMin:  95,
		ModerateMax:  133,
	},
	{
		AgeGroup:     "Adults (36-45 years)",
		RestingMin:   60,
		RestingMax:   100,
		MaxHeartRate: 185,
		ModerateMin:  93,
		ModerateMax:  130,
	},
	{
		AgeGroup:     "Adults (46-55 years)",
		RestingMin:   60,
		RestingMax:   100,
		MaxHeartRate: 175,
		ModerateMin:  88,
		ModerateMax:  123,
	},
	{
		AgeGroup:     "Adults (56-65 years)",
		RestingMin:   60,
		RestingMax:   100,
		MaxHeartRate: 165,
		ModerateMin:  83,
		ModerateMax:  116,
	},
	{
		AgeGroup:     "Seniors (65+ years)",
		RestingMin:   60,
		RestingMax:   100,
		MaxHeartRate: 155,
		ModerateMin:  78,
		ModerateMax:  109,
	},
}

var exercises = []Exercise{
	{
		ID:          "1",
		Name:        "Brisk Walking",
		Category:    "cardio",
		Description: "A moderate-intensity cardiovascular exercise that's gentle on joints and excellent for heart health.",
		Benefits: []string{
			"Improves cardiovascular endurance",
			"Strengthens heart muscle",
			"Lowers blood pressure",
			"Helps maintain healthy weight",
		},
		Duration:          "30-45 minutes",
		Intensity:         "moderate",
		HeartHealthRating: 5,
		CaloriesBurned:    150,
	},
	{
		ID:          "2",
		Name:        "Swimming",
		Category:    "cardio",
		Description: "Low-impact full-body workout that's easy on joints while providing excellent cardiovascular benefits.",
		Benefits: []string{
			"Builds cardiovascular strength",
			"Works all major muscle groups",
			"Reduces stress on joints",
			"Improves lung capacity",
		},
		Duration:          "30 minutes",
		Intensity:         "moderate",
		HeartHealthRating: 5,
		CaloriesBurned:    200,
	},
	{
		ID:          "3",
		Name:        "Cycling",
		Category:    "cardio",
		Description: "Great aerobic exercise that strengthens the heart and improves circulation.",
		Benefits: []string{
			"Boosts cardiovascular fitness",
			"Low impact on joints",
			"Strengthens leg muscles",
			"Improves coordination",
		},
		Duration:          "30-60 minutes",
		Intensity:         "moderate",
		HeartHealthRating: 4,
		CaloriesBurned:    250,
	},
	{
		ID:          "4",
		Name:        "Yoga",
		Category:    "flexibility",
		Description: "Combines physical postures, breathing exercises, and meditation for overall wellness.",
		Benefits: []string{
			"Reduces stress and anxiety",
			"Improves flexibility",
			"Lowers blood pressure",
			"Enhances balance and stability",
		},
		Duration:          "30-60 minutes",
		Intensity:         "low",
		HeartHealthRating: 4,
		CaloriesBurned:    120,
	},
	{
		ID:          "5",
		Name:        "Light Weight Training",
		Category:    "strength",
		Description: "Builds muscle strength using light weights or resistance bands, beneficial for metabolism.",
		Benefits: []string{
			"Increases muscle strength",
			"Boosts metabolism",
			"Improves bone density",
			"Supports heart health",
		},
		Duration:          "20-30 minutes",
		Intensity:         "moderate",
		HeartHealthRating: 3,
		CaloriesBurned:    180,
	},
	{
		ID:          "6",
		Name:        "Tai Chi",
		Category:    "balance",
		Description: "Gentle martial art focused on slow, flowing movements and deep breathing.",
		Benefits: []string{
			"Improves balance and coordination",
			"Reduces stress",
			"Lowers blood pressure",
			"Enhances mental clarity",
		},
		Duration:          "30-45 minutes",
		Intensity:         "low",
		HeartHealthRating: 4,
		CaloriesBurned:    100,
	},
	{
		ID:          "7",
		Name:        "Dancing",
		Category:    "cardio",
		Description: "Fun, social activity that provides cardiovascular benefits while improving mood.",
		Benefits: []string{
			"Improves heart health",
			"Enhances coordination",
			"Boosts mood and reduces stress",
			"Increases flexibility",
		},
		Duration:          "30-45 minutes",
		Intensity:         "moderate",
		HeartHealthRating: 4,
		CaloriesBurned:    200,
	},
	{
		ID:          "8",
		Name:        "Stretching",
		Category:    "flexibility",
		Description: "Essential for maintaining flexibility and preventing injuries during other exercises.",
		Benefits: []string{
			"Improves flexibility",
			"Reduces muscle tension",
			"Enhances range of motion",
			"Promotes relaxation",
		},
		Duration:          "10-15 minutes",
		Intensity:         "low",
		HeartHealthRating: 3,
		CaloriesBurned:    40,
	},
	{
		ID:          "9",
		Name:        "Elliptical Training",
		Category:    "cardio",
		Description: "Low-impact cardio machine that simulates running without the joint stress.",
		Benefits: []string{
			"Excellent cardiovascular workout",
			"Low impact on joints",
			"Burns calories efficiently",
			"Works both upper and lower body",
		},
		Duration:          "30 minutes",
		Intensity:         "moderate",
		HeartHealthRating: 4,
		CaloriesBurned:    270,
	},
}

var foods = []Food{
	{
		ID:          "1",
		Name:        "Salmon",
		Category:    "proteins",
		Description: "Rich in omega-3 fatty acids, excellent for heart health and reducing inflammation.",
		Benefits: []string{
			"Reduces risk of heart disease",
			"Lowers triglycerides",
			"Reduces inflammation",
			"Supports brain health",
		},
		Calories: 206,
		Nutrients: Nutrients{
			Protein:  "22g",
			Fiber:    "0g",
			Vitamins: []string{"Vitamin D", "Vitamin B12", "Omega-3"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "2",
		Name:        "Oatmeal",
		Category:    "grains",
		Description: "Whole grain packed with soluble fiber that helps lower cholesterol levels.",
		Benefits: []string{
			"Lowers LDL cholesterol",
			"Stabilizes blood sugar",
			"Promotes digestive health",
			"Provides sustained energy",
		},
		Calories: 150,
		Nutrients: Nutrients{
			Protein:  "5g",
			Fiber:    "4g",
			Vitamins: []string{"B Vitamins", "Iron", "Magnesium"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "3",
		Name:        "Blueberries",
		Category:    "fruits",
		Description: "Antioxidant powerhouse that supports heart health and cognitive function.",
		Benefits: []string{
			"Rich in antioxidants",
			"Reduces blood pressure",
			"Improves cholesterol levels",
			"Supports brain health",
		},
		Calories: 84,
		Nutrients: Nutrients{
			Protein:  "1g",
			Fiber:    "4g",
			Vitamins: []string{"Vitamin C", "Vitamin K", "Manganese"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "4",
		Name:        "Spinach",
		Category:    "vegetables",
		Description: "Nutrient-dense leafy green loaded with vitamins and minerals for heart health.",
		Benefits: []string{
			"Lowers blood pressure",
			"Rich in nitrates",
			"Supports bone health",
			"Reduces oxidative stress",
		},
		Calories: 23,
		Nutrients: Nutrients{
			Protein:  "3g",
			Fiber:    "2g",
			Vitamins: []string{"Vitamin K", "Vitamin A", "Folate", "Iron"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "5",
		Name:        "Almonds",
		Category:    "nuts",
		Description: "Heart-healthy nuts rich in healthy fats, fiber, and vitamin E.",
		Benefits: []string{
			"Lowers bad cholesterol",
			"Reduces heart disease risk",
			"Provides healthy fats",
			"Helps control blood sugar",
		},
		Calories: 164,
		Nutrients: Nutrients{
			Protein:  "6g",
			Fiber:    "3.5g",
			Vitamins: []string{"Vitamin E", "Magnesium", "Calcium"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "6",
		Name:        "Avocado",
		Category:    "fruits",
		Description: "Creamy fruit packed with heart-healthy monounsaturated fats and potassium.",
		Benefits: []string{
			"Lowers cholesterol levels",
			"Rich in healthy fats",
			"High in potassium",
			"Supports nutrient absorption",
		},
		Calories: 160,
		Nutrients: Nutrients{
			Protein:  "2g",
			Fiber:    "7g",
			Vitamins: []string{"Vitamin K", "Folate", "Potassium"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "7",
		Name:        "Greek Yogurt",
		Category:    "dairy",
		Description: "Protein-rich dairy product that supports heart health and digestive wellness.",
		Benefits: []string{
			"High in protein",
			"Supports gut health",
			"Provides calcium",
			"May lower blood pressure",
		},
		Calories: 100,
		Nutrients: Nutrients{
			Protein:  "17g",
			Fiber:    "0g",
			Vitamins: []string{"Calcium", "Vitamin B12", "Probiotics"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "8",
		Name:        "Sweet Potato",
		Category:    "vegetables",
		Description: "Nutrient-dense root vegetable high in fiber and antioxidants.",
		Benefits: []string{
			"Regulates blood sugar",
			"Rich in fiber",
			"High in antioxidants",
			"Supports immune system",
		},
		Calories: 112,
		Nutrients: Nutrients{
			Protein:  "2g",
			Fiber:    "4g",
			Vitamins: []string{"Vitamin A", "Vitamin C", "Potassium"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "9",
		Name:        "Walnuts",
		Category:    "nuts",
		Description: "Brain-shaped nuts rich in omega-3s and proven to benefit heart health.",
		Benefits: []string{
			"Improves cholesterol levels",
			"Reduces inflammation",
			"Supports brain function",
			"Rich in omega-3 fatty acids",
		},
		Calories: 185,
		Nutrients: Nutrients{
			Protein:  "4g",
			Fiber:    "2g",
			Vitamins: []string{"Omega-3", "Vitamin E", "Magnesium"},
		},
		HeartHealthy: true,
	},
	{
		ID:          "10",
		Name:        "Broccoli",
		Category:    "vegetables",
		Description: "Cruciferous vegetable packed with vitamins, minerals, and fiber.",
		Benefits: []string{
			"Rich in antioxidants",
			"Supports heart health",
			"High in fiber",
			"Anti-inflammatory properties",
		},
		Calories: 55,
		Nutrients: Nutrients{
			Protein:  "4g",
			Fiber:    "5g",
			Vitamins: []string{"Vitamin C", "Vitamin K", "Folate"},
		},
		HeartHealthy: true,
	},
}

var heartTips = []HeartPatientTip{
	{
		ID:          "1",
		Title:       "Start Walking Gradually",
		Description: "Begin with just 5-10 minutes of slow walking per day. Gradually increase duration by 1-2 minutes each week as your endurance improves. Never push yourself to the point of chest pain or extreme fatigue.",
		Category:    "walking",
		Importance:  "critical",
	},
	{
		ID:          "2",
		Title:       "Know Your Target Heart Rate",
		Description: "Work with your doctor to determine your target heart rate zone during exercise. For most heart patients, this is 50-70% of maximum heart rate. Use a heart rate monitor or check your pulse regularly during walks.",
		Category:    "monitoring",
		Importance:  "critical",
	},
	{
		ID:          "3",
		Title:       "Recognize Warning Signs",
		Description: "Stop exercising immediately if you experience chest pain, severe shortness of breath, dizziness, irregular heartbeat, or pain radiating to your arm or jaw. Call emergency services if symptoms don't improve with rest.",
		Category:    "monitoring",
		Importance:  "critical",
	},
	{
		ID:          "4",
		Title:       "Avoid Extreme Temperatures",
		Description: "Don't exercise in very hot, cold, or humid weather. Extreme temperatures put extra stress on your heart. Consider indoor walking at a mall or gym during harsh weather conditions.",
		Category:    "walking",
		Importance:  "important",
	},
	{
		ID:          "5",
		Title:       "Wait After Meals",
		Description: "Allow 1-2 hours after eating before exercising. Digestion requires increased blood flow, and exercising too soon after meals can strain your heart.",
		Category:    "exercise",
		Importance:  "important",
	},
	{
		ID:          "6",
		Title:       "Stay Hydrated",
		Description: "Drink water before, during, and after exercise. Dehydration can increase heart rate and blood pressure. Carry water with you on walks and take small sips regularly.",
		Category:    "exercise",
		Importance:  "important",
	},
	{
		ID:          "7",
		Title:       "Follow the DASH Diet",
		Description: "The Dietary Approaches to Stop Hypertension (DASH) diet emphasizes fruits, vegetables, whole grains, lean proteins, and low-fat dairy. Limit sodium to less than 2,300mg per day, ideally 1,500mg.",
		Category:    "diet",
		Importance:  "critical",
	},
	{
		ID:          "8",
		Title:       "Limit Saturated Fats",
		Description: "Reduce intake of saturated fats found in red meat, full-fat dairy, and processed foods. Choose lean proteins like fish, chicken, and plant-based options. This helps lower cholesterol and reduces heart disease risk.",
		Category:    "diet",
		Importance:  "important",
	},
	{
		ID:          "9",
		Title:       "Take Medications as Prescribed",
		Description: "Never skip heart medications, even if you feel fine. Set reminders and keep a consistent schedule. Inform your doctor before taking any new medications or supplements, as they may interact with heart drugs.",
		Category:    "monitoring",
		Importance:  "critical",
	},
	{
		ID:          "10",
		Title:       "Warm Up and Cool Down",
		Description: "Always start with 5-10 minutes of slow walking to warm up your muscles and heart. End with a similar cool-down period. This gradual approach prevents sudden stress on your cardiovascular system.",
		Category:    "exercise",
		Importance:  "important",
	},
	{
		ID:          "11",
		Title:       "Choose Flat Terrain",
		Description: "Start with flat, even surfaces for walking. Hills and stairs increase heart workload significantly. Progress to inclines only after building a solid fitness base and with doctor approval.",
		Category:    "walking",
		Importance:  "important",
	},
	{
		ID:          "12",
		Title:       "Walk with a Companion",
		Description: "Exercise with a friend or family member, especially when starting out. They can help monitor your condition and call for help if needed. It also makes exercise more enjoyable and sustainable.",
		Category:    "walking",
		Importance:  "helpful",
	},
	{
		ID:          "13",
		Title:       "Monitor Your Blood Pressure",
		Description: "Check blood pressure regularly at home, especially before and after exercise. Keep a log to share with your doctor. This helps track your progress and adjust medications if needed.",
		Category:    "monitoring",
		Importance:  "important",
	},
	{
		ID:          "14",
		Title:       "Manage Stress Effectively",
		Description: "Practice stress-reduction techniques like deep breathing, meditation, or gentle yoga. Chronic stress elevates blood pressure and heart rate, increasing cardiovascular risk.",
		Category:    "lifestyle",
		Importance:  "important",
	},
	{
		ID:          "15",
		Title:       "Get Quality Sleep",
		Description: "Aim for 7-9 hours of quality sleep per night. Poor sleep is linked to high blood pressure, obesity, and increased heart disease risk. Maintain a consistent sleep schedule.",
		Category:    "lifestyle",
		Importance:  "helpful",
	},
	{
		ID:          "16",
		Title:       "Quit Smoking Completely",
		Description: "If you smoke, quitting is the single most important thing you can do for your heart. Smoking damages blood vessels, raises blood pressure, and reduces oxygen in your blood. Seek support from your doctor.",
		Category:    "lifestyle",
		Importance:  "critical",
	},
	{
		ID:          "17",
		Title:       "Limit Alcohol Consumption",
		Description: "If you drink alcohol, do so in moderation - no more than one drink per day for women and two for men. Excessive alcohol can raise blood pressure and contribute to heart failure.",
		Category:    "lifestyle",
		Importance:  "important",
	},
	{
		ID:          "18",
		Title:       "Increase Omega-3 Intake",
		Description: "Eat fatty fish (salmon, mackerel, sardines) at least twice a week. Omega-3 fatty acids reduce inflammation, lower triglycerides, and may reduce irregular heartbeats. Consider supplements after consulting your doctor.",
		Category:    "diet",
		Importance:  "helpful",
	},
}
