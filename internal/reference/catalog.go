package reference

// Exercise is a catalog entry describing a heart-friendly activity.
type Exercise struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Benefits          []string `json:"benefits"`
	Duration          string   `json:"duration"`
	Intensity         string   `json:"intensity"`
	HeartHealthRating int      `json:"heartHealthRating"`
	CaloriesBurned    int      `json:"caloriesBurned"`
}

type Nutrients struct {
	Protein  string   `json:"protein"`
	Fiber    string   `json:"fiber"`
	Vitamins []string `json:"vitamins"`
}

// Food is a catalog entry describing a heart-healthy food item.
type Food struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Benefits     []string  `json:"benefits"`
	Calories     int       `json:"calories"`
	Nutrients    Nutrients `json:"nutrients"`
	HeartHealthy bool      `json:"heartHealthy"`
}

// HeartPatientTip is a piece of advice for heart patients, grouped by
// category and weighted by importance.
type HeartPatientTip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Importance  string `json:"importance"`
}

// HeartRateReference gives the resting and moderate-exercise heart rate
// ranges for an age group.
type HeartRateReference struct {
	AgeGroup     string `json:"ageGroup"`
	RestingMin   int    `json:"restingMin"`
	RestingMax   int    `json:"restingMax"`
	MaxHeartRate int    `json:"maxHeartRate"`
	ModerateMin  int    `json:"moderateMin"`
	ModerateMax  int    `json:"moderateMax"`
}

// Catalog serves the static reference data sets.
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) Exercises() []Exercise {
	return exercises
}

func (c *Catalog) Foods() []Food {
	return foods
}

func (c *Catalog) HeartTips() []HeartPatientTip {
	return heartTips
}

func (c *Catalog) HeartRateReferences() []HeartRateReference {
	return heartRateReferences
}
