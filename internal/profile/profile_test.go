package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefault(t *testing.T) {
	p := Default("ip_1.2.3.4")
	assert.Equal(t, "ip_1.2.3.4", p.ClientID)
	assert.Equal(t, float64(170), p.Height)
	assert.Equal(t, float64(70), p.Weight)
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, GenderOther, p.Gender)
	require.NoError(t, p.Validate())
}

func TestProfile_Validate(t *testing.T) {
	valid := Default("ip_1.2.3.4")
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(p *Profile){
		"zero height":     func(p *Profile) { p.Height = 0 },
		"negative height": func(p *Profile) { p.Height = -170 },
		"zero weight":     func(p *Profile) { p.Weight = 0 },
		"negative weight": func(p *Profile) { p.Weight = -70 },
		"zero age":        func(p *Profile) { p.Age = 0 },
		"unknown gender":  func(p *Profile) { p.Gender = "robot" },
	} {
		t.Run(name, func(t *testing.T) {
			p := Default("ip_1.2.3.4")
			mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestUpdateParams_MergeOver(t *testing.T) {
	base := Default("ip_1.2.3.4")

	height := 185.0
	merged := UpdateParams{Height: &height}.MergeOver(base)
	assert.Equal(t, 185.0, merged.Height)
	assert.Equal(t, base.Weight, merged.Weight)
	assert.Equal(t, base.Age, merged.Age)
	assert.Equal(t, base.Gender, merged.Gender)

	weight := 82.5
	age := 44
	gender := GenderFemale
	merged = UpdateParams{Weight: &weight, Age: &age, Gender: &gender}.MergeOver(merged)
	assert.Equal(t, 185.0, merged.Height)
	assert.Equal(t, 82.5, merged.Weight)
	assert.Equal(t, 44, merged.Age)
	assert.Equal(t, GenderFemale, merged.Gender)
}
