package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDefaultsOnFirstRun(t *testing.T) {
	profile := NewProfileService(newTestDB(t))

	p, err := profile.Get()
	require.NoError(t, err)
	assert.Equal(t, "PubFit", p.Name)
	assert.Equal(t, "2000-01-01", p.DOB)
	assert.Equal(t, 172.0, p.HeightCm)
	assert.Equal(t, 70.0, p.WeightKg)
	assert.Equal(t, 2500.0, p.CaloriesGoal)
	assert.Equal(t, 150.0, p.ProteinsGoal)
	assert.Equal(t, 250.0, p.CarbsGoal)
	assert.Equal(t, 70.0, p.FatsGoal)

	// the singleton is created once
	again, err := profile.Get()
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}

func TestProfileUpdatePartial(t *testing.T) {
	profile := NewProfileService(newTestDB(t))

	p, err := profile.Update(ProfileInput{Name: "Asha", WeightKg: 64})
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, 64.0, p.WeightKg)
	assert.Equal(t, 172.0, p.HeightCm, "untouched fields keep their values")

	_, err = profile.Update(ProfileInput{DOB: "15-06-2024"})
	require.Error(t, err, "DOB must be YYYY-MM-DD")
}

func TestProfileUpdateGoals(t *testing.T) {
	profile := NewProfileService(newTestDB(t))

	p, err := profile.UpdateGoals(GoalsInput{CaloriesGoal: 2000, ProteinsGoal: 120, CarbsGoal: 200, FatsGoal: 60})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, p.CaloriesGoal)
	assert.Equal(t, 120.0, p.ProteinsGoal)
	assert.Equal(t, 200.0, p.CarbsGoal)
	assert.Equal(t, 60.0, p.FatsGoal)
	assert.Equal(t, "PubFit", p.Name, "goal edits leave the profile fields alone")
}

func TestProfileAge(t *testing.T) {
	profile := NewProfileService(newTestDB(t))
	p, err := profile.Get()
	require.NoError(t, err)

	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, profile.Age(p, now))
}
