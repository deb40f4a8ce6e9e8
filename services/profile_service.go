package services

import (
	"errors"
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/models"
	"github.com/Satya2834/PubFitnessStudio-web/utils"

	"gorm.io/gorm"
)

// ProfileInput carries an explicit profile-edit submission. Zero-valued
// fields are left untouched.
type ProfileInput struct {
	Name      string  `json:"name"`
	DOB       string  `json:"dob"` // YYYY-MM-DD
	Gender    string  `json:"gender"`
	AvatarRef string  `json:"image"`
	HeightCm  float64 `json:"height"`
	WeightKg  float64 `json:"weight"`
}

// GoalsInput carries an explicit goal-edit submission.
type GoalsInput struct {
	CaloriesGoal float64 `json:"caloriesGoal" binding:"required"`
	ProteinsGoal float64 `json:"proteinsGoal" binding:"required"`
	CarbsGoal    float64 `json:"carbsGoal" binding:"required"`
	FatsGoal     float64 `json:"fatsGoal" binding:"required"`
}

// ProfileService owns the singleton device profile.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// defaultProfile is the first-run state of the profile screen.
func defaultProfile() models.UserProfile {
	return models.UserProfile{
		Name:         "PubFit",
		DOB:          "2000-01-01",
		Gender:       "Male",
		AvatarRef:    "/placeholder.svg",
		HeightCm:     172,
		WeightKg:     70,
		CaloriesGoal: 2500,
		ProteinsGoal: 150,
		CarbsGoal:    250,
		FatsGoal:     70,
	}
}

// Get returns the profile, creating it with defaults on first run.
func (s *ProfileService) Get() (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.db.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = defaultProfile()
		if err := s.db.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a profile-edit submission. The DOB must parse when given.
func (s *ProfileService) Update(input ProfileInput) (*models.UserProfile, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		p.Name = input.Name
	}
	if input.DOB != "" {
		if _, err := time.Parse("2006-01-02", input.DOB); err != nil {
			return nil, errors.New("dob must be YYYY-MM-DD")
		}
		p.DOB = input.DOB
	}
	if input.Gender != "" {
		p.Gender = input.Gender
	}
	if input.AvatarRef != "" {
		p.AvatarRef = input.AvatarRef
	}
	if input.HeightCm > 0 {
		p.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		p.WeightKg = input.WeightKg
	}

	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateGoals applies a goal-edit submission.
func (s *ProfileService) UpdateGoals(input GoalsInput) (*models.UserProfile, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}

	p.CaloriesGoal = input.CaloriesGoal
	p.ProteinsGoal = input.ProteinsGoal
	p.CarbsGoal = input.CarbsGoal
	p.FatsGoal = input.FatsGoal

	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Age derives the profile's age in whole years.
func (s *ProfileService) Age(p *models.UserProfile, now time.Time) int {
	dob, err := time.Parse("2006-01-02", p.DOB)
	if err != nil {
		return 0
	}
	return utils.CalculateAge(dob, now)
}
