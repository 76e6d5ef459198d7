package types

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

type PlayStyle string

const (
	StylePower    PlayStyle = "power"
	StyleControl  PlayStyle = "control"
	StyleBalanced PlayStyle = "balanced"
)

// UserProfile is the validated recommendation input. Validation happens at the
// HTTP binding layer; the engine assumes every field is already in range.
// PowerPreferencePercent, when present, overrides PlayStyle in ranking
// (0 = pure control, 100 = pure power).
type UserProfile struct {
	SkillLevel             SkillLevel `json:"skill_level"`
	BudgetMaxBRL           *float64   `json:"budget_max_brl,omitempty"`
	PlayStyle              PlayStyle  `json:"play_style"`
	HasTennisElbow         bool       `json:"has_tennis_elbow"`
	SpinPreference         *string    `json:"spin_preference,omitempty"`
	WeightPreference       *string    `json:"weight_preference,omitempty"`
	PowerPreferencePercent *int       `json:"power_preference_percent,omitempty"`
}

// RecommendationRequest is the HTTP request body for POST /recommendations.
// Binding tags enforce the profile invariants before the engine sees it.
type RecommendationRequest struct {
	SkillLevel             SkillLevel `json:"skill_level" binding:"required,oneof=beginner intermediate advanced"`
	BudgetMaxBRL           *float64   `json:"budget_max_brl,omitempty" binding:"omitempty,gt=0"`
	PlayStyle              PlayStyle  `json:"play_style" binding:"required,oneof=power control balanced"`
	HasTennisElbow         bool       `json:"has_tennis_elbow"`
	SpinPreference         *string    `json:"spin_preference,omitempty" binding:"omitempty,oneof=high medium low"`
	WeightPreference       *string    `json:"weight_preference,omitempty" binding:"omitempty,oneof=heavy standard light no_preference"`
	PowerPreferencePercent *int       `json:"power_preference_percent,omitempty" binding:"omitempty,min=0,max=100"`
	Limit                  int        `json:"limit" binding:"omitempty,min=1,max=10"`
}

func (r *RecommendationRequest) Profile() UserProfile {
	return UserProfile{
		SkillLevel:             r.SkillLevel,
		BudgetMaxBRL:           r.BudgetMaxBRL,
		PlayStyle:              r.PlayStyle,
		HasTennisElbow:         r.HasTennisElbow,
		SpinPreference:         r.SpinPreference,
		WeightPreference:       r.WeightPreference,
		PowerPreferencePercent: r.PowerPreferencePercent,
	}
}
