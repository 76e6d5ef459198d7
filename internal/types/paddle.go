package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FaceMaterial string

const (
	FaceCarbon     FaceMaterial = "carbon"
	FaceFiberglass FaceMaterial = "fiberglass"
	FaceHybrid     FaceMaterial = "hybrid"
	FaceKevlar     FaceMaterial = "kevlar"
)

type PaddleShape string

const (
	ShapeStandard  PaddleShape = "standard"
	ShapeElongated PaddleShape = "elongated"
	ShapeWidebody  PaddleShape = "widebody"
)

// Paddle is the single source of truth for paddle specs. Derived ratings are
// never stored on it; they are recomputed from the raw measurements on read.
type Paddle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID   int       `gorm:"not null;index" json:"brand_id"`
	Brand     *Brand    `gorm:"constraint:OnDelete:CASCADE;foreignKey:BrandID;references:ID" json:"brand,omitempty"`
	ModelName string    `gorm:"column:model_name;not null;index" json:"model_name"`

	// Physical specs
	CoreThicknessMM *float64      `gorm:"column:core_thickness_mm" json:"core_thickness_mm,omitempty"`
	CoreMaterial    *string       `gorm:"column:core_material" json:"core_material,omitempty"`
	FaceMaterial    *FaceMaterial `gorm:"column:face_material" json:"face_material,omitempty"`
	Shape           *PaddleShape  `gorm:"column:shape" json:"shape,omitempty"`

	// Measured physics specs. TwistWeight arrives in one of two unit scales,
	// see ratings.Compute for the dispatch rule.
	SwingWeight   *int     `gorm:"column:swing_weight" json:"swing_weight,omitempty"`
	TwistWeight   *float64 `gorm:"column:twist_weight" json:"twist_weight,omitempty"`
	SpinRPM       *int     `gorm:"column:spin_rpm" json:"spin_rpm,omitempty"`
	PowerOriginal *float64 `gorm:"column:power_original" json:"power_original,omitempty"`

	// Ergonomics
	HandleLength      *string `gorm:"column:handle_length" json:"handle_length,omitempty"`
	GripCircumference *string `gorm:"column:grip_circumference" json:"grip_circumference,omitempty"`

	// Explicit 0-10 power rating from verified data
	PowerRating *int `gorm:"column:power_rating" json:"power_rating,omitempty"`

	SearchKeywords datatypes.JSONSlice[string] `gorm:"column:search_keywords" json:"search_keywords"`

	AvailableInBrazil bool    `gorm:"column:available_in_brazil;not null;default:false;index" json:"available_in_brazil"`
	IsFeatured        bool    `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	ImageURL          *string `gorm:"column:image_url" json:"image_url,omitempty"`

	SpecsSource     string  `gorm:"column:specs_source;not null" json:"specs_source"`
	SpecsConfidence float64 `gorm:"column:specs_confidence;not null" json:"specs_confidence"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Paddle) TableName() string { return "paddle_master" }

func (p *Paddle) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
