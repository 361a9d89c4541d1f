package domain

import (
	"math"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

const (
	DefaultRatingsAverage = 4.5
	DefaultImageCover     = "default-cover.jpg"
)

// GeoPoint is a GeoJSON point. Coordinates are [lng, lat].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates" validate:"len=2"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Day         int       `json:"day,omitempty"`
}

// Lng and Lat return 0 for a point without both coordinates.
func (p GeoPoint) Lng() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

func (p GeoPoint) Lat() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

type Tour struct {
	ID              string         `json:"id"`
	Name            string         `json:"name" validate:"required,min=10,max=40"`
	Slug            string         `json:"slug"`
	Duration        int            `json:"duration" validate:"required,gt=0"`
	MaxGroupSize    int            `json:"maxGroupSize" validate:"required,gt=0"`
	Difficulty      Difficulty     `json:"difficulty" validate:"required,oneof=easy medium difficult"`
	RatingsAverage  float64        `json:"ratingsAverage" validate:"gte=1,lte=5"`
	RatingsQuantity int            `json:"ratingsQuantity" validate:"gte=0"`
	Price           float64        `json:"price" validate:"required,gt=0"`
	PriceDiscount   *float64       `json:"priceDiscount,omitempty" validate:"omitempty,gte=0"`
	Summary         string         `json:"summary" validate:"required"`
	Description     string         `json:"description,omitempty"`
	ImageCover      string         `json:"imageCover" validate:"required"`
	Images          []string       `json:"images"`
	StartDates      []time.Time    `json:"startDates"`
	SecretTour      bool           `json:"secretTour"`
	StartLocation   *GeoPoint      `json:"startLocation,omitempty" validate:"omitempty"`
	Locations       []GeoPoint     `json:"locations" validate:"dive"`
	GuideIDs        []string       `json:"-" validate:"dive,uuid"`
	Guides          []*UserSummary `json:"guides"`
	Reviews         []*Review      `json:"reviews,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// DurationWeeks is exposed as a derived JSON field.
func (t *Tour) DurationWeeks() float64 {
	return float64(t.Duration) / 7
}

// TourInput is the writable subset of a tour. Nil fields are left untouched on update.
type TourInput struct {
	Name          *string     `json:"name"`
	Duration      *int        `json:"duration"`
	MaxGroupSize  *int        `json:"maxGroupSize"`
	Difficulty    *Difficulty `json:"difficulty"`
	Price         *float64    `json:"price"`
	PriceDiscount *float64    `json:"priceDiscount"`
	Summary       *string     `json:"summary"`
	Description   *string     `json:"description"`
	ImageCover    *string     `json:"imageCover"`
	Images        []string    `json:"images"`
	StartDates    []time.Time `json:"startDates"`
	SecretTour    *bool       `json:"secretTour"`
	StartLocation *GeoPoint   `json:"startLocation"`
	Locations     []GeoPoint  `json:"locations"`
	Guides        []string    `json:"guides"`
}

// Apply copies every set field of in onto t, trimming text fields.
func (in *TourInput) Apply(t *Tour) {
	if in.Name != nil {
		t.Name = strings.TrimSpace(*in.Name)
		t.Slug = Slugify(t.Name)
	}
	if in.Duration != nil {
		t.Duration = *in.Duration
	}
	if in.MaxGroupSize != nil {
		t.MaxGroupSize = *in.MaxGroupSize
	}
	if in.Difficulty != nil {
		t.Difficulty = *in.Difficulty
	}
	if in.Price != nil {
		t.Price = *in.Price
	}
	if in.PriceDiscount != nil {
		d := *in.PriceDiscount
		t.PriceDiscount = &d
	}
	if in.Summary != nil {
		t.Summary = strings.TrimSpace(*in.Summary)
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageCover != nil {
		t.ImageCover = *in.ImageCover
	}
	if in.Images != nil {
		t.Images = in.Images
	}
	if in.StartDates != nil {
		t.StartDates = in.StartDates
	}
	if in.SecretTour != nil {
		t.SecretTour = *in.SecretTour
	}
	if in.StartLocation != nil {
		loc := *in.StartLocation
		loc.Type = "Point"
		t.StartLocation = &loc
	}
	if in.Locations != nil {
		t.Locations = make([]GeoPoint, len(in.Locations))
		for i, l := range in.Locations {
			l.Type = "Point"
			t.Locations[i] = l
		}
	}
	if in.Guides != nil {
		t.GuideIDs = in.Guides
	}
}

// RoundRating keeps one decimal place.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

type TourStats struct {
	Difficulty string  `json:"_id" db:"difficulty"`
	NumTours   int     `json:"numTours" db:"num_tours"`
	NumRatings int     `json:"numRatings" db:"num_ratings"`
	AvgRating  float64 `json:"avgRating" db:"avg_rating"`
	AvgPrice   float64 `json:"avgPrice" db:"avg_price"`
	MinPrice   float64 `json:"minPrice" db:"min_price"`
	MaxPrice   float64 `json:"maxPrice" db:"max_price"`
}

type MonthlyPlan struct {
	Month         int      `json:"month"`
	NumTourStarts int      `json:"numTourStarts"`
	Tours         []string `json:"tours"`
}

type TourDistance struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Distance float64 `json:"distance" db:"distance"`
}

type Unit string

const (
	UnitMiles      Unit = "mi"
	UnitKilometers Unit = "km"
)

// RadiusRadians converts a distance to radians on the earth sphere.
func (u Unit) RadiusRadians(distance float64) float64 {
	if u == UnitMiles {
		return distance / 3963.2
	}
	return distance / 6378.1
}

// Multiplier converts meters to the unit.
func (u Unit) Multiplier() float64 {
	if u == UnitMiles {
		return 0.000621371
	}
	return 0.001
}
