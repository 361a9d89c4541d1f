package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Forest Hiker", "the-forest-hiker"},
		{"  The   Sea Explorer ", "the-sea-explorer"},
		{"Crème Brûlée Tour!", "creme-brulee-tour"},
		{"Tour #2: Alps", "tour-2-alps"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func validTour() Tour {
	return Tour{
		Name:           "The Forest Hiker",
		Duration:       5,
		MaxGroupSize:   25,
		Difficulty:     DifficultyEasy,
		RatingsAverage: DefaultRatingsAverage,
		Price:          397,
		Summary:        "Breathtaking hike",
		ImageCover:     "tour-1-cover.jpg",
	}
}

func TestValidate_Tour(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tour := validTour()
		assert.NoError(t, Validate(&tour))
	})

	t.Run("collects field errors", func(t *testing.T) {
		tour := validTour()
		tour.Name = "Short"
		tour.Difficulty = "extreme"

		err := Validate(&tour)

		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, err.Error(), "name must have at least 10 characters")
		assert.Contains(t, err.Error(), "difficulty is either: easy, medium, difficult")
	})

	t.Run("discount below price", func(t *testing.T) {
		tour := validTour()
		discount := 500.0
		tour.PriceDiscount = &discount

		err := Validate(&tour)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Discount price (500) should be below regular price")
	})

	t.Run("rating bounds", func(t *testing.T) {
		tour := validTour()
		tour.RatingsAverage = 5.5
		assert.Error(t, Validate(&tour))
	})
}

func TestValidate_PasswordConfirm(t *testing.T) {
	err := Validate(&PasswordInput{Password: "pass1234", PasswordConfirm: "pass4321"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Passwords are not the same!")

	assert.NoError(t, Validate(&PasswordInput{Password: "pass1234", PasswordConfirm: "pass1234"}))
}

func TestTourInput_Apply(t *testing.T) {
	name := "  The Snow Adventurer "
	loc := GeoPoint{Coordinates: []float64{-106.82, 39.19}, Description: "Aspen"}
	in := TourInput{Name: &name, StartLocation: &loc, Locations: []GeoPoint{{Coordinates: []float64{1, 2}}}}

	tour := validTour()
	in.Apply(&tour)

	assert.Equal(t, "The Snow Adventurer", tour.Name)
	assert.Equal(t, "the-snow-adventurer", tour.Slug)
	assert.Equal(t, "Point", tour.StartLocation.Type)
	assert.Equal(t, "Point", tour.Locations[0].Type)
	assert.Equal(t, 39.19, tour.StartLocation.Lat())
	assert.Equal(t, 397.0, tour.Price)
}

func TestGeoPoint_LngLat(t *testing.T) {
	p := GeoPoint{Coordinates: []float64{-80.18, 25.77}}
	assert.Equal(t, -80.18, p.Lng())
	assert.Equal(t, 25.77, p.Lat())

	var empty GeoPoint
	assert.Zero(t, empty.Lng())
	assert.Zero(t, empty.Lat())
}

func TestTour_DurationWeeks(t *testing.T) {
	tour := Tour{Duration: 14}
	assert.Equal(t, 2.0, tour.DurationWeeks())
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.7, RoundRating(4.666666))
	assert.Equal(t, 4.0, RoundRating(4))
}

func TestUser_ChangedPasswordAfter(t *testing.T) {
	iat := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	u := &User{}
	assert.False(t, u.ChangedPasswordAfter(iat))

	before := iat.Add(-time.Minute)
	u.PasswordChangedAt = &before
	assert.False(t, u.ChangedPasswordAfter(iat))

	sameSecond := iat.Add(500 * time.Millisecond)
	u.PasswordChangedAt = &sameSecond
	assert.False(t, u.ChangedPasswordAfter(iat))

	after := iat.Add(2 * time.Second)
	u.PasswordChangedAt = &after
	assert.True(t, u.ChangedPasswordAfter(iat))
}

func TestUserInput_SelfUpdate(t *testing.T) {
	role := RoleAdmin
	name := "Jonas"
	in := UserInput{Name: &name, Role: &role}

	self := in.SelfUpdate()
	assert.Nil(t, self.Role)
	assert.Equal(t, &name, self.Name)
}

func TestUserInput_Apply_NormalizesEmail(t *testing.T) {
	email := "  Laura@Example.COM "
	u := &User{}
	(&UserInput{Email: &email}).Apply(u)
	assert.Equal(t, "laura@example.com", u.Email)
}

func TestUserFromContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	u := &User{ID: "u1"}
	got, ok := UserFromContext(ContextWithUser(context.Background(), u))
	require.True(t, ok)
	assert.Same(t, u, got)

	_, ok = UserFromContext(ContextWithUser(context.Background(), nil))
	assert.False(t, ok)
}
