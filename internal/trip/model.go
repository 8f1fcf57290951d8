package trip

import "github.com/google/uuid"

// Member is one traveller in the group.
type Member struct {
	Name string `cty:"name"`
	Age  int    `cty:"age"`
}

// Details accumulates every answer given during a planning session. Fields
// are written once, in prompt order, and only read afterwards.
type Details struct {
	ID                uuid.UUID
	MainContact       string            `cty:"main_contact"`
	Members           []Member          `cty:"members"`
	Budget            float64           `cty:"budget"`
	Destinations      []string          `cty:"destinations"`
	FoodPreference    FoodPreference    `cty:"food_preference"`
	Accommodation     Accommodation     `cty:"accommodation"`
	StartDate         string            `cty:"start_date"`
	Duration          int               `cty:"duration"`
	WeatherPreference WeatherPreference `cty:"weather_preference"`
}

// New returns an empty record with a fresh ID.
func New() *Details {
	return &Details{
		ID:           uuid.New(),
		Members:      []Member{},
		Destinations: []string{},
	}
}

// AddMember appends a traveller, keeping entry order.
func (d *Details) AddMember(name string, age int) {
	d.Members = append(d.Members, Member{Name: name, Age: age})
}
