package trip

import "fmt"

// FoodPreference is the group's dietary preference.
type FoodPreference string

const (
	FoodVegetarian    FoodPreference = "Vegetarian"
	FoodNonVegetarian FoodPreference = "Non-vegetarian"
	FoodBoth          FoodPreference = "Both"
)

// Accommodation is the preferred kind of stay.
type Accommodation string

const (
	AccommodationHotel    Accommodation = "Hotel"
	AccommodationResort   Accommodation = "Resort"
	AccommodationHomestay Accommodation = "Homestay"
	AccommodationCamping  Accommodation = "Camping"
)

// WeatherPreference is the preferred climate at the destination.
type WeatherPreference string

const (
	WeatherSunny    WeatherPreference = "Sunny"
	WeatherModerate WeatherPreference = "Moderate"
	WeatherCold     WeatherPreference = "Cold"
)

// Choices is a numbered menu. Entry i is selected by answering i+1.
type Choices[T ~string] []T

var (
	FoodChoices          = Choices[FoodPreference]{FoodVegetarian, FoodNonVegetarian, FoodBoth}
	AccommodationChoices = Choices[Accommodation]{AccommodationHotel, AccommodationResort, AccommodationHomestay, AccommodationCamping}
	WeatherChoices       = Choices[WeatherPreference]{WeatherSunny, WeatherModerate, WeatherCold}
)

// Labels returns the menu entries as plain strings, in menu order.
func (c Choices[T]) Labels() []string {
	labels := make([]string, len(c))
	for i, v := range c {
		labels[i] = string(v)
	}
	return labels
}

// Lookup maps a 1-based menu answer to its entry. The field name is only
// used to build the error.
func (c Choices[T]) Lookup(field string, choice int) (T, error) {
	if choice < 1 || choice > len(c) {
		var zero T
		return zero, &ChoiceError{Field: field, Choice: choice, Max: len(c)}
	}
	return c[choice-1], nil
}

// ChoiceError reports a menu answer that has no entry.
type ChoiceError struct {
	Field  string
	Choice int
	Max    int
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("invalid %s choice %d: must be between 1 and %d", e.Field, e.Choice, e.Max)
}
