package trip

import (
	"math"
	"strings"
)

// Share of the total budget set aside for each spending category.
const (
	AccommodationShare = 0.4
	FoodShare          = 0.2
	ActivitiesShare    = 0.3
	EmergencyShare     = 0.1
)

// BudgetBreakdown splits the total budget into whole-dollar amounts. Daily
// is only meaningful when HasDaily is set, i.e. the trip lasts at least a day.
type BudgetBreakdown struct {
	Daily         float64
	HasDaily      bool
	Accommodation float64
	Food          float64
	Activities    float64
	Emergency     float64
}

// DayPlan is one day of the suggested itinerary.
type DayPlan struct {
	Day       int
	Morning   string
	Afternoon string
	Evening   string
}

// DestinationKind tells whether a destination is inside the home country.
type DestinationKind string

const (
	Domestic DestinationKind = "Domestic"
	Abroad   DestinationKind = "Abroad"
)

// ClassifiedDestination pairs a destination with its kind.
type ClassifiedDestination struct {
	Name string
	Kind DestinationKind
}

// Plan is the optional extended view built from a completed record.
type Plan struct {
	Budget       BudgetBreakdown
	Days         []DayPlan
	Destinations []ClassifiedDestination
	Tips         []string
}

var (
	morningActivities   = []string{"Breakfast at local cafe", "City tour", "Museum visit", "Hiking"}
	afternoonActivities = []string{"Lunch at restaurant", "Shopping", "Beach time", "Cultural site visit"}
	eveningActivities   = []string{"Dinner experience", "Night market visit", "Cultural show", "City lights tour"}

	domesticLocations = map[string]struct{}{
		"kuala lumpur":      {},
		"penang":            {},
		"malacca":           {},
		"johor bahru":       {},
		"ipoh":              {},
		"kuching":           {},
		"kota kinabalu":     {},
		"langkawi":          {},
		"cameron highlands": {},
	}
)

// BuildPlan derives the budget split, itinerary, destination kinds and
// travel tips from rec. It never mutates rec.
func BuildPlan(rec *Details) Plan {
	return Plan{
		Budget:       SplitBudget(rec.Budget, rec.Duration),
		Days:         Itinerary(rec.Duration),
		Destinations: ClassifyDestinations(rec.Destinations),
		Tips:         TravelTips(rec.Accommodation),
	}
}

// SplitBudget floors every share to whole dollars. A duration below one day
// leaves the daily amount unset instead of dividing by zero.
func SplitBudget(total float64, duration int) BudgetBreakdown {
	b := BudgetBreakdown{
		Accommodation: math.Floor(total * AccommodationShare),
		Food:          math.Floor(total * FoodShare),
		Activities:    math.Floor(total * ActivitiesShare),
		Emergency:     math.Floor(total * EmergencyShare),
	}
	if duration > 0 {
		b.Daily = math.Floor(total / float64(duration))
		b.HasDaily = true
	}
	return b
}

// Itinerary suggests activities for days 1..duration. Activities rotate
// through fixed lists, so the same duration always yields the same plan.
func Itinerary(duration int) []DayPlan {
	if duration <= 0 {
		return nil
	}
	days := make([]DayPlan, duration)
	for i := range days {
		days[i] = DayPlan{
			Day:       i + 1,
			Morning:   morningActivities[i%len(morningActivities)],
			Afternoon: afternoonActivities[i%len(afternoonActivities)],
			Evening:   eveningActivities[i%len(eveningActivities)],
		}
	}
	return days
}

// ClassifyDestinations marks each non-empty destination as domestic or
// abroad. Matching is case-insensitive on the trimmed name.
func ClassifyDestinations(destinations []string) []ClassifiedDestination {
	var out []ClassifiedDestination
	for _, d := range destinations {
		name := strings.TrimSpace(d)
		if name == "" {
			continue
		}
		kind := Abroad
		if _, ok := domesticLocations[strings.ToLower(name)]; ok {
			kind = Domestic
		}
		out = append(out, ClassifiedDestination{Name: name, Kind: kind})
	}
	return out
}

// TravelTips returns the standard reminders, naming the chosen stay.
func TravelTips(stay Accommodation) []string {
	return []string{
		"Remember to book your " + string(stay) + " in advance",
		"Check the weather forecast before your trip",
		"Keep emergency contacts handy",
		"Make copies of important documents",
	}
}
