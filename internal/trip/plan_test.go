package trip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBudget(t *testing.T) {
	testCases := []struct {
		name     string
		total    float64
		duration int
		expected BudgetBreakdown
	}{
		{
			name:     "even split",
			total:    1000,
			duration: 5,
			expected: BudgetBreakdown{Daily: 200, HasDaily: true, Accommodation: 400, Food: 200, Activities: 300, Emergency: 100},
		},
		{
			name:     "amounts are floored",
			total:    999.99,
			duration: 7,
			expected: BudgetBreakdown{Daily: 142, HasDaily: true, Accommodation: 399, Food: 199, Activities: 299, Emergency: 99},
		},
		{
			name:     "zero duration has no daily amount",
			total:    500,
			duration: 0,
			expected: BudgetBreakdown{Accommodation: 200, Food: 100, Activities: 150, Emergency: 50},
		},
		{
			name:     "negative duration has no daily amount",
			total:    500,
			duration: -2,
			expected: BudgetBreakdown{Accommodation: 200, Food: 100, Activities: 150, Emergency: 50},
		},
		{
			name:     "zero budget",
			total:    0,
			duration: 3,
			expected: BudgetBreakdown{HasDaily: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitBudget(tc.total, tc.duration))
		})
	}
}

func TestSplitBudget_SharesCoverWholeBudget(t *testing.T) {
	assert.InDelta(t, 1.0, AccommodationShare+FoodShare+ActivitiesShare+EmergencyShare, 1e-9)
}

func TestSplitBudget_NonFinite(t *testing.T) {
	b := SplitBudget(math.Inf(1), 2)
	assert.True(t, math.IsInf(b.Daily, 1))
	assert.True(t, math.IsInf(b.Emergency, 1))
}

func TestItinerary(t *testing.T) {
	assert.Nil(t, Itinerary(0))
	assert.Nil(t, Itinerary(-1))

	days := Itinerary(5)
	require.Len(t, days, 5)
	assert.Equal(t, DayPlan{Day: 1, Morning: "Breakfast at local cafe", Afternoon: "Lunch at restaurant", Evening: "Dinner experience"}, days[0])
	assert.Equal(t, DayPlan{Day: 4, Morning: "Hiking", Afternoon: "Cultural site visit", Evening: "City lights tour"}, days[3])
	// Day 5 wraps around to the first activities.
	assert.Equal(t, DayPlan{Day: 5, Morning: "Breakfast at local cafe", Afternoon: "Lunch at restaurant", Evening: "Dinner experience"}, days[4])

	assert.Equal(t, days, Itinerary(5), "the itinerary is deterministic")
}

func TestClassifyDestinations(t *testing.T) {
	got := ClassifyDestinations([]string{"Penang", " Kuala Lumpur ", "Tokyo", "", "CAMERON HIGHLANDS"})

	assert.Equal(t, []ClassifiedDestination{
		{Name: "Penang", Kind: Domestic},
		{Name: "Kuala Lumpur", Kind: Domestic},
		{Name: "Tokyo", Kind: Abroad},
		{Name: "CAMERON HIGHLANDS", Kind: Domestic},
	}, got)
}

func TestTravelTips(t *testing.T) {
	tips := TravelTips(AccommodationHomestay)

	require.Len(t, tips, 4)
	assert.Equal(t, "Remember to book your Homestay in advance", tips[0])
}

func TestBuildPlan_LeavesRecordUntouched(t *testing.T) {
	rec := New()
	rec.Budget = 1000
	rec.Duration = 2
	rec.Destinations = []string{"Goa"}
	rec.Accommodation = AccommodationCamping
	before := *rec

	plan := BuildPlan(rec)

	assert.Equal(t, before, *rec)
	assert.Equal(t, float64(500), plan.Budget.Daily)
	assert.Len(t, plan.Days, 2)
	assert.Equal(t, []ClassifiedDestination{{Name: "Goa", Kind: Abroad}}, plan.Destinations)
	assert.Contains(t, plan.Tips[0], "Camping")
}
