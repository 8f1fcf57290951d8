package summary

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tripplanner/internal/trip"
)

func TestWritePlan(t *testing.T) {
	// --- Arrange ---
	rec := sampleTrip()
	rec.Duration = 2
	rec.Destinations = []string{"Penang", "Tokyo"}
	buf := &bytes.Buffer{}

	// --- Act ---
	require.NoError(t, WritePlan(buf, rec))

	// --- Assert ---
	want := "\n=== Trip Plan ===\n" +
		"\nBudget Breakdown:\n" +
		"Daily Budget: $625\n" +
		"Accommodation: $500\n" +
		"Food: $250\n" +
		"Activities: $375\n" +
		"Emergency Fund: $125\n" +
		"\nDaily Itinerary:\n" +
		"Day 1\n  Morning: Breakfast at local cafe\n  Afternoon: Lunch at restaurant\n  Evening: Dinner experience\n" +
		"Day 2\n  Morning: City tour\n  Afternoon: Shopping\n  Evening: Night market visit\n" +
		"\nDestinations:\n" +
		"- Penang (Domestic)\n" +
		"- Tokyo (Abroad)\n" +
		"\nTravel Tips:\n" +
		"- Remember to book your Resort in advance\n" +
		"- Check the weather forecast before your trip\n" +
		"- Keep emergency contacts handy\n" +
		"- Make copies of important documents\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePlan_ZeroDuration(t *testing.T) {
	rec := sampleTrip()
	rec.Duration = 0
	buf := &bytes.Buffer{}

	require.NoError(t, WritePlan(buf, rec))

	assert.Contains(t, buf.String(), "Daily Budget: n/a (duration must be at least 1 day)\n")
	assert.Contains(t, buf.String(), "\nDaily Itinerary:\nNo days to plan.\n")
	assert.NotContains(t, buf.String(), "Day 1")
}

func TestWritePlan_NonFiniteBudget(t *testing.T) {
	rec := sampleTrip()
	rec.Budget = math.Inf(1)
	buf := &bytes.Buffer{}

	require.NoError(t, WritePlan(buf, rec))

	assert.Contains(t, buf.String(), "Emergency Fund: $inf\n")
}

func TestWriteText_UnchangedByPlan(t *testing.T) {
	rec := sampleTrip()
	plain, withPlan := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, WriteText(plain, rec))
	require.NoError(t, WriteText(withPlan, rec))
	require.NoError(t, WritePlan(withPlan, rec))

	assert.True(t, bytes.HasPrefix(withPlan.Bytes(), plain.Bytes()))
	assert.NotContains(t, plain.String(), string(trip.Abroad))
}
