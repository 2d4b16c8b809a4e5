package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, FlightStatusScheduled.CanTransitionTo(FlightStatusBoarding))
	assert.True(t, FlightStatusScheduled.CanTransitionTo(FlightStatusDelayed))
	assert.True(t, FlightStatusScheduled.CanTransitionTo(FlightStatusCancelled))
	assert.True(t, FlightStatusDelayed.CanTransitionTo(FlightStatusBoarding))
	assert.True(t, FlightStatusBoarding.CanTransitionTo(FlightStatusDeparted))
	assert.True(t, FlightStatusDeparted.CanTransitionTo(FlightStatusArrived))

	// DELAYED never returns to SCHEDULED
	assert.False(t, FlightStatusDelayed.CanTransitionTo(FlightStatusScheduled))
	// no going backwards
	assert.False(t, FlightStatusDeparted.CanTransitionTo(FlightStatusBoarding))
	assert.False(t, FlightStatusBoarding.CanTransitionTo(FlightStatusScheduled))
}

func TestFlightStatus_TerminalStatesAreAbsorbing(t *testing.T) {
	all := []FlightStatus{
		FlightStatusScheduled, FlightStatusBoarding, FlightStatusDelayed,
		FlightStatusDeparted, FlightStatusArrived, FlightStatusCancelled,
	}
	for _, terminal := range []FlightStatus{FlightStatusArrived, FlightStatusCancelled} {
		assert.True(t, terminal.Terminal())
		for _, next := range all {
			if next == terminal {
				continue
			}
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestEventTypesFor_ConsistentWithStatus(t *testing.T) {
	assert.Contains(t, EventTypesFor(FlightStatusBoarding), EventBoardingStart)
	assert.NotContains(t, EventTypesFor(FlightStatusScheduled), EventBoardingStart)
	assert.NotContains(t, EventTypesFor(FlightStatusScheduled), EventDelayAnnounced)
	assert.Contains(t, EventTypesFor(FlightStatusDelayed), EventDelayAnnounced)
	assert.Empty(t, EventTypesFor(FlightStatusCancelled))
}

func TestFlight_OccupancyRate(t *testing.T) {
	f := Flight{Capacity: 200, OccupiedSeats: 50}
	assert.InDelta(t, 25.0, f.OccupancyRate(), 0.001)
	assert.Zero(t, Flight{}.OccupancyRate())
}
