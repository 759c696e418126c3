package events

import "testing"

func TestEmitReachesSubscribersInOrder(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe("wind_chill", func(payload any) {
		got = append(got, "first:"+payload.(string))
	})
	bus.Subscribe("wind_chill", func(payload any) {
		got = append(got, "second:"+payload.(string))
	})

	bus.Emit("wind_chill", "17")

	if len(got) != 2 || got[0] != "first:17" || got[1] != "second:17" {
		t.Errorf("deliveries = %v", got)
	}
}

func TestEmitWithoutSubscribersIsDropped(t *testing.T) {
	bus := NewBus()
	// Must not panic or block.
	bus.Emit("temperature", "21")
}

func TestSubscribersAreIndependentPerName(t *testing.T) {
	bus := NewBus()

	var windCalls, tempCalls int
	bus.Subscribe("wind_speed", func(any) { windCalls++ })
	bus.Subscribe("temperature", func(any) { tempCalls++ })

	bus.Emit("wind_speed", "16")
	bus.Emit("wind_speed", "18")
	bus.Emit("temperature", "21")

	if windCalls != 2 || tempCalls != 1 {
		t.Errorf("windCalls=%d tempCalls=%d", windCalls, tempCalls)
	}
}
