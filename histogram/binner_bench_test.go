package histogram

import (
	"math/rand"
	"testing"

	"github.com/ornl-ndav/ISAW-sub008/scale"
)

func BenchmarkBin(b *testing.B) {
	for _, points := range []int{64, 4096, 65536} {
		sc, err := scale.Uniform(0, 20000, points)
		if err != nil {
			b.Fatal(err)
		}

		rng := rand.New(rand.NewSource(7))
		events := make([]Event, 100_000)
		for i := range events {
			events[i] = Event{StartTime: 1000, TickWidth: 0.5, Tick: int32(rng.Intn(40000)), Count: 1}
		}

		b.Run(sc.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Bin(events, sc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
