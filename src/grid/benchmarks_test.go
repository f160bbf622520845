package grid

import (
	"math/rand/v2"
	"sort"
	"testing"
)

var (
	engines = map[string]func(g *Grid) *Grid{
		"sequential": Step,
		"parallel": func(g *Grid) *Grid {
			return StepParallel(g, 8)
		},
	}
)

const (
	width  = 200
	height = 200
)

func engineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

func Benchmark_Step(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			g, err := CreateBlank(width, height)
			if err != nil {
				b.Fatal(err)
			}
			Randomize(g, rand.New(rand.NewPCG(1, 1)))
			step := engines[e]
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g = step(g)
			}
		})
	}
}
