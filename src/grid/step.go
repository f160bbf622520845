package grid

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

//minColsPerWorker is the smallest stripe handed to one worker by StepParallel
const minColsPerWorker = 3

//NeighborCount counts the live cells among the up to 8 neighbours of col,row.
//Edges are bounded: positions outside the grid don't wrap and don't count
func NeighborCount(g *Grid, col int, row int) int {
	count := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nc := col + i
			nr := row + j
			if nc < 0 || nr < 0 || nc >= g.cols || nr >= g.rows {
				continue
			}
			if g.Cells[nc][nr] {
				count++
			}
		}
	}
	return count
}

//NextState applies B3/S23
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

//Step computes the next generation into a freshly allocated grid, g is not modified
func Step(g *Grid) *Grid {
	next := createGrid(g.cols, g.rows)
	stepColumns(g, next, 0, g.cols)
	return next
}

//StepParallel computes the same result as Step,
//the columns are split into stripes each of which is computed by its own goroutine
func StepParallel(g *Grid, workers int) *Grid {
	if workers <= 1 {
		return Step(g)
	}
	next := createGrid(g.cols, g.rows)

	colsPerWorker := (g.cols + workers - 1) / workers
	if colsPerWorker < minColsPerWorker {
		colsPerWorker = minColsPerWorker
	}

	var eg errgroup.Group
	for from := 0; from < g.cols; from += colsPerWorker {
		to := min(from+colsPerWorker, g.cols)
		eg.Go(func() error {
			stepColumns(g, next, from, to)
			return nil
		})
	}
	//the workers never fail, Wait only joins them
	_ = eg.Wait()
	return next
}

//stepColumns writes the next state of the columns [from, to) of cur into next
func stepColumns(cur *Grid, next *Grid, from int, to int) {
	for col := from; col < to; col++ {
		for row := 0; row < cur.rows; row++ {
			next.Cells[col][row] = Cell(NextState(bool(cur.Cells[col][row]), NeighborCount(cur, col, row)))
		}
	}
}

//Randomize sets every cell alive with probability 0.5, independently of the others
func Randomize(g *Grid, rng *rand.Rand) {
	for col := range g.Cells {
		for row := range g.Cells[col] {
			g.Cells[col][row] = rng.IntN(2) == 1
		}
	}
}

//Reset returns a blank grid of the same dimensions
func Reset(g *Grid) *Grid {
	return createGrid(g.cols, g.rows)
}
