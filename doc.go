/*
Package pathfinder is an interactive grid shortest-path demonstrator built around a deterministic A* engine.

A user marks obstacle cells on a fixed-size square grid with a start and a finish; the engine computes a
minimum-length route between them using four-directional unit-cost moves, tagging cells as it explores so
that any front end can visualize the search.

# Concept

The library separates the search (Engine) from the data it runs on (Grid) and from how it is shown
(Observer). A Session ties one Grid to one Engine and exposes the three commands a control loop needs:
Run, Reset and Scatter. Rendering, input and windowing stay with the host: a CLI, an HTTP server or a test.

# Key Features

  - Optimal paths: Manhattan distance is admissible on a 4-directional unit-cost grid.
  - Deterministic: ties on priority are broken by insertion order only, so equal grids give equal paths.
  - Observable: a synchronous Observer is called after every expansion and every path tag, and may cancel.
  - Distinct outcomes: Succeeded, Failed (no path) and Cancelled are never conflated.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/pathfinder"
		"github.com/aretw0/pathfinder/pkg/domain"
	)

	func main() {
		sess, err := pathfinder.New(10, 500)
		if err != nil {
			log.Fatal(err)
		}

		g := sess.Grid()
		g.SetStart(domain.Pos(0, 0))
		g.SetFinish(domain.Pos(9, 9))
		g.SetObstacle(domain.Pos(6, 7))

		res, err := sess.Run(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Outcome, res.StepCount)
	}
*/
package pathfinder
