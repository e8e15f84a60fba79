package cli

import "github.com/sketchkit/sketch/pkg/sketch"

// demoScene is a built-in scene that can be rendered without a scene file.
type demoScene struct {
	name        string
	description string
	build       func() (*sketch.Document, error)
}

// demoScenes are the built-in scenes, in menu order.
var demoScenes = []demoScene{
	{
		name:        "crossing",
		description: "two lines crossing a filled square",
		build: func() (*sketch.Document, error) {
			d := sketch.New(sketch.WithTitle("Crossing"), sketch.WithSize(400, 400))
			d = d.AddLine(sketch.Point{X: 0, Y: 0}, sketch.Point{X: 400, Y: 400})
			d = d.AddLine(sketch.Point{X: 400, Y: 0}, sketch.Point{X: 0, Y: 400})
			d = d.SetFill(sketch.RGB(200, 120, 0))
			return d.AddSquare(sketch.Point{X: 150, Y: 150}, 100)
		},
	},
	{
		name:        "steps",
		description: "a staircase of translated squares",
		build: func() (*sketch.Document, error) {
			d := sketch.New(sketch.WithTitle("Steps"), sketch.WithSize(500, 500),
				sketch.WithBackground(sketch.RGB(245, 245, 245)))
			d = d.SetFill(sketch.RGB(30, 100, 200))
			var err error
			for i := 0; i < 8; i++ {
				if d, err = d.AddSquare(sketch.Point{X: 20, Y: 20}, 50); err != nil {
					return nil, err
				}
				d = d.Translate(55, 55)
			}
			return d, nil
		},
	},
	{
		name:        "stripes",
		description: "rectangles alternating between two fills",
		build: func() (*sketch.Document, error) {
			d := sketch.New(sketch.WithTitle("Stripes"), sketch.WithSize(600, 300))
			fills := []sketch.Color{sketch.RGB(220, 60, 60), sketch.RGB(60, 60, 220)}
			var err error
			for i := 0; i < 10; i++ {
				d = d.SetFill(fills[i%2])
				if d, err = d.AddRect(sketch.Point{X: float64(i) * 60, Y: 0}, 60, 300); err != nil {
					return nil, err
				}
			}
			return d, nil
		},
	},
}

// findDemoScene looks up a built-in scene by name.
func findDemoScene(name string) (demoScene, bool) {
	for _, s := range demoScenes {
		if s.name == name {
			return s, true
		}
	}
	return demoScene{}, false
}
