// Package scenefile loads sketch documents from TOML scene descriptions.
//
// A scene file declares the canvas configuration and an ordered list of items:
//
//	title = "Demo"
//	width = 800
//	height = 600
//	background = [255, 255, 255]
//
//	[[items]]
//	type = "line"
//	start = [0, 0]
//	finish = [100, 100]
//
//	[[items]]
//	type = "fill"
//	color = [200, 120, 0]
//
//	[[items]]
//	type = "rect"
//	origin = [40, 40]
//	width = 30
//	height = 30
//
// Item order in the file is insertion order in the document, so fill and
// translate entries affect exactly the items declared after them.
package scenefile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sketchkit/sketch/pkg/errors"
	"github.com/sketchkit/sketch/pkg/sketch"
)

// Item type names accepted in scene files.
const (
	TypeLine      = "line"
	TypeRect      = "rect"
	TypeSquare    = "square"
	TypeFill      = "fill"
	TypeTranslate = "translate"
)

type sceneFile struct {
	Title      string      `toml:"title"`
	Width      float64     `toml:"width"`
	Height     float64     `toml:"height"`
	Background []int       `toml:"background"`
	Items      []sceneItem `toml:"items"`
}

type sceneItem struct {
	Type   string    `toml:"type"`
	Start  []float64 `toml:"start"`
	Finish []float64 `toml:"finish"`
	Origin []float64 `toml:"origin"`
	Width  float64   `toml:"width"`
	Height float64   `toml:"height"`
	Size   float64   `toml:"size"`
	Color  []int     `toml:"color"`
	DX     float64   `toml:"dx"`
	DY     float64   `toml:"dy"`
}

// Load reads and parses a scene file.
func Load(path string) (*sketch.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "scene file %s", path)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a document from TOML scene data.
func Parse(data []byte) (*sketch.Document, error) {
	var sf sceneFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "parsing scene")
	}

	opts := []sketch.Option{}
	if sf.Title != "" {
		opts = append(opts, sketch.WithTitle(sf.Title))
	}
	if sf.Width != 0 || sf.Height != 0 {
		if sf.Width <= 0 || sf.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene,
				"canvas size must be positive, got %vx%v", sf.Width, sf.Height)
		}
		opts = append(opts, sketch.WithSize(sf.Width, sf.Height))
	}
	if sf.Background != nil {
		bg, err := colorOf(sf.Background)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "background")
		}
		opts = append(opts, sketch.WithBackground(bg))
	}

	doc := sketch.New(opts...)
	for i, item := range sf.Items {
		next, err := addItem(doc, item)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "items[%d]", i)
		}
		doc = next
	}
	return doc, nil
}

func addItem(doc *sketch.Document, item sceneItem) (*sketch.Document, error) {
	switch item.Type {
	case TypeLine:
		start, err := pointOf(item.Start, "start")
		if err != nil {
			return nil, err
		}
		finish, err := pointOf(item.Finish, "finish")
		if err != nil {
			return nil, err
		}
		return doc.AddLine(start, finish), nil

	case TypeRect:
		origin, err := pointOf(item.Origin, "origin")
		if err != nil {
			return nil, err
		}
		return doc.AddRect(origin, item.Width, item.Height)

	case TypeSquare:
		origin, err := pointOf(item.Origin, "origin")
		if err != nil {
			return nil, err
		}
		return doc.AddSquare(origin, item.Size)

	case TypeFill:
		c, err := colorOf(item.Color)
		if err != nil {
			return nil, err
		}
		return doc.SetFill(c), nil

	case TypeTranslate:
		return doc.Translate(item.DX, item.DY), nil

	case "":
		return nil, errors.New(errors.ErrCodeInvalidScene, "item is missing a type")

	default:
		return nil, errors.New(errors.ErrCodeInvalidScene,
			"unknown item type %q", item.Type)
	}
}

func pointOf(vals []float64, field string) (sketch.Point, error) {
	if len(vals) != 2 {
		return sketch.Point{}, errors.New(errors.ErrCodeInvalidScene,
			"%s must be an [x, y] pair, got %v", field, vals)
	}
	return sketch.Point{X: vals[0], Y: vals[1]}, nil
}

func colorOf(vals []int) (sketch.Color, error) {
	if len(vals) != 3 {
		return sketch.Color{}, errors.New(errors.ErrCodeInvalidScene,
			"color must be an [r, g, b] triple, got %v", vals)
	}
	return sketch.RGB(vals[0], vals[1], vals[2]), nil
}
