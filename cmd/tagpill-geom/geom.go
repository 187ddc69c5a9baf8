package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/tagpill/editor"
	"github.com/iw2rmb/tagpill/layout"
)

type rect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

func fromRect(r layout.Rect) rect { return rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

type tagGeometry struct {
	Text  string `json:"text" yaml:"text"`
	Pill  rect   `json:"pill" yaml:"pill"`
	Cross *rect  `json:"cross,omitempty" yaml:"cross,omitempty"`
}

// geometry is one layout pass in pixels.
type geometry struct {
	Mode       string        `json:"mode" yaml:"mode"`
	Width      int           `json:"width" yaml:"width"`
	Height     int           `json:"height" yaml:"height"`
	LineHeight int           `json:"line_height" yaml:"line_height"`
	ScrollX    int           `json:"scroll_x" yaml:"scroll_x"`
	Tags       []tagGeometry `json:"tags" yaml:"tags"`
}

type geomOptions struct {
	Mode    editor.Mode
	Width   int
	NoCross bool
}

// computeGeometry lays out texts with every tag committed.
func computeGeometry(shaper layout.TextShaper, texts []string, opt geomOptions) geometry {
	var flow layout.Flow = layout.LineFlow{}
	if opt.Mode == editor.ModeArea {
		flow = layout.WrapFlow{}
	}
	eng := layout.Engine{Metrics: layout.PixelMetrics(), Shaper: shaper, Flow: flow}

	res := eng.Layout(layout.Input{
		Texts:       texts,
		Editing:     -1,
		EditorShown: true,
		NoCross:     opt.NoCross,
		Content:     layout.Rect{W: opt.Width},
	})
	ext := eng.Extents(res, layout.Size{W: opt.Width, H: res.Height})

	g := geometry{
		Mode:       opt.Mode.String(),
		Width:      opt.Width,
		Height:     res.Height,
		LineHeight: shaper.LineHeight(),
		ScrollX:    ext.X,
		Tags:       make([]tagGeometry, len(texts)),
	}
	for i, r := range res.Rects {
		tg := tagGeometry{Text: texts[i], Pill: fromRect(r)}
		if !opt.NoCross {
			cr := fromRect(eng.Metrics.CrossRect(r))
			tg.Cross = &cr
		}
		g.Tags[i] = tg
	}
	return g
}

func writeGeometry(w io.Writer, g geometry, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
