// Command export writes test case definitions to JSON for external
// reference renderers. Run from the fbdraw module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/fbdraw/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Verts     [][]float64  `json:"verts"`
	Attrs     [][3]float64 `json:"attrs,omitempty"`
	Op        string       `json:"op"`
	RGB       uint32       `json:"rgb,omitempty"`
	TexWidth  int          `json:"tex_width,omitempty"`
	TexHeight int          `json:"tex_height,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, v := range tc.Verts {
		jtc.Verts = append(jtc.Verts, []float64{v.X, v.Y})
	}

	switch op := tc.Op.(type) {
	case testcases.Flat:
		jtc.Op = "flat"
		jtc.RGB = op.RGB
	case testcases.Shaded:
		jtc.Op = "shaded"
	case testcases.Textured:
		jtc.Op = "textured"
		jtc.TexWidth = op.TexWidth
		jtc.TexHeight = op.TexHeight
	}
	if jtc.Op != "flat" {
		for _, a := range tc.Attrs {
			jtc.Attrs = append(jtc.Attrs, [3]float64(a))
		}
	}
	return jtc
}
