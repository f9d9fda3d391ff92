// Command export writes the test strokes and their pen-tip polygons to JSON,
// for use by external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/ink/geometry"
	"seehuhn.de/go/ink/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
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
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Tip      jsonTip       `json:"tip"`
	Samples  [][]float64   `json:"samples"` // x, y, pressure, tilt x, tilt y
	Polygons [][][]float64 `json:"polygons"`
}

type jsonTip struct {
	SizeNormal  float64 `json:"size_normal"`
	SizeTangent float64 `json:"size_tangent"`
	Skew        float64 `json:"skew"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Tip: jsonTip{
			SizeNormal:  tc.Tip.SizeNormal,
			SizeTangent: tc.Tip.SizeTangent,
			Skew:        tc.Tip.Skew,
		},
	}
	for _, s := range tc.Samples {
		jtc.Samples = append(jtc.Samples, []float64(s.Vec()))
	}

	polys, err := tc.Polygons()
	if err != nil {
		return jsonTestCase{}, err
	}
	for _, p := range polys {
		jtc.Polygons = append(jtc.Polygons, polygonToJSON(p))
	}
	return jtc, nil
}

func polygonToJSON(p geometry.Polygon) [][]float64 {
	res := make([][]float64, len(p))
	for i, v := range p {
		res[i] = []float64{v.X, v.Y}
	}
	return res
}
