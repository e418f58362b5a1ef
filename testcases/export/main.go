// seehuhn.de/go/lines - procedural line geometry for stroke rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes the shape catalog to JSON, together with a JSON
// schema describing the file.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/invopop/jsonschema"

	"seehuhn.de/go/lines/pack"
	"seehuhn.de/go/lines/testcases"
)

// Catalog is the top-level object of the exported file.
type Catalog struct {
	TestCases []Case `json:"testcases" jsonschema:"description=All shapes, sorted by category"`
}

// Case is one exported shape, after packing.
type Case struct {
	Name     string       `json:"name" jsonschema:"pattern=^[a-z0-9_]+$"`
	Size     int          `json:"size" jsonschema:"minimum=1,description=Canvas side length in pixels"`
	Width    float64      `json:"width" jsonschema:"description=Stroke width in shape units"`
	Seed     uint64       `json:"seed,omitempty"`
	HalfSize float64      `json:"half_size" jsonschema:"description=Half side length of the quad in shape units"`
	Packed   float32      `json:"packed_width" jsonschema:"description=Stroke width as passed to the shader"`
	Lines    [][4]float64 `json:"lines" jsonschema:"description=Segments ax ay bx by in shape units,maxItems=256"`
}

func main() {
	outPath := flag.String("out", "testdata/testcases.json", "path of the catalog file")
	schemaPath := flag.String("schema", "testdata/testcases.schema.json", "path of the schema file")
	flag.Parse()

	var out Catalog
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			c, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, c)
		}
	}

	if err := writeJSON(*outPath, out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write catalog: %v\n", err)
		os.Exit(1)
	}
	if err := writeJSON(*schemaPath, buildSchema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func toJSON(category string, tc testcases.TestCase) (Case, error) {
	g := tc.Shape()
	res, err := pack.Pack(g, tc.Width)
	if err != nil {
		return Case{}, err
	}
	c := Case{
		Name:     category + "_" + tc.Name,
		Size:     tc.Size,
		Width:    tc.Width,
		Seed:     tc.Seed,
		HalfSize: res.HalfSize,
		Packed:   res.Settings.Width,
		Lines:    make([][4]float64, len(g)),
	}
	for i, l := range g {
		c.Lines[i] = [4]float64{l.A.X, l.A.Y, l.B.X, l.B.Y}
	}
	return c, nil
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Catalog))
	schema.Title = "Line shape catalog"
	schema.Description = "Named stroke shapes with their packed parameters"
	return schema
}

func writeJSON(outPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}
