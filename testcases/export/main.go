// Command export records the device calls of all test cases and writes
// them to a JSON file.  The output is used to compare the drawing protocol
// across versions.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fill"
	"seehuhn.de/go/fill/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/calls.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := record(category, tc)
			if err != nil {
				log.Fatalf("%s_%s: %v", category, tc.Name, err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Calls  []fill.Call `json:"calls"`
}

func record(category string, tc testcases.TestCase) (jsonTestCase, error) {
	d, err := tc.Drawer()
	if err != nil {
		return jsonTestCase{}, err
	}
	rec := &fill.Recorder{}
	if err := fill.Draw(rec, d); err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Calls:  rec.Calls,
	}, nil
}
