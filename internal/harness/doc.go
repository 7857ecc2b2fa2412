// Package harness runs unscrambling scenarios for regression testing.
//
// A scenario pairs a dictionary with an input text and, optionally, the
// exact expected output. Scenarios are plain YAML so new cases can be
// added without writing Go.
//
// # Scenario Format
//
//	name: grundgesetz_article_1
//	description: "Reference line with ambiguous candidates"
//	dictionary:
//	  - Die
//	  - Würde
//	dictionary_file: words.dic   # alternative to the inline list
//	encoding: utf-8              # for dictionary_file only
//	input: |
//	  eiD rüedW
//	expect: |
//	  Die Würde
//	workers: 1
//
// dictionary and dictionary_file may be combined; inline words come
// first. A relative dictionary_file is resolved against the scenario file's
// directory.
//
// # Golden Files
//
// RunWithGolden compares the rendered output against
// testdata/golden/{scenario.Name}.golden. To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// # Determinism
//
// Each scenario builds its own index, and the engine keeps input order even
// with several workers, so output is identical across runs.
package harness
