// Copyright 2025 go-tricolor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package harness runs a partitioner against fixed input/expected pairs and
// reports a pass/fail tally with a dump of every mismatch.
package harness

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-tricolor/tricolor"
)

//go:embed vectors.yaml
var builtinVectors []byte

// Vector is one fixed input and the output expected for it.
type Vector struct {
	Name  string            `yaml:"name"`
	Input tricolor.Sequence `yaml:"input"`
	Want  tricolor.Sequence `yaml:"want"`
}

type vectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

// sample is the demonstration sequence.
var sample = tricolor.Sequence{"red", "blue", "green", "blue", "red", "green", "blue", "red", "green", "blue"}

// Sample returns a fresh copy of the demonstration sequence.
func Sample() tricolor.Sequence {
	return sample.Clone()
}

// Default returns the built-in vectors.
func Default() []Vector {
	vs, err := Load(bytes.NewReader(builtinVectors))
	if err != nil {
		panic(fmt.Sprintf("harness: built-in vectors: %v", err))
	}
	return vs
}

// LoadFile reads vectors from a YAML file.
func LoadFile(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vectors: %w", err)
	}
	defer f.Close()

	vs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vs, nil
}

// Load decodes vectors from YAML of the form
//
//	vectors:
//	  - name: pair
//	    input: [blue, red]
//	    want: [red, blue]
//
// Every vector needs an input and a want list; unnamed vectors are named
// after their 1-based position.
func Load(r io.Reader) ([]Vector, error) {
	var file vectorFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no vectors")
		}
		return nil, fmt.Errorf("failed to parse vectors: %w", err)
	}

	for i := range file.Vectors {
		v := &file.Vectors[i]
		if v.Name == "" {
			v.Name = fmt.Sprintf("case-%d", i+1)
		}
		if v.Input == nil {
			return nil, fmt.Errorf("vector %d (%s): missing input", i+1, v.Name)
		}
		if v.Want == nil {
			return nil, fmt.Errorf("vector %d (%s): missing want", i+1, v.Name)
		}
	}
	return file.Vectors, nil
}
