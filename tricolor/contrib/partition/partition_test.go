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

package partition

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-tricolor/tricolor"
)

var partitioners = []struct {
	name string
	fn   Func
}{
	{"OverrideColors", OverrideColors},
	{"PointersSort", PointersSort},
}

// Helper to check the red/green/blue layout against the input's counts
func isPartitioned(in, out tricolor.Sequence) bool {
	if len(in) != len(out) {
		return false
	}
	counts := tricolor.Tally(in)
	i, j := counts.Boundaries()
	for k, tok := range out {
		want := tricolor.Blue
		switch {
		case k < i:
			want = tricolor.Red
		case k < j:
			want = tricolor.Green
		}
		if tok != want.String() {
			return false
		}
	}
	return true
}

// Helper to check that out is a permutation of in
func isPermutation(in, out tricolor.Sequence) bool {
	a := slices.Clone(in)
	b := slices.Clone(out)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func generateColors(r *rand.Rand, n int) tricolor.Sequence {
	seq := make(tricolor.Sequence, n)
	for i := range seq {
		seq[i] = tricolor.Categories[r.Intn(tricolor.NumCategories)].String()
	}
	return seq
}

// TestScenarios checks the documented input/output pairs
func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   tricolor.Sequence
		want tricolor.Sequence
	}{
		{
			"mixed",
			tricolor.Sequence{"red", "blue", "green", "blue", "red", "green", "blue", "red", "green", "blue"},
			tricolor.Sequence{"red", "red", "red", "green", "green", "green", "blue", "blue", "blue", "blue"},
		},
		{"degenerate", tricolor.Sequence{"red", "red", "red", "red"}, tricolor.Sequence{"red", "red", "red", "red"}},
		{"empty", tricolor.Sequence{}, tricolor.Sequence{}},
		{"foreign", tricolor.Sequence{"red", "blue", "green", "yellow"}, tricolor.Sequence{"red", "blue", "green", "yellow"}},
		{"green first", tricolor.Sequence{"green", "green", "red", "blue"}, tricolor.Sequence{"red", "green", "green", "blue"}},
		{"two sorted", tricolor.Sequence{"red", "blue"}, tricolor.Sequence{"red", "blue"}},
		{"two reversed", tricolor.Sequence{"blue", "red"}, tricolor.Sequence{"red", "blue"}},
		{"green blue", tricolor.Sequence{"blue", "green"}, tricolor.Sequence{"green", "blue"}},
	}

	for _, p := range partitioners {
		for _, tt := range tests {
			t.Run(p.name+"/"+tt.name, func(t *testing.T) {
				got := p.fn(tt.in)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("%s(%v) mismatch (-want +got):\n%s", p.name, tt.in, diff)
				}
			})
		}
	}
}

// TestBoundaryLengths exercises lengths 0, 1 and 2
func TestBoundaryLengths(t *testing.T) {
	inputs := []tricolor.Sequence{
		nil,
		{},
		{"red"}, {"green"}, {"blue"}, {"yellow"},
		{"red", "green"}, {"green", "red"},
		{"blue", "green"}, {"green", "blue"},
		{"red", "blue"}, {"blue", "red"},
		{"blue", "blue"}, {"red", "yellow"},
	}
	for _, p := range partitioners {
		for _, in := range inputs {
			got := p.fn(in)
			if len(got) != len(in) {
				t.Fatalf("%s(%v) returned length %d", p.name, in, len(got))
			}
			if tricolor.IsValidArray(in) && !isPartitioned(in, got) {
				t.Errorf("%s(%v) = %v, not partitioned", p.name, in, got)
			}
			if !tricolor.IsValidArray(in) && !in.Equal(got) {
				t.Errorf("%s(%v) = %v, want unchanged", p.name, in, got)
			}
		}
	}
}

// TestNilInput checks absent input comes back absent
func TestNilInput(t *testing.T) {
	for _, p := range partitioners {
		if got := p.fn(nil); got != nil {
			t.Errorf("%s(nil) = %#v, want nil", p.name, got)
		}
	}
}

// TestNonMutation verifies the caller's sequence is left untouched
func TestNonMutation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, p := range partitioners {
		for _, n := range []int{2, 3, 10, 100} {
			in := generateColors(r, n)
			ref := in.Clone()
			out := p.fn(in)
			if !in.Equal(ref) {
				t.Errorf("%s mutated its input: %v, want %v", p.name, in, ref)
			}
			if n > 0 && &out[0] == &in[0] {
				t.Errorf("%s returned a slice aliasing its input", p.name)
			}
		}
	}
}

// TestInvalidInputIdentity checks rejected input comes back element-for-element
func TestInvalidInputIdentity(t *testing.T) {
	inputs := []tricolor.Sequence{
		{"red", "yellow", "blue"},
		{"yellow", "red", "blue"},
		{"red", "blue", "yellow"},
		{"yellow", "yellow", "yellow"},
		{"red", "blue", "green", "purple", "orange"},
		{"blue", "blue", "blue", "blue", "blue", "blue", "blue", "blue", "blue", "blue"},
		{"Blue", "red"},
	}
	for _, p := range partitioners {
		for _, in := range inputs {
			got := p.fn(in)
			if diff := cmp.Diff(in, got); diff != "" {
				t.Errorf("%s(%v) changed rejected input (-want +got):\n%s", p.name, in, diff)
			}
		}
	}
}

// TestRandom checks the permutation and partition properties on random data
func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	sizes := []int{2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, p := range partitioners {
		for _, n := range sizes {
			in := generateColors(r, n)
			got := p.fn(in)
			if !tricolor.IsValidArray(in) {
				continue
			}
			if !isPermutation(in, got) {
				t.Errorf("%s(n=%d) is not a permutation of its input", p.name, n)
			}
			if !isPartitioned(in, got) {
				t.Errorf("%s(n=%d) produced unpartitioned result: %v", p.name, n, got)
			}
		}
	}
}

// TestIdempotent checks a sorted sequence keeps its layout
func TestIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, p := range partitioners {
		for _, n := range []int{2, 5, 50, 500} {
			once := p.fn(generateColors(r, n))
			twice := p.fn(once)
			if !once.Equal(twice) {
				t.Errorf("%s not idempotent (n=%d): %v then %v", p.name, n, once, twice)
			}
		}
	}
}

// TestCrossAlgorithm verifies both partitioners agree on every valid input.
// With only three tokens the block layout determines the whole output.
func TestCrossAlgorithm(t *testing.T) {
	r := rand.New(rand.NewSource(2025))
	for _, n := range []int{2, 3, 4, 10, 33, 128, 1000} {
		for range 20 {
			in := generateColors(r, n)
			a := OverrideColors(in)
			b := PointersSort(in)
			if tricolor.Tally(a) != tricolor.Tally(b) {
				t.Fatalf("counts differ for %v: %v vs %v", in, a, b)
			}
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("OverrideColors and PointersSort disagree on %v (-counting +pointers):\n%s", in, diff)
			}
		}
	}
}

// TestThreeWay tests the in-place kernel and its returned boundaries
func TestThreeWay(t *testing.T) {
	data := []tricolor.Category{
		tricolor.Blue, tricolor.Red, tricolor.Green, tricolor.Blue, tricolor.Red,
		tricolor.Green, tricolor.Blue, tricolor.Red, tricolor.Green, tricolor.Blue,
	}
	lt, gt := ThreeWay(data, func(c tricolor.Category) tricolor.Category { return c })
	if lt != 3 || gt != 6 {
		t.Fatalf("ThreeWay boundaries = (%d, %d), want (3, 6)", lt, gt)
	}
	for i := range lt {
		if data[i] != tricolor.Red {
			t.Errorf("data[%d]=%v should be red", i, data[i])
		}
	}
	for i := lt; i < gt; i++ {
		if data[i] != tricolor.Green {
			t.Errorf("data[%d]=%v should be green", i, data[i])
		}
	}
	for i := gt; i < len(data); i++ {
		if data[i] != tricolor.Blue {
			t.Errorf("data[%d]=%v should be blue", i, data[i])
		}
	}

	lt, gt = ThreeWay([]tricolor.Category{}, func(c tricolor.Category) tricolor.Category { return c })
	if lt != 0 || gt != 0 {
		t.Errorf("ThreeWay(empty) = (%d, %d), want (0, 0)", lt, gt)
	}
}

// TestThreeWayAllBlue guards the scan pointer on repeated blue swaps
func TestThreeWayAllBlue(t *testing.T) {
	data := []tricolor.Category{tricolor.Blue, tricolor.Blue, tricolor.Blue}
	lt, gt := ThreeWay(data, func(c tricolor.Category) tricolor.Category { return c })
	if lt != 0 || gt != 0 {
		t.Errorf("ThreeWay(all blue) = (%d, %d), want (0, 0)", lt, gt)
	}
}

// TestCountingFill tests the generic k-way kernel with a fourth value
func TestCountingFill(t *testing.T) {
	order := []string{"red", "green", "blue", "yellow"}
	data := []string{"yellow", "blue", "red", "yellow", "green", "red"}
	if !CountingFill(data, order) {
		t.Fatal("CountingFill rejected a valid input")
	}
	want := []string{"red", "red", "green", "blue", "yellow", "yellow"}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("CountingFill mismatch (-want +got):\n%s", diff)
	}

	data = []string{"blue", "purple", "red"}
	if CountingFill(data, order) {
		t.Error("CountingFill accepted a value outside order")
	}
	if diff := cmp.Diff([]string{"blue", "purple", "red"}, data); diff != "" {
		t.Errorf("CountingFill modified rejected data (-want +got):\n%s", diff)
	}

	ints := []int{2, 0, 1, 2, 0}
	CountingFill(ints, []int{0, 1, 2})
	if !slices.IsSorted(ints) {
		t.Errorf("CountingFill(ints) = %v, want sorted", ints)
	}
}
