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

import "github.com/ajroetker/go-tricolor/tricolor"

// ThreeWay partitions data in place by category. Returns (lt, gt) where:
//   - data[0:lt] are Red
//   - data[lt:gt] are Green
//   - data[gt:n] are Blue
//
// class must return a valid category for every element.
func ThreeWay[T any](data []T, class func(T) tricolor.Category) (int, int) {
	low, scan, high := 0, 0, len(data)-1

	// data[:low] red, data[low:scan] green, data[scan:high+1] unexamined,
	// data[high+1:] blue.
	for scan <= high {
		switch class(data[scan]) {
		case tricolor.Red:
			swap(data, scan, low)
			low++
			scan++
		case tricolor.Blue:
			// The element swapped into scan is unexamined; scan stays.
			swap(data, scan, high)
			high--
		default:
			scan++
		}
	}

	return low, high + 1
}

// CountingFill sorts data in place into the order given by order, using
// one counter per value. It returns false and leaves data untouched when
// an element does not appear in order.
func CountingFill[T comparable](data []T, order []T) bool {
	counts := make([]int, len(order))
	for _, v := range data {
		k := indexOf(order, v)
		if k < 0 {
			return false
		}
		counts[k]++
	}

	start := 0
	for k, v := range order {
		end := start + counts[k]
		fill(data[start:end], v)
		start = end
	}
	return true
}

func swap[T any](data []T, i, j int) {
	data[i], data[j] = data[j], data[i]
}

func fill[T any](data []T, v T) {
	for i := range data {
		data[i] = v
	}
}

func indexOf[T comparable](order []T, v T) int {
	for k, o := range order {
		if o == v {
			return k
		}
	}
	return -1
}
