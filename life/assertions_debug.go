// Copyright 2025 go-highway Authors
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

//go:build lifedebug

package life

import "fmt"

// assertBorderZero checks the spec.md §7 internal invariant that the
// one-cluster zero border is intact, and that both scratch buffers are
// sized to match the grid height. Compiled in only under -tags lifedebug
// — the same build-tag mechanism the teacher repo uses to select
// architecture-specific dispatch files (dispatch_amd64.go and friends),
// repurposed here to switch a debug check in and out of the build.
func assertBorderZero(g *Grid) {
	for r := range g.cols[0] {
		if g.cols[0][r] != 0 {
			panic(fmt.Sprintf("life: border column 0 row %d is not zero", r))
		}
		if g.cols[g.p+1][r] != 0 {
			panic(fmt.Sprintf("life: border column %d row %d is not zero", g.p+1, r))
		}
	}
	for j := range g.cols {
		if g.cols[j][0] != 0 {
			panic(fmt.Sprintf("life: border row 0 col %d is not zero", j))
		}
		if g.cols[j][g.m+1] != 0 {
			panic(fmt.Sprintf("life: border row %d col %d is not zero", g.m+1, j))
		}
	}
	if len(g.bufA) != g.m+2 || len(g.bufB) != g.m+2 {
		panic("life: scratch buffer length does not match grid height")
	}
}
