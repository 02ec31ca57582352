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

package life

// DispatchLevel names the widest integer-vector instruction set this
// process believes the current CPU supports. It is informational only:
// the cluster kernel is plain 64-bit bitwise arithmetic and is correct at
// every level, but the level is used to pick a cache-tuned default chunk
// length (see defaultChunkLength) and is reported by cmd/lifebench.
type DispatchLevel int

const (
	// DispatchScalar means no wide-integer SIMD was detected.
	DispatchScalar DispatchLevel = iota
	// DispatchAVX2 means 256-bit integer SIMD (4 uint64 lanes) is available.
	DispatchAVX2
	// DispatchAVX512 means 512-bit integer SIMD (8 uint64 lanes) is available.
	DispatchAVX512
	// DispatchNEON means 128-bit ARM NEON integer SIMD (2 uint64 lanes) is available.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// currentLevel is detected once by the init() in dispatch_amd64.go,
// dispatch_arm64.go, or dispatch_other.go (selected by build tag).
var currentLevel DispatchLevel

// CurrentDispatchLevel returns the dispatch level detected for this process.
func CurrentDispatchLevel() DispatchLevel {
	return currentLevel
}

// defaultChunkLength returns the cache-tuned default for StepOptions.ChunkLength.
// 64 rows of one cluster column is 64*8 = 512 bytes, comfortably inside L1
// on any architecture; wider detected vector widths get a larger chunk so
// each worker dispatch amortizes over more lanes-worth of rows.
func defaultChunkLength() int {
	switch currentLevel {
	case DispatchAVX512:
		return 128
	case DispatchAVX2, DispatchNEON:
		return 64
	default:
		return 64
	}
}
