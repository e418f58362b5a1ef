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

// Package shader holds the WGSL stroke shader which draws packed segments.
//
// Bindings (group 0):
//   - 0: uniform LineMaterial, as produced by Settings.Bytes in package pack
//   - 1: uniform QuadTransform, a column-major mat4x4<f32> mapping quad
//     coordinates to clip space
//
// Vertex inputs are the quad position (location 0) and its texture
// coordinate with y pointing down (location 1).
package shader

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Source is the WGSL source of the stroke shader.
//
//go:embed stroke.wgsl
var Source string

// Entry points in [Source].
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Compile translates [Source] to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(Source)
	if err != nil {
		return nil, fmt.Errorf("compile stroke shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile stroke shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
