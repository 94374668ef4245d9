package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// presentShaderWGSL blits the rendered frame texture to the surface as a
// full-screen triangle. Compiled during Init so shader-translation failures
// surface in the capability gate rather than on the first frame.
const presentShaderWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    // Full-screen triangle without a vertex buffer.
    var out: VertexOutput;
    let x = f32(i32(index & 1u) * 4 - 1);
    let y = f32(i32(index >> 1u) * 4 - 1);
    out.position = vec4<f32>(x, y, 0.0, 1.0);
    out.uv = vec2<f32>((x + 1.0) * 0.5, (1.0 - y) * 0.5);
    return out;
}

@group(0) @binding(0) var frame_texture: texture_2d<f32>;
@group(0) @binding(1) var frame_sampler: sampler;

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(frame_texture, frame_sampler, in.uv);
}
`

// compilePresentShader translates the present shader to SPIR-V.
func compilePresentShader() ([]byte, error) {
	spirvBytes, err := naga.Compile(presentShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to compile present shader: %w", err)
	}
	return spirvBytes, nil
}
