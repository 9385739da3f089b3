// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ColorVertexShader is the vertex stage of the simple color program.
const ColorVertexShader = `#version 410 core
layout(location = 0) in vec4 Position;
layout(location = 1) in vec4 Color;
layout(location = 2) in vec2 TexCoord;

uniform mat4 ProjectionViewModel;

out vec4 vColor;
out vec2 vTexCoord;

void main() {
	vColor = Color;
	vTexCoord = TexCoord;
	gl_Position = ProjectionViewModel * Position;
}
` + "\x00"

// ColorFragmentShader is the fragment stage of the simple color program.
// With Checker set, the color is modulated by an 8x8 checker pattern
// over the texture coordinates.
const ColorFragmentShader = `#version 410 core
in vec4 vColor;
in vec2 vTexCoord;

uniform int Checker;

out vec4 FragColor;

void main() {
	vec4 c = vColor;
	if (Checker != 0) {
		ivec2 cell = ivec2(floor(vTexCoord * 8.0));
		c.rgb *= ((cell.x + cell.y) % 2 == 0) ? 1.0 : 0.35;
	}
	FragColor = c;
}
` + "\x00"

// Program is a linked shader program with the uniforms of the
// simple color shader.
type Program struct {
	id      uint32
	pvm     int32
	checker int32
}

// NewProgram compiles and links the simple color program.
func NewProgram() (*Program, error) {
	id, err := linkProgram(ColorVertexShader, ColorFragmentShader)
	if err != nil {
		return nil, err
	}
	pg := &Program{id: id}
	pg.pvm = gl.GetUniformLocation(id, gl.Str("ProjectionViewModel\x00"))
	pg.checker = gl.GetUniformLocation(id, gl.Str("Checker\x00"))
	return pg, nil
}

// Use makes this the current program.
func (pg *Program) Use() {
	gl.UseProgram(pg.id)
}

// SetProjectionViewModel sets the combined transform uniform.
// The program must be in use.
func (pg *Program) SetProjectionViewModel(m mgl32.Mat4) {
	gl.UniformMatrix4fv(pg.pvm, 1, false, &m[0])
}

// SetChecker turns the checker pattern on or off.
// The program must be in use.
func (pg *Program) SetChecker(on bool) {
	v := int32(0)
	if on {
		v = 1
	}
	gl.Uniform1i(pg.checker, v)
}

// Release deletes the program.
func (pg *Program) Release() {
	if pg.id != 0 {
		gl.DeleteProgram(pg.id)
		pg.id = 0
	}
}

func compileShader(source string, stage uint32) (uint32, error) {
	sh := gl.CreateShader(stage)
	csrc, free := gl.Strs(source)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("glgpu: compiling %s shader: %s", stageName(stage), strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func linkProgram(vertex, fragment string) (uint32, error) {
	vs, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	// shaders can be deleted after linking
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("glgpu: linking program: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}
