package app

import (
	"os"

	"github.com/gregjohnson2017/xenogl/pkg/config"
)

const (
	// Block `Globals` is bound through a uniform buffer object.
	// Uniform `time` is seconds since start.
	VertexShaderSource = `
	#version 330
	layout(std140) uniform Globals {
		vec2 area;
		float scale;
	};
	uniform float time;
	in vec2 position_in;
	in vec3 color_in;
	in vec2 tex_coords_in;
	out vec3 color;
	out vec2 tex_coords;
	void main() {
		float c = cos(time);
		float s = sin(time);
		vec2 rotated = mat2(c, s, -s, c) * position_in * scale;
		gl_Position = vec4(rotated.x * area.y / area.x, rotated.y, 0.0, 1.0);
		color = color_in;
		tex_coords = tex_coords_in;
	}`

	FragmentShaderSource = `
	#version 330
	uniform sampler2D frag_tex;
	uniform int textured;
	in vec3 color;
	in vec2 tex_coords;
	out vec4 frag_color;
	void main() {
		vec4 base = vec4(color, 1.0);
		frag_color = textured == 1 ? base * texture(frag_tex, tex_coords) : base;
	}`
)

// LoadShaders reads the configured shader files, falling back to the
// built-in sources for empty paths.
func LoadShaders(cfg config.Shaders) (vertex, fragment string, err error) {
	vertex, fragment = VertexShaderSource, FragmentShaderSource
	if cfg.Vertex != "" {
		if vertex, err = readSource(cfg.Vertex); err != nil {
			return "", "", err
		}
	}
	if cfg.Fragment != "" {
		if fragment, err = readSource(cfg.Fragment); err != nil {
			return "", "", err
		}
	}
	return vertex, fragment, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
