package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Lit vertex shader: model/view/projection transform with world-space normals.
const litVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vFragPos;
out vec3 vNormal;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vFragPos = world.xyz;
    vNormal = mat3(transpose(inverse(uModel))) * aNormal;
    gl_Position = uProjection * uView * world;
}
` + "\x00"

// Lit fragment shader: one directional light plus a spotlight carried by the plane.
const litFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uViewPos;
uniform vec3 uLightDir;
uniform vec3 uSpotPos;
uniform vec3 uSpotDir;

in vec3 vFragPos;
in vec3 vNormal;
out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 viewDir = normalize(uViewPos - vFragPos);

    vec3 l = normalize(-uLightDir);
    float diff = max(dot(n, l), 0.0);
    float spec = pow(max(dot(viewDir, reflect(-l, n)), 0.0), 32.0);
    vec3 light = vec3(0.25) + vec3(0.6) * diff + vec3(0.3) * spec;

    vec3 toSpot = normalize(uSpotPos - vFragPos);
    float theta = dot(toSpot, normalize(-uSpotDir));
    float cutOff = 0.9763;      // cos(12.5°)
    float outerCutOff = 0.9659; // cos(15°)
    float intensity = clamp((theta - outerCutOff) / (cutOff - outerCutOff), 0.0, 1.0);
    float dist = length(uSpotPos - vFragPos);
    float atten = 1.0 / (1.0 + 0.09 * dist + 0.032 * dist * dist);
    light += vec3(0.5) * max(dot(n, toSpot), 0.0) * intensity * atten;

    FragColor = vec4(uColor * light, 1.0);
}
` + "\x00"

// Emissive fragment shader: flat color, used for the flame trail.
const emissiveFragSrc = `#version 410 core

uniform vec3 uColor;

in vec3 vFragPos;
in vec3 vNormal;
out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
` + "\x00"

// infoLog reads a shader or program log through the matching GL getters.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n+1)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

var stageNames = map[uint32]string{
	gl.VERTEX_SHADER:   "vertex",
	gl.FRAGMENT_SHADER: "fragment",
}

func compileShader(source string, stage uint32) (uint32, error) {
	id := gl.CreateShader(stage)
	src, free := gl.Strs(source)
	defer free()
	gl.ShaderSource(id, 1, src, nil)
	gl.CompileShader(id)

	var ok int32
	if gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok); ok != gl.FALSE {
		return id, nil
	}
	msg := infoLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)
	gl.DeleteShader(id)
	return 0, fmt.Errorf("%s shader: %s", stageNames[stage], msg)
}

// linkProgram builds a program from a vertex and a fragment stage. The
// stage objects are released whether or not linking succeeds.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	prog := gl.CreateProgram()
	var attached []uint32
	release := func() {
		for _, id := range attached {
			gl.DetachShader(prog, id)
			gl.DeleteShader(id)
		}
	}
	for _, st := range []struct {
		kind uint32
		src  string
	}{{gl.VERTEX_SHADER, vertSrc}, {gl.FRAGMENT_SHADER, fragSrc}} {
		id, err := compileShader(st.src, st.kind)
		if err != nil {
			release()
			gl.DeleteProgram(prog)
			return 0, err
		}
		gl.AttachShader(prog, id)
		attached = append(attached, id)
	}
	gl.LinkProgram(prog)
	release()

	var ok int32
	if gl.GetProgramiv(prog, gl.LINK_STATUS, &ok); ok != gl.FALSE {
		return prog, nil
	}
	msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
	gl.DeleteProgram(prog)
	return 0, fmt.Errorf("link program: %s", msg)
}
