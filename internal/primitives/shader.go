package primitives

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxLights is the number of point lights the shader evaluates.
const MaxLights = 4

// Light is a point light. Range 0 means no falloff.
type Light struct {
	Position  rl.Vector3
	Color     rl.Color
	Intensity float32
	Range     float32
}

// Ambient is the flat light every lit surface receives.
var Ambient = [4]float32{0.8, 0.8, 0.8, 1}

// AmbientStrength scales Ambient before it reaches the shader.
const AmbientStrength = float32(0.35)

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
#define MAX_LIGHTS 4
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec4 ambient;
uniform vec2 tiling;
uniform float useTexture;
uniform float unlit;
uniform float lightCount;
uniform vec4 clipPlane;
uniform vec3 lightPos[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightRange[MAX_LIGHTS];
out vec4 finalColor;
void main() {
  if (dot(clipPlane.xyz, clipPlane.xyz) > 0.0 && dot(fragPosition, clipPlane.xyz) + clipPlane.w < 0.0) {
    discard;
  }
  vec4 base = colDiffuse;
  if (useTexture > 0.5) {
    base *= texture(texture0, fragTexCoord * tiling);
  }
  if (unlit > 0.5) {
    finalColor = base;
    return;
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 lit = ambient.rgb * base.rgb;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (float(i) >= lightCount) break;
    vec3 toLight = lightPos[i] - fragPosition;
    float dist = length(toLight);
    vec3 L = toLight / max(dist, 0.0001);
    float atten = 1.0;
    if (lightRange[i] > 0.0) {
      atten = clamp(1.0 - dist / lightRange[i], 0.0, 1.0);
    }
    float NdotL = abs(dot(N, L));
    vec3 H = normalize(L + V);
    float spec = pow(max(dot(N, H), 0.0), 32.0) * 0.25;
    lit += (base.rgb * NdotL + spec) * lightColor[i] * atten;
  }
  finalColor = vec4(lit, base.a);
}
`
)

// KeepPositiveX returns the world-space clip plane that keeps the local +X half of a shape
// drawn with transform world. Used for the open half cylinder behind the entrance.
func KeepPositiveX(world rl.Matrix) rl.Vector4 {
	origin := rl.Vector3Transform(rl.Vector3Zero(), world)
	axis := rl.Vector3Subtract(rl.Vector3Transform(rl.NewVector3(1, 0, 0), world), origin)
	if rl.Vector3Length(axis) == 0 {
		return rl.Vector4{}
	}
	n := rl.Vector3Normalize(axis)
	return rl.NewVector4(n.X, n.Y, n.Z, -rl.Vector3DotProduct(n, origin))
}

func boolUniform(b bool) []float32 {
	if b {
		return []float32{1}
	}
	return []float32{0}
}

// setUniforms uploads per-draw values. Arrays are copied to locals before crossing cgo.
func (r *Registry) setUniforms(st Style, textured bool) {
	sh := r.shader
	if !rl.IsShaderValid(sh) {
		return
	}
	set := func(name string, v []float32, typ rl.ShaderUniformDataType) {
		if loc := rl.GetShaderLocation(sh, name); loc >= 0 {
			rl.SetShaderValue(sh, loc, v, typ)
		}
	}
	view := []float32{r.view[0], r.view[1], r.view[2]}
	set("viewPos", view, rl.ShaderUniformVec3)
	amb := []float32{Ambient[0] * AmbientStrength, Ambient[1] * AmbientStrength, Ambient[2] * AmbientStrength, Ambient[3]}
	set("ambient", amb, rl.ShaderUniformVec4)
	tiling := st.Tiling
	if tiling.X == 0 {
		tiling.X = 1
	}
	if tiling.Y == 0 {
		tiling.Y = 1
	}
	set("tiling", []float32{tiling.X, tiling.Y}, rl.ShaderUniformVec2)
	set("useTexture", boolUniform(textured), rl.ShaderUniformFloat)
	set("unlit", boolUniform(st.Unlit), rl.ShaderUniformFloat)
	set("clipPlane", []float32{st.Clip.X, st.Clip.Y, st.Clip.Z, st.Clip.W}, rl.ShaderUniformVec4)

	n := len(r.lights)
	if n > MaxLights {
		n = MaxLights
	}
	set("lightCount", []float32{float32(n)}, rl.ShaderUniformFloat)
	for i := 0; i < n; i++ {
		l := r.lights[i]
		idx := "[" + strconv.Itoa(i) + "]"
		set("lightPos"+idx, []float32{l.Position.X, l.Position.Y, l.Position.Z}, rl.ShaderUniformVec3)
		c := rl.ColorNormalize(l.Color)
		set("lightColor"+idx, []float32{c.X * l.Intensity, c.Y * l.Intensity, c.Z * l.Intensity}, rl.ShaderUniformVec3)
		set("lightRange"+idx, []float32{l.Range}, rl.ShaderUniformFloat)
	}
}
