package camera

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-camera/engine/shader"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (160 bytes, std430 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 160 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset   0: combined view-projection matrix (mat4x4<f32>)
	View           [16]float32 // offset  64: view matrix (mat4x4<f32>)
	CameraPosition [3]float32  // offset 128: world-space camera position (vec3<f32>)
	NearPlane      float32     // offset 140: near plane distance, packed into the vec3 tail
	ViewPort       [4]float32  // offset 144: left, bottom, width, height in pixels (vec4<f32>)
}

// NewGPUCameraUniform snapshots the camera state the vertex stage needs for one frame.
//
// Parameters:
//   - cam: the camera to read
//
// Returns:
//   - GPUCameraUniform: the uniform contents
func NewGPUCameraUniform(cam Camera) GPUCameraUniform {
	left, bottom, width, height := cam.ViewPort()
	return GPUCameraUniform{
		ViewProj:       cam.ViewProjectionMatrix(),
		View:           cam.ViewMatrix(),
		CameraPosition: cam.Position(),
		NearPlane:      cam.NearPlane(),
		ViewPort:       [4]float32{left, bottom, width, height},
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (160)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a little-endian byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, 0, g.Size())
	buf = appendFloats(buf, g.ViewProj[:])
	buf = appendFloats(buf, g.View[:])
	buf = appendFloats(buf, g.CameraPosition[:])
	buf = appendFloats(buf, []float32{g.NearPlane})
	buf = appendFloats(buf, g.ViewPort[:])
	return buf
}

func appendFloats(buf []byte, values []float32) []byte {
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

// ValidateUniformLayout checks that GPUCameraUniform matches the CameraUniform struct declared in
// GPUCameraUniformSource, member by member, using WGSL host-shareable layout rules.
//
// Returns:
//   - error: a description of the first mismatch, or nil if the layouts agree
func ValidateUniformLayout() error {
	layouts, err := shader.ParseStructLayouts(GPUCameraUniformSource)
	if err != nil {
		return fmt.Errorf("camera uniform: %w", err)
	}
	layout, ok := layouts["CameraUniform"]
	if !ok {
		return fmt.Errorf("camera uniform: CameraUniform not declared in shader source")
	}

	var g GPUCameraUniform
	hostOffsets := []struct {
		member string
		offset uintptr
	}{
		{"view_proj", unsafe.Offsetof(g.ViewProj)},
		{"view", unsafe.Offsetof(g.View)},
		{"camera_position", unsafe.Offsetof(g.CameraPosition)},
		{"near_plane", unsafe.Offsetof(g.NearPlane)},
		{"viewport", unsafe.Offsetof(g.ViewPort)},
	}
	if len(layout.Fields) != len(hostOffsets) {
		return fmt.Errorf("camera uniform: shader declares %d members, host struct has %d", len(layout.Fields), len(hostOffsets))
	}
	for _, h := range hostOffsets {
		f, ok := layout.Field(h.member)
		if !ok {
			return fmt.Errorf("camera uniform: shader has no member %q", h.member)
		}
		if uint64(h.offset) != f.Offset {
			return fmt.Errorf("camera uniform: member %q at host offset %d, shader offset %d", h.member, h.offset, f.Offset)
		}
	}
	if uint64(g.Size()) != layout.Size {
		return fmt.Errorf("camera uniform: host size %d, shader size %d", g.Size(), layout.Size)
	}
	return nil
}
