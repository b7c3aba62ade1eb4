package shader

import (
	"errors"
	"testing"
)

func TestParseStructLayouts(t *testing.T) {
	source := `
// camera block
struct CameraUniform {
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>, /* tail packs the next scalar */
    near_plane: f32,
    viewport: vec4f,
};

struct Frustum {
    planes: array<vec4<f32>, 6>,
    camera: CameraUniform,
    count: u32,
}

struct VertexOut {
    @builtin(position) clip: vec4f,
    @location(0) uv: vec2f,
}
`
	layouts, err := ParseStructLayouts(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testCases := map[string]struct {
		structName string
		size       uint64
		align      uint64
		offsets    map[string]uint64
	}{
		"CameraUniform": {
			structName: "CameraUniform",
			size:       96,
			align:      16,
			offsets:    map[string]uint64{"view_proj": 0, "camera_position": 64, "near_plane": 76, "viewport": 80},
		},
		"NestedStructAndArray": {
			structName: "Frustum",
			size:       208,
			align:      16,
			offsets:    map[string]uint64{"planes": 0, "camera": 96, "count": 192},
		},
		"BuiltinSkipped": {
			structName: "VertexOut",
			size:       8,
			align:      8,
			offsets:    map[string]uint64{"uv": 0},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			layout, ok := layouts[tt.structName]
			if !ok {
				t.Fatalf("struct %s not found", tt.structName)
			}
			if layout.Size != tt.size || layout.Align != tt.align {
				t.Errorf("expected size %d align %d, got size %d align %d", tt.size, tt.align, layout.Size, layout.Align)
			}
			if len(layout.Fields) != len(tt.offsets) {
				t.Errorf("expected %d fields, got %d", len(tt.offsets), len(layout.Fields))
			}
			for field, offset := range tt.offsets {
				f, ok := layout.Field(field)
				if !ok {
					t.Errorf("field %s not found", field)
					continue
				}
				if f.Offset != offset {
					t.Errorf("field %s expected at offset %d, got %d", field, offset, f.Offset)
				}
			}
		})
	}
}

func TestParseStructLayoutsUnresolved(t *testing.T) {
	_, err := ParseStructLayouts(`struct Lights { items: array<Light> }`)
	if !errors.Is(err, ErrUnresolvedType) {
		t.Errorf("expected ErrUnresolvedType, got %v", err)
	}
}
