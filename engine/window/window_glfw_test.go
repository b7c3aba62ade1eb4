package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyCodesMatchGLFW(t *testing.T) {
	testCases := map[string]struct {
		code int
		key  glfw.Key
	}{
		"W":          {code: common.KeyW, key: glfw.KeyW},
		"A":          {code: common.KeyA, key: glfw.KeyA},
		"S":          {code: common.KeyS, key: glfw.KeyS},
		"D":          {code: common.KeyD, key: glfw.KeyD},
		"Q":          {code: common.KeyQ, key: glfw.KeyQ},
		"E":          {code: common.KeyE, key: glfw.KeyE},
		"C":          {code: common.KeyC, key: glfw.KeyC},
		"R":          {code: common.KeyR, key: glfw.KeyR},
		"F":          {code: common.KeyF, key: glfw.KeyF},
		"Space":      {code: common.KeySpace, key: glfw.KeySpace},
		"Escape":     {code: common.KeyEsc, key: glfw.KeyEscape},
		"LeftShift":  {code: common.KeyLeftShift, key: glfw.KeyLeftShift},
		"RightShift": {code: common.KeyRightShift, key: glfw.KeyRightShift},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if glfw.Key(tt.code) != tt.key {
				t.Errorf("key code %d does not match GLFW key %d", tt.code, tt.key)
			}
		})
	}
}

func TestMouseButtonsMatchGLFW(t *testing.T) {
	testCases := map[string]struct {
		code   int
		button glfw.MouseButton
	}{
		"Left":   {code: common.MouseButtonLeft, button: glfw.MouseButtonLeft},
		"Right":  {code: common.MouseButtonRight, button: glfw.MouseButtonRight},
		"Middle": {code: common.MouseButtonMiddle, button: glfw.MouseButtonMiddle},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if glfw.MouseButton(tt.code) != tt.button {
				t.Errorf("button code %d does not match GLFW button %d", tt.code, tt.button)
			}
		})
	}
}
