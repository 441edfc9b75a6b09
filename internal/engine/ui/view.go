package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// SceneView shows a rendered texture filling the available content region
// and turns mouse input over it into camera movement.
type SceneView struct {
	OnDrag  func(dx, dy float32)
	OnZoom  func(delta float32)
	OnHover func(x, y, width, height float32) // x, y relative to the image

	lastMouse imgui.Vec2
}

// Draw displays textureID and returns the size, in screen coordinates, the
// image was drawn at. The texture is flipped vertically for GL.
func (v *SceneView) Draw(textureID uint32) (width, height float32) {
	avail := imgui.ContentRegionAvail()
	width, height = max(avail.X, 1), max(avail.Y, 1)

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageV(
		*texRef,
		imgui.NewVec2(width, height),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
	)

	if imgui.IsItemHovered() {
		mouse := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) && v.OnDrag != nil {
			v.OnDrag(mouse.X-v.lastMouse.X, mouse.Y-v.lastMouse.Y)
		}
		v.lastMouse = mouse

		if v.OnHover != nil {
			origin := imgui.ItemRectMin()
			v.OnHover(mouse.X-origin.X, mouse.Y-origin.Y, width, height)
		}

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 && v.OnZoom != nil {
			v.OnZoom(wheel)
		}
	}
	return width, height
}
