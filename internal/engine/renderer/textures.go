package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-house/internal/engine/scene"
	"github.com/Faultbox/lowpoly-house/internal/engine/shader"
	"github.com/Faultbox/lowpoly-house/internal/engine/texture"
)

// Texture units used by the scene shader.
const (
	colorUnit = iota
	aoUnit
	normalUnit
	roughnessUnit
	alphaUnit
	metalnessUnit
	heightUnit
	shadowUnit
)

var samplerUnits = map[string]uint32{
	"uColorMap":     colorUnit,
	"uAOMap":        aoUnit,
	"uNormalMap":    normalUnit,
	"uRoughnessMap": roughnessUnit,
	"uAlphaMap":     alphaUnit,
	"uMetalnessMap": metalnessUnit,
	"uHeightMap":    heightUnit,
	"uShadowMap":    shadowUnit,
}

// materialSlot ties one map of a material to its sampler.
type materialSlot struct {
	flag string
	unit uint32
	path string
}

func materialSlots(m scene.Material) []materialSlot {
	return []materialSlot{
		{"uHasColorMap", colorUnit, m.Maps.Color},
		{"uHasAOMap", aoUnit, m.Maps.AO},
		{"uHasNormalMap", normalUnit, m.Maps.Normal},
		{"uHasRoughnessMap", roughnessUnit, m.Maps.Roughness},
		{"uHasAlphaMap", alphaUnit, m.Maps.Alpha},
		{"uHasMetalnessMap", metalnessUnit, m.Maps.Metalness},
		{"uHasHeightMap", heightUnit, m.Maps.Height},
	}
}

// textureSet uploads each decoded image once per wrap mode.
type textureSet struct {
	images *texture.Cache
	log    *zap.Logger
	ids    map[textureKey]uint32
}

type textureKey struct {
	path   string
	repeat bool
}

func newTextureSet(images *texture.Cache, log *zap.Logger) *textureSet {
	return &textureSet{images: images, log: log, ids: make(map[textureKey]uint32)}
}

func (t *textureSet) get(path string, repeat bool) uint32 {
	key := textureKey{path, repeat}
	if id, ok := t.ids[key]; ok {
		return id
	}
	img, err := t.images.Get(path)
	if err != nil {
		t.log.Error("texture unavailable", zap.String("path", path), zap.Error(err))
		t.ids[key] = 0
		return 0
	}
	id := texture.Upload(img, texture.UploadOptions{Repeat: repeat, Mipmaps: true, FlipY: true})
	t.ids[key] = id
	return id
}

func (t *textureSet) loadMaterial(m scene.Material) {
	for _, p := range m.Maps.Paths() {
		t.get(p, m.Repeat)
	}
}

func (t *textureSet) bindMaterial(p *shader.Program, m scene.Material) {
	for _, s := range materialSlots(m) {
		id := uint32(0)
		if s.path != "" {
			id = t.get(s.path, m.Repeat)
		}
		p.SetBool(s.flag, id != 0)
		gl.ActiveTexture(gl.TEXTURE0 + s.unit)
		gl.BindTexture(gl.TEXTURE_2D, id)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

func (t *textureSet) len() int {
	n := 0
	for _, id := range t.ids {
		if id != 0 {
			n++
		}
	}
	return n
}

func (t *textureSet) destroy() {
	for _, id := range t.ids {
		texture.Delete(id)
	}
	t.ids = make(map[textureKey]uint32)
}
