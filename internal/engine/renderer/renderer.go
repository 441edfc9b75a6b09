// Package renderer draws the house scene with OpenGL 4.1: a shadow pass
// from the sky light, the background, the lit meshes and optional debug
// lines, all into an offscreen framebuffer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-house/internal/engine/camera"
	"github.com/Faultbox/lowpoly-house/internal/engine/framebuffer"
	"github.com/Faultbox/lowpoly-house/internal/engine/lighting"
	"github.com/Faultbox/lowpoly-house/internal/engine/renderer/shaders"
	"github.com/Faultbox/lowpoly-house/internal/engine/scene"
	"github.com/Faultbox/lowpoly-house/internal/engine/shader"
	"github.com/Faultbox/lowpoly-house/internal/engine/shadow"
	"github.com/Faultbox/lowpoly-house/internal/engine/texture"
	"github.com/Faultbox/lowpoly-house/internal/logger"
)

// Options configures a Renderer.
type Options struct {
	Width, Height int32 // framebuffer size in pixels
	Shadows       bool
	CameraHelper  bool
	Textures      *texture.Cache
	Logger        *zap.Logger
}

// Renderer owns every GPU resource of the scene.
type Renderer struct {
	opts Options
	log  *zap.Logger

	fb *framebuffer.Framebuffer

	sceneProg *shader.Program
	depthProg *shader.Program
	bgProg    *shader.Program
	lineProg  *shader.Program

	meshes   map[*scene.Node]*gpuMesh
	textures *textureSet

	shadowMap *shadow.Map
	frustum   shadow.Frustum

	emptyVAO uint32
	helper   *lineBatch

	bgPath    string
	bgTexture uint32
}

// New initializes GL, compiles shaders and uploads the scene's meshes and
// textures. It must run on the thread owning the GL context.
func New(s *scene.Scene, opts Options) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	r := &Renderer{
		opts:   opts,
		log:    opts.Logger,
		meshes: make(map[*scene.Node]*gpuMesh),
	}
	if r.log == nil {
		r.log = logger.Named("renderer")
	}
	if r.opts.Textures == nil {
		r.opts.Textures = texture.NewCache(texture.CacheOptions{Fallback: true, Logger: r.log})
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	if r.fb, err = framebuffer.New(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	if err := r.compilePrograms(); err != nil {
		r.Close()
		return nil, err
	}

	if opts.Shadows && s.Sky != nil && s.Sky.CastShadow {
		if r.shadowMap, err = shadow.NewMap(s.Sky.ShadowMapSize); err != nil {
			r.log.Warn("shadows disabled", zap.Error(err))
		}
	}

	r.textures = newTextureSet(r.opts.Textures, r.log)
	for _, n := range s.Nodes {
		r.meshes[n] = uploadMesh(n.Mesh)
		r.textures.loadMaterial(n.Material)
	}

	gl.GenVertexArrays(1, &r.emptyVAO)
	if opts.CameraHelper {
		r.helper = newLineBatch()
	}

	r.log.Info("scene uploaded",
		zap.Int("nodes", len(s.Nodes)),
		zap.Int("textures", r.textures.len()),
		zap.Int("images", r.opts.Textures.Len()),
		zap.Bool("shadows", r.shadowMap.IsValid()),
	)
	return r, nil
}

func (r *Renderer) compilePrograms() error {
	var err error
	if r.sceneProg, err = shader.New(shaders.SceneVertexShader, shaders.SceneFragmentShader); err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	if r.depthProg, err = shader.New(shaders.DepthVertexShader, shaders.DepthFragmentShader); err != nil {
		return fmt.Errorf("depth shader: %w", err)
	}
	if r.bgProg, err = shader.New(shaders.BackgroundVertexShader, shaders.BackgroundFragmentShader); err != nil {
		return fmt.Errorf("background shader: %w", err)
	}
	if r.lineProg, err = shader.New(shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		return fmt.Errorf("line shader: %w", err)
	}

	r.sceneProg.Use()
	for name, unit := range samplerUnits {
		r.sceneProg.SetInt(name, int32(unit))
	}
	r.bgProg.Use()
	r.bgProg.SetInt("uTexture", 0)
	gl.UseProgram(0)
	return nil
}

// Render draws one frame into the framebuffer and returns its color texture.
func (r *Renderer) Render(s *scene.Scene, cam *camera.OrbitCamera) uint32 {
	sky := s.Sky
	shadows := r.shadowMap.IsValid() && sky.CastShadow
	if shadows {
		r.frustum = shadow.DirectionalFrustum(sky.Position(), s.SkyTarget, s.ShadowCasterBounds(), sky.ShadowFar)
		r.renderShadowPass(s)
	}

	restore := r.fb.Bind()
	defer restore()

	bg := s.Background()
	cc := clearColor(bg)
	r.fb.Clear(cc.R, cc.G, cc.B, 1)
	if bg.Kind == lighting.BackgroundImage {
		r.renderBackground(bg.Image)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.renderLit(s, cam, shadows)

	if r.helper != nil && shadows {
		r.helper.draw(r.lineProg, cam.ViewProjection(), r.frustum.Edges(), helperColor)
	}

	gl.Disable(gl.BLEND)
	return r.fb.ColorTexture()
}

func (r *Renderer) renderShadowPass(s *scene.Scene) {
	r.shadowMap.Bind()
	r.depthProg.Use()
	r.depthProg.SetMat4("uLightViewProj", r.frustum.ViewProjection())
	for _, n := range s.Nodes {
		if !n.CastShadow {
			continue
		}
		m := r.meshes[n]
		r.depthProg.SetMat4("uModel", n.Transform())
		m.draw()
	}
	r.shadowMap.Unbind()
}

func (r *Renderer) renderBackground(path string) {
	if path != r.bgPath {
		r.bgTexture = r.textures.get(path, false)
		r.bgPath = path
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	r.bgProg.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.bgTexture)
	gl.BindVertexArray(r.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

func (r *Renderer) renderLit(s *scene.Scene, cam *camera.OrbitCamera, shadows bool) {
	p := r.sceneProg
	p.Use()

	p.SetMat4("uViewProj", cam.ViewProjection())
	p.SetVec3("uCameraPos", cam.Position().Array())

	if s.Ambient != nil {
		p.SetVec3("uAmbientColor", s.Ambient.Color().Array())
		p.SetFloat("uAmbientIntensity", s.Ambient.Intensity())
	}
	if s.Sky != nil {
		p.SetVec3("uSkyDir", s.Sky.Position().Sub(s.SkyTarget).Normalize().Array())
		p.SetVec3("uSkyColor", s.Sky.Color().Array())
		p.SetFloat("uSkyIntensity", s.Sky.Intensity())
	}
	if s.Door != nil {
		p.SetVec3("uDoorPos", s.Door.Position().Array())
		p.SetVec3("uDoorColor", s.Door.Color().Array())
		p.SetFloat("uDoorIntensity", s.Door.Intensity())
		p.SetFloat("uDoorDistance", s.Door.Distance)
		p.SetFloat("uDoorDecay", s.Door.Decay)
	}

	p.SetBool("uShadowsEnabled", shadows)
	if shadows {
		p.SetMat4("uLightViewProj", r.frustum.ViewProjection())
		p.SetFloat("uShadowMapSize", float32(r.shadowMap.Resolution))
		r.shadowMap.BindTexture(gl.TEXTURE0 + shadowUnit)
	}

	for _, n := range DrawOrder(s.Nodes, cam.Position()) {
		m := r.meshes[n]
		if m == nil {
			continue
		}
		model := n.Transform()
		p.SetMat4("uModel", model)
		p.SetMat3("uNormalMatrix", model.NormalMatrix())
		p.SetBool("uReceiveShadow", n.ReceiveShadow)
		p.SetVec3("uColor", n.Material.Color.Array())
		p.SetFloat("uDisplacementScale", n.Material.DisplacementScale)
		r.textures.bindMaterial(p, n.Material)

		if n.Material.Transparent {
			gl.DepthMask(false)
		}
		m.draw()
		gl.DepthMask(true)
	}
}

// Resize changes the framebuffer size.
func (r *Renderer) Resize(width, height int32) {
	r.fb.Resize(width, height)
	r.log.Debug("renderer resized", zap.Int32("width", width), zap.Int32("height", height))
}

// Framebuffer returns the offscreen target frames are drawn into.
func (r *Renderer) Framebuffer() *framebuffer.Framebuffer {
	return r.fb
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.destroy()
	}
	r.meshes = nil
	if r.textures != nil {
		r.textures.destroy()
	}
	if r.helper != nil {
		r.helper.destroy()
	}
	if r.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &r.emptyVAO)
	}
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
	}
	for _, p := range []*shader.Program{r.sceneProg, r.depthProg, r.bgProg, r.lineProg} {
		p.Delete()
	}
	if r.fb != nil {
		r.fb.Destroy()
	}
}
