package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"opengl-boilerplate/config"
	"opengl-boilerplate/mesh"
	"opengl-boilerplate/shadersrc"
	"opengl-boilerplate/unsafer"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called
	// from the main thread.
	runtime.LockOSThread()

	flag.StringVar(&args.config, "config", "", "YAML file with the program settings")
	flag.StringVar(&args.shader, "shader", "", "Tagged shader file to load instead of the embedded one")
	flag.BoolVar(&args.inline, "inline", false, "Use the shader sources compiled into the binary")
	flag.StringVar(&args.model, "model", "", "Wavefront OBJ file to draw instead of the quad")
	flag.BoolVar(&args.dump, "dump", false, "Print the resolved shader sources and exit")
	flag.BoolVar(&args.debug, "debug", false, "Check for OpenGL errors after every frame")
}

var args struct {
	config string
	shader string
	inline bool
	model  string
	dump   bool
	debug  bool
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	if args.dump {
		bundle, err := resolveShaderSources(cfg)
		if err != nil {
			log.Fatalf("ERROR: %s", err)
		}
		fmt.Fprint(os.Stdout, shadersrc.Format(bundle))
		return
	}

	app := &BoilerplateApp{
		cfg:       cfg,
		startTime: time.Now(),
	}
	if err := app.Run(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}

// loadConfig builds the settings from the defaults, the -config file and the
// rest of the command line, in that order.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if args.config != "" {
		var err error
		cfg, err = config.Load(args.config)
		if err != nil {
			return cfg, err
		}
	}

	if args.shader != "" {
		cfg.ShaderFile = args.shader
	}
	if args.inline {
		cfg.Inline = true
	}
	if args.model != "" {
		cfg.ModelFile = args.model
	}
	if args.debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// BoilerplateApp draws a single mesh with a time animated color.
type BoilerplateApp struct {
	cfg config.Config

	window *glfw.Window

	startTime time.Time

	sources shadersrc.Bundle
	mesh    mesh.Mesh

	vao uint32
	vbo uint32
	ebo uint32

	vertexShader   uint32
	fragmentShader uint32
	program        uint32

	uniColor int32
}

// Run runs the OpenGL program.
func (a *BoilerplateApp) Run() error {
	return runStages([]stage{
		{name: "loadShaderSources", init: a.loadShaderSources},
		{name: "loadMesh", init: a.loadMesh},
		{name: "initWindow", init: a.initWindow, cleanup: a.cleanWindow},
		{name: "initGL", init: a.initGL, cleanup: a.cleanGL},
		{name: "createResources", init: a.createResources},
	}, a.mainLoop)
}

func (a *BoilerplateApp) loadShaderSources() error {
	sources, err := resolveShaderSources(a.cfg)
	if err != nil {
		return err
	}
	a.sources = sources
	return nil
}

func (a *BoilerplateApp) loadMesh() error {
	if a.cfg.ModelFile == "" {
		a.mesh = mesh.Quad()
		return nil
	}

	m, err := mesh.LoadOBJFile(a.cfg.ModelFile)
	if err != nil {
		return err
	}
	log.Printf("loaded %s: %d vertices, %d indices", a.cfg.ModelFile, len(m.Vertices), len(m.Indices))

	a.mesh = m
	return nil
}

func (a *BoilerplateApp) initWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init: %w", err)
	}

	// Forward compatibility is required on macOS to get a core profile, and
	// non-core profiles there stop at 2.1.
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(a.cfg.Width, a.cfg.Height, a.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("creating window: %w", err)
	}

	window.MakeContextCurrent()
	window.SetKeyCallback(handleKey)
	glfw.SwapInterval(a.cfg.SwapInterval)

	a.window = window
	return nil
}

func (a *BoilerplateApp) cleanWindow() {
	a.window.Destroy()
	glfw.Terminate()
}

func (a *BoilerplateApp) initGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init: %w", err)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

// createResources uploads the mesh and builds the shader program. Whatever it
// managed to create before failing is released by cleanGL.
func (a *BoilerplateApp) createResources() error {
	a.createBuffers()

	if err := a.createProgram(a.sources); err != nil {
		return fmt.Errorf("createProgram: %w", err)
	}

	if err := a.bindAttributes(); err != nil {
		return fmt.Errorf("bindAttributes: %w", err)
	}

	return nil
}

// createBuffers uploads the mesh. The vertex array object remembers the
// attribute layout set up later by bindAttributes.
func (a *BoilerplateApp) createBuffers() {
	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	vertices := unsafer.SliceToBytes(a.mesh.Interleave())
	gl.GenBuffers(1, &a.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	elements := unsafer.SliceToBytes(a.mesh.Indices)
	gl.GenBuffers(1, &a.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, a.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(elements), gl.Ptr(elements), gl.STATIC_DRAW)
}

func (a *BoilerplateApp) createProgram(sources shadersrc.Bundle) error {
	vertexShader, err := compileShader(sources.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	a.vertexShader = vertexShader
	log.Printf("vertex shader compiled successfully")

	fragmentShader, err := compileShader(sources.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}
	a.fragmentShader = fragmentShader
	log.Printf("fragment shader compiled successfully")

	program, err := linkProgram(a.vertexShader, a.fragmentShader, "outColor")
	if err != nil {
		return err
	}
	a.program = program

	gl.UseProgram(a.program)
	return nil
}

func (a *BoilerplateApp) bindAttributes() error {
	posAttrib := gl.GetAttribLocation(a.program, gl.Str("position\x00"))
	if posAttrib < 0 {
		return fmt.Errorf("vertex shader has no active %q input", "position")
	}
	gl.VertexAttribPointerWithOffset(uint32(posAttrib), 2, gl.FLOAT, false, mesh.Stride, 0)
	gl.EnableVertexAttribArray(uint32(posAttrib))

	colAttrib := gl.GetAttribLocation(a.program, gl.Str("color\x00"))
	if colAttrib < 0 {
		return fmt.Errorf("vertex shader has no active %q input", "color")
	}
	gl.EnableVertexAttribArray(uint32(colAttrib))
	gl.VertexAttribPointerWithOffset(uint32(colAttrib), 3, gl.FLOAT, false, mesh.Stride, mesh.ColorOffset)

	// A missing uniform is not fatal, setting location -1 is ignored by GL.
	a.uniColor = gl.GetUniformLocation(a.program, gl.Str("uniColor\x00"))
	if a.uniColor < 0 {
		log.Printf("WARNING: fragment shader has no active %q uniform", "uniColor")
	}

	return nil
}

func (a *BoilerplateApp) cleanGL() {
	if a.program != 0 {
		gl.DeleteProgram(a.program)
	}
	if a.fragmentShader != 0 {
		gl.DeleteShader(a.fragmentShader)
	}
	if a.vertexShader != 0 {
		gl.DeleteShader(a.vertexShader)
	}

	if a.ebo != 0 {
		gl.DeleteBuffers(1, &a.ebo)
	}
	if a.vbo != 0 {
		gl.DeleteBuffers(1, &a.vbo)
	}
	if a.vao != 0 {
		gl.DeleteVertexArrays(1, &a.vao)
	}
}

func (a *BoilerplateApp) mainLoop() error {
	log.Printf("main loop!\n")

	indexCount := int32(len(a.mesh.Indices))

	for !a.window.ShouldClose() {
		red := pulse(time.Since(a.startTime))
		gl.Uniform3f(a.uniColor, red, 0, 0)

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, nil)

		if a.cfg.Debug {
			if err := glError(); err != nil {
				log.Printf("WARNING: drawing frame: %s", err)
			}
		}

		a.window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

func handleKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// pulse returns the red channel of uniColor after elapsed time. It oscillates
// between 0.5 and 1 four radians per second.
func pulse(elapsed time.Duration) float32 {
	t := float32(elapsed.Seconds())
	return (math32.Sin(t*4) + 3) / 4
}
