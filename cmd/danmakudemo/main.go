// Command danmakudemo is a tiny frame-stepping driver around the
// animation/enemy simulation core: it builds a small in-memory animation
// catalog, spawns a couple of enemies, steps the Game for a configured
// number of frames, and (optionally) presents the resolved sprite quads in
// an SDL2 window. It exists only to give the module a real consumer of the
// vertex output; the core itself (internal/anim, internal/enemy,
// internal/game) stays renderer-free, and this command is a thin SDL2
// presentation shell around it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrocoderamen/danmaku-core/internal/anim"
	"github.com/retrocoderamen/danmaku-core/internal/config"
	"github.com/retrocoderamen/danmaku-core/internal/enemy"
	"github.com/retrocoderamen/danmaku-core/internal/game"
	"github.com/retrocoderamen/danmaku-core/internal/gamelog"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (seed, rank, difficulty, frames)")
	frames := flag.Int("frames", 0, "Override the number of frames to simulate (0 = use config)")
	useSDL := flag.Bool("sdl", false, "Open an SDL2 window and present resolved sprite quads each frame")
	scale := flag.Int("scale", 2, "Display scale for the SDL2 window")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}

	log := gamelog.NewLogger(4096, gamelog.LevelInfo)
	g := game.New(demoCatalog(), cfg.Seed, game.Rank(cfg.Rank), cfg.Difficulty, log)
	spawnDemoEnemies(g)

	fmt.Println("danmakudemo")
	fmt.Println("===========")
	fmt.Printf("seed=%d rank=%d difficulty=%d frames=%d\n", cfg.Seed, cfg.Rank, cfg.Difficulty, cfg.Frames)

	var present func([]game.SpriteTuple)
	if *useSDL {
		cleanup, presentFn, err := openSDLWindow(*scale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening SDL2 window: %v\n", err)
			os.Exit(1)
		}
		defer cleanup()
		present = presentFn
	}

	for i := 0; i < cfg.Frames; i++ {
		g.RunFrame()
		g.UpdateEnemies()
		g.PruneRemovedEnemies()
		if present != nil {
			present(g.Sprites())
		}
	}

	fmt.Printf("bullets fired: %d\n", len(g.Bullets()))
	for _, entry := range log.Entries() {
		fmt.Println(entry.Format())
	}
}

// demoCatalog builds a tiny in-memory animation catalog standing in for a
// parsed ANM0 file (the binary parser lives outside this module).
func demoCatalog() *anim.Catalog {
	rects := map[uint32]anim.SpriteRect{}
	for i := uint32(0); i < 16; i++ {
		rects[i] = anim.SpriteRect{X: float32(i) * 16, Y: 0, W: 16, H: 16}
	}
	idle := anim.Script{
		Instructions: []anim.Call{
			{Time: 0, Instr: anim.Instruction{Op: anim.OpLoadSprite, I0: 0}},
			{Time: 0, Instr: anim.Instruction{Op: anim.OpSetBlendmodeAlphablend}},
			{Time: 0, Instr: anim.Instruction{Op: anim.OpWait}},
		},
		Interrupts: map[int32]uint32{},
	}
	file := &anim.Anm0{
		Size:    [2]uint16{256, 16},
		InvSize: [2]float32{1.0 / 256, 1.0 / 16},
		Sprites: rects,
		Scripts: map[uint8]anim.Script{0: idle, 1: idle, 2: idle, 3: idle},
	}
	return anim.NewCatalog([]*anim.Anm0{file})
}

func spawnDemoEnemies(g *game.Game) {
	_, left := g.SpawnEnemy([2]float32{100, 100}, 500, 0, 640, false)
	left.SetAnim(0)
	left.MovementDependentSprites = &enemy.MovementSprites{EndLeft: 0, EndRight: 1, Left: 2, Right: 3}
	left.Angle = 3.14159
	left.Speed = 1
	left.SetBulletLaunchInterval(0, 30)
	left.BulletOffset = [2]float32{0, 8}
	left.SetBulletAttributes(67, 0, 0, 1, 1, 2.0, 2.0, 0, 0, 0)

	_, right := g.SpawnEnemy([2]float32{200, 100}, 500, 0, 640, true)
	right.SetAnim(0)
	right.UpdateMode = enemy.UpdateModeInterpolated
	right.SetPosInterpolator(anim.NewInterpolator2(
		[2]float32{200, 100}, 0,
		[2]float32{50, 250}, 180,
		anim.FormulaInvertPower2,
	))
}

func openSDLWindow(scale int) (cleanup func(), present func([]game.SpriteTuple), err error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, fmt.Errorf("sdl.Init: %w", err)
	}
	width, height := int32(384*scale), int32(448*scale)
	window, err := sdl.CreateWindow("danmakudemo", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, nil, fmt.Errorf("sdl.CreateWindow: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, fmt.Errorf("sdl.CreateRenderer: %w", err)
	}

	present = func(tuples []game.SpriteTuple) {
		renderer.SetDrawColor(10, 10, 20, 255)
		renderer.Clear()
		var verts [4]anim.Vertex
		for _, t := range tuples {
			if !t.Sprite.Visible {
				continue
			}
			t.Sprite.FillVertices(&verts, t.X, t.Y, t.Z)
			minX, minY := verts[0].Pos[0], verts[0].Pos[1]
			maxX, maxY := verts[0].Pos[0], verts[0].Pos[1]
			for _, v := range verts[1:] {
				if v.Pos[0] < minX {
					minX = v.Pos[0]
				}
				if v.Pos[0] > maxX {
					maxX = v.Pos[0]
				}
				if v.Pos[1] < minY {
					minY = v.Pos[1]
				}
				if v.Pos[1] > maxY {
					maxY = v.Pos[1]
				}
			}
			c := t.Sprite.Color
			renderer.SetDrawColor(c[0], c[1], c[2], c[3])
			rect := sdl.Rect{
				X: int32(minX) * int32(scale),
				Y: int32(minY) * int32(scale),
				W: int32(maxX-minX) * int32(scale),
				H: int32(maxY-minY) * int32(scale),
			}
			renderer.FillRect(&rect)
		}
		renderer.Present()
		sdl.Delay(16)
	}

	cleanup = func() {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
	}
	return cleanup, present, nil
}
