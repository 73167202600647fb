// Package game implements the container that owns every long-lived piece of
// the simulation — enemies, animation runners, bullets, the shared PRNG, the
// player, rank and difficulty — and drives the per-frame animation tick.
// Iteration is deterministic and insertion-ordered; given the same seed and
// the same sequence of calls, two games produce identical state forever.
package game

import (
	"github.com/retrocoderamen/danmaku-core/internal/anim"
	"github.com/retrocoderamen/danmaku-core/internal/arena"
	"github.com/retrocoderamen/danmaku-core/internal/bullet"
	"github.com/retrocoderamen/danmaku-core/internal/enemy"
	"github.com/retrocoderamen/danmaku-core/internal/gamelog"
)

// Rank is the aggression scalar orthogonal to difficulty (EASY, NORMAL,
// HARD, LUNATIC, ...); represented as a plain integer since the core never
// branches on a specific named tier, only threads it through to ECL.
type Rank int32

// SpriteTuple is one resolved (position, sprite) pair handed to a renderer.
type SpriteTuple struct {
	X, Y, Z float32
	Sprite  *anim.Sprite
}

// Game owns every enemy, animation runner, and bullet in the simulation, the
// shared PRNG, and the player's position. It is the sole owner of the
// cyclic Enemy <-> AnmRunner graph; everything else holds a non-owning
// arena.Handle or plain pointer back into Game.
type Game struct {
	catalog *anim.Catalog
	prng    *anim.PRNG
	log     *gamelog.Logger

	enemies *arena.Arena[*enemy.Enemy]
	runners *arena.Arena[*anim.AnmRunner]
	bullets []bullet.Bullet

	playerPos [2]float32

	rank       Rank
	difficulty int32
}

// New builds an empty Game over the given animation catalog and PRNG seed.
func New(catalog *anim.Catalog, seed uint16, rank Rank, difficulty int32, log *gamelog.Logger) *Game {
	return &Game{
		catalog:    catalog,
		prng:       anim.NewPRNG(seed),
		log:        log,
		enemies:    arena.New[*enemy.Enemy](),
		runners:    arena.New[*anim.AnmRunner](),
		playerPos:  [2]float32{192, 384},
		rank:       rank,
		difficulty: difficulty,
	}
}

// Rank implements enemy.GameContext.
func (g *Game) Rank() int32 { return int32(g.rank) }

// Difficulty implements enemy.GameContext.
func (g *Game) Difficulty() int32 { return g.difficulty }

// PlayerPos implements enemy.GameContext.
func (g *Game) PlayerPos() [2]float32 { return g.playerPos }

// SetPlayerPos moves the tracked player position. Only the position is
// modeled here; the input path that produces it lives outside this module.
func (g *Game) SetPlayerPos(x, y float32) {
	g.playerPos = [2]float32{x, y}
}

// SpawnRunner implements enemy.GameContext: constructs a fresh AnmRunner
// bound to a new sprite and running scriptID, stores it, and returns a
// handle an Enemy can hold as a non-owning back-reference.
func (g *Game) SpawnRunner(scriptID uint8, spriteIndexOffset uint32) arena.Handle {
	r := anim.NewAnmRunner(g.catalog, scriptID, anim.NewSprite(), g.prng, spriteIndexOffset)
	h := g.runners.Insert(r)
	g.log.Log(gamelog.ComponentAnim, gamelog.LevelDebug, "spawned runner script=%d handle-valid=%v", scriptID, h.Valid())
	return h
}

// Runner implements enemy.GameContext.
func (g *Game) Runner(h arena.Handle) (*anim.AnmRunner, bool) {
	return g.runners.Get(h)
}

// FireBullet implements enemy.GameContext.
func (g *Game) FireBullet(attrs bullet.Attributes, pos [3]float32) {
	g.bullets = bullet.Fire(g.bullets, attrs, pos)
}

// Bullets returns the live bullet slice. Callers must not retain it across a
// call to RunFrame/UpdateEnemies, which may reallocate it.
func (g *Game) Bullets() []bullet.Bullet {
	return g.bullets
}

// SpawnEnemy constructs a new Enemy bound to this Game and stores it,
// returning both the owning handle and the enemy itself so the caller can
// immediately configure it (SetAnim, SetBulletAttributes, ...).
func (g *Game) SpawnEnemy(pos [2]float32, life, bonusDropped int32, dieScore uint32, mirror bool) (arena.Handle, *enemy.Enemy) {
	e := enemy.New(pos, life, bonusDropped, dieScore, mirror, g.catalog, g.prng, g)
	h := g.enemies.Insert(e)
	g.log.Log(gamelog.ComponentEnemy, gamelog.LevelDebug, "spawned enemy pos=%v life=%d", pos, life)
	return h, e
}

// Enemy resolves a handle previously returned by SpawnEnemy.
func (g *Game) Enemy(h arena.Handle) (*enemy.Enemy, bool) {
	return g.enemies.Get(h)
}

// RunFrame advances every animation runner by one logical frame, in
// insertion order. Enemies are driven externally by the (stubbed) ECL
// interpreter — see UpdateEnemies for the demo driver's stand-in.
func (g *Game) RunFrame() {
	g.runners.Each(func(_ arena.Handle, r **anim.AnmRunner) {
		(*r).RunFrame()
	})
}

// UpdateEnemies advances every enemy by one frame, in insertion order. This
// stands in for the ECL interpreter's per-enemy driving loop; a real game
// glues ECL script execution to this call. It is exposed so Enemy.Update is
// exercisable end to end without requiring ECL.
func (g *Game) UpdateEnemies() {
	g.enemies.Each(func(_ arena.Handle, e **enemy.Enemy) {
		(*e).Update()
	})
}

// PruneRemovedEnemies drops every enemy whose Removed flag is set. Must be
// called between frames, not during enemy/runner iteration.
func (g *Game) PruneRemovedEnemies() {
	var toRemove []arena.Handle
	g.enemies.Each(func(h arena.Handle, e **enemy.Enemy) {
		if (*e).Removed {
			toRemove = append(toRemove, h)
		}
	})
	for _, h := range toRemove {
		g.enemies.Remove(h)
	}
}

// Sprites returns the (x, y, z, sprite) tuples of every enemy's currently
// bound sprite, in enemy insertion order, for a renderer to consume. An
// enemy whose runner has since gone is skipped rather than causing a panic.
func (g *Game) Sprites() []SpriteTuple {
	var out []SpriteTuple
	g.enemies.Each(func(_ arena.Handle, e **enemy.Enemy) {
		r, ok := (*e).Runner()
		if !ok {
			return
		}
		out = append(out, SpriteTuple{X: (*e).Pos[0], Y: (*e).Pos[1], Z: (*e).Z, Sprite: r.Sprite()})
	})
	return out
}
