package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/tiberiumdvk/inf-game/internal/entity"
	"github.com/tiberiumdvk/inf-game/internal/hud"
	"github.com/tiberiumdvk/inf-game/internal/painter"
	"github.com/tiberiumdvk/inf-game/internal/telemetry"
	"github.com/tiberiumdvk/inf-game/internal/tilemap"
	"github.com/tiberiumdvk/inf-game/internal/tiles"
	"github.com/tiberiumdvk/inf-game/internal/visibility"
	"github.com/tiberiumdvk/inf-game/internal/world"
)

// Layer names, in draw order.
const (
	LayerGround = "ground"
	LayerStuff  = "stuff"
	LayerShadow = "shadow"
)

// Scene is one level of the dungeon: generated rooms, painted layers, the
// player and the fog of war. Reaching the stairs builds the next level.
type Scene struct {
	cfg     Config
	palette *tiles.Palette
	logger  *zap.Logger
	seed    int64
	rng     *rand.Rand

	level int
	runID uuid.UUID
	state State
	fade  int
	debug bool

	dungeon  *world.Dungeon
	tilemap  *tilemap.Map
	ground   *tilemap.Layer
	stuff    *tilemap.Layer
	shadow   *tilemap.Layer
	layout   painter.Layout
	player   *entity.Player
	tracker  *visibility.Tracker
	explored mapset.Set[*world.Room]
}

// NewScene creates a scene. Call Create to build the first level.
func NewScene(cfg Config, palette *tiles.Palette, logger *zap.Logger) *Scene {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Scene{
		cfg:      cfg,
		palette:  palette,
		logger:   logger,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		explored: mapset.New[*world.Room](),
	}
}

// Create builds the next level: a new dungeon painted onto fresh layers, props,
// collision, the player in the start room and a new fog of war.
func (s *Scene) Create(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.create")
	defer span.End()

	s.level++
	s.state = StateExplore
	s.fade = 0
	s.runID = uuid.New()

	s.dungeon = world.NewDungeon(s.cfg.Dungeon, s.rng)
	s.dungeon.Generate(ctx)

	blank := s.palette.Index(tiles.RoleBlank)
	s.tilemap = tilemap.New(s.dungeon.Width, s.dungeon.Height, s.cfg.TileSize, s.cfg.TileSize)
	s.ground = s.tilemap.CreateBlankLayer(LayerGround).Fill(blank)
	s.stuff = s.tilemap.CreateBlankLayer(LayerStuff)
	s.shadow = s.tilemap.CreateBlankLayer(LayerShadow).Fill(blank)

	_, paintSpan := tracer.Start(ctx, "level.paint")
	for _, room := range s.dungeon.Rooms {
		painter.PaintRoom(s.ground, room, s.palette, s.rng)
	}
	paintSpan.SetAttributes(attribute.Int("level.rooms", len(s.dungeon.Rooms)))
	paintSpan.End()

	_, propsSpan := tracer.Start(ctx, "level.props")
	s.layout = painter.Populate(s.stuff, s.dungeon.Rooms, s.palette, s.rng)
	propsSpan.SetAttributes(attribute.Int("level.props", len(s.layout.Props)))
	propsSpan.End()

	passable := s.palette.Passable()
	s.ground.SetCollisionByExclusion(passable...)
	s.stuff.SetCollisionByExclusion(passable...)
	s.stuff.SetTileIndexCallback(s.palette.Index(tiles.RoleStairs), s.reachStairs)

	start := s.layout.Start
	s.player = entity.NewPlayer(start.CenterX, start.CenterY)
	s.player.StepFrames = s.cfg.StepFrames

	s.tracker = visibility.NewTracker(s.shadow)
	s.explored = mapset.New[*world.Room]()
	s.enterRoom(s.dungeon.RoomAt(s.player.Position()))

	span.SetAttributes(
		attribute.Int("level.number", s.level),
		attribute.String("level.run_id", s.runID.String()),
		attribute.Int64("level.seed", s.seed),
		attribute.Int("level.rooms", len(s.dungeon.Rooms)),
	)
	s.logger.Info("level created",
		zap.Int("level", s.level),
		zap.Int64("seed", s.seed),
		zap.Int("rooms", len(s.dungeon.Rooms)),
		zap.String("run_id", s.runID.String()),
	)
}

// Update advances the scene by one frame.
func (s *Scene) Update(ctx context.Context, in Input) {
	if in.ToggleDebug {
		s.debug = !s.debug
	}

	if s.state == StateDescending {
		s.fade--
		if s.fade <= 0 {
			s.Create(ctx)
		}
		return
	}

	s.player.Update(in.Keys(), levelTerrain{s})
	s.enterRoom(s.dungeon.RoomAt(s.player.Position()))
}

// levelTerrain lets the player bump into the level. Touching a tile fires
// its stuff-layer callback before collision is checked.
type levelTerrain struct {
	s *Scene
}

func (t levelTerrain) Collides(x, y int) bool {
	t.s.stuff.Touch(x, y)
	return t.s.tilemap.Collides(x, y)
}

func (s *Scene) enterRoom(room *world.Room) {
	if !s.tracker.SetActiveRoom(room) {
		return
	}
	if room == nil {
		s.logger.Debug("left room")
		return
	}
	s.explored.Put(room)
	s.logger.Debug("entered room",
		zap.Int("room", s.dungeon.RoomIndexAt(room.CenterX, room.CenterY)),
		zap.Int("explored", s.explored.Size()),
	)
}

func (s *Scene) reachStairs(x, y int) {
	s.stuff.SetTileIndexCallback(s.palette.Index(tiles.RoleStairs), nil)
	s.state = StateDescending
	s.fade = s.cfg.DescendFrames
	s.player.Freeze()
	s.logger.Info("stairs reached",
		zap.Int("level", s.level),
		zap.Int("x", x),
		zap.Int("y", y),
		zap.String("run_id", s.runID.String()),
	)
}

// Level returns the current level number, starting at 1.
func (s *Scene) Level() int { return s.level }

// Seed returns the seed of the scene's random source.
func (s *Scene) Seed() int64 { return s.seed }

// RunID identifies the current level in logs and traces.
func (s *Scene) RunID() uuid.UUID { return s.runID }

// State returns the current game state.
func (s *Scene) State() State { return s.state }

// Debug returns true while the collision overlay is on.
func (s *Scene) Debug() bool { return s.debug }

// Dungeon returns the generated rooms of the current level.
func (s *Scene) Dungeon() *world.Dungeon { return s.dungeon }

// Map returns the level's tile map holding all three layers.
func (s *Scene) Map() *tilemap.Map { return s.tilemap }

// Ground returns the painted floor, wall and door layer.
func (s *Scene) Ground() *tilemap.Layer { return s.ground }

// Stuff returns the prop layer.
func (s *Scene) Stuff() *tilemap.Layer { return s.stuff }

// Shadow returns the fog of war layer; only tile alpha is meaningful.
func (s *Scene) Shadow() *tilemap.Layer { return s.shadow }

// Palette returns the tile palette the level is painted with.
func (s *Scene) Palette() *tiles.Palette { return s.palette }

// Player returns the player of the current level.
func (s *Scene) Player() *entity.Player { return s.player }

// Layout returns where the level's props were placed.
func (s *Scene) Layout() painter.Layout { return s.layout }

// ActiveRoom returns the lit room, or nil.
func (s *Scene) ActiveRoom() *world.Room { return s.tracker.Active() }

// Explored returns how many rooms of the current level have been visited.
func (s *Scene) Explored() int { return s.explored.Size() }

// Fade returns the descend fade progress from 0 to 1.
func (s *Scene) Fade() float64 {
	if s.state != StateDescending || s.cfg.DescendFrames <= 0 {
		return 0
	}
	return 1 - float64(s.fade)/float64(s.cfg.DescendFrames)
}

// Status summarizes the scene for the HUD.
func (s *Scene) Status() hud.Status {
	return hud.Status{
		Level:      s.level,
		Explored:   s.explored.Size(),
		Rooms:      len(s.dungeon.Rooms),
		Descending: s.state == StateDescending,
		Debug:      s.debug,
	}
}
