// Package hexpop implements the HexPop bubble shooter on top of the board
// core: aiming, projectile flight, scoring, the campaign over authored levels
// and the endless mode fed from the ceiling.
package hexpop

import (
	"errors"
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/board"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/levels"
	"github.com/vovakirdan/hexpop/internal/hex"
	"github.com/vovakirdan/hexpop/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StateCleared  = "cleared" // Level cleared, waiting for the next one
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateWin      = "win" // Last campaign level cleared
)

// Mode represents the game mode.
type Mode int

const (
	ModeCampaign Mode = iota // Play through levels, win at the end
	ModeEndless              // Rows keep coming until the field reaches the line
)

const (
	clearedTicks = 90  // Banner length between campaign levels
	guidePoints  = 240 // Samples of the trajectory guide
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	firstLevelID     string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetLevelsDir makes the campaign load levels from a directory instead of
// the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel sets the ID of the first campaign level.
func SetStartLevel(id string) {
	firstLevelID = id
}

// Options override what Reset would otherwise load.
type Options struct {
	Config *config.HexPopConfig
	Levels []levels.Level
	// StartLevel is the ID of the first campaign level. It wins over
	// SetStartLevel so concurrent sessions can start at different levels.
	StartLevel string
}

// Game implements HexPop.
type Game struct {
	mode Mode
	opts Options

	runtime    core.RuntimeConfig
	cfg        config.HexPopConfig
	difficulty *config.DifficultyManager
	rng        *core.RNG

	levels     []levels.Level
	levelIndex int
	loadErr    error

	board   *board.Board
	feeder  *Feeder
	shooter Shooter
	shot    *Projectile
	bonus   []board.Ball // Obtained power-ups waiting for the chamber
	width   float64      // Field width in world units

	state       string
	score       int
	levelScore  int
	balls       int // Balls removed in the current level or endless run
	ticks       int
	bannerTicks int
	results     []registry.Result

	layout         screenLayout
	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithOptions creates a game that uses the given config and levels
// instead of loading them.
func NewWithOptions(mode Mode, opts Options) *Game {
	return &Game{mode: mode, opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "hexpop-endless"
	}
	return "hexpop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "HexPop (Endless)"
	}
	return "HexPop"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Rows keep dropping from the ceiling. Survive."
	}
	return "Clear every authored level before it reaches the line."
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRNG(runtime.Seed)

	g.score = 0
	g.ticks = 0
	g.results = nil
	g.loadErr = nil

	if g.mode == ModeEndless {
		g.startEndless()
	} else {
		g.levels, g.loadErr = g.loadLevels()
		g.levelIndex = 0
		start := g.opts.StartLevel
		if start == "" && g.opts.Levels == nil {
			start = firstLevelID
		}
		for i := range g.levels {
			if start != "" && g.levels[i].ID == start {
				g.levelIndex = i
			}
		}
		if g.loadErr == nil {
			g.startLevel(g.levelIndex)
		}
	}
}

func (g *Game) loadConfig() config.HexPopConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := config.LoadHexPop(configPath)
	if err != nil || cfg.Validate() != nil {
		cfg = config.DefaultHexPopConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHexPopPreset(&cfg, difficultyPreset)
	}
	return cfg
}

func (g *Game) loadLevels() ([]levels.Level, error) {
	if g.opts.Levels != nil {
		return g.opts.Levels, nil
	}
	return CampaignLevels()
}

// StartAt makes the next Reset begin the campaign at the given level.
// An empty ID starts from the first level.
func (g *Game) StartAt(levelID string) {
	g.opts.StartLevel = levelID
}

// CampaignLevels loads the campaign from the directory set with
// SetLevelsDir, or the built-in set.
func CampaignLevels() ([]levels.Level, error) {
	loader := levels.Builtin()
	if levelsDir != "" {
		loader = levels.NewLoader(levelsDir)
	}
	ls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(ls) == 0 {
		return nil, errors.New("no levels found")
	}
	return ls, nil
}

// boardConfig converts the gameplay config into board tuning.
func boardConfig(cfg config.HexPopConfig) board.Config {
	return board.Config{
		Radius:          cfg.Board.Radius,
		DeathLineY:      cfg.Board.DeathLineY,
		PreferredY:      cfg.Pacing.PreferredY,
		Baseline:        cfg.Pacing.Baseline,
		PushDownCap:     cfg.Pacing.PushDownCap,
		ApproachRate:    cfg.Pacing.ApproachRate,
		FuseDelay:       cfg.Bombs.Fuse,
		PowerUpDuration: cfg.PowerUps.Duration,
	}
}

func (g *Game) startLevel(index int) {
	level := &g.levels[index]
	g.levelIndex = index
	g.board = level.NewBoard(boardConfig(g.cfg))
	g.feeder = nil
	g.width = float64(level.Width) * 2 * g.cfg.Board.Radius
	g.startField()
}

func (g *Game) startEndless() {
	g.feeder = NewFeeder(g.rng, g.cfg.Endless)
	g.board = newEndlessBoard(boardConfig(g.cfg), g.cfg.Endless, g.feeder)
	g.width = float64(max(g.cfg.Endless.Columns, 2)) * 2 * g.cfg.Board.Radius
	g.startField()
}

// startField resets the per-field state after a new board was built.
func (g *Game) startField() {
	r := g.cfg.Board.Radius
	g.shooter = Shooter{
		Origin:   hex.P(g.width/2, g.cfg.Board.DeathLineY+2*r),
		MaxAngle: g.cfg.Shooter.MaxAngle * math.Pi / 180,
	}
	g.shooter.Loaded = g.draw()
	g.shooter.Next = g.draw()
	g.shot = nil
	g.bonus = nil
	g.levelScore = 0
	g.balls = 0
	g.bannerTicks = 0
	g.state = StatePlaying
	g.calculateLayout()
}

// palette returns the colors the shooter may draw from.
func (g *Game) palette() []int {
	if present := g.board.Colors(); len(present) > 0 {
		return present
	}
	n := g.cfg.Endless.Colors
	if g.mode == ModeCampaign && g.levelIndex < len(g.levels) {
		n = g.levels[g.levelIndex].Colors
	} else if g.feeder != nil {
		n = g.feeder.Colors()
	}
	colors := make([]int, max(n, 1))
	for i := range colors {
		colors[i] = i
	}
	return colors
}

// draw picks the next ball for the chamber.
func (g *Game) draw() board.Ball {
	colors := g.palette()
	return board.Colored(colors[g.rng.Intn(len(colors))])
}

// refreshChamber recolors queued color balls whose color left the board.
func (g *Game) refreshChamber() {
	present := g.board.Colors()
	if len(present) == 0 {
		return
	}
	for _, b := range []*board.Ball{&g.shooter.Loaded, &g.shooter.Next} {
		if b.IsColor() && !slices.Contains(present, b.Color) {
			*b = board.Colored(present[g.rng.Intn(len(present))])
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	switch g.state {
	case StatePaused, StateGameOver, StateWin:
		return core.StepResult{State: g.State()}
	case StateCleared:
		g.bannerTicks--
		if g.bannerTicks <= 0 || in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.startLevel(g.levelIndex + 1)
		}
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	dt := g.runtime.TickSeconds()

	g.handleAim(in)

	if g.shot != nil {
		if land, ok := fly(g.board, g.shot, dt, g.cfg.Shooter.SubSteps, g.width); ok {
			g.shot = nil
			g.award(land.Batch)
		} else if g.shot.lost(g.board) {
			g.shot = nil
		}
	}

	g.board.SetSpeed(g.difficulty.Speed(g.score, g.ticks))
	tick := g.board.AdvanceTick(time.Duration(dt * float64(time.Second)))
	for _, d := range tick.Detonations {
		g.award(d.Batch)
	}

	g.handleEvents(g.board.Drain())

	if g.feeder != nil {
		g.feeder.SetColors(g.difficulty.Colors(g.cfg.Endless.Colors, g.cfg.Endless.MaxColors, g.score, g.ticks))
		feed(g.board, g.feeder)
		g.board.Drain()
	}

	switch {
	case tick.Failed:
		g.finish(false)
	case g.mode == ModeCampaign && g.board.OccupiedCount() == 0:
		g.clearLevel()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleAim(in core.InputFrame) {
	step := g.cfg.Shooter.AimStep * math.Pi / 180
	if in.Has(core.ActionLeft) {
		g.shooter.Rotate(-step)
	}
	if in.Has(core.ActionRight) {
		g.shooter.Rotate(step)
	}
	if g.shot != nil {
		return
	}
	if in.Has(core.ActionSwap) {
		g.shooter.Swap()
	}
	if in.Has(core.ActionFire) {
		g.shot = g.shooter.Launch(g.cfg.Shooter.Speed, g.nextBall())
	}
}

// nextBall returns an obtained power-up if one is waiting, else a draw.
func (g *Game) nextBall() board.Ball {
	if len(g.bonus) > 0 {
		b := g.bonus[0]
		g.bonus = g.bonus[1:]
		return b
	}
	return g.draw()
}

// award scores one removal batch.
func (g *Game) award(batch board.Batch) {
	points := len(batch.Matched)*g.cfg.Scoring.PerBall + len(batch.Dropped)*g.cfg.Scoring.PerDrop
	g.score += points
	g.levelScore += points
}

func (g *Game) handleEvents(events []board.Event) {
	for _, e := range events {
		switch e.Kind {
		case board.EventBallsObtained:
			g.balls += len(e.Balls)
			g.refreshChamber()
		case board.EventPowerUpObtained:
			if g.rng.Chance(g.cfg.PowerUps.BombOdds) {
				g.bonus = append(g.bonus, board.Bomb)
			} else {
				g.bonus = append(g.bonus, board.Rainbow)
			}
		case board.EventSettled:
			if g.rng.Chance(g.cfg.PowerUps.Chance) {
				g.spawnPowerUp()
			}
		}
	}
}

// spawnPowerUp arms a power-up timer on a random colored ball without one.
func (g *Game) spawnPowerUp() {
	hexes := g.board.Hexes()
	n := 0
	for _, h := range hexes {
		ball, _ := g.board.BallAt(h)
		if _, live := g.board.PowerUpAt(h); ball.IsColor() && !live {
			hexes[n] = h
			n++
		}
	}
	if n == 0 {
		return
	}
	g.board.ArmPowerUp(hexes[g.rng.Intn(n)])
}

func (g *Game) clearLevel() {
	g.score += g.cfg.Scoring.LevelClear
	g.levelScore += g.cfg.Scoring.LevelClear
	g.record(true)

	if g.levelIndex+1 >= len(g.levels) {
		g.state = StateWin
		return
	}
	g.state = StateCleared
	g.bannerTicks = clearedTicks
}

func (g *Game) finish(cleared bool) {
	g.record(cleared)
	g.state = StateGameOver
}

// record queues the result of the current field for the platform.
func (g *Game) record(cleared bool) {
	r := registry.Result{Score: g.score, Balls: g.balls, Cleared: cleared}
	if g.mode == ModeCampaign {
		r.LevelID = g.levels[g.levelIndex].ID
		r.Score = g.levelScore
	}
	g.results = append(g.results, r)
}

// TakeResults returns the finished fields since the last call.
func (g *Game) TakeResults() []registry.Result {
	r := g.results
	g.results = nil
	return r
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin || g.loadErr != nil,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Board returns the current field.
func (g *Game) Board() *board.Board {
	return g.board
}

// Level returns the current campaign level, or nil in endless mode.
func (g *Game) Level() *levels.Level {
	if g.mode != ModeCampaign || g.levelIndex >= len(g.levels) {
		return nil
	}
	return &g.levels[g.levelIndex]
}

// Register the games with the registry
func init() {
	registry.Register("hexpop", func() registry.Game {
		return New()
	})
	registry.Register("hexpop-endless", func() registry.Game {
		return NewEndless()
	})
}
