package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cubemaze/internal/gamedata"
	"github.com/samdwyer/cubemaze/internal/geometry"
	"github.com/samdwyer/cubemaze/internal/nav"
	"github.com/samdwyer/cubemaze/internal/telemetry"
	"github.com/samdwyer/cubemaze/internal/ui"
	"github.com/samdwyer/cubemaze/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	logger   logr.Logger
	session  string
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *gamedata.LevelRegistry
	palette  *gamedata.Palette

	level   gamedata.LevelDef
	maze    *world.Maze
	nav     *nav.Navigator
	state   State
	message string
	running bool
}

// New creates a new game instance bound to the terminal.
func New(cfg Config, logger logr.Logger) (*Game, error) {
	g, err := newGame(cfg, logger)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, g.palette)
	return g, nil
}

// newGame sets up everything except the terminal.
func newGame(cfg Config, logger logr.Logger) (*Game, error) {
	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	if cfg.Level < 1 {
		cfg.Level = 1
	}

	session := uuid.NewString()
	return &Game{
		cfg:      cfg,
		logger:   logger.WithValues("session", session),
		session:  session,
		registry: registry,
		palette:  palette,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.startLevel(ctx, g.cfg.Level); err != nil {
		return err
	}

	for g.running {
		g.renderer.Render(ui.View{Maze: g.maze, Nav: g.nav, Level: g.level, Message: g.message})

		// Blocks until the next event.
		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}
	return nil
}

// levelDef resolves a level, applying the size and seed overrides from config.
// A pinned seed only applies to the starting level.
func (g *Game) levelDef(level int) gamedata.LevelDef {
	def := g.registry.Get(level)
	if g.cfg.Size > 0 {
		def.Size = g.cfg.Size
	}
	if g.cfg.Seed != 0 && level == g.cfg.Level {
		def.Seed = g.cfg.Seed
	}
	return def
}

// startLevel builds the maze for a level and places the player on it.
func (g *Game) startLevel(ctx context.Context, level int) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.level")
	defer span.End()

	def := g.levelDef(level)
	seed := def.EffectiveSeed()

	m, err := world.Build(ctx, def.Size, seed)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("build level %d: %w", def.Level, err)
	}
	if err := geometry.Project(m, geometry.DefaultDiameter); err != nil {
		span.RecordError(err)
		return fmt.Errorf("project level %d: %w", def.Level, err)
	}

	start := m.Index(world.FaceFront, 0, 0)
	end := m.Index(world.FaceBack, 0, def.Size-1)
	n, err := nav.New(m, start, end,
		nav.WithLogger(g.logger.WithName("nav")),
		nav.WithOnComplete(g.complete),
	)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("start level %d: %w", def.Level, err)
	}

	g.level, g.maze, g.nav = def, m, n
	g.state = StatePlaying
	g.message = ""

	span.SetAttributes(
		attribute.String("game.session", g.session),
		attribute.Int("game.level", def.Level),
		attribute.Int("maze.size", def.Size),
		attribute.Int64("maze.seed", seed),
	)
	g.logger.Info("level started", "level", def.Level, "size", def.Size, "seed", seed,
		"fingerprint", fmt.Sprintf("%016x", m.Fingerprint()),
		"beyondLevelTable", def.Level > g.registry.Count())
	return nil
}

// complete is the navigator's completion callback.
func (g *Game) complete() {
	g.state = StateWon
	g.message = fmt.Sprintf("Solved in %d moves! Press Enter for level %d.", g.nav.Moves(), g.level.Level+1)
	g.logger.Info("level solved", "level", g.level.Level, "moves", g.nav.Moves())
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKey maps a key press to a move or a command.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, ch rune) error {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEnter:
		if g.state == StateWon {
			return g.startLevel(ctx, g.level.Level+1)
		}
	case tcell.KeyUp:
		g.move(nav.Forward)
	case tcell.KeyDown:
		g.move(nav.Back)
	case tcell.KeyLeft:
		g.move(nav.Left)
	case tcell.KeyRight:
		g.move(nav.Right)

	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			g.running = false
		case 'w', 'W':
			g.move(nav.Forward)
		case 's', 'S':
			g.move(nav.Back)
		case 'a', 'A':
			g.move(nav.Left)
		case 'd', 'D':
			g.move(nav.Right)
		case 'h', 'H':
			g.hint()
		case 'r', 'R':
			return g.startLevel(ctx, g.level.Level)
		}
	}
	return nil
}

// move forwards an intent to the navigator while the level is in play.
func (g *Game) move(intent nav.Intent) {
	if g.state != StatePlaying {
		return
	}
	// Cleared first: reaching the goal sets the win message inside HandleMove.
	g.message = ""
	if !g.nav.HandleMove(intent) {
		g.message = "A wall blocks the way."
	}
}

// hint names the intent for the first step on the open path to the goal.
func (g *Game) hint() {
	if g.state != StatePlaying {
		return
	}
	path := g.maze.Path(g.nav.Current(), g.nav.End())
	if len(path) == 0 {
		return
	}
	g.message = fmt.Sprintf("Hint: %s (%d steps to go)", g.nav.IntentFor(path[0]), len(path))
}
