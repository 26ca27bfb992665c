package game

import (
	"io"
	"time"

	"sprite-snake/game/entity"
	"sprite-snake/game/manager"
	"sprite-snake/game/types"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// GameOverText is drawn centred on the board once the game has ended.
const GameOverText = "Game Over"

// Options configures a Surface. Zero values fall back to the fixed board,
// the default delay and a time-based seed.
type Options struct {
	Grid   types.Grid
	Delay  time.Duration
	Seed   uint64
	Logger *log.Logger

	// Redraw is called at the end of every tick.
	Redraw func()
	// OnOver is called once, when the game ends.
	OnOver func(*Surface)
}

// State is everything that changes while a game runs.
type State struct {
	Snake *entity.Snake
	Food  *manager.FoodManager
	Run   *manager.StateManager
}

// Surface owns one game: its state, its timer and the rules that advance it.
// Tick, OnKey and Render must be called from the same goroutine.
type Surface struct {
	UUID string

	grid       types.Grid
	state      *State
	collisions *manager.CollisionManager
	timer      *Timer
	logger     *log.Logger
	redraw     func()
	onOver     func(*Surface)
}

func NewSurface(opts Options) *Surface {
	if opts.Grid == (types.Grid{}) {
		opts.Grid = types.DefaultGrid()
	}
	if opts.Delay <= 0 {
		opts.Delay = types.Delay
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	id := uuid.New().String()
	s := &Surface{
		UUID:       id,
		grid:       opts.Grid,
		collisions: manager.NewCollisionManager(opts.Grid),
		timer:      NewTimer(opts.Delay),
		logger:     opts.Logger.With("session", id[:8]),
		redraw:     opts.Redraw,
		onOver:     opts.OnOver,
	}
	s.state = &State{
		Snake: entity.NewSnake(types.StartHead, types.InitialLength, opts.Grid.Capacity(), opts.Grid.Unit),
		Food:  manager.NewFoodManager(opts.Grid, opts.Seed),
		Run:   manager.NewStateManager(),
	}
	return s
}

// Start arms the tick timer.
func (s *Surface) Start(now time.Time) {
	s.timer.Start(now)
	s.logger.Info("game started",
		"delay", s.timer.Interval(),
		"food", s.state.Food.Food())
}

// Advance runs one tick if the timer says one is due. Hosts call it once per
// frame.
func (s *Surface) Advance(now time.Time) bool {
	if !s.timer.Due(now) {
		return false
	}
	s.Tick()
	return true
}

// Tick advances the simulation by one step: eat, collide, move. Once the
// game is over it only requests a redraw.
func (s *Surface) Tick() {
	if s.state.Run.Running() {
		s.state.Run.RecordTick()
		s.checkFood()
		s.checkCollision()
		s.state.Snake.Move(s.grid.Unit)
	}
	if s.redraw != nil {
		s.redraw()
	}
}

func (s *Surface) checkFood() {
	snake := s.state.Snake
	if !s.state.Food.IsFoodCollision(snake.Head()) {
		return
	}
	if !snake.Grow() {
		s.logger.Warn("snake fills the board, not growing", "length", snake.Len())
	}
	s.state.Run.RecordMeal()
	food := s.state.Food.Locate()
	s.logger.Debug("food eaten", "length", snake.Len(), "food", food)
}

func (s *Surface) checkCollision() {
	cause := s.collisions.CheckCollision(s.state.Snake)
	if cause == manager.NoCollision {
		return
	}
	if !s.state.Run.End(cause) {
		return
	}
	s.timer.Stop()
	s.logger.Info("game over",
		"cause", cause,
		"head", s.state.Snake.Head(),
		"score", s.state.Run.Score(),
		"length", s.state.Snake.Len(),
		"ticks", s.state.Run.Ticks())
	if s.onOver != nil {
		s.onOver(s)
	}
}

// OnKey applies an arrow key. A key that would reverse the snake onto its
// own neck is ignored. Keys are not gated on the run state.
func (s *Surface) OnKey(k Key) {
	dir, ok := k.direction()
	if !ok {
		return
	}
	if !s.state.Snake.SetDirection(dir) {
		s.logger.Debug("reverse turn rejected", "active", s.state.Snake.Direction, "requested", dir)
	}
}

// Render draws the board while running, or the game over text.
func (s *Surface) Render(c Canvas) {
	if !s.state.Run.Running() {
		w := c.MeasureText(GameOverText)
		c.DrawText(GameOverText, (s.grid.Width-w)/2, s.grid.Height/2)
		return
	}
	s.RenderBoard(c)
}

// RenderBoard draws the food and the snake, head first, whatever the run
// state.
func (s *Surface) RenderBoard(c Canvas) {
	c.DrawSprite(SpriteFood, s.state.Food.Food())
	snake := s.state.Snake
	for i := 0; i < snake.Len(); i++ {
		if i == 0 {
			c.DrawSprite(SpriteHead, snake.Segment(i))
		} else {
			c.DrawSprite(SpriteBody, snake.Segment(i))
		}
	}
}

// SetRedraw replaces the hook called at the end of every tick.
func (s *Surface) SetRedraw(fn func()) {
	s.redraw = fn
}

func (s *Surface) State() *State {
	return s.state
}

func (s *Surface) Timer() *Timer {
	return s.timer
}

func (s *Surface) Grid() types.Grid {
	return s.grid
}

func (s *Surface) Over() bool {
	return !s.state.Run.Running()
}
