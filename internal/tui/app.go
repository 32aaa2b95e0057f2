// Package tui provides the Bubble Tea spelling race interface.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/verte-zerg/spellace/internal/catalog"
	"github.com/verte-zerg/spellace/internal/game"
	"github.com/verte-zerg/spellace/internal/model"
	"github.com/verte-zerg/spellace/internal/penalty"
)

type screen int

const (
	screenMenu screen = iota
	screenDifficulty
	screenChallenge
	screenGame
	screenResults
)

const (
	defaultContentWidth = 60
	maxBarWidth         = 60
)

// tickMsg is one second of game time for the session it names.
type tickMsg struct {
	session uuid.UUID
}

func tickCmd(id uuid.UUID) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{session: id}
	})
}

// Launch names a game to start.
type Launch struct {
	Difficulty string
	// Penalty is nil when the difficulty decides.
	Penalty *penalty.Type
}

// Options configure the App.
type Options struct {
	Catalog *catalog.Catalog
	Config  model.Config
	Logger  *log.Logger
	Now     func() time.Time
	// Launch opens a game directly instead of the menu.
	Launch *Launch
}

// App implements the Bubble Tea spelling race UI.
type App struct {
	catalog *catalog.Catalog
	cfg     model.Config
	logger  *log.Logger
	now     func() time.Time
	levels  []model.DifficultyLevel
	systems []penalty.System

	width  int
	height int

	screen screen
	origin screen

	menuCursor       int
	difficultyCursor int
	challenge        challengeState

	launch   Launch
	session  *game.Session
	input    textinput.Model
	wordsBar progress.Model
	timeBar  progress.Model
	toast    string
	toastBad bool

	result *game.Result
	last   *game.Result
	help   help.Model
}

// NewApp constructs the spelling race UI.
func NewApp(opts Options) *App {
	a := &App{
		catalog: opts.Catalog,
		cfg:     opts.Config,
		logger:  opts.Logger,
		now:     opts.Now,
		help:    help.New(),
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	a.levels = a.catalog.Levels()
	a.systems = penalty.Systems()
	a.input = newWordInput()
	a.wordsBar = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40))
	a.timeBar = progress.New(progress.WithGradient("#FF4D4F", "#C89A3A"), progress.WithoutPercentage(), progress.WithWidth(40))
	for i, level := range a.levels {
		if level.ID == a.cfg.Difficulty {
			a.difficultyCursor = i
		}
	}
	a.challenge.reset(a.systems, a.cfg.Penalty)
	if opts.Launch != nil {
		a.start(*opts.Launch, screenMenu)
	}
	return a
}

func newWordInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Type the word here..."
	input.CharLimit = 0
	input.Width = 30
	return input
}

// LastResult returns the result of the most recently finished game.
func (a *App) LastResult() (game.Result, bool) {
	if a.last == nil {
		return game.Result{}, false
	}
	return *a.last, true
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tickMsg:
		return a, a.handleTick(msg)
	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			a.abandon()
			return a, tea.Quit
		}
		switch a.screen {
		case screenMenu:
			return a.updateMenu(msg)
		case screenDifficulty:
			return a.updateDifficulty(msg)
		case screenChallenge:
			return a.updateChallenge(msg)
		case screenGame:
			return a.updateGame(msg)
		case screenResults:
			return a.updateResults(msg)
		}
		return a, nil
	default:
		if a.playing() {
			return a, a.updateInput(msg)
		}
		return a, nil
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var content string
	switch a.screen {
	case screenDifficulty:
		content = a.viewDifficulty()
	case screenChallenge:
		content = a.viewChallenge()
	case screenGame:
		content = a.viewGame()
	case screenResults:
		content = a.viewResults()
	default:
		content = a.viewMenu()
	}
	if a.width == 0 || a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	barWidth := a.contentWidth()
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	a.wordsBar.Width = barWidth
	a.timeBar.Width = barWidth
	a.help.Width = width
}

func (a *App) contentWidth() int {
	if a.width == 0 {
		return defaultContentWidth
	}
	w := int(float64(a.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (a *App) playing() bool {
	return a.screen == screenGame && a.session != nil && a.session.Status() == game.StatusPlaying
}

// start configures a new session and shows its waiting screen. origin is
// the screen the player returns to on exit.
func (a *App) start(l Launch, origin screen) {
	a.launch = l
	a.origin = origin
	a.result = nil
	a.toast = ""
	a.toastBad = false
	a.session = game.New(a.catalog, game.Options{
		Difficulty: l.Difficulty,
		Penalty:    l.Penalty,
		Words:      a.cfg.Words,
		Duration:   a.cfg.Duration,
		Now:        a.now,
		Hooks: game.Hooks{
			OnComplete: a.onComplete,
			OnExit:     a.onExit,
		},
	})
	a.input.Reset()
	a.input.Blur()
	a.screen = screenGame
	a.logger.Info("session configured",
		"session", a.session.ID(),
		"difficulty", a.session.Difficulty(),
		"penalty", a.session.Penalty(),
		"words", len(a.session.Words()),
	)
}

func (a *App) onComplete(r game.Result) {
	a.result = &r
	a.last = &r
	a.input.Blur()
	a.screen = screenResults
	a.logger.Info("session finished",
		"score", r.Score,
		"mistakes", r.Mistakes,
		"wpm", r.WordsPerMinute,
		"accuracy", r.Accuracy,
		"elapsed", r.Elapsed,
	)
}

func (a *App) onExit() {
	a.logger.Info("session abandoned", "session", a.session.ID())
	a.session = nil
	a.input.Blur()
	a.screen = a.origin
}

// abandon exits an unfinished session before the program quits.
func (a *App) abandon() {
	if a.session == nil || a.session.Status() == game.StatusFinished {
		return
	}
	a.session.Exit()
}

func (a *App) handleTick(msg tickMsg) tea.Cmd {
	if a.session == nil || msg.session != a.session.ID() {
		a.logger.Debug("dropping stale tick", "session", msg.session)
		return nil
	}
	if !a.session.Tick() {
		return nil
	}
	if a.session.Status() != game.StatusPlaying {
		return nil
	}
	return tickCmd(a.session.ID())
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
