package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/content"
	"github.com/vovakirdan/cardstorm/internal/core"
	"github.com/vovakirdan/cardstorm/internal/sim"
	"github.com/vovakirdan/cardstorm/internal/storage"
)

// bannerSeconds is how long wave announcements stay on screen.
const bannerSeconds = 2.5

// Model is the Bubble Tea model for one cardstorm session: title screen,
// live run, overlays, and the run history view. The same model serves
// local play and SSH sessions.
type Model struct {
	sim     *sim.Sim
	simCfg  *config.SimConfig
	catalog *content.Catalog
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig

	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	stats       sim.StatsSnapshot
	moveDir     core.Vec2
	banner      string
	bannerTimer float64
	bestWave    int

	// pause-overlay inventory editing
	invCursor  int
	invGrabbed int

	history  *HistoryModel
	lastTick time.Time
	runSaved bool
	quitting bool
}

// NewModel creates a session model. The sim config is owned by the
// caller; terrain seeding falls back to the runtime seed when unset.
func NewModel(simCfg *config.SimConfig, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if simCfg.Terrain.Seed == 0 {
		simCfg.Terrain.Seed = cfg.Seed
	}

	catalog := content.NewCatalog()
	m := Model{
		sim:        sim.New(simCfg, cfg.Seed, catalog),
		simCfg:     simCfg,
		catalog:    catalog,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		invGrabbed: -1,
	}
	m.loadBestWave()
	return m
}

func (m *Model) loadBestWave() {
	if m.store == nil {
		return
	}
	if best, err := m.store.BestWave(); err == nil {
		m.bestWave = best
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The history view owns all input while open.
	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// updateHistory forwards messages to the run history view and closes it
// when the user backs out.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keep the tick loop alive underneath; the sim is paused or in a
	// frozen state while history is open, so ticks are cheap.
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.config.TickRate)
	}

	next, cmd := m.history.Update(msg)
	if hm, ok := next.(HistoryModel); ok {
		m.history = &hm
	}
	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		m.history = nil
	}
	return m, cmd
}

// handleKey processes keyboard input, routed by lifecycle state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	state := m.sim.CurrentState()

	if key == "ctrl+c" || key == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	switch state {
	case sim.StateMenu:
		switch key {
		case "enter", " ":
			m.startRun()
		case "h":
			h := NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.history = &h
		}

	case sim.StateLevelUp:
		switch key {
		case "1", "2", "3":
			m.sim.ChooseLevelUpCard(int(key[0] - '1'))
		}

	case sim.StatePaused:
		return m.handlePausedKey(key)

	case sim.StateGameOver, sim.StateVictory:
		switch key {
		case "r":
			m.startRun()
		case "esc", "b":
			m.backToMenu()
		}

	default: // Playing, PreLevelUp
		switch key {
		case "p", "esc":
			m.sim.Pause()
			m.invCursor = 0
			m.invGrabbed = -1
		default:
			m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
		}
	}

	return m, nil
}

// handlePausedKey drives the inventory editor.
func (m Model) handlePausedKey(key string) (tea.Model, tea.Cmd) {
	n := len(m.sim.Inventory())

	switch key {
	case "p", "esc":
		m.sim.Resume()
		m.invGrabbed = -1

	case "up", "k":
		m.moveInvCursor(-1, n)
	case "down", "j":
		m.moveInvCursor(1, n)

	case " ", "enter":
		if n == 0 {
			break
		}
		if m.invGrabbed == m.invCursor {
			m.invGrabbed = -1
		} else {
			m.invGrabbed = m.invCursor
		}

	case "x":
		if m.sim.RemoveCardAt(m.invCursor) {
			m.invGrabbed = -1
			if m.invCursor >= n-1 && m.invCursor > 0 {
				m.invCursor--
			}
		}
	}

	return m, nil
}

// moveInvCursor moves the selection, dragging a grabbed card with it.
func (m *Model) moveInvCursor(delta, n int) {
	if n == 0 {
		return
	}
	target := core.Clamp(m.invCursor+delta, 0, n-1)
	if target == m.invCursor {
		return
	}
	if m.invGrabbed == m.invCursor {
		if m.sim.ReorderInventory(m.invCursor, target) {
			m.invGrabbed = target
		}
	}
	m.invCursor = target
}

// handleMouse feeds the pointer into the free-aim target while playing.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	state := m.sim.CurrentState()
	if state != sim.StatePlaying && state != sim.StatePreLevelUp {
		return m, nil
	}
	camera := m.sim.Frame().Player.Pos
	m.sim.SetAimPoint(screenToWorld(m.screen, camera, msg.X, msg.Y))
	return m, nil
}

// handleTick advances the simulation by real elapsed time and drains
// its event queue.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		if elapsed := now.Sub(m.lastTick).Seconds(); elapsed > 0 {
			dt = elapsed
		}
	}
	m.lastTick = now

	m.applyInput()
	m.sim.Advance(dt)
	m.drainEvents()

	if m.bannerTimer > 0 {
		m.bannerTimer -= dt
	}

	return m, tickCmd(m.config.TickRate)
}

// applyInput translates the accumulated input frame into sim commands.
func (m *Model) applyInput() {
	f := &m.inputFrame

	var dir core.Vec2
	if f.Has(core.ActionUp) {
		dir.Y -= 1
	}
	if f.Has(core.ActionDown) {
		dir.Y += 1
	}
	if f.Has(core.ActionLeft) {
		dir.X -= 1
	}
	if f.Has(core.ActionRight) {
		dir.X += 1
	}
	if !dir.IsZero() {
		m.moveDir = dir
	}
	if f.Has(core.ActionHalt) {
		m.moveDir = core.Vec2{}
	}
	m.sim.SetMoveIntent(m.moveDir)

	if f.Has(core.ActionAimToggle) {
		if m.stats.AimMode == sim.AimAuto {
			m.sim.SetAimMode(sim.AimManual)
		} else {
			m.sim.SetAimMode(sim.AimAuto)
		}
	}

	f.Clear()
}

// drainEvents consumes simulation events: HUD stats, banners, and the
// one-time run save.
func (m *Model) drainEvents() {
	for _, ev := range m.sim.DrainEvents() {
		switch ev.Kind {
		case sim.EventStatsUpdated:
			m.stats = ev.Stats
		case sim.EventWaveStarted:
			m.setBanner(fmt.Sprintf("WAVE %d", ev.Wave))
		case sim.EventWaveCleared:
			m.setBanner(fmt.Sprintf("WAVE %d CLEARED", ev.Wave))
		case sim.EventBossIncoming:
			m.setBanner(ev.Name + " APPROACHES")
		case sim.EventBossDefeated:
			m.setBanner("BOSS DOWN")
		case sim.EventAimModeChanged:
			m.stats.AimMode = ev.AimMode
		case sim.EventRunEnded:
			m.stats = ev.Stats
			m.saveRun(ev)
		}
	}
}

func (m *Model) setBanner(text string) {
	m.banner = text
	m.bannerTimer = bannerSeconds
}

// saveRun records the finished run once per run.
func (m *Model) saveRun(ev sim.Event) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.store == nil {
		return
	}
	outcome := storage.OutcomeDefeat
	if ev.State == sim.StateVictory {
		outcome = storage.OutcomeVictory
	}
	//nolint:errcheck // Best-effort save, the run summary shows regardless
	m.store.SaveRun(storage.RunEntry{
		Wave:         ev.Stats.Wave,
		Level:        ev.Stats.Level,
		Kills:        ev.Stats.Kills,
		DurationSecs: int(ev.Stats.TimeSeconds),
		Outcome:      outcome,
	})
	m.loadBestWave()
}

// startRun begins a fresh run.
func (m *Model) startRun() {
	m.sim.Start()
	m.stats = m.sim.Stats()
	m.moveDir = core.Vec2{}
	m.banner = ""
	m.bannerTimer = 0
	m.runSaved = false
	m.invCursor = 0
	m.invGrabbed = -1
}

// backToMenu rebuilds the simulation in the menu state with a fresh seed.
func (m *Model) backToMenu() {
	m.config.Seed = time.Now().UnixNano()
	m.sim = sim.New(m.simCfg, m.config.Seed, m.catalog)
	m.stats = sim.StatsSnapshot{}
	m.moveDir = core.Vec2{}
	m.banner = ""
	m.bannerTimer = 0
	m.runSaved = false
	m.loadBestWave()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	m.screen.Clear()

	state := m.sim.CurrentState()
	if state == sim.StateMenu {
		drawTitle(m.screen, m.bestWave)
		return RenderScreen(m.screen)
	}

	fr := m.sim.Frame()
	drawWorld(m.screen, &fr)
	drawHUD(m.screen, m.stats, &fr)

	if m.bannerTimer > 0 {
		m.screen.DrawTextCentered(2, m.banner)
	}

	switch state {
	case sim.StatePreLevelUp:
		m.screen.DrawTextCentered(3, "LEVEL UP!")
	case sim.StateLevelUp:
		drawLevelUpOverlay(m.screen, fr.Offer)
	case sim.StatePaused:
		drawPauseOverlay(m.screen, m.sim.Inventory(), m.invCursor, m.invGrabbed)
	case sim.StateGameOver:
		drawRunEndOverlay(m.screen, m.stats, false, m.bestWave)
	case sim.StateVictory:
		drawRunEndOverlay(m.screen, m.stats, true, m.bestWave)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for local play.
func Run(simCfg *config.SimConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(simCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // free-aim follows the pointer
	)

	_, err := p.Run()
	return err
}
