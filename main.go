package main

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func main() {
	config, err := loadConfig(defaultConfigPath())
	if err != nil {
		log.Fatal(err)
	}
	logger, closer, err := newLogger(config)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	p := tea.NewProgram(
		initialModel(config, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		log.Fatal(err)
	}
}

func initialModel(config *Config, logger zerolog.Logger) model {
	session := NewSession(SessionOptions{
		Width:       config.CellWidth,
		Height:      config.CellHeight,
		Brush:       Brush{Color: config.Palette[0], Size: config.BrushSize},
		DoubleClick: config.DoubleClick,
		Logger:      logger,
	})
	return model{
		session: session,
		config:  config,
		log:     logger,
		cache:   &boardCache{},
		now:     time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.Resize(m.surfaceSize())
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		if m.help || m.confirming {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			return m.handleHelpKey(msg.String())
		}
		if m.confirming {
			return m.handleConfirmKey(msg.String())
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

// handleMouse routes on the event action. Drag samples arrive as motion with
// the left button still set, so only a press may start a gesture.
func (m *model) handleMouse(msg tea.MouseMsg) {
	row := msg.Y - toolbarRows
	p := m.boardPoint(msg.X, row)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.clearMessages()
		m.pointerHeld = false
		if row < 0 {
			m.session.PointerUp(p)
			m.clickToolbar(msg.X)
			return
		}
		m.session.PointerDown(p, m.now())
	case tea.MouseActionMotion:
		m.session.PointerMove(p)
	case tea.MouseActionRelease:
		m.session.PointerUp(p)
	}
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	m.clearMessages()
	switch key {
	case "q":
		if m.config.Confirmations && !m.session.Empty() {
			m.requestConfirm(ConfirmQuit)
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "1", "r":
		m.session.SetMode(ModePlaceRed)
	case "2", "b":
		m.session.SetMode(ModePlaceBlue)
	case "3", "d":
		m.session.SetMode(ModeDraw)
	case "4", "e":
		m.session.SetMode(ModeErase)
	case "u":
		if !m.session.Undo() {
			m.errorMessage = "Nothing to undo"
		}
	case "C":
		m.requestConfirm(ConfirmClear)
	case "c":
		m.cycleColor()
	case "[":
		m.session.SetBrushSize(m.session.Brush().Size - 1)
	case "]":
		m.session.SetBrushSize(m.session.Brush().Size + 1)
	case "p":
		m.exportBoard()
	case "x":
		if !m.session.DoubleActivate(m.boardPoint(m.cursorX, m.cursorY)) {
			m.errorMessage = "No player under the cursor"
		}
	case " ", "space":
		m.togglePointer()
	case "esc":
		if m.pointerHeld {
			m.togglePointer()
		}
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}

// requestConfirm asks before a destructive action. Clearing always asks;
// quitting asks only when confirmations are on in the config.
func (m *model) requestConfirm(action ConfirmAction) {
	m.pointerHeld = false
	m.session.PointerUp(Point{})
	m.confirming = true
	m.confirmAction = action
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	m.confirming = false
	switch key {
	case "y", "Y", "enter":
		if m.confirmAction == ConfirmQuit {
			return m, tea.Quit
		}
		m.clearBoard()
	default:
		m.successMessage = "Cancelled"
	}
	return m, nil
}

func (m *model) clearBoard() {
	m.session.Clear()
	m.successMessage = "Board cleared"
}

func (m *model) cycleColor() {
	m.paletteIndex = (m.paletteIndex + 1) % len(m.config.Palette)
	m.session.SetColor(m.config.Palette[m.paletteIndex])
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}
