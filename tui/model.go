package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joao-arthur/libre-chess-sub000/board"
	"github.com/joao-arthur/libre-chess-sub000/game"
	"github.com/joao-arthur/libre-chess-sub000/pgn"
	"github.com/joao-arthur/libre-chess-sub000/position"
)

const maxLogLines = 200

type inputMode int

const (
	modeNormal inputMode = iota
	modeInput
)

type modelConfig struct {
	orientation board.Side
	history     board.History
}

type ModelOption func(*modelConfig)

// WithOrientation draws the board from the given side, White at the bottom by default.
func WithOrientation(s board.Side) ModelOption {
	return func(cfg *modelConfig) {
		cfg.orientation = s
	}
}

func WithHistory(h board.History) ModelOption {
	return func(cfg *modelConfig) {
		cfg.history = h
	}
}

// Model is an interactive board. Arrow keys move the cursor, enter or space clicks the
// square under it, and "i" opens a prompt for typed moves and commands.
type Model struct {
	mode        board.Mode
	g           *game.Game
	sel         *game.Selection
	cursor      position.Pos
	orientation board.Side
	promotion   board.PieceType

	m     inputMode
	input textinput.Model
	log   *logBuffer

	width  int
	height int
}

func NewModel(gameMode board.Mode, opts ...ModelOption) (Model, error) {
	cfg := &modelConfig{
		orientation: board.SideWhite,
	}
	for _, f := range opts {
		f(cfg)
	}

	ti := textinput.New()
	ti.Placeholder = "e2e4, fen, pgn, new..."
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40

	m := Model{
		mode:        gameMode,
		sel:         game.NewSelection(),
		cursor:      position.Pos{Row: gameMode.Bounds.MinRow, Col: gameMode.Bounds.MinCol},
		orientation: cfg.orientation,
		promotion:   board.PieceQueen,
		m:           modeNormal,
		input:       ti,
		log:         &logBuffer{},
	}
	g, err := game.NewGame(gameMode, game.WithHistory(cfg.history), game.WithLogger(m.log.gameLogger))
	if err != nil {
		return Model{}, err
	}
	m.g = g
	m.appendLog("ready (arrows move, enter selects, i for input, p cycles promotion, q quits)")
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			return m.updateNormal(msg)
		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if line != "" {
					m.execCommand(line)
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dRow, dCol := 0, 0
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "i":
		m.m = modeInput
		m.input.SetValue("")
		m.input.Focus()
		return m, nil
	case "p":
		m.cyclePromotion()
		return m, nil
	case "esc":
		m.sel.Clear()
		return m, nil
	case "enter", " ":
		m.click()
		return m, nil
	case "up", "k":
		dRow = 1
	case "down", "j":
		dRow = -1
	case "left", "h":
		dCol = -1
	case "right", "l":
		dCol = 1
	default:
		return m, nil
	}
	if m.orientation == board.SideBlack {
		dRow, dCol = -dRow, -dCol
	}
	if next, ok := m.cursor.Rel(dRow, dCol); ok && m.g.Bounds.Contains(next) {
		m.cursor = next
	}
	return m, nil
}

func (m *Model) click() {
	mv, moved, err := m.sel.Toggle(m.g, m.cursor, game.WithPromotion(m.promotion))
	if err != nil {
		m.appendLog(fmt.Sprintf("move failed: %v", err))
		return
	}
	if moved {
		m.afterMove(mv)
	}
}

func (m *Model) afterMove(mv board.GameMove) {
	m.appendLog(fmt.Sprintf("%d. %s %s", (len(m.g.History)+1)/2, mv.Mov.Piece.Side, mv))
	if status := m.g.Status(); status != game.StatusRunning {
		m.appendLog(status.String())
	}
}

func (m *Model) cyclePromotion() {
	for i, p := range board.PawnPromoteCandidates {
		if p == m.promotion {
			m.promotion = board.PawnPromoteCandidates[(i+1)%len(board.PawnPromoteCandidates)]
			break
		}
	}
	m.appendLog("promotion: " + m.promotion.Name())
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)
	switch strings.ToLower(line) {
	case "fen":
		m.appendLog(m.g.FEN())
	case "pgn":
		out, err := pgn.Export(m.mode, m.g.History)
		if err != nil {
			m.appendLog(fmt.Sprintf("pgn failed: %v", err))
			return
		}
		for _, ln := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			m.appendLog("  " + ln)
		}
	case "new":
		g, err := game.NewGame(m.mode, game.WithLogger(m.log.gameLogger))
		if err != nil {
			m.appendLog(fmt.Sprintf("new game failed: %v", err))
			return
		}
		m.g = g
		m.sel.Clear()
		m.appendLog("new game")
	default:
		mv, err := m.g.MoveNotation(line)
		switch {
		case errors.Is(err, position.ErrInvalidNotation):
			m.appendLog(fmt.Sprintf("unknown command: %s", line))
		case err != nil:
			// rejections are reported by the game logger
		default:
			m.sel.Clear()
			m.afterMove(mv)
		}
	}
}

func (m *Model) appendLog(s string) {
	m.log.append(s)
}

// logBuffer is shared by every copy of a Model so the game logger can write to it.
type logBuffer struct {
	lines []string
}

func (l *logBuffer) append(s string) {
	l.lines = append(l.lines, s)
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
}

func (l *logBuffer) gameLogger(a ...any) {
	l.append(strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}
