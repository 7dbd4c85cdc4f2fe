package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/splatforge/gsplat"
	"github.com/splatforge/gsplat/convert"
	"github.com/splatforge/gsplat/ply"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	swatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseModel struct {
	err      error
	log      *zap.Logger
	filename string
	metadata *gsplat.Metadata

	positions []convert.Vec3
	rotations []convert.Quat
	scales    []convert.Vec3
	colors    []convert.RGBA

	current int
	jump    textinput.Model
	state   browseState
}

type browseState int

const (
	stateLoading browseState = iota
	stateBrowse
	stateJump
)

func newBrowseModel(filename string, log *zap.Logger) *browseModel {
	ti := textinput.New()
	ti.Prompt = "go to record: "
	ti.Width = 12
	return &browseModel{
		filename: filename,
		log:      log,
		jump:     ti,
		state:    stateLoading,
	}
}

type assetLoadedMsg struct {
	err       error
	metadata  *gsplat.Metadata
	positions []convert.Vec3
	rotations []convert.Quat
	scales    []convert.Vec3
	colors    []convert.RGBA
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadAsset
}

func (m *browseModel) loadAsset() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return assetLoadedMsg{err: err}
	}

	p := ply.New(ply.WithLogger(m.log))
	md, err := p.ParseMetadata(data)
	if err != nil {
		return assetLoadedMsg{err: err}
	}
	if !convert.ValidateMetadata(md) {
		return assetLoadedMsg{err: fmt.Errorf("asset is missing required properties")}
	}

	msg := assetLoadedMsg{
		metadata:  md,
		positions: make([]convert.Vec3, md.NumSplats),
		rotations: make([]convert.Quat, md.NumSplats),
		scales:    make([]convert.Vec3, md.NumSplats),
		colors:    make([]convert.RGBA, md.NumSplats),
	}
	err = p.ParseData(func(i int, get gsplat.GetPropertyFn) {
		convert.Splat(i, get, msg.positions, msg.rotations, msg.scales, msg.colors)
	})
	if err != nil {
		return assetLoadedMsg{err: err}
	}
	return msg
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateJump || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.current > 0 {
				m.current--
			}

		case "down", "j":
			if m.state == stateBrowse && m.current < len(m.positions)-1 {
				m.current++
			}

		case "pgup":
			if m.state == stateBrowse {
				m.current -= 10
				if m.current < 0 {
					m.current = 0
				}
			}

		case "pgdown":
			if m.state == stateBrowse {
				m.current += 10
				if max := len(m.positions) - 1; m.current > max {
					m.current = max
				}
			}

		case "g":
			if m.state == stateBrowse {
				m.jump.SetValue("")
				m.jump.Focus()
				m.state = stateJump
				return m, nil
			}

		case "enter":
			if m.state == stateJump {
				if i, err := strconv.Atoi(m.jump.Value()); err == nil && i >= 0 && i < len(m.positions) {
					m.current = i
				}
				m.jump.Blur()
				m.state = stateBrowse
			}

		case "esc":
			if m.state == stateJump {
				m.jump.Blur()
				m.state = stateBrowse
			}
		}

	case assetLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.metadata = msg.metadata
		m.positions = msg.positions
		m.rotations = msg.rotations
		m.scales = msg.scales
		m.colors = msg.colors
		m.state = stateBrowse
	}

	if m.state == stateJump {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.state == stateLoading {
		return "Loading asset..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Splat Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Record %s of %d\n\n",
		indexStyle.Render(strconv.Itoa(m.current)), len(m.positions))

	pos := m.positions[m.current]
	rot := m.rotations[m.current]
	scale := m.scales[m.current]
	color := m.colors[m.current]

	fmt.Fprintf(&b, "%s %.4f %.4f %.4f\n",
		labelStyle.Render("position"), pos[0], pos[1], pos[2])
	fmt.Fprintf(&b, "%s %.4f %.4f %.4f %.4f\n",
		labelStyle.Render("rotation"), rot[0], rot[1], rot[2], rot[3])
	fmt.Fprintf(&b, "%s %.4f %.4f %.4f\n",
		labelStyle.Render("scale   "), scale[0], scale[1], scale[2])
	fmt.Fprintf(&b, "%s %d %d %d %d %s\n",
		labelStyle.Render("rgba    "), color[0], color[1], color[2], color[3],
		swatch(color))

	b.WriteString("\n")
	switch m.state {
	case stateJump:
		b.WriteString(m.jump.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
	default:
		b.WriteString(helpStyle.Render("↑/↓ step • pgup/pgdn ±10 • g go to • q quit"))
	}

	return b.String()
}

// swatch renders a block of the record's color for a quick visual check.
func swatch(c convert.RGBA) string {
	hex := fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2])
	return swatchStyle.Background(lipgloss.Color(hex)).Render("  ")
}

func runInteractive(filename string, log *zap.Logger) error {
	p := tea.NewProgram(newBrowseModel(filename, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
