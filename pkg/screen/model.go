// Package screen implements the terminal product detail screen.
//
// The Model renders a declarative description of the selection
// controller's latest render update and translates key and mouse events
// into controller calls. Size buttons are associated with their size via
// hit region IDs, never via displayed text.
package screen

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/pdp/internal/catalog"
	"github.com/marcus/pdp/internal/models"
	"github.com/marcus/pdp/internal/selection"
	"github.com/marcus/pdp/pkg/screen/modal"
	"github.com/marcus/pdp/pkg/screen/mouse"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxWidth      = 72
)

// Hit region IDs
const (
	regionCart       = "cart"
	regionInfo       = "info"
	regionSizePrefix = "size:"
)

// Options configures a Model
type Options struct {
	Lang         string
	MouseEnabled bool
	Logger       *slog.Logger

	// OnPurchase receives every confirmed purchase intent
	OnPurchase func(models.PurchaseIntent)
}

// frame holds the most recent render update. It lives behind a pointer so
// the controller's notifier and the value-typed Model share it.
type frame struct {
	update selection.RenderUpdate
}

// Model is the Bubble Tea model of the product detail screen
type Model struct {
	Product models.Product
	Labels  catalog.Labels

	Width  int
	Height int

	MouseEnabled bool

	ctrl   *selection.Controller
	frame  *frame
	keys   keyMap
	help   help.Model
	mouse  *mouse.Handler
	desc   *descriptionRenderer
	logger *slog.Logger

	onPurchase func(models.PurchaseIntent)

	cursor    int
	infoModal *modal.Modal

	status        string
	statusIsError bool
}

// New creates the screen for the catalog product in opts.Lang
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	product := catalog.Product(opts.Lang)
	labels := catalog.LabelsFor(opts.Lang)

	f := &frame{}
	ctrl := selection.New(product,
		selection.WithLabels(labels),
		selection.WithLogger(logger),
		selection.WithNotifier(selection.NotifierFunc(func(u selection.RenderUpdate) {
			f.update = u
			if size, ok := u.Selected(); ok {
				logger.Debug("render", "selected", size, "label", u.Action.Label)
			}
		})),
	)
	f.update = ctrl.Snapshot()

	return Model{
		Product:      product,
		Labels:       labels,
		MouseEnabled: opts.MouseEnabled,
		ctrl:         ctrl,
		frame:        f,
		keys:         defaultKeyMap(labels),
		help:         help.New(),
		mouse:        mouse.NewHandler(),
		desc:         newDescriptionRenderer(),
		logger:       logger,
		onPurchase:   opts.OnPurchase,
	}
}

// Controller exposes the selection controller
func (m Model) Controller() *selection.Controller {
	return m.ctrl
}

// Cursor returns the index of the size under the keyboard cursor
func (m Model) Cursor() int {
	return m.cursor
}

// InfoOpen reports whether the additional info modal is shown
func (m Model) InfoOpen() bool {
	return m.infoModal != nil
}

// Status returns the status line text and whether it is an error
func (m Model) Status() (string, bool) {
	return m.status, m.statusIsError
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.infoModal != nil {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.MouseEnabled {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sizes := m.frame.update.Sizes

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(sizes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(sizes) {
			m.selectSize(sizes[m.cursor].Size)
		}

	case key.Matches(msg, m.keys.Direct):
		idx := int(msg.Runes[0] - '1')
		if idx < len(sizes) {
			m.cursor = idx
			m.selectSize(sizes[idx].Size)
		}

	case key.Matches(msg, m.keys.Confirm):
		m.confirmPurchase()

	case key.Matches(msg, m.keys.Info):
		m.openInfo()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if action, cmd := m.infoModal.HandleKey(msg); action != "" {
		m.closeInfo(action)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)

	if m.infoModal != nil {
		if id := m.infoModal.HandleMouse(action); id != "" {
			m.closeInfo(id)
		}
		return m, nil
	}

	if action.Type != mouse.ActionClick || action.Region == nil {
		return m, nil
	}

	switch action.Region.ID {
	case regionCart:
		// A disabled button ignores clicks
		if m.frame.update.Action.Enabled {
			m.confirmPurchase()
		}
	case regionInfo:
		m.openInfo()
	default:
		if size, ok := action.Region.Data.(models.Size); ok {
			for i, v := range m.frame.update.Sizes {
				if v.Size == size {
					m.cursor = i
				}
			}
			m.selectSize(size)
		}
	}
	return m, nil
}

func (m *Model) selectSize(size models.Size) {
	if err := m.ctrl.SelectSize(size); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("", false)
}

func (m *Model) confirmPurchase() {
	intent, err := m.ctrl.ConfirmPurchase()
	if err != nil {
		if errors.Is(err, selection.ErrNoSizeSelected) {
			m.logger.Warn("purchase without size")
			m.setStatus(m.Labels.NoSize, true)
			return
		}
		m.setStatus(err.Error(), true)
		return
	}

	m.setStatus(fmt.Sprintf("%s: %s - %s %s", m.Labels.Added, intent.Product, m.Labels.SizeHeading, intent.Size), false)
	if m.onPurchase != nil {
		m.onPurchase(intent)
	}
}

func (m *Model) openInfo() {
	m.infoModal = m.createInfoModal()
}

func (m *Model) closeInfo(action string) {
	m.logger.Debug("info closed", "action", action)
	m.infoModal = nil
}

func (m *Model) setStatus(s string, isError bool) {
	m.status = s
	m.statusIsError = isError
}
