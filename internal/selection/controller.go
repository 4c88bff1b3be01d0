// Package selection implements the size selection state machine behind the
// product detail screen.
//
// A Controller starts with no size selected. SelectSize moves it to the
// selected state (replacing any previous choice); there is no deselect. The
// purchase action is enabled exactly when a size is selected, and its label
// is derived from the selection and the base price.
package selection

import (
	"io"
	"log/slog"

	"github.com/marcus/pdp/internal/catalog"
	"github.com/marcus/pdp/internal/models"
	"github.com/marcus/pdp/internal/pricing"
)

// ActionState is the derived state of the purchase action
type ActionState struct {
	Enabled bool
	Label   string
}

// SizeView is a catalog entry as it should be rendered
type SizeView struct {
	Size     models.Size
	Selected bool
}

// RenderUpdate is sent to notifiers after every selection change
type RenderUpdate struct {
	Sizes  []SizeView
	Action ActionState
}

// Selected returns the highlighted size, if any
func (u RenderUpdate) Selected() (models.Size, bool) {
	for _, v := range u.Sizes {
		if v.Selected {
			return v.Size, true
		}
	}
	return "", false
}

// Notifier receives render updates from a Controller
type Notifier interface {
	Render(RenderUpdate)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(RenderUpdate)

// Render calls f(u)
func (f NotifierFunc) Render(u RenderUpdate) { f(u) }

// Controller owns the size catalog and the current selection.
// It is not safe for concurrent use; drive it from a single event loop.
type Controller struct {
	product   string
	sizes     []models.Size
	price     models.Price
	basePrice string
	labels    catalog.Labels
	logger    *slog.Logger
	notifiers []Notifier

	selected    models.Size
	hasSelected bool
}

// Option configures a Controller
type Option func(*Controller)

// WithLabels sets the localized labels used for the purchase action
func WithLabels(l catalog.Labels) Option {
	return func(c *Controller) {
		c.labels = l
	}
}

// WithLogger sets the logger for selection events
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNotifier registers a notifier at construction time
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.Subscribe(n)
	}
}

// New creates a controller for the product's sizes and price, with no size selected
func New(p models.Product, opts ...Option) *Controller {
	c := &Controller{
		product:   p.Title,
		sizes:     append([]models.Size(nil), p.Sizes...),
		price:     p.Price,
		basePrice: pricing.Format(p.Price),
		labels:    catalog.LabelsFor("en"),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers n for render updates. Nil notifiers are ignored.
func (c *Controller) Subscribe(n Notifier) {
	if n == nil {
		return
	}
	c.notifiers = append(c.notifiers, n)
}

// Sizes returns the catalog in display order
func (c *Controller) Sizes() []models.Size {
	return append([]models.Size(nil), c.sizes...)
}

// SelectSize makes size the current selection and notifies subscribers.
// Sizes outside the catalog are rejected and leave the state unchanged.
func (c *Controller) SelectSize(size models.Size) error {
	if !models.ContainsSize(c.sizes, size) {
		c.logger.Debug("rejected size", "size", size)
		return &UnknownSizeError{Size: size, Catalog: c.Sizes()}
	}

	c.selected = size
	c.hasSelected = true
	c.logger.Debug("size selected", "size", size)

	update := c.Snapshot()
	for _, n := range c.notifiers {
		n.Render(update)
	}
	return nil
}

// CurrentSelection returns the selected size and whether one is selected
func (c *Controller) CurrentSelection() (models.Size, bool) {
	return c.selected, c.hasSelected
}

// PurchaseActionState derives the purchase action from the selection
func (c *Controller) PurchaseActionState() ActionState {
	if !c.hasSelected {
		return ActionState{Enabled: false, Label: c.labels.SelectSize}
	}
	return ActionState{
		Enabled: true,
		Label:   c.labels.AddToCart + c.labels.Separator + c.basePrice,
	}
}

// BasePrice returns the formatted base price, e.g. "14 999 ₽"
func (c *Controller) BasePrice() string {
	return c.basePrice
}

// Snapshot returns the render state for the current selection
func (c *Controller) Snapshot() RenderUpdate {
	views := make([]SizeView, len(c.sizes))
	for i, s := range c.sizes {
		views[i] = SizeView{Size: s, Selected: c.hasSelected && s == c.selected}
	}
	return RenderUpdate{Sizes: views, Action: c.PurchaseActionState()}
}

// ConfirmPurchase returns the purchase intent for the selected size, or
// ErrNoSizeSelected when nothing is selected
func (c *Controller) ConfirmPurchase() (models.PurchaseIntent, error) {
	if !c.hasSelected {
		c.logger.Debug("purchase without size")
		return models.PurchaseIntent{}, ErrNoSizeSelected
	}

	intent := models.PurchaseIntent{
		Product: c.product,
		Size:    c.selected,
		Price:   c.price.Amount,
	}
	c.logger.Info("added to cart", "product", intent.Product, "size", intent.Size, "price", intent.Price)
	return intent, nil
}
