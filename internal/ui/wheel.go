package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
)

// WheelConfig groups the visual options shared by every wheel of a picker.
type WheelConfig struct {
	// Height is the visible height of a wheel.
	Height    float32
	RowHeight float32
	// TextSize is the font size; TextStyle.Bold selects the weight.
	TextSize  float32
	TextStyle fyne.TextStyle
	// ShowDivider draws a separator between adjacent wheels.
	ShowDivider bool
}

// DefaultWheelConfig returns the geometry used by the demo application.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		Height:      config.WheelHeight,
		RowHeight:   config.WheelRowHeight,
		TextSize:    config.WheelTextSize,
		ShowDivider: true,
	}
}

// Wheel is a scrollable single-selection column of labels.
//
// The list keeps its scroll position across label updates. When the key
// passed to SetItems changes, the list is rebuilt, which resets scrolling.
type Wheel struct {
	widget.BaseWidget

	// OnChanged is called when the user selects a row. It is not called for
	// programmatic changes.
	OnChanged func(index int)

	cfg      WheelConfig
	labels   []string
	selected int
	key      int
	width    float32
	updating bool

	list   *widget.List
	holder *fyne.Container
	sizer  *canvas.Rectangle
}

// NewWheel returns an empty wheel.
func NewWheel(cfg WheelConfig) *Wheel {
	w := &Wheel{
		cfg:      cfg,
		selected: -1,
		key:      -1,
		width:    config.WheelDefaultWidth,
	}
	w.sizer = canvas.NewRectangle(color.Transparent)
	w.sizer.SetMinSize(fyne.NewSize(w.width, cfg.Height))
	w.list = w.newList()
	w.holder = container.NewStack(w.list)
	w.ExtendBaseWidget(w)
	return w
}

// SetMinWidth sets the wheel's minimum width.
func (w *Wheel) SetMinWidth(width float32) {
	w.width = width
	w.sizer.SetMinSize(fyne.NewSize(width, w.cfg.Height))
	w.Refresh()
}

// SetItems replaces the labels and the selection. A key different from the
// previous one remounts the list.
func (w *Wheel) SetItems(labels []string, selected, key int) {
	w.labels = labels
	if key != w.key {
		w.key = key
		w.list = w.newList()
		w.holder.Objects = []fyne.CanvasObject{w.list}
		w.holder.Refresh()
	} else {
		w.list.Refresh()
	}
	w.SetSelected(selected)
}

// SetSelected moves the selection to index i without calling OnChanged.
// An index outside the labels clears the selection.
func (w *Wheel) SetSelected(i int) {
	w.updating = true
	defer func() { w.updating = false }()

	if i < 0 || i >= len(w.labels) {
		w.selected = -1
		w.list.UnselectAll()
		return
	}
	w.selected = i
	w.list.Select(i)
}

// Selected returns the selected index, or -1.
func (w *Wheel) Selected() int {
	return w.selected
}

// Labels returns the displayed labels.
func (w *Wheel) Labels() []string {
	return w.labels
}

// Key returns the key of the mounted list.
func (w *Wheel) Key() int {
	return w.key
}

// List exposes the mounted list.
func (w *Wheel) List() *widget.List {
	return w.list
}

func (w *Wheel) newList() *widget.List {
	l := widget.NewList(
		func() int { return len(w.labels) },
		func() fyne.CanvasObject {
			text := canvas.NewText("", theme.Color(theme.ColorNameForeground))
			text.Alignment = fyne.TextAlignCenter
			text.TextSize = w.cfg.TextSize
			text.TextStyle = w.cfg.TextStyle

			row := canvas.NewRectangle(color.Transparent)
			row.SetMinSize(fyne.NewSize(0, w.cfg.RowHeight))
			return container.NewStack(row, text)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			text := o.(*fyne.Container).Objects[1].(*canvas.Text)
			if id < len(w.labels) {
				text.Text = w.labels[id]
			}
			text.Refresh()
		},
	)
	l.OnSelected = func(id widget.ListItemID) {
		if w.updating {
			return
		}
		w.selected = id
		if w.OnChanged != nil {
			w.OnChanged(id)
		}
	}
	return l
}

// CreateRenderer implements fyne.Widget.
func (w *Wheel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(w.sizer, w.holder))
}
