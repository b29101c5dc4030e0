package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/binding"
	"github.com/tartampluch/go-datewheel/internal/birthday"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/locale"
	"github.com/tartampluch/go-datewheel/internal/picker"
)

// PickerView renders a picker view-model as a row of wheels, left to right
// in the order the model reports.
type PickerView struct {
	widget.BaseWidget

	// OnChanged is called after a wheel selection has been applied.
	OnChanged func()

	model  picker.Model
	labels locale.Labels
	cfg    WheelConfig
	wheels map[picker.Kind]*Wheel
	row    *fyne.Container
	cancel func()
}

// NewPickerView wraps model. Labels default to English when nil.
func NewPickerView(model picker.Model, cfg WheelConfig, labels locale.Labels) *PickerView {
	if labels == nil {
		labels = locale.DefaultLabels{}
	}
	v := &PickerView{
		model:  model,
		labels: labels,
		cfg:    cfg,
		wheels: make(map[picker.Kind]*Wheel),
		row:    container.NewHBox(),
	}
	v.ExtendBaseWidget(v)
	v.sync()
	return v
}

// NewBirthdayWheelPicker shows year, month and day wheels editing b. The
// year wheel offers an unknown-year entry and the countYears years before
// the current one.
func NewBirthdayWheelPicker(b *binding.Value[birthday.Date], countYears int, cfg WheelConfig,
	labels locale.Labels, resolver *locale.Resolver) *PickerView {
	model := picker.NewBirthday(b, picker.Options{CountYears: countYears, Resolver: resolver})
	return follow(NewPickerView(model, cfg, labels), b)
}

// NewFutureDateWheelPicker shows year, month and day wheels editing the date
// part of b. The year wheel offers the current year and the countYears
// years after it.
func NewFutureDateWheelPicker(b *binding.Value[time.Time], countYears int, cfg WheelConfig,
	labels locale.Labels, resolver *locale.Resolver) *PickerView {
	model := picker.NewFutureDate(b, picker.Options{CountYears: countYears, Resolver: resolver})
	return follow(NewPickerView(model, cfg, labels), b)
}

// NewTimerWheelPicker shows hour and minute wheels, plus an AM/PM wheel in
// the 12-hour format, editing the clock part of b.
func NewTimerWheelPicker(b *binding.Value[time.Time], format picker.Format, cfg WheelConfig,
	labels locale.Labels) *PickerView {
	model := picker.NewTimer(b, format, picker.Options{})
	return follow(NewPickerView(model, cfg, labels), b)
}

// follow redraws v whenever b changes.
func follow[T any](v *PickerView, b *binding.Value[T]) *PickerView {
	v.cancel = b.Subscribe(func(T) { v.sync() })
	return v
}

// Model returns the view-model.
func (v *PickerView) Model() picker.Model {
	return v.model
}

// Wheel returns the wheel showing kind, or nil.
func (v *PickerView) Wheel(kind picker.Kind) *Wheel {
	return v.wheels[kind]
}

// Wheels returns the wheels in display order.
func (v *PickerView) Wheels() []*Wheel {
	var out []*Wheel
	for _, o := range v.row.Objects {
		if w, ok := o.(*Wheel); ok {
			out = append(out, w)
		}
	}
	return out
}

// SetLabels switches the labels and lays the wheels out again, picking up
// a changed locale order.
func (v *PickerView) SetLabels(labels locale.Labels) {
	if labels == nil {
		labels = locale.DefaultLabels{}
	}
	v.labels = labels
	v.sync()
}

// Close detaches the view and its model from their binding.
func (v *PickerView) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.model.Close()
}

// Refresh re-reads the model before redrawing.
func (v *PickerView) Refresh() {
	v.sync()
	v.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget. Showing the view counts as the
// picker appearing.
func (v *PickerView) CreateRenderer() fyne.WidgetRenderer {
	v.model.Appear()
	v.sync()
	return widget.NewSimpleRenderer(container.NewCenter(v.row))
}

func (v *PickerView) sync() {
	cols := v.model.Columns(v.labels)

	objs := make([]fyne.CanvasObject, 0, 2*len(cols))
	for i, col := range cols {
		w := v.wheel(col.Kind)
		sel := col.Select
		w.OnChanged = func(index int) {
			sel(index)
			v.sync()
			if v.OnChanged != nil {
				v.OnChanged()
			}
		}
		if w.Key() != col.Key {
			slog.Debug(config.MsgWheelRekeyed,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyWheel, col.Kind.String(),
				config.LogKeyCount, col.Key,
			)
		}
		w.SetItems(col.Labels, col.Selected, col.Key)

		if i > 0 && v.cfg.ShowDivider {
			objs = append(objs, widget.NewSeparator())
		}
		objs = append(objs, w)
	}

	v.row.Objects = objs
	v.row.Refresh()
}

func (v *PickerView) wheel(kind picker.Kind) *Wheel {
	if w, ok := v.wheels[kind]; ok {
		return w
	}
	w := NewWheel(v.cfg)
	switch kind {
	case picker.KindYear:
		w.SetMinWidth(config.WheelYearWidth)
	case picker.KindDay, picker.KindHour, picker.KindMinute, picker.KindAmPm:
		w.SetMinWidth(config.WheelDayWidth)
	}
	v.wheels[kind] = w
	return w
}
