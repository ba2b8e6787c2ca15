package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/automoto/doomerang-fps/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	lagScaleStep = 0.5
	bobScaleStep = 0.25
	maxLagScale  = 12
	maxBobScale  = 4
)

// TuningUI is the in-game panel for adjusting view-model motion.
type TuningUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSwapOwners func()
	OnToggleJoin func()

	lagButton     *widget.Button
	bobButton     *widget.Button
	lagScaleLabel *widget.Label
	bobScaleLabel *widget.Label
	statusLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewTuningUI creates the tuning panel
func NewTuningUI(onSwapOwners, onToggleJoin func()) *TuningUI {
	tui := &TuningUI{
		OnSwapOwners: onSwapOwners,
		OnToggleJoin: onToggleJoin,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (tui *TuningUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("VIEW MODEL", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	tui.lagButton = tui.newButton("", func() {
		cfg.ViewModel.Lag.Enabled = !cfg.ViewModel.Lag.Enabled
	})
	tui.lagScaleLabel = tui.newValueLabel()
	panel.AddChild(tui.lagButton)
	panel.AddChild(tui.stepperRow(tui.lagScaleLabel,
		func() { tui.stepLagScale(-lagScaleStep) },
		func() { tui.stepLagScale(lagScaleStep) },
	))

	tui.bobButton = tui.newButton("", func() {
		cfg.ViewModel.Bob.Enabled = !cfg.ViewModel.Bob.Enabled
	})
	tui.bobScaleLabel = tui.newValueLabel()
	panel.AddChild(tui.bobButton)
	panel.AddChild(tui.stepperRow(tui.bobScaleLabel,
		func() { tui.stepBobScale(-bobScaleStep) },
		func() { tui.stepBobScale(bobScaleStep) },
	))

	panel.AddChild(tui.newButton("SWAP OWNERS", func() {
		if tui.OnSwapOwners != nil {
			tui.OnSwapOwners()
		}
	}))
	panel.AddChild(tui.newButton("JOIN / LEAVE", func() {
		if tui.OnToggleJoin != nil {
			tui.OnToggleJoin()
		}
	}))
	panel.AddChild(tui.newButton("SAVE", func() {
		systems.SaveCurrentTuning()
		tui.statusLabel.Label = "saved"
	}))
	panel.AddChild(tui.newButton("RESET", func() {
		cfg.ViewModel = cfg.DefaultViewModel()
		tui.statusLabel.Label = "defaults restored"
	}))

	tui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	panel.AddChild(tui.statusLabel)

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TuningUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 20),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			tui.UpdateUI()
		}),
	)
}

func (tui *TuningUI) newValueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
}

// stepperRow lays out [-] value [+].
func (tui *TuningUI) stepperRow(value *widget.Label, dec, inc func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	stepButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(20, 20),
			),
			widget.ButtonOpts.Image(tui.buttonImage()),
			widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
				tui.UpdateUI()
			}),
		)
	}

	row.AddChild(stepButton("-", dec))
	row.AddChild(value)
	row.AddChild(stepButton("+", inc))
	return row
}

func (tui *TuningUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (tui *TuningUI) stepLagScale(delta float64) {
	lag := &cfg.ViewModel.Lag
	lag.Scale = gamemath.Clamp(lag.Scale+delta, 0, maxLagScale)
}

func (tui *TuningUI) stepBobScale(delta float64) {
	t := systems.CurrentTuning()
	t.BobScale = gamemath.Clamp(t.BobScale+delta, 0, maxBobScale)
	systems.ApplyTuning(&t)
}

// UpdateUI refreshes the labels from the active tuning
func (tui *TuningUI) UpdateUI() {
	if textWidget := tui.lagButton.Text(); textWidget != nil {
		textWidget.Label = fmt.Sprintf("LAG: %s", onOff(cfg.ViewModel.Lag.Enabled))
	}
	if textWidget := tui.bobButton.Text(); textWidget != nil {
		textWidget.Label = fmt.Sprintf("BOB: %s", onOff(cfg.ViewModel.Bob.Enabled))
	}
	tui.lagScaleLabel.Label = fmt.Sprintf("lag scale %.1f", cfg.ViewModel.Lag.Scale)
	tui.bobScaleLabel.Label = fmt.Sprintf("bob scale %.2f", systems.CurrentTuning().BobScale)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// Update calls the UI's Update method
func (tui *TuningUI) Update() {
	tui.UI.Update()
	if !tui.initialized {
		tui.initialized = true
		tui.UpdateUI()
	}
}
