package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/canvasui/input"
	"github.com/OpticalFlyer/canvasui/input/ebiteninput"
	"github.com/OpticalFlyer/canvasui/surface/ebitensurface"
	"github.com/OpticalFlyer/canvasui/ui"
)

var background = color.RGBA{240, 240, 240, 255}

// Demo implements ebiten.Game interface.
type Demo struct {
	ui        *ui.Manager
	poller    *ebiteninput.Poller
	canvas    *ebitensurface.Canvas
	debugMode bool

	status *ui.Text
}

func (g *Demo) Update() error {
	g.poller.Poll(g.ui)
	g.ui.Update()

	// Leave F1 alone while a field has focus so typing is never intercepted.
	if !g.ui.IsInteractingWithUI() && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	return nil
}

func (g *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.canvas.SetTarget(screen)
	g.ui.Render(g.canvas)

	if g.debugMode {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\nWidgets: %d\nShift: %v",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.ui.Widgets()),
			g.ui.ModifierPressed(input.ModShift)))
	}
}

func (g *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// buildForm lays out a small sign-up form.
func (g *Demo) buildForm(theme ui.Theme) {
	var name, email string
	subscribe := false

	g.ui.AddWidget(ui.NewText(40, 30, "Sign up", nil, ui.TextOptions{FontSize: 28, Bold: true}))

	g.ui.AddWidget(ui.NewText(40, 90, "Name", nil, theme.TextOptions()))
	g.ui.AddWidget(ui.NewTextField(140, 85, func(text string) {
		name = text
	}, theme.TextFieldOptions()))

	g.ui.AddWidget(ui.NewText(40, 140, "Email", nil, theme.TextOptions()))
	g.ui.AddWidget(ui.NewTextField(140, 135, func(text string) {
		email = text
	}, theme.TextFieldOptions()))

	g.ui.AddWidget(ui.NewCheckBox(40, 190, func(checked bool) {
		subscribe = checked
	}, theme.CheckBoxOptions()))
	g.ui.AddWidget(ui.NewText(70, 190, "Subscribe to updates", nil, theme.TextOptions()))

	g.ui.AddWidget(ui.NewButton(40, 240, "Submit", func() {
		if strings.TrimSpace(name) == "" || !strings.Contains(email, "@") {
			g.status.SetText("Please enter a name and a valid email")
			return
		}
		g.status.SetText(fmt.Sprintf("Thanks %s (subscribed: %v)", name, subscribe))
		log.Printf("submitted name=%q email=%q subscribe=%v", name, email, subscribe)
	}, theme.ButtonOptions()))

	g.status = ui.NewText(40, 300, "", func() {
		g.status.SetText("")
	}, theme.TextOptions())
	g.ui.AddWidget(g.status)
}

func main() {
	themePath := flag.String("theme", "theme.toml", "path to a TOML widget theme")
	verbose := flag.Bool("verbose", false, "log input dispatch")
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	flag.Parse()

	ui.SetVerbose(*verbose)

	theme, err := ui.LoadTheme(*themePath)
	if err != nil {
		log.Fatal(err)
	}

	fonts, err := ebitensurface.NewFontBook()
	if err != nil {
		log.Fatal(err)
	}

	app := &Demo{
		ui:     ui.NewManager(input.DefaultCharacterDict(), input.DefaultModifierDict()),
		poller: ebiteninput.NewPoller(input.DefaultModifierDict()),
		canvas: ebitensurface.NewCanvas(fonts),
	}
	app.buildForm(theme)
	defer app.ui.Wipe()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("canvasui")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
