package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/scrollbar"
	"github.com/agiangrant/scrollbar/anim"
	"github.com/agiangrant/scrollbar/geometry"
	"github.com/agiangrant/scrollbar/gesture"
	"github.com/agiangrant/scrollbar/runloop"
	"github.com/agiangrant/scrollbar/surface"
)

// Terminal cells are mapped onto points so the scrollbar sees a phone-sized
// surface: one column is 8pt wide and one line 16pt tall.
const (
	ptPerCol  = 8
	ptPerLine = 16
	wheelStep = 3 * ptPerLine
)

// Demo implements the 'scrollbar demo' command: a list of rows in the
// terminal with a draggable scrollbar on the right edge.
func Demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	configPath := fs.String("config", scrollbar.DefaultConfigFile, "Config file")
	style := fs.String("style", "", "Scrollbar style (classic or modern; default from config)")
	rows := fs.Int("rows", 0, "Number of rows (default from config)")
	logPath := fs.String("log", "", "Write logs to this file instead of discarding them")
	fs.Parse(args)

	cfg, err := demoConfig(*configPath, *style, *rows)
	if err != nil {
		return err
	}

	// The terminal belongs to tcell until Fini.
	defer log.SetOutput(os.Stderr)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	return runDemo(context.Background(), screen, cfg)
}

// demoConfig loads the config file and applies the flags that were set on
// top of it.
func demoConfig(path, style string, rows int) (scrollbar.Config, error) {
	cfg, err := scrollbar.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if style != "" {
		if err := cfg.ScrollBar.Style.UnmarshalText([]byte(style)); err != nil {
			return cfg, err
		}
	}
	if rows > 0 {
		cfg.Demo.Rows = rows
	}
	return cfg, nil
}

// runDemo drives the demo until the user quits. Terminal events are read on
// their own goroutine and posted to the run loop, which owns all state.
func runDemo(ctx context.Context, screen tcell.Screen, cfg scrollbar.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reg := anim.NewRegistry()
	loop := runloop.New(runloop.DefaultConfig(), reg)
	d := newDemo(screen, cfg, reg)
	defer d.bar.Close()
	d.quit = cancel

	loop.OnFrame(func(f runloop.Frame) {
		if d.dirty || f.Animating || d.animating {
			d.render()
			screen.Show()
		}
		d.dirty = false
		d.animating = f.Animating
	})

	g, gctx := errgroup.WithContext(ctx)
	stopped := make(chan struct{})

	g.Go(func() error {
		defer func() {
			close(stopped)
			// Wake the pump blocked in PollEvent.
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return loop.Run(gctx)
	})

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				cancel()
				return nil
			}
			select {
			case <-stopped:
				return nil
			default:
			}
			if _, ok := ev.(*tcell.EventInterrupt); ok {
				continue
			}
			if err := loop.Post(func() { d.handleEvent(ev) }); err != nil {
				log.Printf("demo: dropped %T: %v", ev, err)
			}
		}
	})

	log.Printf("demo: %d rows, %s style", cfg.Demo.Rows, cfg.ScrollBar.Style)
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// ============================================================================
// Demo State
// ============================================================================

type demo struct {
	screen tcell.Screen
	cfg    scrollbar.Config
	anims  *anim.Registry
	view   *surface.View
	bar    *scrollbar.ScrollBar
	quit   func()

	pressed   bool // button 1 is down
	grabbed   bool // the press landed on the scrollbar
	dirty     bool
	animating bool
}

func newDemo(screen tcell.Screen, cfg scrollbar.Config, reg *anim.Registry) *demo {
	d := &demo{
		screen: screen,
		cfg:    cfg,
		anims:  reg,
		view:   surface.NewView(geometry.Rect{}),
		bar:    scrollbar.FromConfig(cfg, scrollbar.WithAnimations(reg)),
		quit:   func() {},
		dirty:  true,
	}
	cols, lines := screen.Size()
	d.resize(cols, lines)
	d.bar.Attach(d.view)
	return d
}

func (d *demo) resize(cols, lines int) {
	width := float32(cols * ptPerCol)
	d.view.SetFrame(geometry.Rect{Width: width, Height: float32(lines * ptPerLine)})
	d.view.SetContentSize(geometry.Size{
		Width:  width,
		Height: float32(d.cfg.Demo.Rows) * d.cfg.Demo.RowHeight,
	})

	// Keep the offset valid after the viewport grew.
	offset := d.view.ContentOffset()
	offset.Y = geometry.Clamp(offset.Y, d.view.MinOffsetY(), d.view.MaxOffsetY())
	d.view.SetContentOffset(offset)
	d.bar.Layout()
}

func (d *demo) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, lines := ev.Size()
		d.resize(cols, lines)
		d.screen.Sync()
	case *tcell.EventKey:
		d.handleKey(ev)
	case *tcell.EventMouse:
		d.handleMouse(ev)
	}
	d.dirty = true
}

func (d *demo) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		d.quit()
	case tcell.KeyHome:
		d.scrollTo(d.view.MinOffsetY())
	case tcell.KeyEnd:
		d.scrollTo(d.view.MaxOffsetY())
	case tcell.KeyUp:
		d.view.ScrollBy(-ptPerLine)
	case tcell.KeyDown:
		d.view.ScrollBy(ptPerLine)
	case tcell.KeyPgUp:
		d.view.ScrollBy(-d.view.Frame().Height)
	case tcell.KeyPgDn:
		d.view.ScrollBy(d.view.Frame().Height)
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			d.quit()
		}
	}
}

func (d *demo) scrollTo(y float32) {
	anim.ScrollTo(d.anims, d.view, y, anim.ScrollToConfig{
		Duration: d.cfg.ScrollBar.Animation(),
		Easing:   d.cfg.ScrollBar.EasingFunc(),
	})
}

func (d *demo) handleMouse(ev *tcell.EventMouse) {
	col, line := ev.Position()
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		d.view.ScrollBy(-wheelStep)
	}
	if buttons&tcell.WheelDown != 0 {
		d.view.ScrollBy(wheelStep)
	}

	nowDown := buttons&tcell.Button1 != 0
	p := d.overlayPoint(col, line)

	switch {
	case nowDown && !d.pressed:
		d.pressed = true
		if d.bar.HitTest(p) {
			d.grabbed = d.bar.HandlePointer(gesture.Down(p.X, p.Y))
		}
	case nowDown && d.grabbed:
		d.bar.HandlePointer(gesture.Move(p.X, p.Y))
	case !nowDown && d.pressed:
		if d.grabbed {
			d.bar.HandlePointer(gesture.Up(p.X, p.Y))
		}
		d.pressed = false
		d.grabbed = false
	}
}

// overlayPoint converts a terminal cell to the centre of that cell in the
// scrollbar's local coordinates.
func (d *demo) overlayPoint(col, line int) geometry.Point {
	offset := d.view.ContentOffset()
	content := geometry.Point{
		X: float32(col*ptPerCol) + ptPerCol/2 + offset.X,
		Y: float32(line*ptPerLine) + ptPerLine/2 + offset.Y,
	}
	return d.bar.Frame().LocalPoint(content)
}

// ============================================================================
// Rendering
// ============================================================================

var (
	rowStyle     = tcell.StyleDefault
	altRowStyle  = tcell.StyleDefault.Background(tcell.ColorGray)
	trackStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	handleStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	classicStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (d *demo) render() {
	d.screen.Clear()
	cols, lines := d.screen.Size()

	margins := d.bar.AdjustedCellLayoutMargin(geometry.Insets{Left: 16, Right: 16})
	left := ptToCols(margins.Left)
	labelWidth := cols - left - ptToCols(margins.Right)
	separator := d.bar.AdjustedSeparatorInset(geometry.Insets{Left: 16})
	fillEnd := cols - ptToCols(separator.Right)

	offsetY := d.view.ContentOffset().Y
	prevRow := -1
	for line := 0; line < lines; line++ {
		row := d.rowAt(offsetY + float32(line*ptPerLine) + ptPerLine/2)
		if row < 0 {
			prevRow = row
			continue
		}

		style := rowStyle
		if row%2 == 1 {
			style = altRowStyle
		}
		for x := 0; x < fillEnd; x++ {
			d.screen.SetContent(x, line, ' ', nil, style)
		}
		if row != prevRow && labelWidth > 0 {
			label := runewidth.Truncate(fmt.Sprintf("Cell %d", row), labelWidth, "…")
			drawString(d.screen, left, line, label, style)
		}
		prevRow = row
	}

	d.renderScrollBar()
}

// rowAt returns the row under content y, or -1 past either end.
func (d *demo) rowAt(y float32) int {
	if y < 0 || d.cfg.Demo.RowHeight <= 0 {
		return -1
	}
	row := int(y / d.cfg.Demo.RowHeight)
	if row >= d.cfg.Demo.Rows {
		return -1
	}
	return row
}

func (d *demo) renderScrollBar() {
	if d.bar.Hidden() {
		return
	}

	offsetY := d.view.ContentOffset().Y
	frame := d.bar.PresentedFrame()
	originY := frame.Y - offsetY

	trackRune, handleRune, hStyle := '│', '┃', handleStyle
	if d.bar.Metrics().Knob {
		trackRune, handleRune, hStyle = '░', '█', classicStyle
	}

	track := d.bar.PresentedTrackFrame()
	fillPoints(d.screen, frame.X+track.X, originY+track.Y, track.Width, track.Height, trackRune, trackStyle)

	handle := d.bar.PresentedHandleFrame()
	fillPoints(d.screen, frame.X+handle.X, originY+handle.Y, handle.Width, handle.Height, handleRune, hStyle)

	if d.bar.Metrics().Knob {
		knob := d.bar.PresentedKnobFrame()
		kx := frame.X + handle.X + knob.X + knob.Width/2
		ky := originY + handle.Y + knob.Y + knob.Height/2
		d.screen.SetContent(int(kx/ptPerCol), int(ky/ptPerLine), '▣', nil, hStyle.Reverse(true))
	}
}

// fillPoints fills every cell touched by a rectangle given in viewport
// points, with at least one cell in each direction.
func fillPoints(screen tcell.Screen, x, y, w, h float32, r rune, style tcell.Style) {
	col0 := int(math.Floor(float64(x / ptPerCol)))
	line0 := int(math.Floor(float64(y / ptPerLine)))
	col1 := max(col0+1, int(math.Ceil(float64((x+w)/ptPerCol))))
	line1 := max(line0+1, int(math.Ceil(float64((y+h)/ptPerLine))))

	for line := line0; line < line1; line++ {
		for col := col0; col < col1; col++ {
			screen.SetContent(col, line, r, nil, style)
		}
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func ptToCols(pt float32) int {
	return int(math.Ceil(float64(pt / ptPerCol)))
}
