package commands

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/scrollbar"
	"github.com/agiangrant/scrollbar/anim"
)

func newTestDemo(t *testing.T, style scrollbar.Style, cols, lines, rows int) (*demo, tcell.Screen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, lines)

	cfg := scrollbar.DefaultConfig()
	cfg.ScrollBar.Style = style
	cfg.Demo.Rows = rows

	d := newDemo(screen, cfg, anim.NewRegistry())
	return d, screen
}

func TestDemoRendersRowsAndScrollBar(t *testing.T) {
	d, screen := newTestDemo(t, scrollbar.StyleModern, 40, 20, 100)
	d.render()
	screen.Show()

	assert.Equal(t, "Cell 0", readScreenLine(screen, 2, 0, 6))
	assert.Equal(t, "Cell 1", readScreenLine(screen, 2, 1, 6))

	// 60pt handle starting 10pt down covers lines 0-4, track continues below.
	ch, _, _, _ := screen.GetContent(38, 0)
	assert.Equal(t, '┃', ch)
	ch, _, _, _ = screen.GetContent(38, 4)
	assert.Equal(t, '┃', ch)
	ch, _, _, _ = screen.GetContent(38, 10)
	assert.Equal(t, '│', ch)
}

func TestDemoClassicKnob(t *testing.T) {
	d, screen := newTestDemo(t, scrollbar.StyleClassic, 40, 20, 100)
	d.render()
	screen.Show()

	ch, _, _, _ := screen.GetContent(37, 0)
	assert.Equal(t, '█', ch)
	ch, _, _, _ = screen.GetContent(38, 2)
	assert.Equal(t, '▣', ch)
	ch, _, _, _ = screen.GetContent(37, 10)
	assert.Equal(t, '░', ch)
}

func TestDemoHiddenWhenContentFits(t *testing.T) {
	d, screen := newTestDemo(t, scrollbar.StyleModern, 40, 20, 10)
	d.render()
	screen.Show()

	assert.True(t, d.bar.Hidden())
	for line := 0; line < 20; line++ {
		ch, _, _, _ := screen.GetContent(38, line)
		assert.NotEqual(t, '│', ch)
		assert.NotEqual(t, '┃', ch)
	}
}

func TestDemoTruncatesLabels(t *testing.T) {
	d, screen := newTestDemo(t, scrollbar.StyleModern, 10, 20, 100)
	d.render()
	screen.Show()

	assert.Equal(t, "Cel…", readScreenLine(screen, 2, 0, 4))
}

func TestDemoWheelScrolls(t *testing.T) {
	d, screen := newTestDemo(t, scrollbar.StyleModern, 40, 20, 100)

	d.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelDown, 0))
	assert.Equal(t, float32(wheelStep), d.view.ContentOffset().Y)

	d.render()
	screen.Show()
	assert.Equal(t, "Cell 3", readScreenLine(screen, 2, 0, 6))

	d.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, 0))
	d.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, 0))
	assert.Zero(t, d.view.ContentOffset().Y)
}

func TestDemoDragHandle(t *testing.T) {
	d, _ := newTestDemo(t, scrollbar.StyleModern, 40, 20, 100)

	d.handleEvent(tcell.NewEventMouse(38, 1, tcell.Button1, 0))
	require.True(t, d.grabbed)
	assert.True(t, d.bar.Dragging())

	// Handle top moves to 144 of 240pt travel: 60% of 1280pt.
	d.handleEvent(tcell.NewEventMouse(38, 10, tcell.Button1, 0))
	assert.Equal(t, float32(768), d.view.ContentOffset().Y)

	d.handleEvent(tcell.NewEventMouse(38, 10, tcell.ButtonNone, 0))
	assert.False(t, d.grabbed)
	assert.False(t, d.bar.Dragging())
	assert.True(t, d.view.ScrollEnabled())
}

func TestDemoPressOutsideScrollBar(t *testing.T) {
	d, _ := newTestDemo(t, scrollbar.StyleModern, 40, 20, 100)

	d.handleEvent(tcell.NewEventMouse(5, 1, tcell.Button1, 0))
	assert.False(t, d.grabbed)
	assert.False(t, d.bar.Dragging())
	assert.True(t, d.view.ScrollEnabled())

	d.handleEvent(tcell.NewEventMouse(5, 8, tcell.Button1, 0))
	d.handleEvent(tcell.NewEventMouse(5, 8, tcell.ButtonNone, 0))
	assert.Zero(t, d.view.ContentOffset().Y)
}

func TestDemoKeys(t *testing.T) {
	d, _ := newTestDemo(t, scrollbar.StyleModern, 40, 20, 100)

	d.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, float32(ptPerLine), d.view.ContentOffset().Y)

	d.handleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	assert.Equal(t, float32(ptPerLine+320), d.view.ContentOffset().Y)

	d.handleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	assert.True(t, d.anims.HasActive())
	d.anims.Tick(time.Now().Add(time.Hour))
	assert.Equal(t, float32(1280), d.view.ContentOffset().Y)

	d.handleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	d.anims.Tick(time.Now().Add(time.Hour))
	assert.Zero(t, d.view.ContentOffset().Y)

	quits := 0
	d.quit = func() { quits++ }
	d.handleEvent(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
	d.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.Equal(t, 2, quits)
}

func TestDemoResizeClampsOffset(t *testing.T) {
	d, _ := newTestDemo(t, scrollbar.StyleModern, 40, 20, 100)
	d.view.ScrollBy(10000)
	require.Equal(t, float32(1280), d.view.ContentOffset().Y)

	d.handleEvent(tcell.NewEventResize(40, 50))
	assert.Equal(t, float32(800), d.view.ContentOffset().Y)
	assert.Equal(t, float32(800), d.view.Frame().Height)
}

func TestDemoConfigKeepsFileStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), scrollbar.DefaultConfigFile)
	saved := scrollbar.DefaultConfig()
	saved.ScrollBar.Style = scrollbar.StyleClassic
	require.NoError(t, scrollbar.SaveConfig(path, saved))

	cfg, err := demoConfig(path, "", 0)
	require.NoError(t, err)
	assert.Equal(t, scrollbar.StyleClassic, cfg.ScrollBar.Style)
	assert.Equal(t, saved.Demo.Rows, cfg.Demo.Rows)

	cfg, err = demoConfig(path, "modern", 250)
	require.NoError(t, err)
	assert.Equal(t, scrollbar.StyleModern, cfg.ScrollBar.Style)
	assert.Equal(t, 250, cfg.Demo.Rows)

	_, err = demoConfig(path, "aqua", 0)
	assert.Error(t, err)
}

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)
	return screen
}

func waitForDemo(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("demo did not stop")
	}
}

func TestRunDemoQuitsOnKey(t *testing.T) {
	screen := newSimulationScreen(t)

	done := make(chan error, 1)
	go func() { done <- runDemo(context.Background(), screen, scrollbar.DefaultConfig()) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	waitForDemo(t, done)
}

func TestRunDemoStopsWithContext(t *testing.T) {
	screen := newSimulationScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- runDemo(ctx, screen, scrollbar.DefaultConfig()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	waitForDemo(t, done)
}

func readScreenLine(screen tcell.Screen, x, y, width int) string {
	runes := make([]rune, width)
	for i := 0; i < width; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		if ch == 0 {
			ch = ' '
		}
		runes[i] = ch
	}
	return string(runes)
}
