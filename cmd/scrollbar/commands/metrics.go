package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/scrollbar"
	"github.com/agiangrant/scrollbar/geometry"
	"github.com/agiangrant/scrollbar/surface"
)

// Metrics implements the 'scrollbar metrics' command. It prints the style
// table, then the frames a scrollbar would get on a surface with the given
// dimensions.
func Metrics(args []string) error {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	configPath := fs.String("config", scrollbar.DefaultConfigFile, "Config file")
	width := fs.Float64("width", 375, "Viewport width in points")
	height := fs.Float64("height", 600, "Viewport height in points")
	content := fs.Float64("content", 3000, "Content height in points")
	offset := fs.Float64("offset", 0, "Content offset in points")
	top := fs.Float64("inset-top", 0, "Adjusted top inset in points")
	bottom := fs.Float64("inset-bottom", 0, "Adjusted bottom inset in points")
	fs.Parse(args)

	cfg, err := scrollbar.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	printMetricsTable(os.Stdout)

	v := surface.NewView(geometry.Rect{Width: float32(*width), Height: float32(*height)})
	v.SetContentSize(geometry.Size{Width: float32(*width), Height: float32(*content)})
	v.SetContentInset(geometry.Insets{Top: float32(*top), Bottom: float32(*bottom)})
	v.SetContentOffset(geometry.Point{Y: float32(*offset)})

	sb := scrollbar.FromConfig(cfg)
	defer sb.Close()
	sb.Attach(v)
	defer sb.Detach()

	fmt.Printf("\nLayout (%s, %gx%g viewport, %g content, offset %g):\n",
		sb.Style(), *width, *height, *content, *offset)
	if sb.Hidden() {
		fmt.Println("  hidden: content fits the viewport")
		return nil
	}
	printRect("overlay", sb.Frame())
	printRect("track", sb.TrackFrame())
	printRect("handle", sb.HandleFrame())
	if sb.Metrics().Knob {
		printRect("knob", sb.KnobFrame())
	}
	return nil
}

func printMetricsTable(w io.Writer) {
	fmt.Fprintf(w, "%-22s %10s %10s\n", "", "classic", "modern")
	c := scrollbar.MetricsFor(scrollbar.StyleClassic)
	m := scrollbar.MetricsFor(scrollbar.StyleModern)
	row := func(name string, a, b float32) {
		fmt.Fprintf(w, "%-22s %10g %10g\n", name, a, b)
	}
	row("track width", c.TrackWidth, m.TrackWidth)
	row("handle width", c.HandleWidth, m.HandleWidth)
	row("edge inset", c.EdgeInset, m.EdgeInset)
	row("minimum handle height", c.MinimumHandleHeight, m.MinimumHandleHeight)
	row("layout margin right", c.LayoutMarginRight, m.LayoutMarginRight)
	row("vertical inset", c.VerticalInset.Top, m.VerticalInset.Top)
	fmt.Fprintf(w, "%-22s %10v %10v\n", "knob", c.Knob, m.Knob)
}

func printRect(name string, r geometry.Rect) {
	fmt.Printf("  %-8s x=%-8g y=%-8g w=%-8g h=%g\n", name, r.X, r.Y, r.Width, r.Height)
}
