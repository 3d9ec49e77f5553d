package present

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/courseindex"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used by a Console.
type Palette struct {
	ID   *color.Color // course identifiers
	Name *color.Color // course names
}

// DefaultPalette is the palette used if none is given to NewConsole.
func DefaultPalette() Palette {
	return Palette{
		ID:   color.New(color.FgBlue, color.Bold),
		Name: color.New(color.FgWhite),
	}
}

// Console is a type for outputting courses to a console with a fixed width
// font. Catalog lines are aligned so that course names form a column, and
// names too long for the terminal are shortened.
//
// Display widths are measured in “en”s, i.e. fixed width positions, taking
// wide (East Asian) characters into account.
type Console struct {
	palette   Palette
	context   *uax11.Context
	lineWidth int // target line length in ens; 0 means no limit
}

var setupGraphemes sync.Once

// NewConsole creates a console formatter. If palette is nil, DefaultPalette
// is used. If lineWidth is 0, it is derived from the terminal attached to
// stdout (if any).
//
// Whether colors are actually output is decided by package fatih/color,
// which switches colors off if stdout is not a terminal.
func NewConsole(palette *Palette, lineWidth int) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	con := &Console{
		palette:   DefaultPalette(),
		context:   uax11.ContextFromEnvironment(),
		lineWidth: lineWidth,
	}
	if palette != nil {
		con.palette = *palette
	}
	if lineWidth == 0 {
		con.lineWidth = LineWidthFromTerminal()
	}
	return con
}

// DisableColor switches colored output off for this console.
func (con *Console) DisableColor() {
	con.palette.ID.DisableColor()
	con.palette.Name.DisableColor()
}

// Course writes the details of a course to w, in the layout of the package
// level function Course.
func (con *Console) Course(w io.Writer, c courseindex.Course) error {
	bw := bufio.NewWriter(w)
	writeCourse(bw, c, func(s string) string { return con.palette.ID.Sprint(s) })
	return bw.Flush()
}

// Catalog writes one line per course to w. Course names are aligned.
func (con *Console) Catalog(w io.Writer, courses iter.Seq[courseindex.Course]) error {
	var list []courseindex.Course
	idWidth := 0
	for c := range courses {
		list = append(list, c)
		idWidth = max(idWidth, con.width(c.ID))
	}
	bw := bufio.NewWriter(w)
	for _, c := range list {
		bw.WriteString(con.palette.ID.Sprint(c.ID))
		bw.WriteByte(',')
		bw.WriteString(strings.Repeat(" ", idWidth-con.width(c.ID)+1))
		name := c.Name
		if con.lineWidth > 0 {
			name = con.shorten(name, con.lineWidth-idWidth-2)
		}
		bw.WriteString(con.palette.Name.Sprint(name))
		bw.WriteByte('\n')
	}
	T().Debugf("console: catalog of %d courses, id column %d en", len(list), idWidth)
	return bw.Flush()
}

// width returns the display width of s in ens.
func (con *Console) width(s string) int {
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		w += con.graphemeWidth(gstr.Nth(i))
	}
	return w
}

// graphemeWidth returns the display width of a single grapheme. uax11 puts
// ASCII digits into the emoji class (they may start a keycap sequence) and
// measures them as wide, so printable ASCII is handled here.
func (con *Console) graphemeWidth(g string) int {
	if len(g) == 1 && g[0] >= 0x20 && g[0] < 0x7f {
		return 1
	}
	return uax11.StringWidth(grapheme.StringFromString(g), con.context)
}

// shorten cuts s to fit into maxWidth ens, marking the cut with an ellipsis.
func (con *Console) shorten(s string, maxWidth int) string {
	if maxWidth < 2 || con.width(s) <= maxWidth {
		return s
	}
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := con.graphemeWidth(g)
		if w+gw > maxWidth-1 {
			break
		}
		b.WriteString(g)
		w += gw
	}
	b.WriteString("…")
	return b.String()
}

// --- Terminal --------------------------------------------------------------

// LineWidthFromTerminal checks whether stdout is a terminal, and if so it
// reads the terminal's width. For non-terminals it returns 0 (no limit).
func LineWidthFromTerminal() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	T().P("format", "console").Infof("setting line length to %d en", w)
	return w
}
