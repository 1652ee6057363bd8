package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/amp-labs/automaat/cmd"
	"github.com/amp-labs/automaat/should"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"

	bannerPadding = 2
)

// Alignment places text inside a banner line.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// DefaultTerminalWidth is used when the terminal cannot be measured.
const DefaultTerminalWidth = 80

// NoBannerEnv disables box drawing when set to a true value.
const NoBannerEnv = "AUTOMAAT_NO_BANNER"

func suppressBanner() bool {
	v, ok := os.LookupEnv(NoBannerEnv)
	if !ok {
		return false
	}

	b, err := strconv.ParseBool(v)

	return err == nil && b
}

// BannerAutoWidth draws a banner as wide as the terminal.
func BannerAutoWidth(ctx context.Context, s string, a Alignment) string {
	return Banner(s, TerminalWidth(ctx), a)
}

// Banner draws s in a box width columns wide, one box line per line of s.
// Lines longer than the box are truncated with an ellipsis.
func Banner(s string, width int, alignment Alignment) string {
	if suppressBanner() {
		return s + "\n"
	}

	if s == "" || width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		parts = append(parts, boxSide+pad(l, inner, alignment)+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) string {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}

		if count > n {
			break
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func pad(text string, width int, alignment Alignment) string {
	length := countGraphic(text)
	if length > width {
		text = truncateGraphic(text, width-1) + ellipsis
		length = width
	}

	diff := width - length

	switch alignment {
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left)
	case AlignRight:
		return strings.Repeat(" ", diff) + text
	default:
		return text + strings.Repeat(" ", diff)
	}
}

// TerminalWidth asks stty for the width of the controlling terminal and
// falls back to DefaultTerminalWidth.
func TerminalWidth(ctx context.Context) int {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return DefaultTerminalWidth
	}
	defer should.Close(ctx, tty, "closing /dev/tty")

	var out string

	// Outputs: "rows columns"
	code, err := cmd.New(ctx, "stty", "size").
		SetStdin(tty).
		SetStdoutObserver(func(b []byte) { out = string(b) }).
		Run()
	if err != nil || code != 0 {
		return DefaultTerminalWidth
	}

	cols, err := parseColumns(out)
	if err != nil || cols <= 0 {
		return DefaultTerminalWidth
	}

	return cols
}

func parseColumns(output string) (int, error) {
	fields := strings.Fields(output)
	if len(fields) != 2 { //nolint:mnd
		return 0, fmt.Errorf("unexpected stty output %q", output) //nolint:err113
	}

	return strconv.Atoi(fields[1])
}
