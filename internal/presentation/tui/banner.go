package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the chempath ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Teal to green, one shade per line.
	lines := []struct{ text, color string }{
		{"        _                                _   _     ", "#22d3ee"},
		{"   ___ | |__   ___ _ __ ___  _ __   __ _| |_| |__  ", "#2dd4bf"},
		{"  / __|| '_ \\ / _ \\ '_ ` _ \\| '_ \\ / _` | __| '_ \\ ", "#34d399"},
		{" | (__ | | | |  __/ | | | | | |_) | (_| | |_| | | |", "#4ade80"},
		{"  \\___||_| |_|\\___|_| |_| |_| .__/ \\__,_|\\__|_| |_|", "#a3e635"},
		{"                            |_|                    ", "#facc15"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
