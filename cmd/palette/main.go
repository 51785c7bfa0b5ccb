// Command palette prints color charts for the ansi package's encodings:
// the 16 named colors, the 256 color palette, and a 24-bit RGB ramp.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mitch-kyle/term/ansi"
)

var charts = map[string]func(*ansi.Buffer){
	"named": namedChart,
	"8":     indexedChart,
	"24":    rgbChart,
}

func main() {
	chart := flag.String("chart", "named", "chart to print: named, 8, or 24")
	flag.Parse()

	draw := charts[*chart]
	if draw == nil {
		names := make([]string, 0, len(charts))
		for name := range charts {
			names = append(names, name)
		}
		log.Fatalf("no such chart, valid choices: %q", names)
	}

	var buf ansi.Buffer
	draw(&buf)
	if _, err := buf.WriteTo(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func namedChart(buf *ansi.Buffer) {
	names := []ansi.ColorName{
		ansi.Black, ansi.Red, ansi.Green, ansi.Yellow,
		ansi.Blue, ansi.Magenta, ansi.Cyan, ansi.White,
	}
	for _, name := range names {
		buf.WriteSGR(ansi.Named(name).BG())
		buf.WriteString("  ")
	}
	buf.WriteSGR()
	buf.WriteString("\n")
	for _, name := range names {
		buf.WriteSGR(ansi.BrightNamed(name).BG())
		buf.WriteString("  ")
	}
	buf.WriteSGR()
	buf.WriteString("\n")
}

func indexedChart(buf *ansi.Buffer) {
	for i := 0; i < 256; i++ {
		buf.WriteSGR(ansi.Indexed(uint8(i)).BG())
		buf.WriteString(fmt.Sprintf(" %3d ", i))
		buf.WriteSGR()
		switch {
		case i == 15, i == 231:
			buf.WriteString("\n")
		case i > 15 && (i-15)%6 == 0:
			buf.WriteString("\n")
		}
	}
	buf.WriteString("\n")
}

func rgbChart(buf *ansi.Buffer) {
	for g := 0; g < 256; g += 16 {
		for r := 0; r < 256; r += 8 {
			buf.WriteSGR(ansi.RGB(uint8(r), uint8(g), uint8(255-r)).BG())
			buf.WriteString(" ")
		}
		buf.WriteSGR()
		buf.WriteString("\n")
	}
}
