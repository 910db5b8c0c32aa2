// Package anchor implements a minimal terminal reporter which keeps a set
// of labelled status lines (lots) anchored at the bottom of the screen
// while regular log lines scroll above them.
package anchor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

type Color int

const (
	Plain Color = iota
	Red
	Green
	Yellow
	Blue
)

var palette = map[Color]*color.Color{
	Plain:  color.New(color.Reset),
	Red:    color.New(color.FgRed),
	Green:  color.New(color.FgGreen),
	Yellow: color.New(color.FgYellow),
	Blue:   color.New(color.FgBlue),
}

type Anchor struct {
	mutex    sync.Mutex
	accent   *color.Color
	lots     []*Lot
	rendered int
	reader   *bufio.Reader
}

type Lot struct {
	anchor *Anchor
	label  string
	status string
	closed bool
}

func New(accent Color) *Anchor {
	style, ok := palette[accent]
	if !ok {
		style = palette[Plain]
	}
	return &Anchor{
		accent: style,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Printf emits a scrolling log line above the anchored area.
func (anchor *Anchor) Printf(format string, args ...interface{}) {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	anchor.wipe()
	fmt.Println(fmt.Sprintf(format, args...))
	anchor.render()
}

// AnchorPrintf emits a scrolling log line using the accent color,
// meant for failures and anomalies.
func (anchor *Anchor) AnchorPrintf(format string, args ...interface{}) {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	anchor.wipe()
	anchor.accent.Println(fmt.Sprintf(format, args...))
	anchor.render()
}

// Lot returns the status line associated to the given
// label, creating it on first use.
func (anchor *Anchor) Lot(label string) *Lot {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	for _, lot := range anchor.lots {
		if lot.label == label {
			return lot
		}
	}

	lot := &Lot{anchor: anchor, label: label}
	anchor.lots = append(anchor.lots, lot)
	return lot
}

// Reads wipes the anchored area, prompts and
// returns a trimmed line read from standard input.
func (anchor *Anchor) Reads(prompt string) string {
	anchor.mutex.Lock()
	defer anchor.mutex.Unlock()

	anchor.wipe()
	fmt.Print(prompt + " ")
	data, err := anchor.reader.ReadString('\n')
	if err != nil {
		data = ""
	}
	anchor.render()
	return strings.TrimSpace(data)
}

// wipe clears the anchored area. Callers must hold the mutex.
func (anchor *Anchor) wipe() {
	if anchor.rendered > 0 {
		cursor.ClearLinesUp(anchor.rendered)
		cursor.StartOfLine()
		anchor.rendered = 0
	}
}

// render repaints the anchored area. Callers must hold the mutex.
func (anchor *Anchor) render() {
	for _, lot := range anchor.lots {
		if lot.closed || lot.status == "" {
			continue
		}
		fmt.Printf("%s: %s\n", lot.label, lot.status)
		anchor.rendered++
	}
}

// Printf updates the lot status line.
func (lot *Lot) Printf(format string, args ...interface{}) *Lot {
	return lot.Print(fmt.Sprintf(format, args...))
}

// Print updates the lot status line.
func (lot *Lot) Print(args ...interface{}) *Lot {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.status = strings.TrimSpace(fmt.Sprintln(args...))
	lot.anchor.render()
	return lot
}

// Wipe blanks the lot status line without closing it.
func (lot *Lot) Wipe() {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.status = ""
	lot.anchor.render()
}

// Close removes the lot from the anchored area, optionally
// logging a final summary line.
func (lot *Lot) Close(message ...string) {
	lot.anchor.mutex.Lock()
	defer lot.anchor.mutex.Unlock()

	lot.anchor.wipe()
	lot.closed = true
	if len(message) > 0 {
		fmt.Printf("%s: %s\n", lot.label, strings.Join(message, " "))
	}
	lot.anchor.render()
}
