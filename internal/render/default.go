package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	buffer       strings.Builder
	restoreState *term.State
	decorations  []decoration
	out          io.Writer // os.Stdout once initialised
}

// A judgement or other label drawn once and blanked after its frames run out
type decoration struct {
	col, row int
	width    int
	frames   int
}

func (r *DefaultRenderer) Init() error {
	r.out = os.Stdout
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to make terminal raw: %w", err)
	}
	r.restoreState = state

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	if nil == r.restoreState {
		return nil
	}
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	err := term.Restore(int(os.Stdout.Fd()), r.restoreState)
	r.restoreState = nil
	return err
}

func (r *DefaultRenderer) Size() (int, int) {
	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return 80, 24
	}
	return columns, rows
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, decoration{
		col:    col,
		row:    row,
		width:  visibleWidth(content),
		frames: frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	kept := r.decorations[:0]
	for _, d := range r.decorations {
		if d.frames <= 0 {
			r.Fill(d.row, d.col, strings.Repeat(" ", d.width))
			continue
		}
		d.frames--
		kept = append(kept, d)
	}
	r.decorations = kept
}

// visibleWidth counts the runes of s outside ANSI escape sequences.
func visibleWidth(s string) int {
	n, escaped := 0, false
	for _, c := range s {
		switch {
		case c == '\033':
			escaped = true
		case escaped:
			if c >= '@' && c <= '~' && c != '[' {
				escaped = false
			}
		default:
			n++
		}
	}
	return n
}

// RenderLoop calls render once per frame period with the time since the loop
// started, until render returns false.
func (r *DefaultRenderer) RenderLoop(framePeriod time.Duration, render func(duration time.Duration) bool) {
	cont := true
	startTime := time.Now()
	for cont {
		now := time.Now()
		deadline := now.Add(framePeriod)

		cont = render(now.Sub(startTime))

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

// Fill moves the cursor to the 1-based row and column and writes message.
func (r *DefaultRenderer) Fill(row, column int, message string) {
	fmt.Fprintf(&r.buffer, "\033[%d;%dH%s", row, column, message)
}

// Clear blanks a whole row.
func (r *DefaultRenderer) Clear(row int) {
	fmt.Fprintf(&r.buffer, "\033[%d;1H\033[2K", row)
}

// flush writes the frame built since the last flush in a single write.
func (r *DefaultRenderer) flush() {
	if nil != r.out {
		io.WriteString(r.out, r.buffer.String())
	}
	r.buffer.Reset()
}
