// Package progress reports how far a command has got through its units.
package progress

import (
	"io"
	"os"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Observer is told the unit count up front, then once per finished unit.
// Step may be called from several goroutines.
type Observer interface {
	Start(total int)
	Step(name string)
	Finish()
}

var _ Observer = Nop{}

type Nop struct{}

func (Nop) Start(int)   {}
func (Nop) Step(string) {}
func (Nop) Finish()     {}

var _ Observer = &Bar{}

// Bar draws an mpb progress bar.
type Bar struct {
	label  string
	output io.Writer

	mutex    sync.Mutex
	progress *mpb.Progress
	bar      *mpb.Bar
}

func NewBar(label string) *Bar {
	return NewBarTo(label, os.Stderr)
}

func NewBarTo(label string, output io.Writer) *Bar {
	return &Bar{label: label, output: output}
}

func (b *Bar) Start(total int) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.progress = mpb.New(mpb.WithWidth(64), mpb.WithOutput(b.output))
	b.bar = b.progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(b.label+": "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
			decor.AverageETA(decor.ET_STYLE_GO),
		),
	)
}

func (b *Bar) Step(string) {
	b.mutex.Lock()
	bar := b.bar
	b.mutex.Unlock()

	if bar != nil {
		bar.Increment()
	}
}

// Finish stops the bar and waits for it to render. A bar that is still
// short of its total is aborted in place.
func (b *Bar) Finish() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.progress == nil {
		return
	}

	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.progress.Wait()

	b.progress = nil
	b.bar = nil
}
