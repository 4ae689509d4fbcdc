// Copyright 2016 The Govisor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simplecounter

import (
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// Iterations is the number of counter lines emitted before the
	// completion line.  Parents watching the fixture can rely on
	// values 0 through Iterations-1 appearing in order.
	Iterations = 20

	// Interval is the pause after each counter line.  It is not
	// drift corrected; the sequence runs a little long under load,
	// and parents must tolerate that.
	Interval = time.Second
)

// Emitter produces the counter sequence.  It writes Iterations lines of
// the form "Iteration N", pausing Interval after each one (including the
// last), then writes "Counter finished." and is done.  It never reads
// anything, and it never writes anywhere but its output stream.
type Emitter struct {
	count int
	limit int
	out   io.Writer
	sleep func(time.Duration)
	done  bool
}

// NewEmitter returns an Emitter bound to standard output with the stock
// count and pacing.  Standard output is not buffered in Go, so each line
// is visible to a reading parent as soon as it is written.
func NewEmitter() *Emitter {
	return newEmitter(os.Stdout, time.Sleep)
}

func newEmitter(out io.Writer, sleep func(time.Duration)) *Emitter {
	return &Emitter{
		limit: Iterations,
		out:   out,
		sleep: sleep,
	}
}

// Count returns the number of counter lines emitted so far.
func (e *Emitter) Count() int {
	return e.count
}

// Done returns true once the completion line has been written.  A killed
// fixture never gets there, which is rather the point.
func (e *Emitter) Done() bool {
	return e.done
}

// tick emits one counter line and pays for it with a pause.  Write
// errors are ignored; the only stream the fixture ever runs against is
// an inherited stdout, and if that is gone the parent already knows.
func (e *Emitter) tick() {
	fmt.Fprintf(e.out, "Iteration %d\n", e.count)
	e.count++
	e.sleep(Interval)
}

// Run executes the full sequence and returns when it is complete.  It
// blocks the calling goroutine the whole time; external termination is
// the only way to cut it short.
func (e *Emitter) Run() {
	for e.count < e.limit {
		e.tick()
	}
	fmt.Fprintln(e.out, "Counter finished.")
	e.done = true
}
