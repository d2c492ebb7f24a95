package pty

import (
	"bytes"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hostshell/ptyexec/internal/term"
)

// fakeTerminal records resize calls; everything else is inert.
type fakeTerminal struct {
	resizes atomic.Int32
}

func (f *fakeTerminal) Start(*exec.Cmd, term.Size) error { return nil }
func (f *fakeTerminal) Reader() io.Reader                { return bytes.NewReader(nil) }
func (f *fakeTerminal) Writer() io.Writer                { return io.Discard }
func (f *fakeTerminal) Close() error                     { return nil }

func (f *fakeTerminal) Resize(term.Size) error {
	f.resizes.Add(1)
	return nil
}

func TestActiveRefSetAndClear(t *testing.T) {
	var a activeRef
	assert.Nil(t, a.get())

	ft := &fakeTerminal{}
	a.set(ft)
	assert.Same(t, Terminal(ft), a.get())

	a.clear()
	assert.Nil(t, a.get())
}

func TestActiveRefConcurrentAccess(t *testing.T) {
	var a activeRef
	ft := &fakeTerminal{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a.set(ft)
				if cur := a.get(); cur != nil {
					_ = cur.Resize(term.Size{Rows: 1, Cols: 1})
				}
				a.clear()
			}
		}()
	}
	wg.Wait()

	assert.Nil(t, a.get())
}
