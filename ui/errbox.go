package ui

import (
	"github.com/muesli/reflow/truncate"
)

// ErrBox is the single error row at the bottom of the screen.
type ErrBox struct {
	err    error
	width  int
	height int
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	if e.err == nil {
		return ""
	}
	return errStyle.Render(truncate.StringWithTail(e.err.Error(), uint(e.width), "…"))
}
