package main

import (
	"errors"
	"fmt"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func errTooSmall(needW, needH, w, h int) error {
	return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", needW, needH, w, h)
}

func errUnknownFrontend(name string) error {
	return fmt.Errorf("unknown frontend %q (expected %q or %q)", name, frontendTea, frontendTcell)
}
