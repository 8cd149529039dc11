package uci

import (
	"bufio"
	"context"
	"io"
)

// Run reads commands until quit or the end of input. It does not wait for a
// running search: quit only signals it.
func (uci *Protocol) Run(ctx context.Context, r io.Reader) error {
	uci.ctx = ctx
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		uci.Handle(scanner.Text())
		if uci.quit {
			return nil
		}
	}
	if uci.cancel != nil {
		uci.cancel()
	}
	return scanner.Err()
}
