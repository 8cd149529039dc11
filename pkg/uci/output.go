package uci

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// lineWriter serializes protocol output from the command loop and the search task.
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lineWriter) Println(lines ...string) {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	lw.mu.Lock()
	defer lw.mu.Unlock()
	io.WriteString(lw.w, sb.String())
}

func (lw *lineWriter) Printf(format string, a ...any) {
	lw.Println(fmt.Sprintf(format, a...))
}
