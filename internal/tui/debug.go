package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// debugLogf appends one line to the file named by ROLO_TUI_DEBUG_LOG. It is
// a no-op without the env var, so hot paths can call it unconditionally.
func (m *appModel) debugLogf(format string, args ...any) {
	path := strings.TrimSpace(os.Getenv("ROLO_TUI_DEBUG_LOG"))
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n",
		append([]any{time.Now().Format("15:04:05.000")}, args...)...)
}
