package regulatory

import "fmt"

// diagnostics collects non-fatal extraction misses for one parse
type diagnostics struct {
	messages []string
}

func (d *diagnostics) missf(form, format string, args ...interface{}) {
	if d == nil {
		return
	}
	d.messages = append(d.messages, fmt.Sprintf("%s: ", form)+fmt.Sprintf(format, args...))
}

func (d *diagnostics) list() []string {
	if d == nil || len(d.messages) == 0 {
		return nil
	}
	out := make([]string, len(d.messages))
	copy(out, d.messages)
	return out
}
