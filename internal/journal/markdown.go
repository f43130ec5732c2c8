package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// writeMarkdown renders entries, newest first, as dated sections:
//
//	## 2025-11-20
//	- [09:30] 😌 after tea (calm)
//	  > quiet morning
func writeMarkdown(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)

	var current time.Time
	for i, e := range entries {
		local := e.Timestamp.Local()
		if i == 0 || !sameDay(local, current) {
			if i > 0 {
				bw.WriteByte('\n')
			}
			bw.WriteString(dateHeading(local))
			bw.WriteByte('\n')
			current = local
		}
		bw.WriteString(markdownLine(e, local))
		bw.WriteByte('\n')
		if e.Note != "" {
			for _, line := range strings.Split(e.Note, "\n") {
				bw.WriteString("  > ")
				bw.WriteString(line)
				bw.WriteByte('\n')
			}
		}
	}

	return bw.Flush()
}

func dateHeading(date time.Time) string {
	return fmt.Sprintf("## %04d-%02d-%02d", date.Year(), date.Month(), date.Day())
}

func markdownLine(e Entry, local time.Time) string {
	var builder strings.Builder
	builder.Grow(24 + len(e.Emoji) + len(e.Label))
	fmt.Fprintf(&builder, "- [%s] %s %s", local.Format("15:04"), e.Emoji, e.Label)
	fmt.Fprintf(&builder, " (%s)", e.Category)
	return builder.String()
}
