package activity

import (
	"fmt"
	"strings"
)

const threadIndent = "        "

// RenderUserActivity renders the thread body describing a user's projects,
// prompts and exports.
func RenderUserActivity(u *UserActivity) string {
	var b strings.Builder
	nested := threadIndent + threadIndent

	for i, p := range u.Projects() {
		fmt.Fprintf(&b, ":movie_camera: #%d. *Project name:* %s\n", i+1, p.ProjectName)

		if p.FileInfo != "" {
			fmt.Fprintf(&b, "%s- *File info:* %s\n", nested, p.FileInfo)
		}

		if len(p.Prompts) > 0 {
			b.WriteString(threadIndent + ":man-raising-hand: *Prompts:*\n")
			for j, prompt := range p.Prompts {
				fmt.Fprintf(&b, "%s - #%d: %s\n", nested, j+1, prompt)
			}
		}

		if len(p.Exports) > 0 {
			b.WriteString(threadIndent + ":inbox_tray: *Exports:*\n")
			for k, e := range p.Exports {
				fmt.Fprintf(&b, "%s - #%d:  Format: %s", nested, k+1, e.Format())
				if e.OutputDuration != "" {
					fmt.Fprintf(&b, ", duration: %s", e.OutputDuration)
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
