// Package htmlpreview renders an interactions digest as a standalone HTML page.
package htmlpreview

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/mreport/internal/activity"
)

const style = `body{font-family:sans-serif;margin:2rem;color:#1d1c1d}` +
	`section{border:1px solid #ddd;border-radius:6px;padding:1rem;margin-bottom:1rem}` +
	`pre{white-space:pre-wrap;background:#f8f8f8;padding:.5rem;margin:.25rem 0}` +
	`.chunk{font-size:.8rem;color:#616061}`

// Page returns a component listing each user's thread as it would be posted,
// one block per message chunk.
func Page(title string, users []*activity.UserActivity, chunk func(string) []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>%s</title><style>%s</style></head><body>",
			templ.EscapeString(title), style); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>", templ.EscapeString(title)); err != nil {
			return err
		}

		if len(users) == 0 {
			if _, err := io.WriteString(w, "<p>No activity found.</p>"); err != nil {
				return err
			}
		}

		for i, u := range users {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := userSection(i+1, u, chunk).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func userSection(index int, u *activity.UserActivity, chunk func(string) []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<section><h2>%d) %s</h2>", index, templ.EscapeString(u.Email)); err != nil {
			return err
		}

		chunks := chunk(activity.RenderUserActivity(u))
		for j, c := range chunks {
			if _, err := fmt.Fprintf(w, "<div class=\"chunk\">message %d of %d</div><pre>%s</pre>",
				j+1, len(chunks), templ.EscapeString(c)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</section>")
		return err
	})
}
