package story

import (
	"fmt"
	"strings"
)

// Markdown renders the dossier as a markdown document. Locked sections are
// listed by name only unless unlocked is true; terminal pages are skipped.
func Markdown(s Story, unlocked bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	if s.Tagline != "" {
		fmt.Fprintf(&b, "_%s_\n\n", s.Tagline)
	}
	if len(s.Intro) > 0 {
		for _, l := range s.Intro {
			fmt.Fprintf(&b, "> %s\n>\n", l)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "## %s\n\n", s.Heading)
	for _, sec := range s.Sections {
		var pages []Page
		for _, p := range sec.Pages {
			if !p.Terminal {
				pages = append(pages, p)
			}
		}
		if len(pages) == 0 {
			continue
		}
		if sec.Locked && !unlocked {
			fmt.Fprintf(&b, "### %s (Locked)\n\n", sec.Name)
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", sec.Name)
		for _, p := range pages {
			fmt.Fprintf(&b, "**%s**\n\n%s\n\n", p.Title, p.Content)
		}
	}
	return b.String()
}
