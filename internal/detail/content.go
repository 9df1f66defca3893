package detail

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/phasecurve/gcal-imp/internal/model"
)

var (
	anchorPattern       = regexp.MustCompile(`(?is)<a\s+[^>]*?href=["']([^"']+)["'][^>]*>(.*?)</a>`)
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	plainURLPattern     = regexp.MustCompile(`https?://[^\s\)]+`)

	stripPolicy = bluemonday.StrictPolicy()
)

// StripHTML flattens an HTML event description to plain text. Anchor
// tags are expanded to "text (url)" before stripping so links survive
// as navigable text.
func StripHTML(src string) string {
	expanded := anchorPattern.ReplaceAllStringFunc(src, func(m string) string {
		caps := anchorPattern.FindStringSubmatch(m)
		url := strings.TrimSpace(caps[1])
		text := strings.TrimSpace(stripPolicy.Sanitize(caps[2]))
		if text == "" || strings.EqualFold(url, text) {
			return url
		}
		return fmt.Sprintf("%s (%s)", text, url)
	})
	expanded = strings.ReplaceAll(expanded, "<br>", "\n")
	expanded = strings.ReplaceAll(expanded, "<br/>", "\n")
	expanded = strings.ReplaceAll(expanded, "<br />", "\n")
	expanded = strings.ReplaceAll(expanded, "</p>", "\n")
	return html.UnescapeString(stripPolicy.Sanitize(expanded))
}

// URLOnLine finds the first openable URL on a line, preferring the
// target of a markdown-style link over a bare URL.
func URLOnLine(line string) (string, bool) {
	if caps := markdownLinkPattern.FindStringSubmatch(line); caps != nil {
		return caps[2], true
	}
	if url := plainURLPattern.FindString(line); url != "" {
		return url, true
	}
	return "", false
}

// BuildEventLines renders the detail-panel text for one event. The
// navigator treats the result as immutable; it is rebuilt whenever the
// underlying event changes.
func BuildEventLines(ev model.Event) []string {
	lines := []string{ev.Title, ""}

	if ev.AllDay {
		lines = append(lines, "📅 "+ev.Start.UTC().Format("Monday, January 02, 2006"))
		if days := ev.DurationDays(); days > 1 {
			lines = append(lines, fmt.Sprintf("⏱  %d days", days))
		}
	} else {
		lines = append(lines, fmt.Sprintf("📅 %s at %s",
			ev.Start.UTC().Format("Monday, January 02, 2006"),
			ev.Start.UTC().Format("15:04")))
		lines = append(lines, durationLine(ev.DurationMinutes()))
	}

	if ev.Location != "" {
		lines = append(lines, "", "📍 Location:", "   "+ev.Location)
	}

	if ev.Description != "" {
		lines = append(lines, "", "📝 Description:", "")
		for _, line := range strings.Split(strings.TrimRight(StripHTML(ev.Description), "\n"), "\n") {
			lines = append(lines, line)
		}
	}

	if len(ev.Attendees) > 0 {
		lines = append(lines, "", "👥 Attendees:")
		for _, attendee := range ev.Attendees {
			lines = append(lines, "   • "+attendee)
		}
	}

	lines = append(lines,
		"",
		"hjkl = Move | wbe = Word | 0^$ = Line | gG = Top/Bottom",
		"o = Open URL | y = Yank | v = Visual | E = Edit | q/Esc = Close",
	)
	return lines
}

func durationLine(minutes int) string {
	if minutes >= 60 {
		plural := ""
		if minutes/60 > 1 {
			plural = "s"
		}
		return fmt.Sprintf("⏱  %d hour%s %d min", minutes/60, plural, minutes%60)
	}
	return fmt.Sprintf("⏱  %d minutes", minutes)
}
