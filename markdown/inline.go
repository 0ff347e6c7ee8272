package markdown

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reImg              = regexp.MustCompile(`\!\[(.*?)\]\((.*?)\)`)

	reSpaces  = regexp.MustCompile(`\s+`)
	reNonWord = regexp.MustCompile(`[^\w\-]+`)
	reHyphens = regexp.MustCompile(`\-\-+`)
)

// Slugify derives a heading anchor id: lowercase, trimmed, whitespace runs
// collapsed to single hyphens, "&" spelled out as "-and-", everything that
// is not a word character or hyphen stripped, repeated hyphens collapsed.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = reSpaces.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = reNonWord.ReplaceAllString(s, "")
	return reHyphens.ReplaceAllString(s, "-")
}

// linkAttrs classifies a link target. Targets starting with "/" navigate
// within the site, "#" targets are in-page anchors, and everything else is
// external and opens in a new tab with no referrer or opener leaked.
func linkAttrs(href string) string {
	switch {
	case strings.HasPrefix(href, "/"):
		return ""
	case strings.HasPrefix(href, "#"):
		return ""
	default:
		return ` target="_blank" rel="noopener noreferrer"`
	}
}

// formatInline applies inline formatting to already block-classified text:
// images, links, highlighted inline code, then bold and italic outside of
// any tags the earlier passes produced.
func formatInline(s string) string {
	escaped := html.EscapeString(s)

	escaped = reImg.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reImg.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		src := safeURL(match[2])
		if src == "" {
			return match[1]
		}
		// Alt text is mandatory and always emitted from the node.
		return `<img class="rounded-lg" alt="` + match[1] + `" src="` + src + `"/>`
	})

	// Inline code is extracted first and replaced with placeholders so the
	// bold/italic regexes never touch highlighted markup, then restored at
	// the end. The highlighter output is trusted and inserted unescaped.
	var codeSpans []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		placeholder := "\x00IC" + strconv.Itoa(len(codeSpans)) + "\x00"
		codeSpans = append(codeSpans, "<code>"+highlightInline(html.UnescapeString(match[1]))+"</code>")
		return placeholder
	})

	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		href := safeURL(match[2])
		if href == "" {
			return match[1]
		}
		return `<a href="` + href + `"` + linkAttrs(html.UnescapeString(href)) + `>` + match[1] + `</a>`
	})

	escaped = applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})

	for i, code := range codeSpans {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

// applyOutsideTags applies fn only to text segments outside HTML tags, so
// formatting regexes never corrupt URLs inside href attributes.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// safeURL validates and sanitizes a URL for use in HTML attributes.
func safeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
