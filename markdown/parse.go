// Package markdown renders post content into HTML through a block tree with
// per-kind render functions that callers can override.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockKind tags a parsed block so render overrides can target it.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindList
	KindOrderedList
	KindQuote
	KindCode
	KindTable
	KindRule
	KindCallout
	KindProsCard
	KindConsCard
	KindTweet
)

// Block is one parsed block node. Fields are populated per kind: headings
// use Level and Text, code blocks Lang and Code, tables Header and Rows,
// cards Title and Items, callouts Emoji and Text, tweets ID.
type Block struct {
	Kind   BlockKind
	Level  int
	Text   string
	Items  []string
	Lang   string
	Code   string
	Header []string
	Rows   [][]string
	Emoji  string
	Title  string
	ID     string
}

var (
	reOrderedItem = regexp.MustCompile(`^(\d+)\.\s`)
	reProsCard    = regexp.MustCompile(`^<ProsCard\s+title="([^"]*)"\s+pros=\{\[(.*)\]\}\s*/>\s*$`)
	reConsCard    = regexp.MustCompile(`^<ConsCard\s+title="([^"]*)"\s+cons=\{\[(.*)\]\}\s*/>\s*$`)
	reTweet       = regexp.MustCompile(`^<StaticTweet\s+id="([^"]+)"\s*/>\s*$`)
	reCalloutOpen = regexp.MustCompile(`^<Callout\s+emoji="([^"]*)">\s*(.*)$`)
	reQuoted      = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

const calloutClose = "</Callout>"

// Parse scans src line by line into a block tree. It accepts the custom
// component tags used in post content (Callout, ProsCard, ConsCard,
// StaticTweet) alongside standard Markdown blocks.
func Parse(src string) ([]Block, error) {
	lines := strings.Split(src, "\n")
	var blocks []Block

	var para []string
	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, Block{Kind: KindParagraph, Text: strings.Join(para, "\n")})
			para = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(line, "```") {
			flushPara()
			lang := strings.TrimSpace(line[3:])
			var code []string
			i++
			for i < len(lines) && !strings.HasPrefix(strings.TrimRight(lines[i], "\r"), "```") {
				code = append(code, strings.TrimRight(lines[i], "\r"))
				i++
			}
			blocks = append(blocks, Block{Kind: KindCode, Lang: lang, Code: strings.Join(code, "\n")})
			continue
		}

		if trimmed == "" {
			flushPara()
			continue
		}

		if m := reCalloutOpen.FindStringSubmatch(trimmed); m != nil {
			flushPara()
			block, next, err := parseCallout(lines, i, m)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, block)
			i = next
			continue
		}
		if m := reProsCard.FindStringSubmatch(trimmed); m != nil {
			flushPara()
			blocks = append(blocks, Block{Kind: KindProsCard, Title: m[1], Items: parseQuotedList(m[2])})
			continue
		}
		if m := reConsCard.FindStringSubmatch(trimmed); m != nil {
			flushPara()
			blocks = append(blocks, Block{Kind: KindConsCard, Title: m[1], Items: parseQuotedList(m[2])})
			continue
		}
		if m := reTweet.FindStringSubmatch(trimmed); m != nil {
			flushPara()
			blocks = append(blocks, Block{Kind: KindTweet, ID: m[1]})
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			level := headingLevel(line)
			if level == 0 {
				para = append(para, trimmed)
				continue
			}
			flushPara()
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: level,
				Text:  strings.TrimSpace(line[level+1:]),
			})
		case strings.HasPrefix(trimmed, "---"):
			flushPara()
			blocks = append(blocks, Block{Kind: KindRule})
		case strings.HasPrefix(line, "|"):
			flushPara()
			block, next := parseTable(lines, i)
			blocks = append(blocks, block)
			i = next
		case strings.HasPrefix(line, "- "):
			flushPara()
			block, next := parseListItems(lines, i, func(l string) (string, bool) {
				if strings.HasPrefix(l, "- ") {
					return strings.TrimSpace(l[2:]), true
				}
				return "", false
			})
			block.Kind = KindList
			blocks = append(blocks, block)
			i = next
		case reOrderedItem.MatchString(line):
			flushPara()
			block, next := parseListItems(lines, i, func(l string) (string, bool) {
				if reOrderedItem.MatchString(l) {
					return strings.TrimSpace(reOrderedItem.ReplaceAllString(l, "")), true
				}
				return "", false
			})
			block.Kind = KindOrderedList
			blocks = append(blocks, block)
			i = next
		case strings.HasPrefix(line, "> "):
			flushPara()
			var quote []string
			for ; i < len(lines); i++ {
				l := strings.TrimRight(lines[i], "\r")
				if !strings.HasPrefix(l, "> ") {
					i--
					break
				}
				quote = append(quote, strings.TrimSpace(l[2:]))
			}
			blocks = append(blocks, Block{Kind: KindQuote, Text: strings.Join(quote, "\n")})
		default:
			para = append(para, trimmed)
		}
	}
	flushPara()
	return blocks, nil
}

// headingLevel returns 1-6 for "# " through "###### " prefixes, 0 otherwise.
func headingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

func parseCallout(lines []string, start int, open []string) (Block, int, error) {
	body := open[2]
	if idx := strings.Index(body, calloutClose); idx >= 0 {
		return Block{Kind: KindCallout, Emoji: open[1], Text: strings.TrimSpace(body[:idx])}, start, nil
	}
	parts := []string{}
	if body != "" {
		parts = append(parts, body)
	}
	for i := start + 1; i < len(lines); i++ {
		l := strings.TrimRight(lines[i], "\r")
		if idx := strings.Index(l, calloutClose); idx >= 0 {
			if rest := strings.TrimSpace(l[:idx]); rest != "" {
				parts = append(parts, rest)
			}
			return Block{Kind: KindCallout, Emoji: open[1], Text: strings.TrimSpace(strings.Join(parts, " "))}, i, nil
		}
		parts = append(parts, strings.TrimSpace(l))
	}
	return Block{}, 0, fmt.Errorf("markdown: unclosed Callout starting at line %d", start+1)
}

func parseListItems(lines []string, start int, item func(string) (string, bool)) (Block, int) {
	var items []string
	i := start
	for ; i < len(lines); i++ {
		text, ok := item(strings.TrimRight(lines[i], "\r"))
		if !ok {
			i--
			break
		}
		items = append(items, text)
	}
	if i == len(lines) {
		i--
	}
	return Block{Items: items}, i
}

// parseTable reads a header row, an optional separator, and body rows. No
// column-count validation happens: a short or long row renders as-is.
func parseTable(lines []string, start int) (Block, int) {
	block := Block{Kind: KindTable}
	i := start
	block.Header = parseTableCells(strings.TrimRight(lines[i], "\r"))
	for i++; i < len(lines); i++ {
		l := strings.TrimRight(lines[i], "\r")
		if !strings.HasPrefix(l, "|") {
			i--
			break
		}
		if isTableSeparator(l) {
			continue
		}
		block.Rows = append(block.Rows, parseTableCells(l))
	}
	if i == len(lines) {
		i--
	}
	return block, i
}

func parseTableCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isTableSeparator(line string) bool {
	line = strings.TrimSpace(line)
	line = strings.Trim(line, "|")
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		cleaned := strings.ReplaceAll(strings.ReplaceAll(cell, "-", ""), ":", "")
		if cleaned != "" {
			return false
		}
	}
	return true
}

// parseQuotedList extracts the string literals from a {["a", "b"]} prop.
func parseQuotedList(raw string) []string {
	matches := reQuoted.FindAllStringSubmatch(raw, -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, strings.ReplaceAll(m[1], `\"`, `"`))
	}
	return items
}
