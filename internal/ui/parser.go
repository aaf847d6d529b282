package ui

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ParseCSS reads a HUD stylesheet. Only ".class" and "#id" selectors are kept (grouped
// selectors are split); at-rules and any other selector are dropped.
func ParseCSS(content string) (*Stylesheet, error) {
	parsed, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("css: %w", err)
	}
	sheet := &Stylesheet{}
	for _, r := range parsed.Rules {
		if r.Kind == css.AtRule || len(r.Declarations) == 0 {
			continue
		}
		props := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			props[strings.ToLower(strings.TrimSpace(d.Property))] = strings.TrimSpace(d.Value)
		}
		for _, sel := range r.Selectors {
			sel = strings.TrimSpace(sel)
			if validSelector(sel) {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
		}
	}
	return sheet, nil
}

func validSelector(sel string) bool {
	return len(sel) > 1 && (sel[0] == '.' || sel[0] == '#') && !strings.ContainsAny(sel[1:], " \t>+~:[.#")
}

// Matches reports whether the rule applies to n.
func (r Rule) Matches(n *Node) bool {
	switch r.Selector[0] {
	case '.':
		return n.Class == r.Selector[1:]
	case '#':
		return n.ID == r.Selector[1:]
	}
	return false
}
