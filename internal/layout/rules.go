package layout

import (
	"strings"

	"github.com/driftwm/scrollwm/internal/config"
)

// OpenState is the initial placement a window rule's effect can force a
// newly-mapped window into, on top of (or instead of) plain tiled
// placement.
type OpenState int

const (
	// OpenDefault applies no override: the auto-float classification and
	// default column width decide.
	OpenDefault OpenState = iota
	// OpenFloating forces floating placement — "open-floating true".
	OpenFloating
	// OpenTiled forces tiled placement, suppressing the auto-float
	// heuristic — "open-floating false".
	OpenTiled
	OpenMaximized
	OpenFullscreen
)

// WindowRule is one (predicate, effect) pair evaluated once at a window's
// first configure: the predicate matches on app-id/title glob and the
// parent/fixed-size flags the window advertises, the effect overrides
// open-on-output, open-on-workspace, initial width, border width, and the
// open state. Rules are tried in order; the first match wins.
type WindowRule struct {
	// Predicate. A zero value on any of these fields means "don't care".
	AppIDPattern string
	TitlePattern string
	IsChild      *bool
	IsFixedSize  *bool

	// Effect. Nil/zero means "leave the default behavior alone".
	OpenState       OpenState
	OpenOnOutput    string
	OpenOnWorkspace string
	Width           *config.Width
	BorderWidth     *float64
}

// globMatch matches s against pattern, where a trailing "*" in pattern
// matches any suffix (prefix match); an empty pattern matches everything.
func globMatch(pattern, s string) bool {
	if pattern == "" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(s, strings.TrimSuffix(pattern, "*"))
	}
	return s == pattern
}

func (r WindowRule) matches(props WindowProps) bool {
	if !globMatch(r.AppIDPattern, props.AppID) {
		return false
	}
	if !globMatch(r.TitlePattern, props.Title) {
		return false
	}
	if r.IsChild != nil && *r.IsChild != props.IsChild {
		return false
	}
	if r.IsFixedSize != nil && *r.IsFixedSize != props.IsFixedSize() {
		return false
	}
	return true
}

// MatchRule returns the first rule in rules matching props, or nil.
func MatchRule(rules []WindowRule, props WindowProps) *WindowRule {
	for i := range rules {
		if rules[i].matches(props) {
			return &rules[i]
		}
	}
	return nil
}
