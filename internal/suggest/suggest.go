// Package suggest proposes delivery groupings for a draft announcement.
package suggest

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/orgablast/sembconnect/internal/entities"
)

//go:generate mockgen -destination=./mock/suggest.go -package=mock -source=suggest.go

// Groupings is a suggestion of who a draft should be delivered to.
type Groupings struct {
	SuggestedGroupings []string `json:"suggestedGroupings"`
	Reasoning          string   `json:"reasoning"`
}

// Suggester ...
type Suggester interface {
	Suggest(ctx context.Context, content string, employees []entities.Employee) (*Groupings, error)
}

// Static is a roster-driven fallback used when no model is configured. It
// matches department and role names mentioned in the draft and falls back to
// an all-employees grouping.
type Static struct{}

// NewStatic ...
func NewStatic() Static {
	return Static{}
}

// Suggest implements Suggester.
func (Static) Suggest(_ context.Context, content string, employees []entities.Employee) (*Groupings, error) {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = struct{}{}
	}

	mentioned := func(name string) bool {
		_, ok := words[strings.ToLower(name)]
		return ok
	}

	matched := make(map[string]struct{})
	for _, e := range employees {
		if e.Department != "" && mentioned(e.Department) {
			matched[e.Department] = struct{}{}
		}
		if e.Role != "" && mentioned(e.Role) {
			matched[e.Role+"s"] = struct{}{}
		}
	}

	if len(matched) == 0 {
		return &Groupings{
			SuggestedGroupings: []string{"All Employees"},
			Reasoning:          "The announcement does not mention a specific team, so it should go to everyone.",
		}, nil
	}

	out := make([]string, 0, len(matched))
	for g := range matched {
		out = append(out, g)
	}
	sort.Strings(out)

	return &Groupings{
		SuggestedGroupings: out,
		Reasoning:          "The announcement mentions these teams directly: " + strings.Join(out, ", ") + ".",
	}, nil
}
