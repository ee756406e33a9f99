package groups

import (
	"strings"

	"github.com/tickerboard/tickerboard/constants"
)

// Group a named, ordered collection of tickers dashboarded together
type Group struct {
	Name    string
	Tickers []string
}

// Slug return the group name as an artifact-safe slug
func (g Group) Slug() string {
	return strings.ReplaceAll(strings.ToLower(g.Name), " ", "_")
}

var (
	_groups = map[string]Group{}
	_order  []string
)

func init() {
	Register(Group{Name: "US Banks", Tickers: []string{"JPM", "BAC", "C", "WFC", "GS"}})
	Register(Group{Name: "US Banks in India", Tickers: []string{"JPM", "WFC", "C", "BAC"}})
}

// Register register a group, replacing any group with the same name
func Register(g Group) {
	key := strings.ToLower(g.Name)
	if _, found := _groups[key]; !found {
		_order = append(_order, key)
	}

	_groups[key] = g
}

// Resolve resolve a group name to its ordered tickers
func Resolve(name string) (Group, error) {
	group, found := _groups[strings.ToLower(name)]
	if !found {
		return Group{}, constants.ErrGroupNotFound
	}

	return group, nil
}

// All return registered groups in registration order
func All() []Group {
	all := make([]Group, 0, len(_order))
	for _, key := range _order {
		all = append(all, _groups[key])
	}

	return all
}
