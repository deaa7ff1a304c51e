package roster

import internalstrings "github.com/amonks/tab/internal/strings"

// ModulePredicate selects modules for display.
type ModulePredicate func(*Module) bool

// AllModules selects every module.
func AllModules(*Module) bool { return true }

// ModuleNameContainsKeywords selects modules whose name matches any keyword
// as a whole word, ignoring case.
func ModuleNameContainsKeywords(keywords []string) ModulePredicate {
	return func(m *Module) bool {
		for _, keyword := range keywords {
			if internalstrings.ContainsWordFold(m.Name().String(), keyword) {
				return true
			}
		}
		return false
	}
}
