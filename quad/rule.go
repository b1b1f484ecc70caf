package quad

import (
	"fmt"

	"github.com/cwbudde/algo-quad/internal/kronrod"
)

// Rule selects a Gauss-Kronrod pair by its Kronrod node count.
type Rule int

const (
	Kronrod15 Rule = 15
	Kronrod21 Rule = 21
	Kronrod31 Rule = 31
	Kronrod41 Rule = 41
	Kronrod51 Rule = 51
	Kronrod61 Rule = 61
)

// String implements fmt.Stringer.
func (r Rule) String() string {
	return fmt.Sprintf("Kronrod%d", int(r))
}

func (r Rule) table() *kronrod.Table {
	t, ok := kronrod.ByOrder(int(r))
	if !ok {
		// Invalid rule values are rejected by Options validation before
		// reaching here; this path only protects against a future Rule
		// constant added without a matching kronrod table.
		t, _ = kronrod.ByOrder(int(Kronrod21))
	}
	return t
}
