package wrapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		scope []string
		ref   string
		want  Resolved
	}{
		{ref: "Item", want: Resolved{Name: "Item"}},
		{ref: "Order.Item", want: Resolved{Name: "Order_Item"}},
		{scope: []string{"Order"}, ref: "super.Note", want: Resolved{Name: "Note", Prefix: []string{}}},
		{scope: []string{"A", "B"}, ref: "super.C", want: Resolved{Name: "A_C", Prefix: []string{"A"}}},
		{scope: []string{"A", "B"}, ref: "B.D", want: Resolved{Name: "A_B_B_D", Prefix: []string{"A", "B"}}},
		{ref: "super.Item", want: Resolved{Name: "super.Item", Unresolved: 1}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Resolve(tc.scope, tc.ref), "%v %s", tc.scope, tc.ref)
	}
}

func TestResolveMarkerDepth(t *testing.T) {
	for n := 1; n <= 5; n++ {
		scope := make([]string, n)
		for i := range scope {
			scope[i] = string(rune('A' + i))
		}
		exact := Resolve(scope, strings.Repeat("super.", n)+"Leaf")
		assert.Equal(t, "Leaf", exact.Name)
		assert.Zero(t, exact.Unresolved)
		assert.Empty(t, exact.Prefix)

		over := Resolve(scope, strings.Repeat("super.", n+1)+"Leaf")
		assert.Equal(t, "super.Leaf", over.Name)
		assert.Equal(t, 1, over.Unresolved)
	}
}

func TestResolveDoesNotAliasScope(t *testing.T) {
	scope := []string{"A", "B"}
	r := Resolve(scope, "super.C")
	r.Prefix = append(r.Prefix, "X")
	assert.Equal(t, []string{"A", "B"}, scope)
}
