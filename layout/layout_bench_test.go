package layout

import (
	"fmt"
	"testing"
)

func BenchmarkLayout(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		texts := make([]string, n)
		for i := range texts {
			texts[i] = fmt.Sprintf("tag-%d", i)
		}
		in := Input{Texts: texts, Editing: n - 1, EditorShown: true, Content: Rect{W: 80, H: 24}}

		b.Run(fmt.Sprintf("wrap/tags=%d", n), func(b *testing.B) {
			e := cellEngine(WrapFlow{})
			for i := 0; i < b.N; i++ {
				_ = e.Layout(in)
			}
		})
		b.Run(fmt.Sprintf("line/tags=%d", n), func(b *testing.B) {
			e := cellEngine(LineFlow{})
			for i := 0; i < b.N; i++ {
				_ = e.Layout(in)
			}
		})
	}
}
