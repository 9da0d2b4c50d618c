package color

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// identifierPrefix is shared by every color name written to a document.
const identifierPrefix = "custom-color-"

// Color is an 8-bit RGB triple. Two colors are the same iff all three
// channels match; the document namespace lives on the Registry.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c Color) String() string {
	return strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," + strconv.Itoa(int(c.B))
}

// Identifier builds the document-wide name of c within namespace. Declarations
// and references must both go through this function.
func Identifier(namespace string, c Color) string {
	buf := make([]byte, 0, len(identifierPrefix)+len(namespace)+12)
	buf = append(buf, identifierPrefix...)
	buf = append(buf, namespace...)
	buf = append(buf, '-')
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, '-')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, '-')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	return string(buf)
}

// Registry deduplicates colors and numbers them in order of first
// appearance. Indices are never reassigned.
type Registry struct {
	namespace string
	colors    []Color
	counts    []int
	index     map[Color]int
}

// NewRegistry returns an empty registry whose identifiers use namespace.
func NewRegistry(namespace string) *Registry {
	return &Registry{
		namespace: namespace,
		index:     make(map[Color]int),
	}
}

// Register returns the index of c, appending it if it has not been seen.
func (r *Registry) Register(c Color) int {
	if i, ok := r.index[c]; ok {
		r.counts[i]++
		return i
	}
	i := len(r.colors)
	r.colors = append(r.colors, c)
	r.counts = append(r.counts, 1)
	r.index[c] = i
	return i
}

// Lookup reports the index of c without registering it.
func (r *Registry) Lookup(c Color) (int, bool) {
	i, ok := r.index[c]
	return i, ok
}

// Len is the number of distinct colors registered.
func (r *Registry) Len() int { return len(r.colors) }

// Namespace returns the identifier namespace.
func (r *Registry) Namespace() string { return r.namespace }

// At returns the color with index i.
func (r *Registry) At(i int) Color { return r.colors[i] }

// Count returns how many Register calls resolved to index i.
func (r *Registry) Count(i int) int { return r.counts[i] }

// Identifier returns the document name of the color with index i.
func (r *Registry) Identifier(i int) string {
	return Identifier(r.namespace, r.colors[i])
}

// Colors returns a copy of the registered colors in index order.
func (r *Registry) Colors() []Color {
	out := make([]Color, len(r.colors))
	copy(out, r.colors)
	return out
}
