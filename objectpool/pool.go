package objectpool

// Pool is an in-memory collection of objects keyed by ObjectID, along
// with the colour overrides (ColourMap/ColourPalette objects) that
// shadow the standard palette for this working set.
type Pool struct {
	byID      map[ObjectID]Object
	order     []ObjectID
	cachedSize int
	sizeValid bool
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{byID: make(map[ObjectID]Object)}
}

// LoadPool parses buf and returns a populated Pool. Objects parsed
// before a mid-stream failure are retained, mirroring Load.
func LoadPool(buf []byte) (*Pool, error) {
	objects, err := Load(buf)
	p := NewPool()
	for _, o := range objects {
		p.Add(o)
	}
	return p, err
}

// Add inserts o, replacing any existing object with the same ID.
// Replacing preserves the original insertion position; a new ID is
// appended (spec §9.3: the size cache is invalidated on every mutation).
func (p *Pool) Add(o Object) {
	if _, exists := p.byID[o.ID()]; !exists {
		p.order = append(p.order, o.ID())
	}
	p.byID[o.ID()] = o
	p.sizeValid = false
}

// Get returns the object with the given ID.
func (p *Pool) Get(id ObjectID) (Object, bool) {
	o, ok := p.byID[id]
	return o, ok
}

// ByType returns every object of the given type, in pool order.
func (p *Pool) ByType(t ObjectType) []Object {
	var out []Object
	for _, id := range p.order {
		o := p.byID[id]
		if o.Type() == t {
			out = append(out, o)
		}
	}
	return out
}

// All returns every object in the pool, in insertion order.
func (p *Pool) All() []Object {
	out := make([]Object, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.byID[id])
	}
	return out
}

// Len reports the number of objects in the pool.
func (p *Pool) Len() int { return len(p.order) }

// Size returns the serialized byte length of the pool, computed once
// and cached until the next mutation (spec §9.3).
func (p *Pool) Size() int {
	if p.sizeValid {
		return p.cachedSize
	}
	p.cachedSize = len(Dump(p.All()))
	p.sizeValid = true
	return p.cachedSize
}

// Dump serializes the pool in insertion order.
func (p *Pool) Dump() []byte { return Dump(p.All()) }

// colourIndexMap returns this pool's active 256-entry colour-index
// remap (spec §3/§4.9/§8: colour_by_index(i) = palette[map[i]]),
// identity by default. A Pool never holds more than one active
// ColourMap object; the first one encountered in pool order wins, and
// a short Indices array leaves the remaining entries at their identity
// default rather than erroring.
func (p *Pool) colourIndexMap() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = byte(i)
	}
	for _, id := range p.order {
		cm, ok := p.byID[id].(*ColourMap)
		if !ok {
			continue
		}
		n := len(cm.Indices)
		if n > len(m) {
			n = len(m)
		}
		copy(m[:n], cm.Indices[:n])
		break
	}
	return m
}

// ColourByIndex resolves c through this pool's active ColourMap remap
// and ColourPalette object, if present, falling back to the standard
// palette otherwise. A Pool never holds more than one active
// ColourPalette; the first one encountered in pool order wins.
func (p *Pool) ColourByIndex(c Colour) RGBA {
	m := p.colourIndexMap()
	mapped := Colour(m[byte(c)])
	for _, id := range p.order {
		cp, ok := p.byID[id].(*ColourPalette)
		if !ok {
			continue
		}
		if int(mapped) < len(cp.Colours) {
			entry := cp.Colours[mapped]
			return RGBA{R: entry.R, G: entry.G, B: entry.B, A: entry.A}
		}
		break
	}
	return ColourByIndex(mapped)
}
