package objectpool

import (
	"reflect"
	"testing"

	"github.com/greenfield-iso/j1939stack/name"
)

// roundTrip writes o, reads it back and returns the parsed object for
// the caller to assert against (spec §8: read(write(o)) == o).
func roundTrip(t *testing.T, o Object) Object {
	t.Helper()
	w := newByteWriter()
	WriteObject(w, o)
	r := newByteReader(w.Bytes())
	got, err := ReadObject(r)
	if err != nil {
		t.Fatalf("ReadObject: %v", err)
	}
	if r.remaining() != 0 {
		t.Fatalf("%d bytes left unread after round trip", r.remaining())
	}
	return got
}

func TestWorkingSetRoundTrip(t *testing.T) {
	o := &WorkingSet{
		IDField:       1,
		BgColour:      2,
		Selectable:    true,
		ActiveMask:    NullableObjectID(10),
		ObjectRefs:    []ObjectRef{{ID: NullableObjectID(11), X: -5, Y: 5}},
		MacroRefs:     []MacroRef{{EventID: 1, MacroID: 20}},
		LanguageCodes: []string{"en", "nl"},
	}
	got := roundTrip(t, o)
	if !reflect.DeepEqual(got, Object(o)) {
		t.Fatalf("got %+v, want %+v", got, o)
	}
}

func TestDataMaskRoundTrip(t *testing.T) {
	o := &DataMask{
		IDField:     2,
		BgColour:    3,
		SoftKeyMask: NullableObjectID(4),
		ObjectRefs:  []ObjectRef{{ID: NullableObjectID(5), X: 1, Y: 2}},
	}
	got := roundTrip(t, o)
	if !reflect.DeepEqual(got, Object(o)) {
		t.Fatalf("got %+v, want %+v", got, o)
	}
}

func TestButtonOptionsRoundTrip(t *testing.T) {
	o := &Button{
		IDField:      6,
		Width:        80,
		Height:       40,
		BgColour:     1,
		BorderColour: 2,
		KeyCode:      9,
		Options: ButtonOptions{
			Latchable: true,
			Disabled:  true,
		},
	}
	got := roundTrip(t, o).(*Button)
	if got.Options != o.Options {
		t.Fatalf("options = %+v, want %+v", got.Options, o.Options)
	}
}

func TestInputStringJustificationRoundTrip(t *testing.T) {
	o := &InputString{
		IDField:       8,
		Width:         100,
		Height:        20,
		Value:         "hello",
		Justification: Alignment{Horizontal: AlignRight, Vertical: AlignBottom},
		Enabled:       true,
	}
	got := roundTrip(t, o).(*InputString)
	if got.Justification != o.Justification {
		t.Fatalf("justification = %+v, want %+v", got.Justification, o.Justification)
	}
	if got.Value != o.Value {
		t.Fatalf("value = %q, want %q", got.Value, o.Value)
	}
}

func TestOutputPolygonPoints(t *testing.T) {
	o := &OutputPolygon{
		IDField: 16,
		Width:   50,
		Height:  50,
		Points: []Point[uint16]{
			{X: 0, Y: 0},
			{X: 10, Y: 10},
			{X: 20, Y: 0},
		},
	}
	got := roundTrip(t, o).(*OutputPolygon)
	if !reflect.DeepEqual(got.Points, o.Points) {
		t.Fatalf("points = %v, want %v", got.Points, o.Points)
	}
}

func TestPictureGraphicData(t *testing.T) {
	o := &PictureGraphic{
		IDField: 20,
		Width:   16,
		Data:    []byte{1, 2, 3, 4, 5},
	}
	got := roundTrip(t, o).(*PictureGraphic)
	if !reflect.DeepEqual(got.Data, o.Data) {
		t.Fatalf("data = %v, want %v", got.Data, o.Data)
	}
}

func TestExternalReferenceNameRoundTrip(t *testing.T) {
	n := name.Build(5, 6, 0, 0, 0, 0, 0, 0, false)
	o := &ExternalReferenceName{IDField: 42, Options: 1, Name: n}
	got := roundTrip(t, o).(*ExternalReferenceName)
	if got.Name != n {
		t.Fatalf("name = %v, want %v", got.Name, n)
	}
}

func TestColourPaletteRoundTrip(t *testing.T) {
	o := &ColourPalette{
		IDField: 45,
		Options: 0,
		Colours: []BGRAColour{{B: 1, G: 2, R: 3, A: 4}, {B: 5, G: 6, R: 7, A: 8}},
	}
	got := roundTrip(t, o).(*ColourPalette)
	if !reflect.DeepEqual(got.Colours, o.Colours) {
		t.Fatalf("colours = %v, want %v", got.Colours, o.Colours)
	}
}

func TestLoadUnknownObjectTypeStopsAndRetainsPrior(t *testing.T) {
	w := newByteWriter()
	WriteObject(w, &NumberVariable{IDField: 1, Value: 42})
	// Hand-craft a second object header with an invalid type tag.
	w.objectID(2)
	w.u8(200)

	objects, err := Load(w.Bytes())
	if err == nil {
		t.Fatal("expected an error from the unknown type tag")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrKindUnknownObjectType || pe.Tag != 200 {
		t.Fatalf("err = %#v, want ParseError{Kind: ErrKindUnknownObjectType, Tag: 200}", err)
	}
	if len(objects) != 1 {
		t.Fatalf("len(objects) = %d, want 1 (earlier object retained)", len(objects))
	}
	if objects[0].ID() != 1 {
		t.Fatalf("objects[0].ID() = %d, want 1", objects[0].ID())
	}
}

func TestLoadEmptyTruncatedStream(t *testing.T) {
	// A lone object ID with no type tag following it.
	buf := []byte{0x01, 0x00}
	objects, err := Load(buf)
	if err == nil {
		t.Fatal("expected a data-empty error")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrKindDataEmpty {
		t.Fatalf("err = %#v, want ParseError{Kind: ErrKindDataEmpty}", err)
	}
	if len(objects) != 0 {
		t.Fatalf("len(objects) = %d, want 0", len(objects))
	}
}

func TestPoolAddReplaceKeepsInsertionOrder(t *testing.T) {
	p := NewPool()
	p.Add(&NumberVariable{IDField: 1, Value: 1})
	p.Add(&NumberVariable{IDField: 2, Value: 2})
	p.Add(&NumberVariable{IDField: 1, Value: 99}) // replace, not append

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	all := p.All()
	if all[0].ID() != 1 || all[1].ID() != 2 {
		t.Fatalf("order = [%d %d], want [1 2]", all[0].ID(), all[1].ID())
	}
	got, ok := p.Get(1)
	if !ok || got.(*NumberVariable).Value != 99 {
		t.Fatalf("Get(1) = %+v, want Value=99", got)
	}
}

func TestPoolSizeCacheInvalidatesOnMutation(t *testing.T) {
	p := NewPool()
	p.Add(&NumberVariable{IDField: 1, Value: 1})
	size1 := p.Size()

	p.Add(&StringVariable{IDField: 2, Value: "hello world"})
	size2 := p.Size()

	if size2 <= size1 {
		t.Fatalf("Size() after adding a larger object = %d, want > %d", size2, size1)
	}
	if got := len(p.Dump()); got != size2 {
		t.Fatalf("Dump() length = %d, want cached Size() = %d", got, size2)
	}
}

func TestPoolByType(t *testing.T) {
	p := NewPool()
	p.Add(&NumberVariable{IDField: 1, Value: 1})
	p.Add(&StringVariable{IDField: 2, Value: "x"})
	p.Add(&NumberVariable{IDField: 3, Value: 3})

	nums := p.ByType(ObjectTypeNumberVariable)
	if len(nums) != 2 {
		t.Fatalf("len(ByType(NumberVariable)) = %d, want 2", len(nums))
	}
}

func TestColourByIndexFallsBackToStandardPalette(t *testing.T) {
	p := NewPool()
	got := p.ColourByIndex(Colour(17))
	want := ColourByIndex(Colour(17))
	if got != want {
		t.Fatalf("ColourByIndex(17) = %+v, want standard palette entry %+v", got, want)
	}
}

func TestColourByIndexUsesPoolPalette(t *testing.T) {
	p := NewPool()
	p.Add(&ColourPalette{
		IDField: 45,
		Colours: []BGRAColour{{B: 9, G: 8, R: 7, A: 6}},
	})
	got := p.ColourByIndex(Colour(0))
	want := RGBA{R: 7, G: 8, B: 9, A: 6}
	if got != want {
		t.Fatalf("ColourByIndex(0) = %+v, want %+v", got, want)
	}
}

func TestColourByIndexAppliesColourMapRemap(t *testing.T) {
	p := NewPool()
	p.Add(&ColourPalette{
		IDField: 45,
		Colours: []BGRAColour{
			{B: 1, G: 1, R: 1, A: 1}, // index 0
			{B: 9, G: 8, R: 7, A: 6}, // index 1
		},
	})
	indices := make([]byte, 256)
	indices[3] = 1 // colour_by_index(3) must resolve through palette[1]
	p.Add(&ColourMap{IDField: 46, Indices: indices})

	got := p.ColourByIndex(Colour(3))
	want := RGBA{R: 7, G: 8, B: 9, A: 6}
	if got != want {
		t.Fatalf("ColourByIndex(3) = %+v, want %+v (remapped through ColourMap)", got, want)
	}

	// An index the ColourMap leaves at its identity default still
	// resolves directly.
	got = p.ColourByIndex(Colour(0))
	want = RGBA{R: 1, G: 1, B: 1, A: 1}
	if got != want {
		t.Fatalf("ColourByIndex(0) = %+v, want %+v", got, want)
	}
}

func TestAlignmentPacking(t *testing.T) {
	a := Alignment{Horizontal: AlignRight, Vertical: AlignCenter}
	packed := a.pack()
	if got := unpackAlignment(packed); got != a {
		t.Fatalf("unpackAlignment(pack(%+v)) = %+v", a, got)
	}
}

func TestStandardPaletteFixedEntries(t *testing.T) {
	black := ColourByIndex(0)
	if black != (RGBA{0, 0, 0, 0xFF}) {
		t.Fatalf("palette[0] = %+v, want black", black)
	}
	white := ColourByIndex(1)
	if white != (RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("palette[1] = %+v, want white", white)
	}
}
