package objectpool

import "github.com/greenfield-iso/j1939stack/name"

// objectReaders dispatches a type tag to its body reader. Populated by
// an init block below so each variant's reader sits next to its struct.
var objectReaders = map[ObjectType]func(r *byteReader, id ObjectID) (Object, error){}

func register(t ObjectType, fn func(r *byteReader, id ObjectID) (Object, error)) {
	objectReaders[t] = fn
}

// ---- Working Set ----------------------------------------------------

type WorkingSet struct {
	IDField       ObjectID
	BgColour      Colour
	Selectable    bool
	ActiveMask    NullableObjectID
	ObjectRefs    []ObjectRef
	MacroRefs     []MacroRef
	LanguageCodes []string
}

func (o *WorkingSet) Type() ObjectType { return ObjectTypeWorkingSet }
func (o *WorkingSet) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeWorkingSet, func(r *byteReader, id ObjectID) (Object, error) {
		o := &WorkingSet{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Selectable, err = r.boolean(); err != nil {
			return nil, err
		}
		if o.ActiveMask, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		n, err := r.u8()
		if err != nil {
			return nil, err
		}
		for i := uint8(0); i < n; i++ {
			s, err := r.stringN(2)
			if err != nil {
				return nil, err
			}
			o.LanguageCodes = append(o.LanguageCodes, s)
		}
		return o, nil
	})
}

func writeWorkingSet(w *byteWriter, o *WorkingSet) {
	w.colour(o.BgColour)
	w.boolean(o.Selectable)
	w.nullableObjectID(o.ActiveMask)
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
	w.u8(uint8(len(o.LanguageCodes)))
	for _, s := range o.LanguageCodes {
		w.stringN(s, 2)
	}
}

// ---- Data Mask --------------------------------------------------------

type DataMask struct {
	IDField    ObjectID
	BgColour   Colour
	SoftKeyMask NullableObjectID
	ObjectRefs []ObjectRef
	MacroRefs  []MacroRef
}

func (o *DataMask) Type() ObjectType { return ObjectTypeDataMask }
func (o *DataMask) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeDataMask, func(r *byteReader, id ObjectID) (Object, error) {
		o := &DataMask{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.SoftKeyMask, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeDataMask(w *byteWriter, o *DataMask) {
	w.colour(o.BgColour)
	w.nullableObjectID(o.SoftKeyMask)
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
}

// ---- Alarm Mask -------------------------------------------------------

type AlarmMask struct {
	IDField        ObjectID
	BgColour       Colour
	SoftKeyMask    NullableObjectID
	Priority       uint8
	AcousticSignal uint8
	ObjectRefs     []ObjectRef
	MacroRefs      []MacroRef
}

func (o *AlarmMask) Type() ObjectType { return ObjectTypeAlarmMask }
func (o *AlarmMask) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeAlarmMask, func(r *byteReader, id ObjectID) (Object, error) {
		o := &AlarmMask{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.SoftKeyMask, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Priority, err = r.u8(); err != nil {
			return nil, err
		}
		if o.AcousticSignal, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeAlarmMask(w *byteWriter, o *AlarmMask) {
	w.colour(o.BgColour)
	w.nullableObjectID(o.SoftKeyMask)
	w.u8(o.Priority)
	w.u8(o.AcousticSignal)
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
}

// ---- Container --------------------------------------------------------

type Container struct {
	IDField    ObjectID
	Width      uint16
	Height     uint16
	Hidden     bool
	ObjectRefs []ObjectRef
	MacroRefs  []MacroRef
}

func (o *Container) Type() ObjectType { return ObjectTypeContainer }
func (o *Container) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeContainer, func(r *byteReader, id ObjectID) (Object, error) {
		o := &Container{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Hidden, err = r.boolean(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeContainer(w *byteWriter, o *Container) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.boolean(o.Hidden)
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
}

// ---- Soft Key Mask ------------------------------------------------------

type SoftKeyMask struct {
	IDField   ObjectID
	BgColour  Colour
	Objects   []ObjectID
	MacroRefs []MacroRef
}

func (o *SoftKeyMask) Type() ObjectType { return ObjectTypeSoftKeyMask }
func (o *SoftKeyMask) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeSoftKeyMask, func(r *byteReader, id ObjectID) (Object, error) {
		o := &SoftKeyMask{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Objects, err = r.objectIDs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeSoftKeyMask(w *byteWriter, o *SoftKeyMask) {
	w.colour(o.BgColour)
	w.objectIDs(o.Objects)
	w.macroRefs(o.MacroRefs)
}

// ---- Key ----------------------------------------------------------------

type Key struct {
	IDField    ObjectID
	BgColour   Colour
	KeyCode    uint8
	ObjectRefs []ObjectRef
	MacroRefs  []MacroRef
}

func (o *Key) Type() ObjectType { return ObjectTypeKey }
func (o *Key) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeKey, func(r *byteReader, id ObjectID) (Object, error) {
		o := &Key{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.KeyCode, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeKey(w *byteWriter, o *Key) {
	w.colour(o.BgColour)
	w.u8(o.KeyCode)
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
}

// ---- Button -------------------------------------------------------------

// ButtonOptions packs the Button options byte (spec §6): bit 0
// latchable, bit 1 state, bit 2 suppress-border, bit 3 transparent-bg,
// bit 4 disabled, bit 5 no-border, bits 6-7 zero.
type ButtonOptions struct {
	Latchable      bool
	State          bool
	SuppressBorder bool
	TransparentBg  bool
	Disabled       bool
	NoBorder       bool
}

func (b ButtonOptions) pack() uint8 {
	var v uint8
	if b.Latchable {
		v |= 1 << 0
	}
	if b.State {
		v |= 1 << 1
	}
	if b.SuppressBorder {
		v |= 1 << 2
	}
	if b.TransparentBg {
		v |= 1 << 3
	}
	if b.Disabled {
		v |= 1 << 4
	}
	if b.NoBorder {
		v |= 1 << 5
	}
	return v
}

func unpackButtonOptions(v uint8) ButtonOptions {
	return ButtonOptions{
		Latchable:      v&(1<<0) != 0,
		State:          v&(1<<1) != 0,
		SuppressBorder: v&(1<<2) != 0,
		TransparentBg:  v&(1<<3) != 0,
		Disabled:       v&(1<<4) != 0,
		NoBorder:       v&(1<<5) != 0,
	}
}

type Button struct {
	IDField      ObjectID
	Width        uint16
	Height       uint16
	BgColour     Colour
	BorderColour Colour
	KeyCode      uint8
	Options      ButtonOptions
	ObjectRefs   []ObjectRef
	MacroRefs    []MacroRef
}

func (o *Button) Type() ObjectType { return ObjectTypeButton }
func (o *Button) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeButton, func(r *byteReader, id ObjectID) (Object, error) {
		o := &Button{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.BorderColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.KeyCode, err = r.u8(); err != nil {
			return nil, err
		}
		opts, err := r.u8()
		if err != nil {
			return nil, err
		}
		o.Options = unpackButtonOptions(opts)
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeButton(w *byteWriter, o *Button) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.BgColour)
	w.colour(o.BorderColour)
	w.u8(o.KeyCode)
	w.u8(o.Options.pack())
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
}

// ---- Input Boolean --------------------------------------------------

type InputBoolean struct {
	IDField   ObjectID
	BgColour  Colour
	Width     uint16
	FgColour  NullableObjectID // font/fill attributes reference
	VarRef    NullableObjectID
	Value     bool
	Enabled   bool
	MacroRefs []MacroRef
}

func (o *InputBoolean) Type() ObjectType { return ObjectTypeInputBoolean }
func (o *InputBoolean) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeInputBoolean, func(r *byteReader, id ObjectID) (Object, error) {
		o := &InputBoolean{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.FgColour, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Value, err = r.boolean(); err != nil {
			return nil, err
		}
		if o.Enabled, err = r.boolean(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeInputBoolean(w *byteWriter, o *InputBoolean) {
	w.colour(o.BgColour)
	w.u16(o.Width)
	w.nullableObjectID(o.FgColour)
	w.nullableObjectID(o.VarRef)
	w.boolean(o.Value)
	w.boolean(o.Enabled)
	w.macroRefs(o.MacroRefs)
}

// ---- Input String -----------------------------------------------------

type InputStringOptions struct {
	Transparent bool
	AutoWrap    bool
	WrapOnHyphen bool
}

func (o InputStringOptions) pack() uint8 {
	var v uint8
	if o.Transparent {
		v |= 1 << 0
	}
	if o.AutoWrap {
		v |= 1 << 1
	}
	if o.WrapOnHyphen {
		v |= 1 << 2
	}
	return v
}

func unpackInputStringOptions(v uint8) InputStringOptions {
	return InputStringOptions{
		Transparent:  v&(1<<0) != 0,
		AutoWrap:     v&(1<<1) != 0,
		WrapOnHyphen: v&(1<<2) != 0,
	}
}

type InputString struct {
	IDField       ObjectID
	Width         uint16
	Height        uint16
	BgColour      Colour
	FontAttrs     NullableObjectID
	InputAttrs    NullableObjectID
	Options       InputStringOptions
	VarRef        NullableObjectID
	Justification Alignment
	Value         string
	Enabled       bool
	MacroRefs     []MacroRef
}

func (o *InputString) Type() ObjectType { return ObjectTypeInputString }
func (o *InputString) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeInputString, func(r *byteReader, id ObjectID) (Object, error) {
		o := &InputString{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FontAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.InputAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		opts, err := r.u8()
		if err != nil {
			return nil, err
		}
		o.Options = unpackInputStringOptions(opts)
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		j, err := r.u8()
		if err != nil {
			return nil, err
		}
		o.Justification = unpackAlignment(j)
		b, err := r.bytesU8Len()
		if err != nil {
			return nil, err
		}
		o.Value = string(b)
		if o.Enabled, err = r.boolean(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeInputString(w *byteWriter, o *InputString) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.BgColour)
	w.nullableObjectID(o.FontAttrs)
	w.nullableObjectID(o.InputAttrs)
	w.u8(o.Options.pack())
	w.nullableObjectID(o.VarRef)
	w.u8(o.Justification.pack())
	w.bytesU8Len([]byte(o.Value))
	w.boolean(o.Enabled)
	w.macroRefs(o.MacroRefs)
}

// ---- Input Number -------------------------------------------------------

type InputNumberOptions struct {
	Transparent bool
	DisplayLeadingZeros bool
	DisplayZeroAsBlank  bool
	Truncate            bool
}

func (o InputNumberOptions) pack() uint8 {
	var v uint8
	if o.Transparent {
		v |= 1 << 0
	}
	if o.DisplayLeadingZeros {
		v |= 1 << 1
	}
	if o.DisplayZeroAsBlank {
		v |= 1 << 2
	}
	if o.Truncate {
		v |= 1 << 3
	}
	return v
}

func unpackInputNumberOptions(v uint8) InputNumberOptions {
	return InputNumberOptions{
		Transparent:         v&(1<<0) != 0,
		DisplayLeadingZeros: v&(1<<1) != 0,
		DisplayZeroAsBlank:  v&(1<<2) != 0,
		Truncate:            v&(1<<3) != 0,
	}
}

type InputNumber struct {
	IDField       ObjectID
	Width         uint16
	Height        uint16
	BgColour      Colour
	FontAttrs     NullableObjectID
	Options       InputNumberOptions
	VarRef        NullableObjectID
	Value         uint32
	Min           uint32
	Max           uint32
	Offset        int32
	Scale         float32
	Decimals      uint8
	Format        uint8
	Justification Alignment
	Options2      uint8
	MacroRefs     []MacroRef
}

func (o *InputNumber) Type() ObjectType { return ObjectTypeInputNumber }
func (o *InputNumber) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeInputNumber, func(r *byteReader, id ObjectID) (Object, error) {
		o := &InputNumber{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FontAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		opts, err := r.u8()
		if err != nil {
			return nil, err
		}
		o.Options = unpackInputNumberOptions(opts)
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u32(); err != nil {
			return nil, err
		}
		if o.Min, err = r.u32(); err != nil {
			return nil, err
		}
		if o.Max, err = r.u32(); err != nil {
			return nil, err
		}
		if o.Offset, err = r.i32(); err != nil {
			return nil, err
		}
		if o.Scale, err = r.f32(); err != nil {
			return nil, err
		}
		if o.Decimals, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Format, err = r.u8(); err != nil {
			return nil, err
		}
		j, err := r.u8()
		if err != nil {
			return nil, err
		}
		o.Justification = unpackAlignment(j)
		if o.Options2, err = r.u8(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeInputNumber(w *byteWriter, o *InputNumber) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.BgColour)
	w.nullableObjectID(o.FontAttrs)
	w.u8(o.Options.pack())
	w.nullableObjectID(o.VarRef)
	w.u32(o.Value)
	w.u32(o.Min)
	w.u32(o.Max)
	w.i32(o.Offset)
	w.f32(o.Scale)
	w.u8(o.Decimals)
	w.u8(o.Format)
	w.u8(o.Justification.pack())
	w.u8(o.Options2)
	w.macroRefs(o.MacroRefs)
}

// ---- Input List / Output List ------------------------------------------

type InputList struct {
	IDField   ObjectID
	Width     uint16
	Height    uint16
	VarRef    NullableObjectID
	Value     uint8
	Options   uint8
	ListItems []NullableObjectID
	MacroRefs []MacroRef
}

func (o *InputList) Type() ObjectType { return ObjectTypeInputList }
func (o *InputList) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeInputList, func(r *byteReader, id ObjectID) (Object, error) {
		o := &InputList{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ListItems, err = r.nullableObjectIDs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeInputList(w *byteWriter, o *InputList) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.nullableObjectID(o.VarRef)
	w.u8(o.Value)
	w.u8(o.Options)
	w.nullableObjectIDs(o.ListItems)
	w.macroRefs(o.MacroRefs)
}

type OutputList struct {
	IDField   ObjectID
	Width     uint16
	Height    uint16
	VarRef    NullableObjectID
	Value     uint8
	ListItems []NullableObjectID
	MacroRefs []MacroRef
}

func (o *OutputList) Type() ObjectType { return ObjectTypeOutputList }
func (o *OutputList) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputList, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputList{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ListItems, err = r.nullableObjectIDs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputList(w *byteWriter, o *OutputList) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.nullableObjectID(o.VarRef)
	w.u8(o.Value)
	w.nullableObjectIDs(o.ListItems)
	w.macroRefs(o.MacroRefs)
}

// ---- Output String ------------------------------------------------------

type OutputString struct {
	IDField       ObjectID
	Width         uint16
	Height        uint16
	BgColour      Colour
	FontAttrs     NullableObjectID
	Options       uint8
	VarRef        NullableObjectID
	Justification Alignment
	Value         string
	MacroRefs     []MacroRef
}

func (o *OutputString) Type() ObjectType { return ObjectTypeOutputString }
func (o *OutputString) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputString, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputString{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FontAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		j, err := r.u8()
		if err != nil {
			return nil, err
		}
		o.Justification = unpackAlignment(j)
		b, err := r.bytesU16Len()
		if err != nil {
			return nil, err
		}
		o.Value = string(b)
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputString(w *byteWriter, o *OutputString) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.BgColour)
	w.nullableObjectID(o.FontAttrs)
	w.u8(o.Options)
	w.nullableObjectID(o.VarRef)
	w.u8(o.Justification.pack())
	w.bytesU16Len([]byte(o.Value))
	w.macroRefs(o.MacroRefs)
}

// ---- Output Number ------------------------------------------------------

type OutputNumber struct {
	IDField       ObjectID
	Width         uint16
	Height        uint16
	BgColour      Colour
	FontAttrs     NullableObjectID
	Options       uint8
	VarRef        NullableObjectID
	Value         uint32
	Offset        int32
	Scale         float32
	Decimals      uint8
	Format        uint8
	Justification Alignment
	MacroRefs     []MacroRef
}

func (o *OutputNumber) Type() ObjectType { return ObjectTypeOutputNumber }
func (o *OutputNumber) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputNumber, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputNumber{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FontAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u32(); err != nil {
			return nil, err
		}
		if o.Offset, err = r.i32(); err != nil {
			return nil, err
		}
		if o.Scale, err = r.f32(); err != nil {
			return nil, err
		}
		if o.Decimals, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Format, err = r.u8(); err != nil {
			return nil, err
		}
		j, err := r.u8()
		if err != nil {
			return nil, err
		}
		o.Justification = unpackAlignment(j)
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputNumber(w *byteWriter, o *OutputNumber) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.BgColour)
	w.nullableObjectID(o.FontAttrs)
	w.u8(o.Options)
	w.nullableObjectID(o.VarRef)
	w.u32(o.Value)
	w.i32(o.Offset)
	w.f32(o.Scale)
	w.u8(o.Decimals)
	w.u8(o.Format)
	w.u8(o.Justification.pack())
	w.macroRefs(o.MacroRefs)
}

// ---- Output geometry shapes ---------------------------------------------

type OutputLine struct {
	IDField       ObjectID
	Width         uint16
	Height        uint16
	LineAttrs     NullableObjectID
	LineDirection uint8
	MacroRefs     []MacroRef
}

func (o *OutputLine) Type() ObjectType { return ObjectTypeOutputLine }
func (o *OutputLine) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputLine, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputLine{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.LineAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.LineDirection, err = r.u8(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputLine(w *byteWriter, o *OutputLine) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.nullableObjectID(o.LineAttrs)
	w.u8(o.LineDirection)
	w.macroRefs(o.MacroRefs)
}

type OutputRectangle struct {
	IDField        ObjectID
	Width          uint16
	Height         uint16
	LineAttrs      NullableObjectID
	LineSuppression uint8
	FillAttrs      NullableObjectID
	MacroRefs      []MacroRef
}

func (o *OutputRectangle) Type() ObjectType { return ObjectTypeOutputRectangle }
func (o *OutputRectangle) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputRectangle, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputRectangle{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.LineAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.LineSuppression, err = r.u8(); err != nil {
			return nil, err
		}
		if o.FillAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputRectangle(w *byteWriter, o *OutputRectangle) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.nullableObjectID(o.LineAttrs)
	w.u8(o.LineSuppression)
	w.nullableObjectID(o.FillAttrs)
	w.macroRefs(o.MacroRefs)
}

type OutputEllipse struct {
	IDField     ObjectID
	Width       uint16
	Height      uint16
	LineAttrs   NullableObjectID
	EllipseType uint8
	StartAngle  uint8
	EndAngle    uint8
	FillAttrs   NullableObjectID
	MacroRefs   []MacroRef
}

func (o *OutputEllipse) Type() ObjectType { return ObjectTypeOutputEllipse }
func (o *OutputEllipse) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputEllipse, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputEllipse{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.LineAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.EllipseType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.StartAngle, err = r.u8(); err != nil {
			return nil, err
		}
		if o.EndAngle, err = r.u8(); err != nil {
			return nil, err
		}
		if o.FillAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputEllipse(w *byteWriter, o *OutputEllipse) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.nullableObjectID(o.LineAttrs)
	w.u8(o.EllipseType)
	w.u8(o.StartAngle)
	w.u8(o.EndAngle)
	w.nullableObjectID(o.FillAttrs)
	w.macroRefs(o.MacroRefs)
}

type OutputPolygon struct {
	IDField     ObjectID
	Width       uint16
	Height      uint16
	LineAttrs   NullableObjectID
	FillAttrs   NullableObjectID
	PolygonType uint8
	Points      []Point[uint16]
	MacroRefs   []MacroRef
}

func (o *OutputPolygon) Type() ObjectType { return ObjectTypeOutputPolygon }
func (o *OutputPolygon) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputPolygon, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputPolygon{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.LineAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.FillAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.PolygonType, err = r.u8(); err != nil {
			return nil, err
		}
		n, err := r.u8()
		if err != nil {
			return nil, err
		}
		for i := uint8(0); i < n; i++ {
			x, err := r.u16()
			if err != nil {
				return nil, err
			}
			y, err := r.u16()
			if err != nil {
				return nil, err
			}
			o.Points = append(o.Points, Point[uint16]{X: x, Y: y})
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputPolygon(w *byteWriter, o *OutputPolygon) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.nullableObjectID(o.LineAttrs)
	w.nullableObjectID(o.FillAttrs)
	w.u8(o.PolygonType)
	w.u8(uint8(len(o.Points)))
	for _, p := range o.Points {
		w.u16(p.X)
		w.u16(p.Y)
	}
	w.macroRefs(o.MacroRefs)
}

// ---- Meters and bar graphs ------------------------------------------------

type OutputMeter struct {
	IDField         ObjectID
	Width           uint16
	Height          uint16
	NeedleColour    Colour
	BorderColour    Colour
	ArcAndTickColour Colour
	Options         uint8
	NumberOfTicks   uint8
	StartAngle      uint8
	EndAngle        uint8
	MinValue        uint16
	MaxValue        uint16
	VarRef          NullableObjectID
	Value           uint16
	MacroRefs       []MacroRef
}

func (o *OutputMeter) Type() ObjectType { return ObjectTypeOutputMeter }
func (o *OutputMeter) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputMeter, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputMeter{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.NeedleColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.BorderColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.ArcAndTickColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.NumberOfTicks, err = r.u8(); err != nil {
			return nil, err
		}
		if o.StartAngle, err = r.u8(); err != nil {
			return nil, err
		}
		if o.EndAngle, err = r.u8(); err != nil {
			return nil, err
		}
		if o.MinValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MaxValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputMeter(w *byteWriter, o *OutputMeter) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.NeedleColour)
	w.colour(o.BorderColour)
	w.colour(o.ArcAndTickColour)
	w.u8(o.Options)
	w.u8(o.NumberOfTicks)
	w.u8(o.StartAngle)
	w.u8(o.EndAngle)
	w.u16(o.MinValue)
	w.u16(o.MaxValue)
	w.nullableObjectID(o.VarRef)
	w.u16(o.Value)
	w.macroRefs(o.MacroRefs)
}

type OutputLinearBarGraph struct {
	IDField          ObjectID
	Width            uint16
	Height           uint16
	Colour_          Colour
	TargetLineColour Colour
	Options          uint8
	NumberOfTicks    uint8
	MinValue         uint16
	MaxValue         uint16
	VarRef           NullableObjectID
	TargetValueVarRef NullableObjectID
	TargetValue      uint16
	Value            uint16
	MacroRefs        []MacroRef
}

func (o *OutputLinearBarGraph) Type() ObjectType { return ObjectTypeOutputLinearBarGraph }
func (o *OutputLinearBarGraph) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputLinearBarGraph, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputLinearBarGraph{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Colour_, err = r.colour(); err != nil {
			return nil, err
		}
		if o.TargetLineColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.NumberOfTicks, err = r.u8(); err != nil {
			return nil, err
		}
		if o.MinValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MaxValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.TargetValueVarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.TargetValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputLinearBarGraph(w *byteWriter, o *OutputLinearBarGraph) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.Colour_)
	w.colour(o.TargetLineColour)
	w.u8(o.Options)
	w.u8(o.NumberOfTicks)
	w.u16(o.MinValue)
	w.u16(o.MaxValue)
	w.nullableObjectID(o.VarRef)
	w.nullableObjectID(o.TargetValueVarRef)
	w.u16(o.TargetValue)
	w.u16(o.Value)
	w.macroRefs(o.MacroRefs)
}

type OutputArchedBarGraph struct {
	IDField           ObjectID
	Width             uint16
	Height            uint16
	Colour_           Colour
	TargetLineColour  Colour
	Options           uint8
	StartAngle        uint8
	EndAngle          uint8
	BarGraphWidth     uint16
	MinValue          uint16
	MaxValue          uint16
	VarRef            NullableObjectID
	TargetValueVarRef NullableObjectID
	TargetValue       uint16
	Value             uint16
	MacroRefs         []MacroRef
}

func (o *OutputArchedBarGraph) Type() ObjectType { return ObjectTypeOutputArchedBarGraph }
func (o *OutputArchedBarGraph) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeOutputArchedBarGraph, func(r *byteReader, id ObjectID) (Object, error) {
		o := &OutputArchedBarGraph{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Colour_, err = r.colour(); err != nil {
			return nil, err
		}
		if o.TargetLineColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.StartAngle, err = r.u8(); err != nil {
			return nil, err
		}
		if o.EndAngle, err = r.u8(); err != nil {
			return nil, err
		}
		if o.BarGraphWidth, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MinValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MaxValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.VarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.TargetValueVarRef, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.TargetValue, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeOutputArchedBarGraph(w *byteWriter, o *OutputArchedBarGraph) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.colour(o.Colour_)
	w.colour(o.TargetLineColour)
	w.u8(o.Options)
	w.u8(o.StartAngle)
	w.u8(o.EndAngle)
	w.u16(o.BarGraphWidth)
	w.u16(o.MinValue)
	w.u16(o.MaxValue)
	w.nullableObjectID(o.VarRef)
	w.nullableObjectID(o.TargetValueVarRef)
	w.u16(o.TargetValue)
	w.u16(o.Value)
	w.macroRefs(o.MacroRefs)
}

// ---- Picture Graphic ------------------------------------------------------

type PictureGraphic struct {
	IDField            ObjectID
	Width              uint16
	ActualWidth        uint16
	ActualHeight       uint16
	Format             uint8
	Options            uint8
	TransparencyColour Colour
	Data               []byte
	MacroRefs          []MacroRef
}

func (o *PictureGraphic) Type() ObjectType { return ObjectTypePictureGraphic }
func (o *PictureGraphic) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypePictureGraphic, func(r *byteReader, id ObjectID) (Object, error) {
		o := &PictureGraphic{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.ActualWidth, err = r.u16(); err != nil {
			return nil, err
		}
		if o.ActualHeight, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Format, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.TransparencyColour, err = r.colour(); err != nil {
			return nil, err
		}
		length, err := r.u32()
		if err != nil {
			return nil, err
		}
		if o.Data, err = r.take(int(length)); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writePictureGraphic(w *byteWriter, o *PictureGraphic) {
	w.u16(o.Width)
	w.u16(o.ActualWidth)
	w.u16(o.ActualHeight)
	w.u8(o.Format)
	w.u8(o.Options)
	w.colour(o.TransparencyColour)
	w.u32(uint32(len(o.Data)))
	w.raw(o.Data)
	w.macroRefs(o.MacroRefs)
}

// ---- Variables ------------------------------------------------------------

type NumberVariable struct {
	IDField ObjectID
	Value   uint32
}

func (o *NumberVariable) Type() ObjectType { return ObjectTypeNumberVariable }
func (o *NumberVariable) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeNumberVariable, func(r *byteReader, id ObjectID) (Object, error) {
		o := &NumberVariable{IDField: id}
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		o.Value = v
		return o, nil
	})
}

func writeNumberVariable(w *byteWriter, o *NumberVariable) { w.u32(o.Value) }

type StringVariable struct {
	IDField ObjectID
	Value   string
}

func (o *StringVariable) Type() ObjectType { return ObjectTypeStringVariable }
func (o *StringVariable) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeStringVariable, func(r *byteReader, id ObjectID) (Object, error) {
		o := &StringVariable{IDField: id}
		b, err := r.bytesU16Len()
		if err != nil {
			return nil, err
		}
		o.Value = string(b)
		return o, nil
	})
}

func writeStringVariable(w *byteWriter, o *StringVariable) { w.bytesU16Len([]byte(o.Value)) }

// ---- Attribute objects ------------------------------------------------

type FontAttributes struct {
	IDField   ObjectID
	Colour    Colour
	Size      uint8
	FontType  uint8
	Style     uint8
	MacroRefs []MacroRef
}

func (o *FontAttributes) Type() ObjectType { return ObjectTypeFontAttributes }
func (o *FontAttributes) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeFontAttributes, func(r *byteReader, id ObjectID) (Object, error) {
		o := &FontAttributes{IDField: id}
		var err error
		if o.Colour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Size, err = r.u8(); err != nil {
			return nil, err
		}
		if o.FontType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Style, err = r.u8(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeFontAttributes(w *byteWriter, o *FontAttributes) {
	w.colour(o.Colour)
	w.u8(o.Size)
	w.u8(o.FontType)
	w.u8(o.Style)
	w.macroRefs(o.MacroRefs)
}

type LineAttributes struct {
	IDField   ObjectID
	Colour    Colour
	Width     uint8
	LineArt   uint16
	MacroRefs []MacroRef
}

func (o *LineAttributes) Type() ObjectType { return ObjectTypeLineAttributes }
func (o *LineAttributes) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeLineAttributes, func(r *byteReader, id ObjectID) (Object, error) {
		o := &LineAttributes{IDField: id}
		var err error
		if o.Colour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Width, err = r.u8(); err != nil {
			return nil, err
		}
		if o.LineArt, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeLineAttributes(w *byteWriter, o *LineAttributes) {
	w.colour(o.Colour)
	w.u8(o.Width)
	w.u16(o.LineArt)
	w.macroRefs(o.MacroRefs)
}

type FillAttributes struct {
	IDField     ObjectID
	FillType    uint8
	Colour      Colour
	FillPattern NullableObjectID
	MacroRefs   []MacroRef
}

func (o *FillAttributes) Type() ObjectType { return ObjectTypeFillAttributes }
func (o *FillAttributes) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeFillAttributes, func(r *byteReader, id ObjectID) (Object, error) {
		o := &FillAttributes{IDField: id}
		var err error
		if o.FillType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Colour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FillPattern, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeFillAttributes(w *byteWriter, o *FillAttributes) {
	w.u8(o.FillType)
	w.colour(o.Colour)
	w.nullableObjectID(o.FillPattern)
	w.macroRefs(o.MacroRefs)
}

type InputAttributes struct {
	IDField        ObjectID
	ValidationType uint8
	ValidationStr  string
	MacroRefs      []MacroRef
}

func (o *InputAttributes) Type() ObjectType { return ObjectTypeInputAttributes }
func (o *InputAttributes) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeInputAttributes, func(r *byteReader, id ObjectID) (Object, error) {
		o := &InputAttributes{IDField: id}
		var err error
		if o.ValidationType, err = r.u8(); err != nil {
			return nil, err
		}
		b, err := r.bytesU8Len()
		if err != nil {
			return nil, err
		}
		o.ValidationStr = string(b)
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeInputAttributes(w *byteWriter, o *InputAttributes) {
	w.u8(o.ValidationType)
	w.bytesU8Len([]byte(o.ValidationStr))
	w.macroRefs(o.MacroRefs)
}

// ---- Object Pointer / Macro ------------------------------------------

type ObjectPointer struct {
	IDField ObjectID
	Value   NullableObjectID
}

func (o *ObjectPointer) Type() ObjectType { return ObjectTypeObjectPointer }
func (o *ObjectPointer) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeObjectPointer, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ObjectPointer{IDField: id}
		v, err := r.nullableObjectID()
		if err != nil {
			return nil, err
		}
		o.Value = v
		return o, nil
	})
}

func writeObjectPointer(w *byteWriter, o *ObjectPointer) { w.nullableObjectID(o.Value) }

type Macro struct {
	IDField ObjectID
	Command []byte
}

func (o *Macro) Type() ObjectType { return ObjectTypeMacro }
func (o *Macro) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeMacro, func(r *byteReader, id ObjectID) (Object, error) {
		o := &Macro{IDField: id}
		b, err := r.bytesU16Len()
		if err != nil {
			return nil, err
		}
		o.Command = b
		return o, nil
	})
}

func writeMacro(w *byteWriter, o *Macro) { w.bytesU16Len(o.Command) }

// ---- Auxiliary control objects ------------------------------------------

type AuxiliaryFunctionType1 struct {
	IDField      ObjectID
	BgColour     Colour
	FunctionType uint8
	ObjectRefs   []ObjectRef
}

func (o *AuxiliaryFunctionType1) Type() ObjectType { return ObjectTypeAuxiliaryFunctionType1 }
func (o *AuxiliaryFunctionType1) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeAuxiliaryFunctionType1, func(r *byteReader, id ObjectID) (Object, error) {
		o := &AuxiliaryFunctionType1{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FunctionType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeAuxiliaryFunctionType1(w *byteWriter, o *AuxiliaryFunctionType1) {
	w.colour(o.BgColour)
	w.u8(o.FunctionType)
	w.objectRefs(o.ObjectRefs)
}

type AuxiliaryInputType1 struct {
	IDField      ObjectID
	BgColour     Colour
	FunctionType uint8
	InputID      uint8
	ObjectRefs   []ObjectRef
}

func (o *AuxiliaryInputType1) Type() ObjectType { return ObjectTypeAuxiliaryInputType1 }
func (o *AuxiliaryInputType1) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeAuxiliaryInputType1, func(r *byteReader, id ObjectID) (Object, error) {
		o := &AuxiliaryInputType1{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FunctionType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.InputID, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeAuxiliaryInputType1(w *byteWriter, o *AuxiliaryInputType1) {
	w.colour(o.BgColour)
	w.u8(o.FunctionType)
	w.u8(o.InputID)
	w.objectRefs(o.ObjectRefs)
}

type AuxiliaryFunctionType2 struct {
	IDField            ObjectID
	BgColour           Colour
	FunctionAttributes uint8
	ObjectRefs         []ObjectRef
}

func (o *AuxiliaryFunctionType2) Type() ObjectType { return ObjectTypeAuxiliaryFunctionType2 }
func (o *AuxiliaryFunctionType2) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeAuxiliaryFunctionType2, func(r *byteReader, id ObjectID) (Object, error) {
		o := &AuxiliaryFunctionType2{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FunctionAttributes, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeAuxiliaryFunctionType2(w *byteWriter, o *AuxiliaryFunctionType2) {
	w.colour(o.BgColour)
	w.u8(o.FunctionAttributes)
	w.objectRefs(o.ObjectRefs)
}

type AuxiliaryInputType2 struct {
	IDField            ObjectID
	BgColour           Colour
	FunctionAttributes uint8
	ObjectRefs         []ObjectRef
}

func (o *AuxiliaryInputType2) Type() ObjectType { return ObjectTypeAuxiliaryInputType2 }
func (o *AuxiliaryInputType2) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeAuxiliaryInputType2, func(r *byteReader, id ObjectID) (Object, error) {
		o := &AuxiliaryInputType2{IDField: id}
		var err error
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FunctionAttributes, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeAuxiliaryInputType2(w *byteWriter, o *AuxiliaryInputType2) {
	w.colour(o.BgColour)
	w.u8(o.FunctionAttributes)
	w.objectRefs(o.ObjectRefs)
}

type AuxiliaryControlDesignatorType2 struct {
	IDField           ObjectID
	PointerType       uint8
	AuxiliaryObjectID ObjectID
}

func (o *AuxiliaryControlDesignatorType2) Type() ObjectType {
	return ObjectTypeAuxiliaryControlDesignatorType2
}
func (o *AuxiliaryControlDesignatorType2) ID() ObjectID { return o.IDField }

func init() {
	register(ObjectTypeAuxiliaryControlDesignatorType2, func(r *byteReader, id ObjectID) (Object, error) {
		o := &AuxiliaryControlDesignatorType2{IDField: id}
		var err error
		if o.PointerType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.AuxiliaryObjectID, err = r.objectID(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeAuxiliaryControlDesignatorType2(w *byteWriter, o *AuxiliaryControlDesignatorType2) {
	w.u8(o.PointerType)
	w.objectID(o.AuxiliaryObjectID)
}

// ---- Window Mask / Key Group ---------------------------------------------

type WindowMask struct {
	IDField    ObjectID
	CellFormatX uint8
	CellFormatY uint8
	WindowType  uint8
	BgColour    Colour
	Options     uint8
	Name        NullableObjectID
	Title       NullableObjectID
	Icon        NullableObjectID
	Objects     []ObjectID
	ObjectRefs  []ObjectRef
	MacroRefs   []MacroRef
}

func (o *WindowMask) Type() ObjectType { return ObjectTypeWindowMask }
func (o *WindowMask) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeWindowMask, func(r *byteReader, id ObjectID) (Object, error) {
		o := &WindowMask{IDField: id}
		var err error
		if o.CellFormatX, err = r.u8(); err != nil {
			return nil, err
		}
		if o.CellFormatY, err = r.u8(); err != nil {
			return nil, err
		}
		if o.WindowType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.BgColour, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Name, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Title, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Icon, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Objects, err = r.objectIDs(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeWindowMask(w *byteWriter, o *WindowMask) {
	w.u8(o.CellFormatX)
	w.u8(o.CellFormatY)
	w.u8(o.WindowType)
	w.colour(o.BgColour)
	w.u8(o.Options)
	w.nullableObjectID(o.Name)
	w.nullableObjectID(o.Title)
	w.nullableObjectID(o.Icon)
	w.objectIDs(o.Objects)
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
}

type KeyGroup struct {
	IDField   ObjectID
	Options   uint8
	Name      NullableObjectID
	Icon      NullableObjectID
	Objects   []ObjectID
	MacroRefs []MacroRef
}

func (o *KeyGroup) Type() ObjectType { return ObjectTypeKeyGroup }
func (o *KeyGroup) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeKeyGroup, func(r *byteReader, id ObjectID) (Object, error) {
		o := &KeyGroup{IDField: id}
		var err error
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Name, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Icon, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Objects, err = r.objectIDs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeKeyGroup(w *byteWriter, o *KeyGroup) {
	w.u8(o.Options)
	w.nullableObjectID(o.Name)
	w.nullableObjectID(o.Icon)
	w.objectIDs(o.Objects)
	w.macroRefs(o.MacroRefs)
}

// ---- Graphics Context ------------------------------------------------

type GraphicsContext struct {
	IDField       ObjectID
	ViewportWidth uint16
	ViewportHeight uint16
	ViewportX     int16
	ViewportY     int16
	CanvasWidth   uint16
	CanvasHeight  uint16
	Zoom          float32
	CursorX       int16
	CursorY       int16
	Fg            Colour
	Bg            Colour
	FontAttrs     NullableObjectID
	LineAttrs     NullableObjectID
	FillAttrs     NullableObjectID
	Format        uint8
	Options       uint8
	Transparency  Colour
}

func (o *GraphicsContext) Type() ObjectType { return ObjectTypeGraphicsContext }
func (o *GraphicsContext) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeGraphicsContext, func(r *byteReader, id ObjectID) (Object, error) {
		o := &GraphicsContext{IDField: id}
		var err error
		if o.ViewportWidth, err = r.u16(); err != nil {
			return nil, err
		}
		if o.ViewportHeight, err = r.u16(); err != nil {
			return nil, err
		}
		if o.ViewportX, err = r.i16(); err != nil {
			return nil, err
		}
		if o.ViewportY, err = r.i16(); err != nil {
			return nil, err
		}
		if o.CanvasWidth, err = r.u16(); err != nil {
			return nil, err
		}
		if o.CanvasHeight, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Zoom, err = r.f32(); err != nil {
			return nil, err
		}
		if o.CursorX, err = r.i16(); err != nil {
			return nil, err
		}
		if o.CursorY, err = r.i16(); err != nil {
			return nil, err
		}
		if o.Fg, err = r.colour(); err != nil {
			return nil, err
		}
		if o.Bg, err = r.colour(); err != nil {
			return nil, err
		}
		if o.FontAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.LineAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.FillAttrs, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.Format, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Transparency, err = r.colour(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeGraphicsContext(w *byteWriter, o *GraphicsContext) {
	w.u16(o.ViewportWidth)
	w.u16(o.ViewportHeight)
	w.i16(o.ViewportX)
	w.i16(o.ViewportY)
	w.u16(o.CanvasWidth)
	w.u16(o.CanvasHeight)
	w.f32(o.Zoom)
	w.i16(o.CursorX)
	w.i16(o.CursorY)
	w.colour(o.Fg)
	w.colour(o.Bg)
	w.nullableObjectID(o.FontAttrs)
	w.nullableObjectID(o.LineAttrs)
	w.nullableObjectID(o.FillAttrs)
	w.u8(o.Format)
	w.u8(o.Options)
	w.colour(o.Transparency)
}

// ---- Extended Input Attributes --------------------------------------

type CodePlaneRange struct {
	FirstChar uint16
	LastChar  uint16
}

type CodePlane struct {
	Number uint8
	Ranges []CodePlaneRange
}

type ExtendedInputAttributes struct {
	IDField        ObjectID
	ValidationType uint8
	CodePlanes     []CodePlane
}

func (o *ExtendedInputAttributes) Type() ObjectType { return ObjectTypeExtendedInputAttributes }
func (o *ExtendedInputAttributes) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeExtendedInputAttributes, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ExtendedInputAttributes{IDField: id}
		var err error
		if o.ValidationType, err = r.u8(); err != nil {
			return nil, err
		}
		n, err := r.u8()
		if err != nil {
			return nil, err
		}
		for i := uint8(0); i < n; i++ {
			number, err := r.u8()
			if err != nil {
				return nil, err
			}
			rangeCount, err := r.u8()
			if err != nil {
				return nil, err
			}
			plane := CodePlane{Number: number}
			for j := uint8(0); j < rangeCount; j++ {
				first, err := r.u16()
				if err != nil {
					return nil, err
				}
				last, err := r.u16()
				if err != nil {
					return nil, err
				}
				plane.Ranges = append(plane.Ranges, CodePlaneRange{FirstChar: first, LastChar: last})
			}
			o.CodePlanes = append(o.CodePlanes, plane)
		}
		return o, nil
	})
}

func writeExtendedInputAttributes(w *byteWriter, o *ExtendedInputAttributes) {
	w.u8(o.ValidationType)
	w.u8(uint8(len(o.CodePlanes)))
	for _, p := range o.CodePlanes {
		w.u8(p.Number)
		w.u8(uint8(len(p.Ranges)))
		for _, rg := range p.Ranges {
			w.u16(rg.FirstChar)
			w.u16(rg.LastChar)
		}
	}
}

// ---- Colour Map / Colour Palette --------------------------------------

type ColourMap struct {
	IDField ObjectID
	Indices []byte
}

func (o *ColourMap) Type() ObjectType { return ObjectTypeColourMap }
func (o *ColourMap) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeColourMap, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ColourMap{IDField: id}
		b, err := r.bytesU16Len()
		if err != nil {
			return nil, err
		}
		o.Indices = b
		return o, nil
	})
}

func writeColourMap(w *byteWriter, o *ColourMap) { w.bytesU16Len(o.Indices) }

// BGRAColour is a single palette entry, stored in the wire's own B, G,
// R, A octet order (spec §4.7).
type BGRAColour struct {
	B, G, R, A uint8
}

type ColourPalette struct {
	IDField ObjectID
	Options uint8
	Colours []BGRAColour
}

func (o *ColourPalette) Type() ObjectType { return ObjectTypeColourPalette }
func (o *ColourPalette) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeColourPalette, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ColourPalette{IDField: id}
		var err error
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		n, err := r.u16()
		if err != nil {
			return nil, err
		}
		for i := uint16(0); i < n; i++ {
			b, err := r.take(4)
			if err != nil {
				return nil, err
			}
			o.Colours = append(o.Colours, BGRAColour{B: b[0], G: b[1], R: b[2], A: b[3]})
		}
		return o, nil
	})
}

func writeColourPalette(w *byteWriter, o *ColourPalette) {
	w.u8(o.Options)
	w.u16(uint16(len(o.Colours)))
	for _, c := range o.Colours {
		w.u8(c.B)
		w.u8(c.G)
		w.u8(c.R)
		w.u8(c.A)
	}
}

// ---- Object Label Reference List --------------------------------------

type ObjectLabelReferenceList struct {
	IDField ObjectID
	Labels  []ObjectLabel
}

func (o *ObjectLabelReferenceList) Type() ObjectType { return ObjectTypeObjectLabelReferenceList }
func (o *ObjectLabelReferenceList) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeObjectLabelReferenceList, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ObjectLabelReferenceList{IDField: id}
		labels, err := r.objectLabels()
		if err != nil {
			return nil, err
		}
		o.Labels = labels
		return o, nil
	})
}

func writeObjectLabelReferenceList(w *byteWriter, o *ObjectLabelReferenceList) {
	w.objectLabels(o.Labels)
}

// ---- External object objects ------------------------------------------

type ExternalObjectDefinition struct {
	IDField ObjectID
	Options uint8
	Name    name.Name
	Objects []ObjectID
}

func (o *ExternalObjectDefinition) Type() ObjectType { return ObjectTypeExternalObjectDefinition }
func (o *ExternalObjectDefinition) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeExternalObjectDefinition, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ExternalObjectDefinition{IDField: id}
		var err error
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Name, err = r.nameField(); err != nil {
			return nil, err
		}
		if o.Objects, err = r.objectIDs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeExternalObjectDefinition(w *byteWriter, o *ExternalObjectDefinition) {
	w.u8(o.Options)
	w.nameField(o.Name)
	w.objectIDs(o.Objects)
}

type ExternalReferenceName struct {
	IDField ObjectID
	Options uint8
	Name    name.Name
}

func (o *ExternalReferenceName) Type() ObjectType { return ObjectTypeExternalReferenceName }
func (o *ExternalReferenceName) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeExternalReferenceName, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ExternalReferenceName{IDField: id}
		var err error
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Name, err = r.nameField(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeExternalReferenceName(w *byteWriter, o *ExternalReferenceName) {
	w.u8(o.Options)
	w.nameField(o.Name)
}

type ExternalObjectPointer struct {
	IDField      ObjectID
	DefaultID    NullableObjectID
	ExtRefNameID NullableObjectID
	ExtObjectID  NullableObjectID
}

func (o *ExternalObjectPointer) Type() ObjectType { return ObjectTypeExternalObjectPointer }
func (o *ExternalObjectPointer) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeExternalObjectPointer, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ExternalObjectPointer{IDField: id}
		var err error
		if o.DefaultID, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.ExtRefNameID, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.ExtObjectID, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeExternalObjectPointer(w *byteWriter, o *ExternalObjectPointer) {
	w.nullableObjectID(o.DefaultID)
	w.nullableObjectID(o.ExtRefNameID)
	w.nullableObjectID(o.ExtObjectID)
}

// ---- Animation ----------------------------------------------------------

type Animation struct {
	IDField         ObjectID
	Width           uint16
	Height          uint16
	RefreshInterval uint8
	Value           uint8
	Enabled         bool
	FirstChildIdx   uint8
	LastChildIdx    uint8
	DefaultChildIdx uint8
	Options         uint8
	ObjectRefs      []ObjectRef
	MacroRefs       []MacroRef
}

func (o *Animation) Type() ObjectType { return ObjectTypeAnimation }
func (o *Animation) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeAnimation, func(r *byteReader, id ObjectID) (Object, error) {
		o := &Animation{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.RefreshInterval, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Enabled, err = r.boolean(); err != nil {
			return nil, err
		}
		if o.FirstChildIdx, err = r.u8(); err != nil {
			return nil, err
		}
		if o.LastChildIdx, err = r.u8(); err != nil {
			return nil, err
		}
		if o.DefaultChildIdx, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.ObjectRefs, err = r.objectRefs(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeAnimation(w *byteWriter, o *Animation) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.u8(o.RefreshInterval)
	w.u8(o.Value)
	w.boolean(o.Enabled)
	w.u8(o.FirstChildIdx)
	w.u8(o.LastChildIdx)
	w.u8(o.DefaultChildIdx)
	w.u8(o.Options)
	w.objectRefs(o.ObjectRefs)
	w.macroRefs(o.MacroRefs)
}

// ---- Graphic Data ---------------------------------------------------

type GraphicData struct {
	IDField ObjectID
	Format  uint8
	Data    []byte
}

func (o *GraphicData) Type() ObjectType { return ObjectTypeGraphicData }
func (o *GraphicData) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeGraphicData, func(r *byteReader, id ObjectID) (Object, error) {
		o := &GraphicData{IDField: id}
		var err error
		if o.Format, err = r.u8(); err != nil {
			return nil, err
		}
		length, err := r.u32()
		if err != nil {
			return nil, err
		}
		if o.Data, err = r.take(int(length)); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeGraphicData(w *byteWriter, o *GraphicData) {
	w.u8(o.Format)
	w.u32(uint32(len(o.Data)))
	w.raw(o.Data)
}

// ---- Working Set Special Controls -------------------------------------

type LanguagePair struct {
	Command  string
	Language string
}

type WorkingSetSpecialControls struct {
	IDField        ObjectID
	ColourMapID    NullableObjectID
	ColourPaletteID NullableObjectID
	LanguagePairs  []LanguagePair
}

func (o *WorkingSetSpecialControls) Type() ObjectType { return ObjectTypeWorkingSetSpecialControls }
func (o *WorkingSetSpecialControls) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeWorkingSetSpecialControls, func(r *byteReader, id ObjectID) (Object, error) {
		o := &WorkingSetSpecialControls{IDField: id}
		var err error
		if o.ColourMapID, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		if o.ColourPaletteID, err = r.nullableObjectID(); err != nil {
			return nil, err
		}
		n, err := r.u8()
		if err != nil {
			return nil, err
		}
		for i := uint8(0); i < n; i++ {
			cmd, err := r.stringN(2)
			if err != nil {
				return nil, err
			}
			lang, err := r.stringN(2)
			if err != nil {
				return nil, err
			}
			o.LanguagePairs = append(o.LanguagePairs, LanguagePair{Command: cmd, Language: lang})
		}
		return o, nil
	})
}

func writeWorkingSetSpecialControls(w *byteWriter, o *WorkingSetSpecialControls) {
	w.nullableObjectID(o.ColourMapID)
	w.nullableObjectID(o.ColourPaletteID)
	w.u8(uint8(len(o.LanguagePairs)))
	for _, p := range o.LanguagePairs {
		w.stringN(p.Command, 2)
		w.stringN(p.Language, 2)
	}
}

// ---- Scaled Graphic ------------------------------------------------------

type ScaledGraphic struct {
	IDField   ObjectID
	Width     uint16
	Height    uint16
	ScaleType uint8
	Options   uint8
	Value     uint16
	MacroRefs []MacroRef
}

func (o *ScaledGraphic) Type() ObjectType { return ObjectTypeScaledGraphic }
func (o *ScaledGraphic) ID() ObjectID     { return o.IDField }

func init() {
	register(ObjectTypeScaledGraphic, func(r *byteReader, id ObjectID) (Object, error) {
		o := &ScaledGraphic{IDField: id}
		var err error
		if o.Width, err = r.u16(); err != nil {
			return nil, err
		}
		if o.Height, err = r.u16(); err != nil {
			return nil, err
		}
		if o.ScaleType, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Options, err = r.u8(); err != nil {
			return nil, err
		}
		if o.Value, err = r.u16(); err != nil {
			return nil, err
		}
		if o.MacroRefs, err = r.macroRefs(); err != nil {
			return nil, err
		}
		return o, nil
	})
}

func writeScaledGraphic(w *byteWriter, o *ScaledGraphic) {
	w.u16(o.Width)
	w.u16(o.Height)
	w.u8(o.ScaleType)
	w.u8(o.Options)
	w.u16(o.Value)
	w.macroRefs(o.MacroRefs)
}

// writeBody dispatches an Object to its body writer. Every registered
// ObjectType must have a case here; a missing one is a programming
// error caught by the object-pool round-trip tests.
func writeBody(w *byteWriter, o Object) {
	switch v := o.(type) {
	case *WorkingSet:
		writeWorkingSet(w, v)
	case *DataMask:
		writeDataMask(w, v)
	case *AlarmMask:
		writeAlarmMask(w, v)
	case *Container:
		writeContainer(w, v)
	case *SoftKeyMask:
		writeSoftKeyMask(w, v)
	case *Key:
		writeKey(w, v)
	case *Button:
		writeButton(w, v)
	case *InputBoolean:
		writeInputBoolean(w, v)
	case *InputString:
		writeInputString(w, v)
	case *InputNumber:
		writeInputNumber(w, v)
	case *InputList:
		writeInputList(w, v)
	case *OutputString:
		writeOutputString(w, v)
	case *OutputNumber:
		writeOutputNumber(w, v)
	case *OutputLine:
		writeOutputLine(w, v)
	case *OutputRectangle:
		writeOutputRectangle(w, v)
	case *OutputEllipse:
		writeOutputEllipse(w, v)
	case *OutputPolygon:
		writeOutputPolygon(w, v)
	case *OutputMeter:
		writeOutputMeter(w, v)
	case *OutputLinearBarGraph:
		writeOutputLinearBarGraph(w, v)
	case *OutputArchedBarGraph:
		writeOutputArchedBarGraph(w, v)
	case *PictureGraphic:
		writePictureGraphic(w, v)
	case *NumberVariable:
		writeNumberVariable(w, v)
	case *StringVariable:
		writeStringVariable(w, v)
	case *FontAttributes:
		writeFontAttributes(w, v)
	case *LineAttributes:
		writeLineAttributes(w, v)
	case *FillAttributes:
		writeFillAttributes(w, v)
	case *InputAttributes:
		writeInputAttributes(w, v)
	case *ObjectPointer:
		writeObjectPointer(w, v)
	case *Macro:
		writeMacro(w, v)
	case *AuxiliaryFunctionType1:
		writeAuxiliaryFunctionType1(w, v)
	case *AuxiliaryInputType1:
		writeAuxiliaryInputType1(w, v)
	case *AuxiliaryFunctionType2:
		writeAuxiliaryFunctionType2(w, v)
	case *AuxiliaryInputType2:
		writeAuxiliaryInputType2(w, v)
	case *AuxiliaryControlDesignatorType2:
		writeAuxiliaryControlDesignatorType2(w, v)
	case *WindowMask:
		writeWindowMask(w, v)
	case *KeyGroup:
		writeKeyGroup(w, v)
	case *GraphicsContext:
		writeGraphicsContext(w, v)
	case *OutputList:
		writeOutputList(w, v)
	case *ExtendedInputAttributes:
		writeExtendedInputAttributes(w, v)
	case *ColourMap:
		writeColourMap(w, v)
	case *ObjectLabelReferenceList:
		writeObjectLabelReferenceList(w, v)
	case *ExternalObjectDefinition:
		writeExternalObjectDefinition(w, v)
	case *ExternalReferenceName:
		writeExternalReferenceName(w, v)
	case *ExternalObjectPointer:
		writeExternalObjectPointer(w, v)
	case *Animation:
		writeAnimation(w, v)
	case *ColourPalette:
		writeColourPalette(w, v)
	case *GraphicData:
		writeGraphicData(w, v)
	case *WorkingSetSpecialControls:
		writeWorkingSetSpecialControls(w, v)
	case *ScaledGraphic:
		writeScaledGraphic(w, v)
	default:
		panic(fmtUnknownObject(o))
	}
}

func fmtUnknownObject(o Object) string {
	return "objectpool: no writer registered for object type " + itoa(uint8(o.Type()))
}

func itoa(v uint8) string {
	if v == 0 {
		return "0"
	}
	var b [3]byte
	i := len(b)
	for v > 0 {
		i--
		b[i] = byte('0' + v%10)
		v /= 10
	}
	return string(b[i:])
}
