package name

import "testing"

func TestIndustryGroupString(t *testing.T) {
	cases := []struct {
		g    IndustryGroup
		want string
	}{
		{IndustryGroupAgriculturalAndForestryEquipment, "AgriculturalAndForestryEquipment"},
		{IndustryGroupOnHighwayEquipment, "OnHighwayEquipment"},
		{IndustryGroup(200), "Unknown"},
	}
	for _, c := range cases {
		if got := c.g.String(); got != c.want {
			t.Errorf("IndustryGroup(%d).String() = %q, want %q", c.g, got, c.want)
		}
	}
}

func TestParseFunctionCode(t *testing.T) {
	cases := []struct {
		raw  uint8
		want FunctionCode
	}{
		{29, FunctionCodeVirtualTerminal},
		{132, FunctionCodeMachineControl},
		{0, FunctionCodeNotAvailable},
	}
	for _, c := range cases {
		if got := ParseFunctionCode(c.raw); got != c.want {
			t.Errorf("ParseFunctionCode(%d) = %v, want %v", c.raw, got, c.want)
		}
	}
	if got := FunctionCodeVirtualTerminal.String(); got != "VirtualTerminal" {
		t.Errorf("String() = %q, want VirtualTerminal", got)
	}
}

func TestParseDeviceClass(t *testing.T) {
	dc := ParseDeviceClass(5, IndustryGroupAgriculturalAndForestryEquipment)
	if got := dc.String(); got != "Fertilizers" {
		t.Errorf("String() = %q, want Fertilizers", got)
	}
	if got := dc.Code(); got != 5 {
		t.Errorf("Code() = %d, want 5", got)
	}
	if got := dc.IndustryGroup(); got != IndustryGroupAgriculturalAndForestryEquipment {
		t.Errorf("IndustryGroup() = %v, want AgriculturalAndForestryEquipment", got)
	}

	// Same raw code, different industry group: the SAE table reuses
	// numeric codes across groups, so the name must differ.
	dc = ParseDeviceClass(5, IndustryGroupConstructionEquipment)
	if got := dc.String(); got != "Excavator" {
		t.Errorf("String() = %q, want Excavator", got)
	}

	dc = ParseDeviceClass(250, IndustryGroupAgriculturalAndForestryEquipment)
	if got := dc.String(); got != "NotAvailable" {
		t.Errorf("String() = %q, want NotAvailable", got)
	}
}

func TestNameTypedAccessors(t *testing.T) {
	n := Build(1, 0x64, 0, 0, 29, 5, 0, 2, true)

	if got := n.IndustryGroupValue(); got != IndustryGroupAgriculturalAndForestryEquipment {
		t.Errorf("IndustryGroupValue() = %v, want AgriculturalAndForestryEquipment", got)
	}
	if got := n.FunctionCodeValue(); got != FunctionCodeVirtualTerminal {
		t.Errorf("FunctionCodeValue() = %v, want VirtualTerminal", got)
	}
	if got := n.DeviceClassValue().String(); got != "Fertilizers" {
		t.Errorf("DeviceClassValue().String() = %q, want Fertilizers", got)
	}
}
