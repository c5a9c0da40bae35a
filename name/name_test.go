package name

import "testing"

func TestNameProperties(t *testing.T) {
	var n Name
	n.SetSelfConfigurableAddress(true)
	n.SetIndustryGroup(1)
	n.SetDeviceClass(2)
	n.SetFunction(3)
	n.SetIdentityNumber(4)
	n.SetEcuInstance(5)
	n.SetFunctionInstance(6)
	n.SetDeviceClassInstance(7)
	n.SetManufacturerCode(8)

	if !n.SelfConfigurableAddress() {
		t.Error("self configurable address")
	}
	if got := n.IndustryGroup(); got != 1 {
		t.Errorf("industry group = %d, want 1", got)
	}
	if got := n.DeviceClass(); got != 2 {
		t.Errorf("device class = %d, want 2", got)
	}
	if got := n.Function(); got != 3 {
		t.Errorf("function = %d, want 3", got)
	}
	if got := n.IdentityNumber(); got != 4 {
		t.Errorf("identity number = %d, want 4", got)
	}
	if got := n.EcuInstance(); got != 5 {
		t.Errorf("ecu instance = %d, want 5", got)
	}
	if got := n.FunctionInstance(); got != 6 {
		t.Errorf("function instance = %d, want 6", got)
	}
	if got := n.DeviceClassInstance(); got != 7 {
		t.Errorf("device class instance = %d, want 7", got)
	}
	if got := n.ManufacturerCode(); got != 8 {
		t.Errorf("manufacturer code = %d, want 8", got)
	}
	if got := n.Raw(); got != 10881826125818888196 {
		t.Errorf("raw = %d, want 10881826125818888196", got)
	}
}

func TestBuild(t *testing.T) {
	n := Build(4, 8, 5, 6, 3, 2, 7, 1, true)
	if got := n.Raw(); got != 10881826125818888196 {
		t.Errorf("raw = %d, want 10881826125818888196", got)
	}
}

func TestOutOfRangeFieldsAreMasked(t *testing.T) {
	var n Name
	n.SetIndustryGroup(8) // 3 bits, max 7
	n.SetDeviceClassInstance(16)
	n.SetDeviceClass(128)
	n.SetIdentityNumber(2097152)
	n.SetEcuInstance(8)
	n.SetFunctionInstance(32)
	n.SetManufacturerCode(2048)

	if n.IndustryGroup() == 8 {
		t.Error("industry group not masked")
	}
	if n.DeviceClassInstance() == 16 {
		t.Error("device class instance not masked")
	}
	if n.DeviceClass() == 128 {
		t.Error("device class not masked")
	}
	if n.IdentityNumber() == 2097152 {
		t.Error("identity number not masked")
	}
	if n.EcuInstance() == 8 {
		t.Error("ecu instance not masked")
	}
	if n.FunctionInstance() == 32 {
		t.Error("function instance not masked")
	}
	if n.ManufacturerCode() == 2048 {
		t.Error("manufacturer code not masked")
	}
}

func TestMatchesIsConjunction(t *testing.T) {
	var n Name
	filters := []Filter{FilterIdentityNumber(1)}

	if Matches(n, filters) {
		t.Error("should not match before identity number is set")
	}
	n.SetIdentityNumber(1)
	if !Matches(n, filters) {
		t.Error("should match once identity number is set")
	}

	filters = append(filters, FilterManufacturerCode(2))
	if Matches(n, filters) {
		t.Error("should not match before manufacturer code is set")
	}
	n.SetManufacturerCode(2)
	if !Matches(n, filters) {
		t.Error("should match once manufacturer code is set")
	}
}

func TestMatchesEmptyFilterNeverMatches(t *testing.T) {
	var n Name
	n.SetIdentityNumber(42)
	if Matches(n, nil) {
		t.Error("empty filter list must never match")
	}
}

func TestMatchesDefaultNameNeverMatches(t *testing.T) {
	n := Name(Default)
	if Matches(n, []Filter{FilterIdentityNumber(0)}) {
		t.Error("default NAME must never match")
	}
}
