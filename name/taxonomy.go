package name

// IndustryGroup is the broad equipment category carried in a NAME's
// industry-group field (SAE J1939-81), grounded on the original
// stack's network_management/name/industry_group.rs.
type IndustryGroup uint8

const (
	IndustryGroupGlobal                           IndustryGroup = 0
	IndustryGroupOnHighwayEquipment                IndustryGroup = 1
	IndustryGroupAgriculturalAndForestryEquipment  IndustryGroup = 2
	IndustryGroupConstructionEquipment              IndustryGroup = 3
	IndustryGroupMarineEquipment                    IndustryGroup = 4
	IndustryGroupIndustrialProcessControl           IndustryGroup = 5
	IndustryGroupReservedForSAE1                    IndustryGroup = 6
	IndustryGroupReservedForSAE2                    IndustryGroup = 7
)

var industryGroupNames = map[IndustryGroup]string{
	IndustryGroupGlobal:                          "Global",
	IndustryGroupOnHighwayEquipment:               "OnHighwayEquipment",
	IndustryGroupAgriculturalAndForestryEquipment: "AgriculturalAndForestryEquipment",
	IndustryGroupConstructionEquipment:             "ConstructionEquipment",
	IndustryGroupMarineEquipment:                   "MarineEquipment",
	IndustryGroupIndustrialProcessControl:          "IndustrialProcessControl",
	IndustryGroupReservedForSAE1:                    "ReservedForSAE1",
	IndustryGroupReservedForSAE2:                    "ReservedForSAE2",
}

// String renders the Industry Group's name, falling back to "Unknown"
// for a raw value outside the 3-bit field's defined range (never
// happens in practice, since the field is masked to 3 bits, but a
// future SAE revision could add entries this table doesn't know yet).
func (g IndustryGroup) String() string {
	if s, ok := industryGroupNames[g]; ok {
		return s
	}
	return "Unknown"
}

// FunctionCode is the NAME function field's typed rendering. Only the
// two values spec.md's domain (agricultural VT + machine control)
// actually needs are named; every other raw value reports
// FunctionCodeNotAvailable, mirroring the original stack's own
// From<u8> fallback (function_code.rs).
type FunctionCode uint8

const (
	FunctionCodeNotAvailable  FunctionCode = 127
	FunctionCodeVirtualTerminal FunctionCode = 29
	FunctionCodeMachineControl  FunctionCode = 132
)

var functionCodeNames = map[FunctionCode]string{
	FunctionCodeNotAvailable:    "NotAvailable",
	FunctionCodeVirtualTerminal: "VirtualTerminal",
	FunctionCodeMachineControl:  "MachineControl",
}

func (f FunctionCode) String() string {
	if s, ok := functionCodeNames[f]; ok {
		return s
	}
	return "Unknown"
}

// ParseFunctionCode converts a NAME's raw function byte to its typed
// rendering, reporting FunctionCodeNotAvailable for any value this
// table doesn't recognize (original stack's From<u8> impl does the
// same instead of erroring).
func ParseFunctionCode(raw uint8) FunctionCode {
	switch FunctionCode(raw) {
	case FunctionCodeVirtualTerminal:
		return FunctionCodeVirtualTerminal
	case FunctionCodeMachineControl:
		return FunctionCodeMachineControl
	default:
		return FunctionCodeNotAvailable
	}
}

// DeviceClass is the NAME device-class field's typed rendering. Unlike
// IndustryGroup and FunctionCode, the same raw byte names a different
// device class depending on the NAME's own industry group (the
// original stack models this as From<(u8, Option<IndustryGroup>)>);
// DeviceClass here carries both the raw code and the industry group it
// was resolved against, rather than the algebraic sum type Go has no
// direct equivalent for.
type DeviceClass struct {
	code  uint8
	group IndustryGroup
}

// deviceClassNames maps (industry group, code) to its SAE name,
// transcribed from the active (non-commented-out) table in the
// original stack's device_class.rs.
var deviceClassNames = map[IndustryGroup]map[uint8]string{
	IndustryGroupIndustrialProcessControl: {
		0: "IndustrialProcessControlStationary",
	},
	IndustryGroupOnHighwayEquipment: {
		1: "Tractor",
		2: "Trailer",
	},
	IndustryGroupAgriculturalAndForestryEquipment: {
		0:  "NonSpecificSystem",
		1:  "Tractor",
		2:  "Tillage",
		3:  "SecondaryTillage",
		4:  "PlantersOrSeeders",
		5:  "Fertilizers",
		6:  "Sprayers",
		7:  "Harvesters",
		8:  "RootHarvesters",
		9:  "Forage",
		10: "Irrigation",
		11: "TransportOrTrailer",
		12: "FarmYardOperations",
		13: "PoweredAuxiliaryDevices",
		14: "SpecialCrops",
		15: "EarthWork",
		16: "Skidder",
		17: "SensorSystems",
		19: "TimberHarvesters",
		20: "Forwarders",
		21: "TimberLoaders",
		22: "TimberProcessingMachines",
		23: "Mulchers",
		24: "UtilityVehicles",
		25: "SlurryOrManureApplicators",
		26: "FeedersOrMixers",
		27: "Weeders",
	},
	IndustryGroupConstructionEquipment: {
		1:  "SkidSteerLoader",
		2:  "ArticulatedDumpTruck",
		3:  "Backhoe",
		4:  "Crawler",
		5:  "Excavator",
		6:  "Forklift",
		7:  "FourWheelDriveLoader",
		8:  "Grader",
		9:  "MillingMachine",
		10: "RecyclerAndSoilStabilizer",
		11: "BindingAgentSpreader",
		12: "Paver",
		13: "Feeder",
		14: "ScreeningPlant",
		15: "Stacker",
		16: "Roller",
		17: "Crusher",
	},
	IndustryGroupMarineEquipment: {
		10:  "SystemTools",
		20:  "SafetySystems",
		25:  "Gateway",
		30:  "PowerManagementAndLightingSystems",
		40:  "Steeringsystems",
		60:  "NavigationSystems",
		70:  "CommunicationsSystems",
		80:  "InstrumentationOrGeneralSystems",
		90:  "EnvironmentalSystems",
		100: "DeckCargoAndFishingEquipmentSystems",
	},
}

// ParseDeviceClass resolves a NAME's raw device-class byte against its
// industry group, since the SAE table reuses the same numeric codes
// across groups (original stack's From<(u8, Option<IndustryGroup>)>).
func ParseDeviceClass(raw uint8, group IndustryGroup) DeviceClass {
	return DeviceClass{code: raw, group: group}
}

// Code returns the raw device-class byte.
func (d DeviceClass) Code() uint8 { return d.code }

// IndustryGroup returns the industry group d was resolved against.
func (d DeviceClass) IndustryGroup() IndustryGroup { return d.group }

// String renders d's SAE name within its industry group, or
// "NotAvailable" if the group defines no entry for this code.
func (d DeviceClass) String() string {
	if names, ok := deviceClassNames[d.group]; ok {
		if s, ok := names[d.code]; ok {
			return s
		}
	}
	return "NotAvailable"
}

// IndustryGroupValue returns n's industry-group field as its typed
// enum, alongside the raw IndustryGroup() uint8 accessor.
func (n Name) IndustryGroupValue() IndustryGroup {
	return IndustryGroup(n.IndustryGroup())
}

// FunctionCodeValue returns n's function field as its typed enum,
// alongside the raw Function() uint8 accessor.
func (n Name) FunctionCodeValue() FunctionCode {
	return ParseFunctionCode(n.Function())
}

// DeviceClassValue returns n's device-class field resolved against its
// own industry group, alongside the raw DeviceClass() uint8 accessor.
func (n Name) DeviceClassValue() DeviceClass {
	return ParseDeviceClass(n.DeviceClass(), n.IndustryGroupValue())
}
