package name

// Filter is a predicate over a single NAME field. The zero value of
// Filter is invalid; use one of the Filterby constructors.
type Filter struct {
	field func(Name) bool
}

// Matches reports whether n satisfies this single-field predicate.
func (f Filter) Matches(n Name) bool { return f.field(n) }

func FilterIdentityNumber(v uint32) Filter {
	return Filter{func(n Name) bool { return n.IdentityNumber() == v }}
}

func FilterManufacturerCode(v uint16) Filter {
	return Filter{func(n Name) bool { return n.ManufacturerCode() == v }}
}

func FilterEcuInstance(v uint8) Filter {
	return Filter{func(n Name) bool { return n.EcuInstance() == v }}
}

func FilterFunctionInstance(v uint8) Filter {
	return Filter{func(n Name) bool { return n.FunctionInstance() == v }}
}

func FilterFunction(v uint8) Filter {
	return Filter{func(n Name) bool { return n.Function() == v }}
}

func FilterDeviceClass(v uint8) Filter {
	return Filter{func(n Name) bool { return n.DeviceClass() == v }}
}

func FilterDeviceClassInstance(v uint8) Filter {
	return Filter{func(n Name) bool { return n.DeviceClassInstance() == v }}
}

func FilterIndustryGroup(v uint8) Filter {
	return Filter{func(n Name) bool { return n.IndustryGroup() == v }}
}

func FilterSelfConfigurableAddress(v bool) Filter {
	return Filter{func(n Name) bool { return n.SelfConfigurableAddress() == v }}
}

// Matches reports whether n satisfies every filter, as a plain
// conjunction. Two explicit rules, preserved from the original stack's
// behavior despite its tangled break/reset implementation (spec §4.2):
// an empty filter list never matches anything, and the default
// (all-ones) NAME never matches anything regardless of filters.
func Matches(n Name, filters []Filter) bool {
	if len(filters) == 0 {
		return false
	}
	if n.IsDefault() {
		return false
	}
	for _, f := range filters {
		if !f.Matches(n) {
			return false
		}
	}
	return true
}
