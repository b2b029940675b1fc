package jalali

// Range bounds a Jalali selection. Either side may be nil.
type Range struct {
	Min *Date `json:"min,omitempty"`
	Max *Date `json:"max,omitempty"`
}

// Clamp pulls the selection into r. The minimum is checked first, so an
// inverted range always yields the minimum.
func Clamp(selection Date, r Range) Date {
	if r.Min == nil && r.Max == nil {
		return selection
	}

	selectionJDN := PersianToJDN(selection.Year, selection.Month, selection.Day)
	if r.Min != nil && selectionJDN < PersianToJDN(r.Min.Year, r.Min.Month, r.Min.Day) {
		return *r.Min
	}
	if r.Max != nil && selectionJDN > PersianToJDN(r.Max.Year, r.Max.Month, r.Max.Day) {
		return *r.Max
	}
	return selection
}
