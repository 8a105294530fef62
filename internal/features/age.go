package features

// Age is the number of years between year and current.
func Age(current, year int) int {
	return current - year
}

// OptionalAge is the age of an optional year. An unset year falls back to the age of the
// house itself, so an untouched renovation control never reports a 200-year-old renovation.
func OptionalAge(current, built int, y OptionalYear) int {
	if year, ok := y.Get(); ok {
		return Age(current, year)
	}
	return Age(current, built)
}
