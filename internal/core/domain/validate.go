package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field validators are pure: they take a candidate string and return the
// normalised value plus an accepted/rejected verdict. They never touch the
// record or the issue report - callers decide whether a rejection clears the
// field, applies a default, or gets reported. The registry web form does no
// validation at all, so these rules encode years of accumulated cleanup
// heuristics; change them carefully.

var (
	reChipISO    = regexp.MustCompile(`^9\d{14}$`)
	reChipLegacy = regexp.MustCompile(`^202\d{12}$`)
	reChipFDXA   = regexp.MustCompile(`^[0-9a-fA-F]{10}$`)
	reChipNine   = regexp.MustCompile(`^(\d{3})[ *]?(\d{3})[ *]?(\d{3})$`)
	rePhone      = regexp.MustCompile(`^\+?1?\s?\(?(\d{3})\)?[\s\-/*,.]*(\d{3})[\s\-=*,.]*(\d{4})$`)
	reZip        = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	reEmail      = regexp.MustCompile(`^[A-Za-z0-9_%+.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reDate       = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reAge        = regexp.MustCompile(`^(\d+)\syears\s(\d+)\smonths$`)
)

// usStates holds every USPS state and territory code, pipe-delimited so the
// lookup can anchor each candidate between delimiters.
const usStates = "|AL|AK|AS|AZ|AR|CA|CO|CT|DE|DC|FM|FL|GA|GU|HI|ID|IL|IN|IA|KS|KY|LA|ME|MH|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|MP|OH|OK|OR|PW|PA|PR|RI|SC|SD|TN|TX|UT|VT|VI|VA|WA|WV|WI|WY|"

// CheckChip validates a microchip number and returns the normalised form.
// Accepted formats:
//
//   - ISO/FDX-B: exactly 15 decimal digits beginning with 9
//   - the 202-prefix manufacturer exception (3 + 12 digits)
//   - FDX-A: exactly 10 hexadecimal characters
//   - legacy 9-digit chips written as three digit triplets, optionally
//     separated by a space or asterisk; these are normalised to a bare
//     9-digit string
//
// A blank chip is rejected: "no chip recorded" is a valid record state, but
// it must be distinguished by the caller before asking whether the chip is
// well formed.
func CheckChip(chip string) (string, bool) {
	if chip == "" {
		return "", false
	}
	if reChipISO.MatchString(chip) || reChipLegacy.MatchString(chip) || reChipFDXA.MatchString(chip) {
		return chip, true
	}
	if m := reChipNine.FindStringSubmatch(chip); m != nil {
		return m[1] + m[2] + m[3], true
	}
	return chip, false
}

// CheckPhone validates a phone number and returns it normalised to exactly
// ten digits with no punctuation. Blank input and the literal "none"
// (any case) are accepted as "no phone" and normalise to the empty string.
// The pattern tolerates an optional leading +1, parentheses around the area
// code, and the separator characters people actually type between the digit
// groups. International numbers are not accepted.
func CheckPhone(phone string) (string, bool) {
	if phone == "" || strings.EqualFold(phone, "none") {
		return "", true
	}
	m := rePhone.FindStringSubmatch(phone)
	if m == nil {
		return "", false
	}
	return m[1] + m[2] + m[3], true
}

// CheckZip validates a zip code: five digits, or ZIP+4 as "nnnnn-nnnn".
// A blank zip is rejected.
func CheckZip(zip string) bool {
	return zip != "" && reZip.MatchString(zip)
}

// CheckEmail validates the shape of an email address. It proves only that
// the address looks deliverable, not that it is. Blank is rejected.
func CheckEmail(email string) bool {
	return email != "" && reEmail.MatchString(email)
}

// CheckState validates a USPS two-letter state or territory code and returns
// the value to store. A blank state is accepted and coerced to "CA" - enough
// of our records omit the state that treating blank as an error buries the
// real problems. Codes are matched case-sensitively; "ca" is rejected.
func CheckState(state string) (string, bool) {
	if state == "" {
		return "CA", true
	}
	if len(state) == 2 && strings.Contains(usStates, "|"+state+"|") {
		return state, true
	}
	return state, false
}

// CheckSex reports whether the sex field is "Male" or "Female", any case.
func CheckSex(sex string) bool {
	s := strings.ToLower(sex)
	return s == "male" || s == "female"
}

// CheckSpayNeuter reports whether the spay/neuter field is "Yes" or "No",
// any case.
func CheckSpayNeuter(v string) bool {
	s := strings.ToLower(v)
	return s == "yes" || s == "no"
}

// ParseDate parses a "YYYY-MM-DD" date string. Years outside [1990, 2099]
// are rejected; this is registry data, not history.
func ParseDate(date string) (year, month, day int, ok bool) {
	m := reDate.FindStringSubmatch(date)
	if m == nil {
		return 0, 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	day, _ = strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	if year < 1990 || year > 2099 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// FormatDate renders a date in the external service's "MM/DD/YYYY" format.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%02d/%02d/%04d", month, day, year)
}

// Birthday derives a date of birth from an age string of the form
// "<years> Years <months> Months" (any case) and a "YYYY-MM-DD" acquisition
// date. The registry records age only to month precision, so the day of
// month is always 01. Returns ok=false when either input is blank or
// malformed, when months exceed 12, or when years exceed 20.
func Birthday(age, dateAcquired string) (string, bool) {
	if age == "" || dateAcquired == "" {
		return "", false
	}
	m := reAge.FindStringSubmatch(strings.ToLower(age))
	if m == nil {
		return "", false
	}
	ageYears, _ := strconv.Atoi(m[1])
	ageMonths, _ := strconv.Atoi(m[2])
	if ageMonths > 12 || ageYears > 20 {
		return "", false
	}
	year, month, _, ok := ParseDate(dateAcquired)
	if !ok {
		return "", false
	}
	year -= ageYears
	month -= ageMonths
	if month < 1 {
		year--
		month += 12
	}
	return FormatDate(year, month, 1), true
}
