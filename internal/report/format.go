package report

import (
	"strings"
	"unicode"
)

const displayDateLayout = "Jan 2, 2006 3:04 PM"

// DisplayRow is a Row with every cell formatted for the dashboard.
type DisplayRow struct {
	ID            int64  `json:"id"`
	DateCreated   string `json:"date_created"`
	CompanyName   string `json:"companyname"`
	ContactPerson string `json:"contactperson"`
	SONumber      string `json:"sonumber"`
	SOAmount      string `json:"soamount"`
	Status        string `json:"activitystatus"`
	Remarks       string `json:"remarks"`
}

func Display(r Row) DisplayRow {
	remarks := Capitalize(r.Remarks)
	if strings.TrimSpace(remarks) == "" {
		remarks = "-"
	}
	return DisplayRow{
		ID:            r.ID,
		DateCreated:   FormatDate(r.DateCreated),
		CompanyName:   strings.ToUpper(r.CompanyName),
		ContactPerson: Capitalize(r.ContactPerson),
		SONumber:      r.SONumber,
		SOAmount:      FormatPeso(r.SOAmount),
		Status:        r.Status,
		Remarks:       remarks,
	}
}

// FormatDate renders a creation date in UTC. Text that is not a date is
// returned as is.
func FormatDate(s string) string {
	t, ok := parseRowDate(s)
	if !ok {
		return s
	}
	return t.UTC().Format(displayDateLayout)
}

// FormatPeso renders a numeric amount as "₱1,234.50". A non-numeric amount
// is shown unchanged.
func FormatPeso(a Amount) string {
	if !a.Numeric() {
		return string(a)
	}
	fixed := a.Value().StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "₱" + b.String() + "." + frac
}

// Capitalize upper-cases the first letter of every word and leaves the rest
// alone.
func Capitalize(s string) string {
	out := []rune(s)
	start := true
	for i, r := range out {
		if unicode.IsSpace(r) {
			start = true
			continue
		}
		if start {
			out[i] = unicode.ToUpper(r)
			start = false
		}
	}
	return string(out)
}
