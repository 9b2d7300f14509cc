package contact

// FormatDisplay groups the digits of raw the way the phone input shows them:
// "801", "801 234", "801 234 5678". At most maxDigits digits are kept, plus
// one when the number starts with a local trunk '0'.
func FormatDisplay(raw string, maxDigits int) string {
	d := Digits(raw)
	if maxDigits <= 0 {
		maxDigits = MinDigits
	}
	if len(d) > 0 && d[0] == '0' {
		maxDigits++
	}
	if len(d) > maxDigits {
		d = d[:maxDigits]
	}

	// Group after the trunk prefix so "0801..." reads "0801 234 5678".
	head := 3
	if len(d) > 0 && d[0] == '0' {
		head = 4
	}
	switch {
	case len(d) > head+3:
		return d[:head] + " " + d[head:head+3] + " " + d[head+3:]
	case len(d) > head:
		return d[:head] + " " + d[head:]
	}
	return d
}

// InputMaxLength is the maxlength attribute for a widget holding maxDigits
// digits in FormatDisplay grouping, allowing for a trunk '0'.
func InputMaxLength(maxDigits int) int {
	if maxDigits <= 0 {
		maxDigits = MinDigits
	}
	return maxDigits + 1 + 2
}
