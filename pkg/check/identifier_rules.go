package check

import (
	"regexp"

	"github.com/google/uuid"
)

const plateProvince = `[京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼]`

var (
	// 18 digit IDs carry a 4 digit birth year and a check character,
	// 15 digit ones a 2 digit year and no check character.
	citizenID18Regex = regexp.MustCompile(`^[1-9]\d{5}(?:18|19|20)\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}[\dXx]$`)
	citizenID15Regex = regexp.MustCompile(`^[1-9]\d{7}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}$`)

	mobileRegex = regexp.MustCompile(`^(?:0|86|\+86)?1[3-9]\d{9}$`)

	postCodeRegex = regexp.MustCompile(`^(?:0[1-7]|1[0-356]|2[0-7]|3[0-6]|4[0-7]|5[1-7]|6[1-7]|7[0-5]|8[013-6])\d{4}$`)

	// Ordinary plates and the longer new energy plates. I and O are never issued.
	plateNumberRegex = regexp.MustCompile(`^(?:` +
		plateProvince + `[A-HJ-NP-Z][A-HJ-NP-Z0-9]{4}[A-HJ-NP-Z0-9挂学警港澳]` + `|` +
		plateProvince + `[A-HJ-NP-Z](?:[DF][A-HJ-NP-Z0-9]\d{4}|\d{5}[DF])` +
		`)$`)

	isbnRegex = regexp.MustCompile(`^(?:\d{9}[\dXx]|97[89]\d{10})$`)
)

// isUUID accepts the hyphenated form and the bare 32 character form.
// The braced and urn:uuid: forms are rejected.
func isUUID(_ Env, value any, _ string) bool {
	if isAbsent(value) {
		return false
	}
	s := stringify(value)
	if len(s) != 36 && len(s) != 32 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// isISBN checks the ISBN-10 and ISBN-13 shapes without verifying the check digit.
func isISBN(_ Env, value any, _ string) bool {
	return matchesFormat(isbnRegex, value)
}

func isCitizenID(_ Env, value any, _ string) bool {
	if isAbsent(value) {
		return false
	}
	s := stringify(value)
	return citizenID18Regex.MatchString(s) || citizenID15Regex.MatchString(s)
}

func isMobile(_ Env, value any, _ string) bool {
	return matchesFormat(mobileRegex, value)
}

func isPostCode(_ Env, value any, _ string) bool {
	return matchesFormat(postCodeRegex, value)
}

func isPlateNumber(_ Env, value any, _ string) bool {
	return matchesFormat(plateNumberRegex, value)
}
