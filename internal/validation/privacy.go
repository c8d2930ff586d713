package validation

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/cv-builder/internal/types"
)

// minPhoneDigits guards against matching trivially short numbers.
const minPhoneDigits = 6

// CheckPhoneLeak scans the visible text of a public artifact for the phone
// number. Matching ignores LaTeX escapes and compares digit sequences, so
// "+1 (555) 010-0199" is found as "15550100199". One violation is reported
// per offending line.
func CheckPhoneLeak(text string, phone string) []types.Violation {
	needle := digitsOnly(phone)
	if len(needle) < minPhoneDigits {
		return nil
	}

	var violations []types.Violation
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if !strings.Contains(digitsOnly(unescapeLaTeX(scanner.Text())), needle) {
			continue
		}
		line := lineNum
		violations = append(violations, types.Violation{
			Type:       "phone_leak",
			Severity:   types.SeverityError,
			Details:    fmt.Sprintf("Line %d contains the private phone number", lineNum),
			LineNumber: &line,
		})
	}
	return violations
}

// unescapeLaTeX reverses the escapes applied when rendering so that text
// matches what a reader sees.
func unescapeLaTeX(text string) string {
	return strings.NewReplacer(
		`\$`, "$",
		`\&`, "&",
		`\%`, "%",
		`\#`, "#",
		`\_`, "_",
		`\{`, "{",
		`\}`, "}",
		`\textbackslash{}`, `\`,
		`--`, "-",
	).Replace(text)
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
