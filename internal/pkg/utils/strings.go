package utils

import "strings"

// NormalizeCode приводит alpha-код страны к канонической форме (lowercase,
// без пробелов). Все сравнения кодов в системе идут через эту функцию.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ValidateCode проверяет, что код - двухбуквенный alpha-код
func ValidateCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// NormalizeTerm подготавливает поисковый запрос к сравнению
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
