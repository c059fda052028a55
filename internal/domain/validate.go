package domain

import "strings"

// cpfLength is the length of a formatted CPF, e.g. "123.456.789-01".
const cpfLength = 14

// ValidateEmail performs the registry's syntactic email check: the address
// must contain both an '@' and a '.'. Domain validity is not checked.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeCPF returns cpf in its formatted 14 character form.
//
// Eleven bare digits are formatted as XXX.XXX.XXX-XX first. The result must
// have digits in every digit position and '.', '.', '-' in the separator
// positions. Check digits are not verified.
func NormalizeCPF(cpf string) (string, error) {
	cpf = strings.TrimSpace(cpf)
	if len(cpf) == 11 && allDigits(cpf) {
		cpf = cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
	}
	if len(cpf) != cpfLength {
		return "", ErrInvalidCPF
	}
	for i := 0; i < cpfLength; i++ {
		c := cpf[i]
		switch i {
		case 3, 7:
			if c != '.' {
				return "", ErrInvalidCPF
			}
		case 11:
			if c != '-' {
				return "", ErrInvalidCPF
			}
		default:
			if c < '0' || c > '9' {
				return "", ErrInvalidCPF
			}
		}
	}
	return cpf, nil
}
