package confirmation

import (
	"fmt"
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Prefix префикс номера подтверждения
	Prefix = "BK-"

	// без 0/O и 1/I, чтобы номер было удобно диктовать
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	length   = 8
)

var pattern = regexp.MustCompile(`^BK-[2-9A-HJ-NP-Z]{8}$`)

// Generate возвращает новый номер подтверждения вида BK-7KQ2M9XA
func Generate() (string, error) {
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("confirmation: generate id: %w", err)
	}
	return Prefix + id, nil
}

// IsValid проверяет формат номера подтверждения
func IsValid(s string) bool {
	return pattern.MatchString(s)
}
