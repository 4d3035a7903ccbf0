package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

var serialFolder = cases.Fold()

// NormalizeSerial normaliza un número de serie para comparación: recorta
// espacios y aplica case folding Unicode. La unicidad de seriales no
// distingue mayúsculas/minúsculas.
func NormalizeSerial(s string) string {
	return serialFolder.String(strings.TrimSpace(s))
}
