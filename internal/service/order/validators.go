package order

import "strings"

func isValidOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}
