package postgresdb

import (
	"fmt"
	"regexp"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// QuoteIdentifier validates and quotes a single SQL identifier.
func QuoteIdentifier(name string) (string, error) {
	if !identifierPattern.MatchString(name) {
		return "", fmt.Errorf("invalid identifier format: %q", name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}
