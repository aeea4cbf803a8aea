package world

import (
	"strings"

	"world-scribe/services"
)

// ForbiddenNameChars may not appear in a World name because it becomes a folder name.
const ForbiddenNameChars = `/\.<>:"|?*`

// ValidateName checks a new World name and names the first rule it breaks.
func ValidateName(name string) error {
	switch {
	case name == "":
		return services.NewValidationError("World name cannot be empty")
	case strings.HasSuffix(name, " "):
		return services.NewValidationError("World name cannot end on a space")
	case strings.ContainsAny(name, ForbiddenNameChars):
		return services.NewValidationError("World name contains forbidden characters")
	}
	return nil
}
