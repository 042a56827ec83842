package utils

import "github.com/google/uuid"

// IsUUID accepts only the canonical 36 character form stored in uuid columns.
func IsUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
