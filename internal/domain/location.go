package domain

import "strings"

// LocationType where the service is provided
type LocationType string

const (
	LocationStudio LocationType = "STUDIO"
	LocationHome   LocationType = "HOME"
	// LocationAny is only valid as an availability query, never stored
	LocationAny LocationType = "any"
)

// ParseLocationType normalizes a location string.
// Unknown values are returned as is and treated like LocationAny by the availability engine.
func ParseLocationType(s string) LocationType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(LocationStudio):
		return LocationStudio
	case string(LocationHome):
		return LocationHome
	case "ANY":
		return LocationAny
	}
	return LocationType(strings.TrimSpace(s))
}

// IsBookable returns true for locations an appointment can be stored with
func (l LocationType) IsBookable() bool {
	return l == LocationStudio || l == LocationHome
}
