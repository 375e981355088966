// Package hourei provides a client and converters for the Japanese e-Gov
// law API v2 (https://laws.e-gov.go.jp). It resolves statute titles to law
// IDs, fetches statute XML in the Standard Law XML Schema, and converts
// that XML into indented plain text or structured YAML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or backing service (e.g., egov/, etree/,
// yaml/).
package hourei
