// Package core provides the shared vocabulary of flatlint: rule severities,
// rule settings and lint messages. It has no dependencies on other flatlint
// packages.
package core
