// Package utils provides small value-coercion helpers shared across packages.
package utils
