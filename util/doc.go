// Package util provides small parsing helpers shared by converters.
package util
