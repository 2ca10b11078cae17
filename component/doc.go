// Package component holds the ISO 20022 data types shared by the message
// packages: restricted text and decimal types, code lists, amounts, records
// and choices.
//
// Every type implements valid.Validatable. Text and decimal types check their
// facets, records visit their fields in declaration order (absent optional
// fields are skipped, repeated fields are checked element by element) and
// choices check the single alternative they hold.
//
// The *_gen.go files are produced from schema/component.yaml.
package component

//go:generate go run ../cmd/iso20022gen --schema ../schema --out ..
