// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package datastore

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Names of the stats seeded into every new document. The store accepts
// arbitrary stat names; these four are the ones the device UI renders.
const (
	StatHydration = "hydration"
	StatEnergy    = "energy"
	StatUrination = "urination"
	StatStress    = "stress"
)

// Recognized settings keys. The store treats settings as an open map;
// these are the keys the application itself interprets. Unknown keys
// round-trip through load and save untouched.
const (
	SettingDeviceName  = "device_name"
	SettingAutoSave    = "auto_save"
	SettingCompactMode = "compact_mode"
)

// Item is one carried object in the device inventory.
type Item struct {
	// Name identifies the item. Uniqueness is case-insensitive: the
	// store never holds two items whose names differ only in case.
	Name string `json:"name"`

	// Category groups items for display (e.g. "Essentials").
	Category string `json:"category"`

	// Quantity is the carried count. Expected non-negative; the store
	// does not enforce it.
	Quantity int `json:"quantity"`

	// Weight is the per-item weight in kilograms.
	Weight float64 `json:"weight"`
}

// Document is the root persisted record: everything the device knows,
// in the shape it is stored on disk.
type Document struct {
	// Stats maps stat name to its value. Every value is within
	// [0, 100]; writes clamp, including document load.
	Stats map[string]int `json:"stats"`

	// Inventory holds items in insertion order. Order is meaningful
	// for display and carries no other invariant.
	Inventory []Item `json:"inventory"`

	// Settings maps setting key to its value. Values the application
	// does not recognize are preserved verbatim.
	Settings map[string]SettingValue `json:"settings"`

	// LastUpdated is the RFC 3339 timestamp of the last save.
	LastUpdated string `json:"last_updated"`
}

// SettingKind discriminates the variants of a SettingValue.
type SettingKind int

const (
	// SettingString holds a string value.
	SettingString SettingKind = iota
	// SettingBool holds a boolean value.
	SettingBool
	// SettingNumber holds a numeric value.
	SettingNumber
	// SettingRaw holds any other JSON value verbatim. The application
	// never constructs these; they exist so that settings written by
	// other tools survive a load/save round trip.
	SettingRaw
)

// SettingValue is a tagged variant for the heterogeneous settings map:
// string, bool, or number, plus a raw escape hatch for value shapes the
// application does not interpret.
type SettingValue struct {
	kind   SettingKind
	text   string
	flag   bool
	number float64
	raw    json.RawMessage
}

// StringValue returns a SettingValue holding a string.
func StringValue(text string) SettingValue {
	return SettingValue{kind: SettingString, text: text}
}

// BoolValue returns a SettingValue holding a boolean.
func BoolValue(flag bool) SettingValue {
	return SettingValue{kind: SettingBool, flag: flag}
}

// NumberValue returns a SettingValue holding a number.
func NumberValue(number float64) SettingValue {
	return SettingValue{kind: SettingNumber, number: number}
}

// Kind reports which variant this value holds.
func (value SettingValue) Kind() SettingKind { return value.kind }

// StringOr returns the string value, or fallback when the value is not
// a string.
func (value SettingValue) StringOr(fallback string) string {
	if value.kind != SettingString {
		return fallback
	}
	return value.text
}

// BoolOr returns the boolean value, or fallback when the value is not
// a boolean.
func (value SettingValue) BoolOr(fallback bool) bool {
	if value.kind != SettingBool {
		return fallback
	}
	return value.flag
}

// NumberOr returns the numeric value, or fallback when the value is
// not a number.
func (value SettingValue) NumberOr(fallback float64) float64 {
	if value.kind != SettingNumber {
		return fallback
	}
	return value.number
}

// Equal reports whether two setting values hold the same variant with
// the same content.
func (value SettingValue) Equal(other SettingValue) bool {
	if value.kind != other.kind {
		return false
	}
	switch value.kind {
	case SettingString:
		return value.text == other.text
	case SettingBool:
		return value.flag == other.flag
	case SettingNumber:
		return value.number == other.number
	case SettingRaw:
		return bytes.Equal(value.raw, other.raw)
	}
	return false
}

// MarshalJSON emits the underlying value without any variant wrapper,
// so the on-disk settings object reads naturally.
func (value SettingValue) MarshalJSON() ([]byte, error) {
	switch value.kind {
	case SettingString:
		return json.Marshal(value.text)
	case SettingBool:
		return json.Marshal(value.flag)
	case SettingNumber:
		return json.Marshal(value.number)
	case SettingRaw:
		return append([]byte(nil), value.raw...), nil
	}
	return nil, fmt.Errorf("unknown setting kind %d", value.kind)
}

// UnmarshalJSON classifies the JSON value into a variant. Strings,
// booleans, and numbers become their typed variants; everything else
// (null, arrays, objects) is retained raw.
func (value *SettingValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty setting value")
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*value = StringValue(text)
		return nil
	case 't', 'f':
		var flag bool
		if err := json.Unmarshal(trimmed, &flag); err != nil {
			return err
		}
		*value = BoolValue(flag)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var number float64
		if err := json.Unmarshal(trimmed, &number); err != nil {
			return err
		}
		*value = NumberValue(number)
		return nil
	}

	raw := make(json.RawMessage, len(trimmed))
	copy(raw, trimmed)
	*value = SettingValue{kind: SettingRaw, raw: raw}
	return nil
}

// DefaultDocument returns the built-in starting document: seeded stats,
// the three starter items, and default settings. Each call returns a
// fresh copy; callers may mutate the result freely.
func DefaultDocument() Document {
	return Document{
		Stats: map[string]int{
			StatHydration: 75,
			StatEnergy:    80,
			StatUrination: 30,
			StatStress:    25,
		},
		Inventory: []Item{
			{Name: "Phone", Category: "Electronics", Quantity: 1, Weight: 0.2},
			{Name: "Wallet", Category: "Essentials", Quantity: 1, Weight: 0.1},
			{Name: "Keys", Category: "Essentials", Quantity: 1, Weight: 0.05},
		},
		Settings: map[string]SettingValue{
			SettingDeviceName:  StringValue("WristComp v1.0"),
			SettingAutoSave:    BoolValue(true),
			SettingCompactMode: BoolValue(false),
		},
	}
}

// clampStat forces a stat value into the [0, 100] range.
func clampStat(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// normalize repairs a freshly decoded document so the rest of the store
// can rely on its shape: nil maps and slices become empty ones, and
// every stat is clamped into range.
func (document *Document) normalize() {
	if document.Stats == nil {
		document.Stats = make(map[string]int)
	}
	for name, value := range document.Stats {
		document.Stats[name] = clampStat(value)
	}
	if document.Inventory == nil {
		document.Inventory = []Item{}
	}
	if document.Settings == nil {
		document.Settings = make(map[string]SettingValue)
	}
}
