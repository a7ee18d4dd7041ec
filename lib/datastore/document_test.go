// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package datastore

import (
	"encoding/json"
	"testing"
)

func TestSettingValueClassification(t *testing.T) {
	cases := []struct {
		name string
		data string
		want SettingKind
	}{
		{"string", `"amber"`, SettingString},
		{"bool true", `true`, SettingBool},
		{"bool false", `false`, SettingBool},
		{"integer", `42`, SettingNumber},
		{"float", `1.5`, SettingNumber},
		{"negative", `-3`, SettingNumber},
		{"null", `null`, SettingRaw},
		{"array", `[1, 2]`, SettingRaw},
		{"object", `{"a": 1}`, SettingRaw},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var value SettingValue
			if err := json.Unmarshal([]byte(tc.data), &value); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.data, err)
			}
			if value.Kind() != tc.want {
				t.Errorf("kind = %d, want %d", value.Kind(), tc.want)
			}
		})
	}
}

func TestSettingValueAccessors(t *testing.T) {
	if got := StringValue("amber").StringOr("fallback"); got != "amber" {
		t.Errorf("StringOr = %q, want amber", got)
	}
	if got := BoolValue(true).StringOr("fallback"); got != "fallback" {
		t.Errorf("StringOr on bool = %q, want fallback", got)
	}
	if !BoolValue(true).BoolOr(false) {
		t.Error("BoolOr(false) on true = false")
	}
	if StringValue("true").BoolOr(false) {
		t.Error("BoolOr on string = true, want fallback false")
	}
	if got := NumberValue(2.5).NumberOr(0); got != 2.5 {
		t.Errorf("NumberOr = %v, want 2.5", got)
	}
}

func TestSettingValueRoundTrip(t *testing.T) {
	inputs := []string{`"amber"`, `true`, `false`, `42`, `1.5`, `null`, `[1,2]`, `{"a":1}`}

	for _, input := range inputs {
		var value SettingValue
		if err := json.Unmarshal([]byte(input), &value); err != nil {
			t.Fatalf("unmarshal %s: %v", input, err)
		}
		out, err := json.Marshal(value)
		if err != nil {
			t.Fatalf("marshal %s: %v", input, err)
		}
		if string(out) != input {
			t.Errorf("round trip of %s produced %s", input, out)
		}
	}
}

func TestSettingValueEqual(t *testing.T) {
	if !StringValue("a").Equal(StringValue("a")) {
		t.Error("equal strings reported unequal")
	}
	if StringValue("a").Equal(StringValue("b")) {
		t.Error("different strings reported equal")
	}
	if BoolValue(true).Equal(NumberValue(1)) {
		t.Error("different kinds reported equal")
	}

	var left, right SettingValue
	if err := json.Unmarshal([]byte(`{"a":1}`), &left); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"a":1}`), &right); err != nil {
		t.Fatal(err)
	}
	if !left.Equal(right) {
		t.Error("identical raw values reported unequal")
	}
}

func TestDefaultDocumentIsFresh(t *testing.T) {
	first := DefaultDocument()
	first.Stats[StatEnergy] = 1
	first.Inventory[0].Name = "Mutated"
	first.Settings[SettingDeviceName] = StringValue("Mutated")

	second := DefaultDocument()
	if second.Stats[StatEnergy] != 80 {
		t.Errorf("second document energy = %d, want 80", second.Stats[StatEnergy])
	}
	if second.Inventory[0].Name != "Phone" {
		t.Errorf("second document item[0] = %q, want Phone", second.Inventory[0].Name)
	}
	value := second.Settings[SettingDeviceName]
	if value.StringOr("") != "WristComp v1.0" {
		t.Errorf("second document device_name = %v, want WristComp v1.0", value)
	}
}

func TestNormalize(t *testing.T) {
	document := Document{
		Stats: map[string]int{"energy": 250, "stress": -10},
	}
	document.normalize()

	if document.Stats["energy"] != 100 {
		t.Errorf("energy = %d, want clamped 100", document.Stats["energy"])
	}
	if document.Stats["stress"] != 0 {
		t.Errorf("stress = %d, want clamped 0", document.Stats["stress"])
	}
	if document.Inventory == nil {
		t.Error("inventory = nil, want empty slice")
	}
	if document.Settings == nil {
		t.Error("settings = nil, want empty map")
	}
}
