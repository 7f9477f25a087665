package jsonval

import (
	"math"
	"testing"
)

func TestZeroValueIsUndefined(t *testing.T) {
	var v Value
	if v.IsDefined() {
		t.Error("zero Value should be undefined")
	}
	if v.Kind() != Undefined {
		t.Errorf("Kind = %v, want Undefined", v.Kind())
	}
	if _, ok := v.Bool(); ok {
		t.Error("Bool() on undefined should report absence")
	}
	if _, ok := v.Float64(); ok {
		t.Error("Float64() on undefined should report absence")
	}
}

func TestNumericConversions(t *testing.T) {
	tests := []struct {
		name      string
		value     Value
		wantInt   int64
		intOK     bool
		wantUint  uint64
		uintOK    bool
		wantFloat float64
		floatOK   bool
	}{
		{
			name:    "small int",
			value:   NewInt(42),
			wantInt: 42, intOK: true,
			wantUint: 42, uintOK: true,
			wantFloat: 42, floatOK: true,
		},
		{
			name:    "negative int",
			value:   NewInt(-7),
			wantInt: -7, intOK: true,
			uintOK:    false,
			wantFloat: -7, floatOK: true,
		},
		{
			name:   "uint beyond int64",
			value:  NewUint(math.MaxUint64),
			intOK:  false,
			uintOK: true, wantUint: math.MaxUint64,
			floatOK: false,
		},
		{
			name:    "integral float",
			value:   NewFloat(3),
			wantInt: 3, intOK: true,
			wantUint: 3, uintOK: true,
			wantFloat: 3, floatOK: true,
		},
		{
			name:    "fractional float",
			value:   NewFloat(2.5),
			intOK:   false,
			uintOK:  false,
			floatOK: true, wantFloat: 2.5,
		},
		{
			name:    "int64 not exactly representable as float64",
			value:   NewInt(math.MaxInt64 - 1),
			intOK:   true,
			wantInt: math.MaxInt64 - 1,
			uintOK:  true, wantUint: math.MaxInt64 - 1,
			floatOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := tt.value.Int64()
			if ok != tt.intOK || (ok && i != tt.wantInt) {
				t.Errorf("Int64() = %d, %v; want %d, %v", i, ok, tt.wantInt, tt.intOK)
			}
			u, ok := tt.value.Uint64()
			if ok != tt.uintOK || (ok && u != tt.wantUint) {
				t.Errorf("Uint64() = %d, %v; want %d, %v", u, ok, tt.wantUint, tt.uintOK)
			}
			f, ok := tt.value.Float64()
			if ok != tt.floatOK || (ok && f != tt.wantFloat) {
				t.Errorf("Float64() = %g, %v; want %g, %v", f, ok, tt.wantFloat, tt.floatOK)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints", NewInt(5), NewInt(5), true},
		{"int vs uint same value", NewInt(5), NewUint(5), true},
		{"int vs float same value", NewInt(5), NewFloat(5), true},
		{"different numbers", NewInt(5), NewInt(6), false},
		{"bool vs number", NewBool(true), NewInt(1), false},
		{"strings", NewString("a"), NewString("a"), true},
		{"null vs undefined", Null(), Value{}, false},
		{
			"arrays",
			NewArray(NewInt(1), NewInt(2)),
			NewArray(NewInt(1), NewInt(2)),
			true,
		},
		{
			"arrays different length",
			NewArray(NewInt(1)),
			NewArray(NewInt(1), NewInt(2)),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldAndLen(t *testing.T) {
	obj := NewObject(map[string]Value{"type": NewString("SCALAR")})
	if s, ok := obj.Field("type").Str(); !ok || s != "SCALAR" {
		t.Errorf("Field(type) = %v", obj.Field("type"))
	}
	if obj.Field("missing").IsDefined() {
		t.Error("missing field should be undefined")
	}

	arr := NewArray(NewInt(1), NewInt(2), NewInt(3))
	if arr.Len() != 3 {
		t.Errorf("Len = %d, want 3", arr.Len())
	}
	if NewInt(1).Len() != 0 {
		t.Error("Len on non-array should be 0")
	}
}
