package propview

import (
	"math"
	"testing"

	"github.com/tilemeta/structmeta/pkg/jsonval"
)

func TestParseScalarBits(t *testing.T) {
	tests := []struct {
		name      string
		value     jsonval.Value
		component ComponentType
		want      uint64
		ok        bool
	}{
		{"int8 in range", jsonval.NewInt(-5), ComponentInt8, 0xFB, true},
		{"int8 min", jsonval.NewInt(-128), ComponentInt8, 0x80, true},
		{"int8 overflow", jsonval.NewInt(128), ComponentInt8, 0, false},
		{"uint8 max", jsonval.NewUint(255), ComponentUint8, 255, true},
		{"uint8 overflow", jsonval.NewUint(256), ComponentUint8, 0, false},
		{"uint8 negative", jsonval.NewInt(-1), ComponentUint8, 0, false},
		{"int32 from whole float", jsonval.NewFloat(12.0), ComponentInt32, 12, true},
		{"int32 rejects fraction", jsonval.NewFloat(12.5), ComponentInt32, 0, false},
		{"uint64 max", jsonval.NewUint(math.MaxUint64), ComponentUint64, math.MaxUint64, true},
		{"int64 from uint out of range", jsonval.NewUint(math.MaxUint64), ComponentInt64, 0, false},
		{"float64 any", jsonval.NewFloat(0.1), ComponentFloat64, math.Float64bits(0.1), true},
		{"float32 exact", jsonval.NewFloat(0.5), ComponentFloat32, uint64(math.Float32bits(0.5)), true},
		{"float32 precision loss", jsonval.NewFloat(0.1), ComponentFloat32, 0, false},
		{"not a number", jsonval.NewString("7"), ComponentInt32, 0, false},
		{"bool is not a number", jsonval.NewBool(true), ComponentUint8, 0, false},
	}
	for _, tc := range tests {
		got, ok := parseScalarBits(tc.value, tc.component)
		if ok != tc.ok {
			t.Errorf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("%s: bits = %#x, want %#x", tc.name, got, tc.want)
		}
	}
}

func TestParseNumericMat(t *testing.T) {
	// MAT2 takes exactly four numbers, column-major.
	v := jv(t, `[1, 2, 3, 4]`)
	n, ok := parseNumeric(v, TypeMat2, ComponentInt32)
	if !ok {
		t.Fatal("parse failed")
	}
	if n.Stride() != 4 || n.Count() != 1 {
		t.Fatalf("stride = %d count = %d", n.Stride(), n.Count())
	}
	for i := 0; i < 4; i++ {
		if got := n.Int64At(0, i); got != int64(i+1) {
			t.Errorf("component %d = %d, want %d", i, got, i+1)
		}
	}

	if _, ok := parseNumeric(jv(t, `[1, 2, 3]`), TypeMat2, ComponentInt32); ok {
		t.Error("accepted a 3-element MAT2")
	}
	if _, ok := parseNumeric(jv(t, `5`), TypeVec2, ComponentInt32); ok {
		t.Error("accepted a scalar as VEC2")
	}
}

func TestParseBooleanArray(t *testing.T) {
	bits, ok := parseBooleanArray(jv(t, `[true, false, true]`))
	if !ok {
		t.Fatal("parse failed")
	}
	if bits.Size() != 3 {
		t.Fatalf("size = %d, want 3", bits.Size())
	}
	want := []bool{true, false, true}
	for i, w := range want {
		if bits.At(int64(i)) != w {
			t.Errorf("bit %d = %v, want %v", i, bits.At(int64(i)), w)
		}
	}

	// Bits pack LSB first.
	bits, ok = parseBooleanArray(jv(t, `[true, false, false, false, false, false, false, false, true]`))
	if !ok {
		t.Fatal("parse failed")
	}
	if !bits.At(0) || !bits.At(8) || bits.At(1) {
		t.Error("bit layout is not LSB-first")
	}

	// One bad element poisons the whole array.
	if _, ok := parseBooleanArray(jv(t, `[true, 0, true]`)); ok {
		t.Error("accepted a non-boolean element")
	}
	if _, ok := parseBooleanArray(jv(t, `true`)); ok {
		t.Error("accepted a non-array")
	}
}

func TestParseStringArray(t *testing.T) {
	strs, ok := parseStringArray(jv(t, `["ab", "", "cde"]`))
	if !ok {
		t.Fatal("parse failed")
	}
	if strs.Size() != 3 {
		t.Fatalf("size = %d, want 3", strs.Size())
	}
	want := []string{"ab", "", "cde"}
	for i, w := range want {
		if got := strs.At(int64(i)); got != w {
			t.Errorf("element %d = %q, want %q", i, got, w)
		}
	}
	if strs.OffsetType() != ComponentUint8 {
		t.Errorf("offset type = %v, want UINT8", strs.OffsetType())
	}

	if _, ok := parseStringArray(jv(t, `["a", 1]`)); ok {
		t.Error("accepted a non-string element")
	}
}

func TestStringArrayOffsetWidth(t *testing.T) {
	tests := []struct {
		total uint64
		want  ComponentType
	}{
		{0, ComponentUint8},
		{200, ComponentUint8},
		{255, ComponentUint8},
		{256, ComponentUint16},
		{65535, ComponentUint16},
		{70000, ComponentUint32},
		{math.MaxUint32, ComponentUint32},
		{math.MaxUint32 + 1, ComponentUint64},
	}
	for _, tc := range tests {
		if got := offsetTypeFor(tc.total); got != tc.want {
			t.Errorf("offsetTypeFor(%d) = %v, want %v", tc.total, got, tc.want)
		}
	}

	// A real blob near the 8-bit boundary picks the 16-bit width.
	var sb []byte
	for i := 0; i < 300; i++ {
		sb = append(sb, 'x')
	}
	strs, ok := parseStringArray(jv(t, `["`+string(sb)+`"]`))
	if !ok {
		t.Fatal("parse failed")
	}
	if strs.OffsetType() != ComponentUint16 {
		t.Errorf("offset type = %v, want UINT16", strs.OffsetType())
	}
}

func TestStatusStrings(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusValid, "Valid"},
		{StatusErrorNonexistentProperty, "ErrorNonexistentProperty"},
		{StatusErrorInvalidDefaultValue, "ErrorInvalidDefaultValue"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}
