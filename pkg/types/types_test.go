package types

import "testing"

func TestSizes(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want int
	}{
		{"int32", Int32{}, 4},
		{"int1", Int1{}, 1},
		{"void", Void{}, 0},
		{"pointer", Pointer{Elem: Int32{}}, 4},
		{"array1d", Array{Elem: Int32{}, Dims: []int{10}}, 40},
		{"array2d", Array{Elem: Int32{}, Dims: []int{4, 4}}, 64},
		{"function", Function{Return: Int32{}}, 0},
	}
	for _, tt := range tests {
		if got := tt.typ.Size(); got != tt.want {
			t.Errorf("%s: Size() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Int32{}, "i32"},
		{Int1{}, "i1"},
		{Void{}, "void"},
		{Pointer{Elem: Int32{}}, "i32*"},
		{Array{Elem: Int32{}, Dims: []int{4, 4}}, "i32[4][4]"},
		{Function{Return: Int32{}, Params: []Type{Int32{}, Pointer{Elem: Int32{}}}}, "i32(i32,i32*)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsInt1Byte(t *testing.T) {
	if !IsInt1Byte(Int1{}) {
		t.Error("IsInt1Byte(Int1{}) = false, want true")
	}
	if IsInt1Byte(Int32{}) {
		t.Error("IsInt1Byte(Int32{}) = true, want false")
	}
}

func TestElementType(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want Type
	}{
		{"array multi-dim", Array{Elem: Int32{}, Dims: []int{4, 4}}, Array{Elem: Int32{}, Dims: []int{4}}},
		{"array last dim", Array{Elem: Int32{}, Dims: []int{4}}, Int32{}},
		{"pointer", Pointer{Elem: Int32{}}, Int32{}},
		{"scalar", Int32{}, Int32{}},
	}
	for _, tt := range tests {
		if got := ElementType(tt.typ); !Equal(got, tt.want) {
			t.Errorf("%s: ElementType() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same scalar", Int32{}, Int32{}, true},
		{"different scalar", Int32{}, Int1{}, false},
		{"same pointer", Pointer{Elem: Int32{}}, Pointer{Elem: Int32{}}, true},
		{"pointer vs scalar", Pointer{Elem: Int32{}}, Int32{}, false},
		{"same array", Array{Elem: Int32{}, Dims: []int{2, 3}}, Array{Elem: Int32{}, Dims: []int{2, 3}}, true},
		{"array dim mismatch", Array{Elem: Int32{}, Dims: []int{2, 3}}, Array{Elem: Int32{}, Dims: []int{2, 4}}, false},
		{"array rank mismatch", Array{Elem: Int32{}, Dims: []int{2, 3}}, Array{Elem: Int32{}, Dims: []int{2}}, false},
		{
			"same function",
			Function{Return: Int32{}, Params: []Type{Int32{}}},
			Function{Return: Int32{}, Params: []Type{Int32{}}},
			true,
		},
		{
			"function arity mismatch",
			Function{Return: Int32{}, Params: []Type{Int32{}}},
			Function{Return: Int32{}},
			false,
		},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Equal() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
