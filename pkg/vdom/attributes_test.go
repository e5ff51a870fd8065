package vdom

import "testing"

func TestCN(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    string
	}{
		{"empty", nil, ""},
		{"single", []string{"px-4"}, "px-4"},
		{"drops blanks", []string{"px-4", "", "  ", "py-2"}, "px-4 py-2"},
		{"collapses whitespace", []string{" text-white  font-medium ", "\trounded-lg"}, "text-white font-medium rounded-lg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CN(tt.classes...); got != tt.want {
				t.Errorf("CN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClass(t *testing.T) {
	if got := Class("base", "", " on "); got.Value != "base on" {
		t.Errorf("Class = %q, want %q", got.Value, "base on")
	}
}

func TestData(t *testing.T) {
	a := Data("dropdown-toggle", "dropdown")
	if a.Key != "data-dropdown-toggle" || a.Value != "dropdown" {
		t.Errorf("Data() = %+v", a)
	}
}

func TestAttrIf(t *testing.T) {
	if !AttrIf(false, ID("x")).IsEmpty() {
		t.Error("AttrIf(false) should be empty")
	}
	if AttrIf(true, ID("x")).Key != "id" {
		t.Error("AttrIf(true) should keep the attribute")
	}
}
