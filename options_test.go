package uioverlay

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Filter != FilterLinear {
		t.Errorf("default Filter = %v, want FilterLinear", opts.Filter)
	}
	if opts.AddressU != AddressClampToEdge || opts.AddressV != AddressClampToEdge {
		t.Errorf("default address mode = (%v, %v), want clamp-to-edge", opts.AddressU, opts.AddressV)
	}
	if opts.Blend != BlendOver {
		t.Errorf("default Blend = %v, want BlendOver", opts.Blend)
	}
}

func TestOptionsApply(t *testing.T) {
	opts := DefaultOptions()
	opts.Apply(
		WithFilter(FilterNearest),
		WithAddressMode(AddressRepeat, AddressClampToEdge),
		WithBlend(BlendSrc),
	)
	if opts.Filter != FilterNearest {
		t.Errorf("Filter = %v, want FilterNearest", opts.Filter)
	}
	if opts.AddressU != AddressRepeat {
		t.Errorf("AddressU = %v, want AddressRepeat", opts.AddressU)
	}
	if opts.AddressV != AddressClampToEdge {
		t.Errorf("AddressV = %v, want AddressClampToEdge", opts.AddressV)
	}
	if opts.Blend != BlendSrc {
		t.Errorf("Blend = %v, want BlendSrc", opts.Blend)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FilterLinear.String(), "Linear"},
		{FilterNearest.String(), "Nearest"},
		{AddressClampToEdge.String(), "ClampToEdge"},
		{AddressRepeat.String(), "Repeat"},
		{BlendOver.String(), "Over"},
		{BlendSrc.String(), "Src"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
