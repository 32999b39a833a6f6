package sketch

import (
	"errors"
	"slices"
	"testing"
)

func registerFake(t *testing.T, name string, factory DeviceFactory) {
	t.Helper()
	RegisterDevice(name, factory)
	t.Cleanup(func() { UnregisterDevice(name) })
}

func TestOpenDevice(t *testing.T) {
	var gotW, gotH int
	registerFake(t, "fake", func(w, h int) (Device, error) {
		gotW, gotH = w, h
		return &fakeDevice{}, nil
	})

	dev, err := OpenDevice("fake", 320, 200)
	if err != nil {
		t.Fatalf("OpenDevice: %v", err)
	}
	if _, ok := dev.(*fakeDevice); !ok {
		t.Errorf("OpenDevice returned %T", dev)
	}
	if gotW != 320 || gotH != 200 {
		t.Errorf("factory got %dx%d, want 320x200", gotW, gotH)
	}
}

func TestOpenDeviceErrors(t *testing.T) {
	boom := errors.New("no display")
	registerFake(t, "broken", func(int, int) (Device, error) { return nil, boom })

	if _, err := OpenDevice("broken", 1, 1); !errors.Is(err, boom) {
		t.Errorf("factory error = %v, want it wrapped", err)
	}
	if _, err := OpenDevice("missing", 1, 1); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("unknown device = %v, want ErrUnknownDevice", err)
	}
}

func TestDevicesSorted(t *testing.T) {
	factory := func(int, int) (Device, error) { return &fakeDevice{}, nil }
	registerFake(t, "zz-fake", factory)
	registerFake(t, "aa-fake", factory)

	names := Devices()
	if !slices.IsSorted(names) {
		t.Errorf("Devices() = %v, not sorted", names)
	}
	if !slices.Contains(names, "aa-fake") || !slices.Contains(names, "zz-fake") {
		t.Errorf("Devices() = %v, missing registered names", names)
	}

	UnregisterDevice("zz-fake")
	if slices.Contains(Devices(), "zz-fake") {
		t.Error("UnregisterDevice did not remove the name")
	}
}

func TestRegisterDevicePanics(t *testing.T) {
	factory := func(int, int) (Device, error) { return &fakeDevice{}, nil }
	registerFake(t, "dup", factory)

	tests := []struct {
		name    string
		factory DeviceFactory
	}{
		{"dup", factory},
		{"nil-factory", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("RegisterDevice should panic")
				}
			}()
			RegisterDevice(tt.name, tt.factory)
		})
	}
}
