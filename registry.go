package sketch

import (
	"fmt"
	"sort"
	"sync"
)

// DeviceFactory creates a device with the given surface size.
type DeviceFactory func(width, height int) (Device, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]DeviceFactory)
)

// RegisterDevice makes a device available by name. It is meant to be called
// from init in device packages:
//
//	func init() {
//	    sketch.RegisterDevice("raster", func(w, h int) (sketch.Device, error) {
//	        return New(w, h), nil
//	    })
//	}
//
// RegisterDevice panics if factory is nil or name is already registered.
func RegisterDevice(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("sketch: RegisterDevice factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("sketch: RegisterDevice called twice for " + name)
	}
	factories[name] = factory
}

// UnregisterDevice removes a device from the registry. It is a no-op for
// unknown names.
func UnregisterDevice(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// OpenDevice creates a device by name. The device package must have been
// imported, usually with a blank identifier.
func OpenDevice(name string, width, height int) (Device, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownDevice, name)
	}
	dev, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("sketch: open %s device: %w", name, err)
	}
	Logger().Debug("sketch: device opened", "name", name, "width", width, "height", height)
	return dev, nil
}

// Devices returns the registered device names in alphabetical order.
func Devices() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
