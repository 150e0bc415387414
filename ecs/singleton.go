package ecs

import (
	"reflect"
	"unsafe"
)

type singletonEntry struct {
	typ   reflect.Type
	value reflect.Value
}

func (s *Storage) singleton(t reflect.Type) *singletonEntry {
	entry, _ := s.singletons.Get(typeKey(t))
	return entry
}

// AddSingleton stores value as the world's only instance of its type,
// overwriting any previous value in place.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if entry := s.singleton(t); entry != nil {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	v := reflect.New(t)
	v.Elem().Set(reflect.ValueOf(value))
	s.singletons.Put(typeKey(t), &singletonEntry{typ: t, value: v})
}

// ReadSingleton points dst, a **T, at the stored T and reports whether
// one exists.
func (s *Storage) ReadSingleton(dst any) bool {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton needs a pointer to a pointer")
	}
	entry := s.singleton(target.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	target.Elem().Set(entry.value)
	return true
}

// Singleton gives systems direct access to a world-wide value that does
// not belong to any entity.
type Singleton[T any] struct {
	storage *Storage
	ptr     unsafe.Pointer
}

// NewSingleton returns an accessor for T, storing initializer (or the zero
// value) first when the storage has no T yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.singleton(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to storage. The scheduler calls it for
// Singleton fields of registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.resolve()
}

func (s *Singleton[T]) resolve() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.singleton(reflect.TypeFor[T]()); entry != nil {
		s.ptr = entry.value.UnsafePointer()
	}
}

// Get returns the stored T, or nil when none has been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.resolve()
	}
	return (*T)(s.ptr)
}

func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
