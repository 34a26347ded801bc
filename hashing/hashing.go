// Package hashing provides hashing primitives for values that know how to
// feed themselves into a hash.Hash. Every archetype in this module implements
// Hashable by writing the canonical encoding of its representation, so two
// values that compare equal always produce the same digest.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"math"
	"reflect"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

var (
	_ HashFunc = Sha256
	_ HashFunc = Xxh3
)

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return hexDigest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 digest of the given Hashable as a
// hex-encoded string. It is much cheaper than Sha256 and suited to
// in-memory bucketing where collision resistance is not a concern.
func Xxh3(hashable Hashable) (string, error) {
	return hexDigest(xxh3.New(), hashable)
}

// Sum64 returns the 64-bit xxHash digest of the given Hashable.
func Sum64(hashable Hashable) (uint64, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

func hexDigest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// UpdateValue writes the canonical encoding of a comparable value to h.
// Integers are written as 8 big-endian bytes, floats as their IEEE-754 bits
// with negative zero folded into positive zero and every NaN folded into one
// canonical NaN, complex numbers as their two float parts, strings as their
// raw bytes and booleans as a single byte. Arrays, structs and interfaces are
// encoded element by element; pointers and channels by address. Named types
// are encoded by their underlying kind. Anything else (slices, maps,
// functions) yields ErrUnsupportedType.
func UpdateValue(h hash.Hash, value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	return updateValue(h, rv)
}

func updateValue(h hash.Hash, rv reflect.Value) error {
	var buf [8]byte

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.BigEndian.PutUint64(buf[:], uint64(rv.Int())) //nolint:gosec

		return write(h, buf[:])
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.BigEndian.PutUint64(buf[:], rv.Uint())

		return write(h, buf[:])
	case reflect.Float32, reflect.Float64:
		return writeFloat(h, rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if err := writeFloat(h, real(c)); err != nil {
			return err
		}

		return writeFloat(h, imag(c))
	case reflect.String:
		_, err := io.WriteString(h, rv.String())

		return err
	case reflect.Bool:
		if rv.Bool() {
			buf[0] = 1
		}

		return write(h, buf[:1])
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		binary.BigEndian.PutUint64(buf[:], uint64(rv.Pointer()))

		return write(h, buf[:])
	case reflect.Interface:
		if rv.IsNil() {
			return write(h, buf[:1])
		}

		return updateValue(h, rv.Elem())
	case reflect.Array:
		for i := range rv.Len() {
			if err := updateValue(h, rv.Index(i)); err != nil {
				return err
			}
		}

		return nil
	case reflect.Struct:
		for i := range rv.NumField() {
			if err := updateValue(h, rv.Field(i)); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
}

func writeFloat(h hash.Hash, f float64) error {
	var buf [8]byte

	switch {
	case math.IsNaN(f):
		f = math.NaN()
	case f == 0:
		f = 0
	}

	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))

	return write(h, buf[:])
}

func write(h hash.Hash, data []byte) error {
	_, err := h.Write(data)

	return err
}
