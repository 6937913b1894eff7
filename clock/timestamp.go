// Package clock samples wall-clock time as 32-bit epoch seconds.
//
// A Timestamp is the unit every renderer consumes: four big-endian bytes,
// position 0 being the most significant and position 3 the seconds byte.
package clock

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

// SegmentCount is the number of byte segments in a Timestamp
const SegmentCount = 4

var (
	// ErrClockSkew is reported when the wall clock reads before the epoch
	ErrClockSkew = errors.New("clock reads before the unix epoch")

	// ErrTimestampOverflow is reported when epoch seconds no longer fit 32 bits
	ErrTimestampOverflow = errors.New("timestamp overflows 32 bits")
)

// Timestamp is a whole number of seconds since 1970-01-01T00:00:00Z
type Timestamp uint32

// Segment is one byte of a Timestamp with its big-endian position
type Segment struct {
	Position int
	Value    uint8
}

// FromUnix converts epoch seconds, rejecting values outside [0, 2^32)
func FromUnix(secs int64) (Timestamp, error) {
	if secs < 0 {
		return 0, fmt.Errorf("%w: %ds", ErrClockSkew, secs)
	}
	if secs > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %ds", ErrTimestampOverflow, secs)
	}
	return Timestamp(secs), nil
}

// FromTime truncates t to whole seconds
func FromTime(t time.Time) (Timestamp, error) {
	return FromUnix(t.Unix())
}

// FromBytes reassembles a Timestamp from its big-endian bytes
func FromBytes(b [SegmentCount]byte) Timestamp {
	return Timestamp(binary.BigEndian.Uint32(b[:]))
}

// Bytes decomposes the timestamp, most significant byte first
func (t Timestamp) Bytes() [SegmentCount]byte {
	var b [SegmentCount]byte
	binary.BigEndian.PutUint32(b[:], uint32(t))
	return b
}

// Segments returns the positioned bytes of the timestamp
func (t Timestamp) Segments() [SegmentCount]Segment {
	b := t.Bytes()
	var s [SegmentCount]Segment
	for i := range b {
		s[i] = Segment{Position: i, Value: b[i]}
	}
	return s
}

// Time returns the timestamp as a UTC time.Time
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// NextMultiple returns the first multiple of step strictly after t.
// Steps below one second leave t unchanged.
func (t Timestamp) NextMultiple(step time.Duration) (Timestamp, error) {
	secs := int64(step / time.Second)
	if secs <= 0 {
		return t, nil
	}
	next := (int64(t)/secs + 1) * secs
	return FromUnix(next)
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%08X", uint32(t))
}
