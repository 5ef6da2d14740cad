package types

import (
	"fmt"
	"log/slog"
	"strings"
)

// Item is a prize on the wheel together with its remaining quantity.
type Item struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// NewItem validates and builds an Item. Names are trimmed.
func NewItem(name string, quantity int) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if quantity < 0 {
		return Item{}, fmt.Errorf("%w: %q has negative quantity %d", ErrInvalidItem, name, quantity)
	}
	return Item{Name: name, Quantity: quantity}, nil
}

// Sector is the angular range of the wheel assigned to one item.
// StartAngle is inclusive, EndAngle exclusive.
type Sector struct {
	Item       Item    `json:"item"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"`
}

// Width returns the angular width of the sector in degrees.
func (s Sector) Width() float64 {
	return s.EndAngle - s.StartAngle
}

// Center returns the angle halfway between StartAngle and EndAngle.
func (s Sector) Center() float64 {
	return (s.StartAngle + s.EndAngle) / 2
}

// Resolution is delivered to the resolution callback once a spin settles.
type Resolution struct {
	SpinID string `json:"spin_id"`
	// Item is the winner as it was when the spin started.
	Item Item `json:"item"`
	// Remaining is the winner's quantity after the decrement.
	Remaining int     `json:"remaining"`
	Rotation  float64 `json:"rotation"`
}

// RandSource is the injectable uniform random source. *math/rand.Rand satisfies it.
type RandSource interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n).
	Intn(n int) int
}

// Inventory owns the item list the wheel draws from.
type Inventory interface {
	// Items returns a copy of the ordered item list.
	Items() []Item
	// Decrement lowers the quantity of the named item by one, never below zero,
	// and returns the updated item.
	Decrement(name string) (Item, error)
}

// Context for dependency injection
type Context struct {
	Journal Journal
	Utils   Utils
}

// Utils provides the logger and the file locations used by the journal and snapshots.
type Utils interface {
	GetLogger() *slog.Logger
	GenSnapshotPath() *string
	GenRotatedJournalPath() *string
	GetJournalFiles() ([]string, error)
}

// Error
type errString string

func (e errString) Error() string {
	return string(e)
}

const ErrInvalidItem = errString("invalid item")
const ErrDuplicateItem = errString("duplicate item name")
const ErrItemNotFound = errString("item not found")
const ErrEmptyWheel = errString("wheel has no quantity to lay out")
const ErrNothingToDraw = errString("nothing to draw")
const ErrSpinInProgress = errString("a spin is already in progress")
const ErrNotSpinning = errString("no spin is waiting for its animation")
const ErrNotResolved = errString("no resolved spin to acknowledge")
const ErrNoSectorAtPointer = errString("no sector found under the pointer")
const ErrPointerMismatch = errString("sector under pointer differs from selected item")
const ErrJournalFull = errString("journal storage is full")
const ErrJournalBufferNotEmpty = errString("journal buffer is not empty. Should Flush before rotate")
const ErrShutingDown = errString("request cancelled: wheel shutting down")
