package mirror

import (
	"time"

	"campusfind/lostfound-api/store"
)

// Factory hands out request-scoped stores. The mode cell is read once per
// call, so a request keeps whichever wiring it started with even if an
// admin flips the flag mid-flight.
type Factory struct {
	primaryItems   store.ItemStore
	primaryUsers   store.UserStore
	secondaryItems store.ItemStore
	secondaryUsers store.UserStore
	cell           *store.ModeCell
	budget         time.Duration
}

type FactoryOpts struct {
	PrimaryItems   store.ItemStore
	PrimaryUsers   store.UserStore
	SecondaryItems store.ItemStore
	SecondaryUsers store.UserStore
	Cell           *store.ModeCell
	Budget         time.Duration
}

func NewFactory(opts FactoryOpts) *Factory {
	return &Factory{
		primaryItems:   opts.PrimaryItems,
		primaryUsers:   opts.PrimaryUsers,
		secondaryItems: opts.SecondaryItems,
		secondaryUsers: opts.SecondaryUsers,
		cell:           opts.Cell,
		budget:         opts.Budget,
	}
}

func (f *Factory) mirroring() bool {
	return f.cell != nil && f.cell.Enabled()
}

// Items returns the item store for the current mode.
func (f *Factory) Items() store.ItemStore {
	if f.mirroring() && f.secondaryItems != nil {
		return NewItems(f.primaryItems, f.secondaryItems, f.budget)
	}
	return f.primaryItems
}

// Users returns the user store for the current mode.
func (f *Factory) Users() store.UserStore {
	if f.mirroring() && f.secondaryUsers != nil {
		return NewUsers(f.primaryUsers, f.secondaryUsers, f.budget)
	}
	return f.primaryUsers
}

// Cell exposes the mode cell for the admin toggle.
func (f *Factory) Cell() *store.ModeCell {
	return f.cell
}

// HasSecondary reports whether a secondary backend is configured at all.
func (f *Factory) HasSecondary() bool {
	return f.secondaryItems != nil || f.secondaryUsers != nil
}
