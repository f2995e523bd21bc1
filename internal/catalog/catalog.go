package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Item is one entry of the static item-definition table. Field names follow
// the upstream app.json schema.
type Item struct {
	ItemID   string `json:"Item_ID"`
	IconName string `json:"Icon_Name"`
	Name     string `json:"Name"`
}

// Catalog is the read-only item table, loaded once and passed explicitly to
// whoever needs lookups. A nil or empty catalog is valid; every lookup then
// falls through to its raw-input fallback.
type Catalog struct {
	items []Item
}

// New builds a catalog from already-decoded items. Used by tests and by Load.
func New(items []Item) *Catalog {
	return &Catalog{items: items}
}

// Load reads the item table from a JSON file containing an array of items.
// Callers are expected to treat a load failure as a degraded mode, not a
// fatal one: the rest of the system works with an empty catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return &Catalog{items: items}, nil
}

// Len reports the number of items in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// ResolveItemID maps an arbitrary item reference to the numeric Item_ID the
// icon endpoint expects. Ordered, first match wins:
//
//  1. the reference is itself a known Item_ID
//  2. the reference is a known Icon_Name
//  3. no match: return the reference unchanged, assuming it is already numeric
func (c *Catalog) ResolveItemID(raw string) string {
	if c != nil {
		for _, it := range c.items {
			if it.ItemID == raw {
				return it.ItemID
			}
		}
		for _, it := range c.items {
			if it.IconName == raw {
				return it.ItemID
			}
		}
	}
	return raw
}

// ItemName returns the display name for an Item_ID, or "Unknown Item" when
// the catalog has no entry for it.
func (c *Catalog) ItemName(itemID string) string {
	if c != nil {
		for _, it := range c.items {
			if it.ItemID == itemID {
				return it.Name
			}
		}
	}
	return "Unknown Item"
}

// IconFileName resolves a reference and normalizes it to the filename form
// the icon endpoint expects, appending ".png" when missing.
func (c *Catalog) IconFileName(raw string) string {
	id := c.ResolveItemID(raw)
	if !strings.HasSuffix(id, ".png") {
		id += ".png"
	}
	return id
}
