package domain

import (
	"fmt"
	"strings"

	apperrors "mihrab/internal/platform/errors"
)

type Tab string

const (
	Morning Tab = "morning"
	Evening Tab = "evening"
)

func ParseTab(raw string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(raw))) {
	case Morning:
		return Morning, nil
	case Evening:
		return Evening, nil
	default:
		return "", fmt.Errorf("%w: unknown dhikr tab %q", apperrors.ErrInvalidInput, raw)
	}
}

type Item struct {
	ID              int    `json:"id" yaml:"id"`
	Arabic          string `json:"arabic" yaml:"arabic"`
	Translation     string `json:"translation" yaml:"translation"`
	Transliteration string `json:"transliteration" yaml:"transliteration"`
	Repetitions     int    `json:"repetitions" yaml:"repetitions"`
	Completed       bool   `json:"completed" yaml:"-"`
}

type Catalog struct {
	Morning []Item `yaml:"morning"`
	Evening []Item `yaml:"evening"`
}

func (c Catalog) Validate() error {
	for _, list := range []struct {
		tab   Tab
		items []Item
	}{{Morning, c.Morning}, {Evening, c.Evening}} {
		if len(list.items) == 0 {
			return fmt.Errorf("%w: %s list is empty", apperrors.ErrInvalidInput, list.tab)
		}
		seen := make(map[int]struct{}, len(list.items))
		for _, item := range list.items {
			if item.Repetitions < 1 {
				return fmt.Errorf("%w: %s item %d needs at least one repetition", apperrors.ErrInvalidInput, list.tab, item.ID)
			}
			if _, dup := seen[item.ID]; dup {
				return fmt.Errorf("%w: %s item id %d repeated", apperrors.ErrInvalidInput, list.tab, item.ID)
			}
			seen[item.ID] = struct{}{}
		}
	}
	return nil
}

// Session is the cursor over the active list. Repetition is 1-based and
// bounded by the current item's required repetitions.
type Session struct {
	ActiveTab  Tab
	Cursor     int
	Repetition int
}

type Progress struct {
	Session
	Morning []Item
	Evening []Item
}

// Snapshot is progress as read back from storage, possibly stale or partial.
type Snapshot struct {
	Morning    []Item
	Evening    []Item
	ActiveTab  Tab
	Cursor     int
	Repetition int
}

func NewProgress(catalog Catalog) Progress {
	return Progress{
		Session: Session{ActiveTab: Morning, Repetition: 1},
		Morning: fresh(catalog.Morning),
		Evening: fresh(catalog.Evening),
	}
}

// Restore rebuilds progress from the catalog and carries over completion flags
// by item ID, then clamps the session so it is valid for the active list.
func Restore(catalog Catalog, snap Snapshot) Progress {
	p := Progress{
		Session: Session{ActiveTab: snap.ActiveTab, Cursor: snap.Cursor, Repetition: snap.Repetition},
		Morning: reconcile(catalog.Morning, snap.Morning),
		Evening: reconcile(catalog.Evening, snap.Evening),
	}
	if p.ActiveTab != Morning && p.ActiveTab != Evening {
		p.ActiveTab = Morning
	}
	return p.clamp()
}

func fresh(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		item.Completed = false
		out[i] = item
	}
	return out
}

func reconcile(catalog, stored []Item) []Item {
	done := make(map[int]bool, len(stored))
	for _, item := range stored {
		done[item.ID] = item.Completed
	}
	out := fresh(catalog)
	for i := range out {
		out[i].Completed = done[out[i].ID]
	}
	return out
}

func (p Progress) clone() Progress {
	p.Morning = append([]Item(nil), p.Morning...)
	p.Evening = append([]Item(nil), p.Evening...)
	return p
}

func (p Progress) clamp() Progress {
	n := len(p.Active())
	if p.Cursor >= n {
		p.Cursor = n - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Repetition < 1 {
		p.Repetition = 1
	}
	if n > 0 && p.Repetition > p.Current().Repetitions {
		p.Repetition = p.Current().Repetitions
	}
	return p
}

func (p Progress) List(tab Tab) []Item {
	if tab == Evening {
		return p.Evening
	}
	return p.Morning
}

func (p Progress) Active() []Item {
	return p.List(p.ActiveTab)
}

func (p Progress) Current() Item {
	items := p.Active()
	if p.Cursor < 0 || p.Cursor >= len(items) {
		return Item{}
	}
	return items[p.Cursor]
}

func (p Progress) IsLast() bool {
	return p.Cursor >= len(p.Active())-1
}

func (p Progress) CompletedCount(tab Tab) int {
	n := 0
	for _, item := range p.List(tab) {
		if item.Completed {
			n++
		}
	}
	return n
}

// SwitchTab moves to the first item of the target list.
func (p Progress) SwitchTab(tab Tab) (Progress, error) {
	if tab != Morning && tab != Evening {
		return p, fmt.Errorf("%w: unknown dhikr tab %q", apperrors.ErrInvalidInput, tab)
	}
	p.ActiveTab = tab
	p.Cursor = 0
	p.Repetition = 1
	return p, nil
}

func (p Progress) Next() Progress {
	if p.IsLast() {
		return p
	}
	p.Cursor++
	p.Repetition = 1
	return p
}

func (p Progress) Previous() Progress {
	if p.Cursor <= 0 {
		return p
	}
	p.Cursor--
	p.Repetition = 1
	return p
}

// Advance counts one recitation of the current item. The call after the last
// required repetition marks the item completed and moves on when possible.
func (p Progress) Advance() (Progress, error) {
	if len(p.Active()) == 0 {
		return p, fmt.Errorf("%w: %s list is empty", apperrors.ErrInvalidInput, p.ActiveTab)
	}
	current := p.Current()
	if current.Completed {
		return p, fmt.Errorf("%w: %s item %d", apperrors.ErrItemCompleted, p.ActiveTab, current.ID)
	}
	if p.Repetition < current.Repetitions {
		p.Repetition++
		return p, nil
	}
	p = p.clone()
	p.Active()[p.Cursor].Completed = true
	return p.Next(), nil
}

// ResetAll clears completion on both lists and rewinds the cursor. The active
// tab is kept.
func (p Progress) ResetAll() Progress {
	p.Morning = fresh(p.Morning)
	p.Evening = fresh(p.Evening)
	p.Cursor = 0
	p.Repetition = 1
	return p
}
