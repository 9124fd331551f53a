package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rferraz1/interfacefinalvasco/store"
)

// ErrIndexOutOfRange is returned by deletes addressing a record the in-memory
// collection does not hold.
var ErrIndexOutOfRange = errors.New("roster: record index out of range")

// Tabs names the backing-store tabs for each record kind.
type Tabs struct {
	Players string
	Titles  string
	Market  string
}

// Dataset is the read-through copy of the backing store. Collections load
// lazily on first read and reload on demand; writes keep the in-memory side
// and the store in step by appending to both. The store remains the sole
// durable owner.
type Dataset struct {
	mu sync.Mutex
	st store.Store

	players collection
	titles  collection
	market  collection

	loaded bool
}

type collection struct {
	tab    string
	schema Schema
	recs   []Record
}

// NewDataset builds a dataset over st. defaultCategory fills the category
// column of call-up records absent from the source.
func NewDataset(st store.Store, tabs Tabs, defaultCategory string) *Dataset {
	return &Dataset{
		st:      st,
		players: collection{tab: tabs.Players, schema: Players(defaultCategory)},
		titles:  collection{tab: tabs.Titles, schema: Titles()},
		market:  collection{tab: tabs.Market, schema: Market()},
	}
}

// PlayerSchema returns the call-up schema in use.
func (d *Dataset) PlayerSchema() Schema { return d.players.schema }

// TitleSchema returns the trophy schema in use.
func (d *Dataset) TitleSchema() Schema { return d.titles.schema }

// MarketSchema returns the transfer-market schema in use.
func (d *Dataset) MarketSchema() Schema { return d.market.schema }

// Load fetches all tabs. With force false an already-loaded dataset is left
// alone. On a connection error every collection is left empty but typed to
// its schema and the error is returned once; a missing tab is not an error,
// the feature just degrades to an empty collection.
func (d *Dataset) Load(ctx context.Context, force bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx, force)
}

func (d *Dataset) load(ctx context.Context, force bool) error {
	if d.loaded && !force {
		return nil
	}

	cols := []*collection{&d.players, &d.titles, &d.market}
	for _, c := range cols {
		c.recs = []Record{}
	}
	for _, c := range cols {
		recs, err := d.fetch(ctx, c.tab, c.schema)
		if err != nil {
			d.loaded = false
			return err
		}
		c.recs = recs
	}
	d.loaded = true
	return nil
}

func (d *Dataset) fetch(ctx context.Context, tab string, schema Schema) ([]Record, error) {
	rows, err := d.st.Read(ctx, tab)
	if errors.Is(err, store.ErrTabNotFound) {
		zap.L().Warn("tab not found, serving empty collection", zap.String("tab", tab))
		return []Record{}, nil
	}
	if err != nil {
		return []Record{}, fmt.Errorf("read tab %q: %w", tab, err)
	}
	return schema.Normalize(rows), nil
}

// Players returns the call-up collection, loading it if needed.
func (d *Dataset) Players(ctx context.Context) ([]Record, error) {
	return d.read(ctx, &d.players)
}

// Titles returns the trophy collection, loading it if needed.
func (d *Dataset) Titles(ctx context.Context) ([]Record, error) {
	return d.read(ctx, &d.titles)
}

// Market returns the transfer-market collection, loading it if needed.
func (d *Dataset) Market(ctx context.Context) ([]Record, error) {
	return d.read(ctx, &d.market)
}

func (d *Dataset) read(ctx context.Context, c *collection) ([]Record, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.load(ctx, false); err != nil {
		return []Record{}, err
	}
	return append([]Record(nil), c.recs...), nil
}

// BulkAddPlayers validates, normalizes and appends a raw batch of call-up
// records, returning the count added.
func (d *Dataset) BulkAddPlayers(ctx context.Context, header []string, rows []map[string]string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bulkAdd(ctx, &d.players, header, rows)
}

// BulkAddTitles validates, normalizes and appends a raw batch of trophy
// records, returning the count added.
func (d *Dataset) BulkAddTitles(ctx context.Context, header []string, rows []map[string]string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bulkAdd(ctx, &d.titles, header, rows)
}

// AddPlayer appends a single call-up record given by canonical column name.
func (d *Dataset) AddPlayer(ctx context.Context, raw map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.bulkAdd(ctx, &d.players, d.players.schema.Columns, []map[string]string{raw})
	return err
}

// AddTitle appends a single trophy record given by canonical column name.
func (d *Dataset) AddTitle(ctx context.Context, raw map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.bulkAdd(ctx, &d.titles, d.titles.schema.Columns, []map[string]string{raw})
	return err
}

// bulkAdd implements the sync write path: reject the whole batch when the
// header misses a required column, normalize, append in memory, then append
// the positional rows to the store. The in-memory update happens before the
// store append is confirmed; a failed append leaves the two sides diverged
// until the next reload.
func (d *Dataset) bulkAdd(ctx context.Context, c *collection, header []string, rows []map[string]string) (int, error) {
	if err := d.load(ctx, false); err != nil {
		return 0, err
	}
	if err := c.schema.ValidateHeader(header); err != nil {
		return 0, err
	}

	batch := c.schema.Normalize(rows)
	c.recs = append(c.recs, batch...)

	if err := d.st.Append(ctx, c.tab, c.schema.Rows(batch)); err != nil {
		return len(batch), fmt.Errorf("append to tab %q: %w", c.tab, err)
	}
	return len(batch), nil
}

// DeletePlayer removes the call-up record at in-memory index i. The header
// row occupies store position 1, so index i maps to position i+2.
func (d *Dataset) DeletePlayer(ctx context.Context, i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleteAt(ctx, &d.players, i)
}

// DeleteTitle removes the trophy record at in-memory index i.
func (d *Dataset) DeleteTitle(ctx context.Context, i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleteAt(ctx, &d.titles, i)
}

func (d *Dataset) deleteAt(ctx context.Context, c *collection, i int) error {
	if err := d.load(ctx, false); err != nil {
		return err
	}
	if i < 0 || i >= len(c.recs) {
		return ErrIndexOutOfRange
	}
	if err := d.st.Delete(ctx, c.tab, i+2); err != nil {
		return fmt.Errorf("delete from tab %q: %w", c.tab, err)
	}
	c.recs = append(c.recs[:i], c.recs[i+1:]...)
	return nil
}
