package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryDatabase is the in-process [Database] implementation used when the
// networked backend is unreachable at startup. Data lives only for the
// lifetime of the process.
//
// Documents are kept as bson maps normalised through a marshal round trip,
// so time encoding and field names match what the MongoDB implementation
// would store, and every read hands the caller an independently decoded
// copy.
type MemoryDatabase struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
	uniqueKeys  map[string][]string
}

// NewMemoryDatabase constructs an empty in-memory database. Unique
// constraints are declared separately via [MemoryDatabase.DeclareUniqueIndex],
// mirroring how the MongoDB implementation declares its indexes.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{
		collections: make(map[string]*memoryCollection),
		uniqueKeys:  make(map[string][]string),
	}
}

// DeclareUniqueIndex registers field as a unique key on the named
// collection. Subsequent inserts carrying a value already present in that
// field fail with [ErrDuplicateKey]. Must be called before the collection is
// first used.
func (db *MemoryDatabase) DeclareUniqueIndex(collection, field string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.uniqueKeys[collection] = append(db.uniqueKeys[collection], field)
	if col, ok := db.collections[collection]; ok {
		col.unique = db.uniqueKeys[collection]
	}
}

// Collection returns the named collection, creating it on first use.
func (db *MemoryDatabase) Collection(name string) Collection {
	db.mu.Lock()
	defer db.mu.Unlock()

	if col, ok := db.collections[name]; ok {
		return col
	}

	col := &memoryCollection{unique: db.uniqueKeys[name]}
	db.collections[name] = col
	return col
}

// memoryCollection holds an insertion-ordered document list guarded by one
// mutex. All five contract operations are mutually exclusive with respect to
// the list, so concurrent callers never observe a torn read or corrupt the
// structure. By construction it never returns [ErrStoreUnavailable].
type memoryCollection struct {
	mu     sync.Mutex
	docs   []bson.M
	unique []string
}

func (c *memoryCollection) FindOne(ctx context.Context, filter Filter, dest any) error {
	normalized, err := normalizeDocument(bson.M(filter))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, normalized) {
			return decodeDocument(doc, dest)
		}
	}

	return ErrNotFound
}

func (c *memoryCollection) Find(ctx context.Context, filter Filter, opts *FindOptions, dest any) error {
	normalized, err := normalizeDocument(bson.M(filter))
	if err != nil {
		return err
	}

	// decoding happens under the lock: matched aliases the stored maps, and
	// a concurrent UpdateOne mutates them in place
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]bson.M, 0, len(c.docs))
	for _, doc := range c.docs {
		if matches(doc, normalized) {
			matched = append(matched, doc)
		}
	}

	if opts != nil && opts.SortField != "" {
		sortDocuments(matched, opts.SortField, opts.SortDesc)
	}

	return decodeDocuments(matched, dest)
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc any) error {
	normalized, err := normalizeDocument(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, field := range c.unique {
		value, ok := normalized[field]
		if !ok {
			continue
		}
		for _, existing := range c.docs {
			if reflect.DeepEqual(existing[field], value) {
				return fmt.Errorf("%w: %s", ErrDuplicateKey, field)
			}
		}
	}

	c.docs = append(c.docs, normalized)
	return nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter Filter, set Fields) (int64, error) {
	normalizedFilter, err := normalizeDocument(bson.M(filter))
	if err != nil {
		return 0, err
	}
	normalizedSet, err := normalizeDocument(bson.M(set))
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, normalizedFilter) {
			for field, value := range normalizedSet {
				doc[field] = value
			}
			return 1, nil
		}
	}

	return 0, nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	normalized, err := normalizeDocument(bson.M(filter))
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if matches(doc, normalized) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}

	return 0, nil
}

// normalizeDocument runs v through a bson marshal round trip, producing the
// bson.M form MongoDB itself would store (time.Time becomes
// primitive.DateTime, struct fields take their bson tag names). Keeping both
// implementations on the same representation is what makes their observable
// semantics identical.
func normalizeDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error normalizing document: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error normalizing document: %w", err)
	}

	return doc, nil
}

// decodeDocument decodes a stored document into dest. The marshal round trip
// guarantees dest holds an independent copy: mutating it never affects the
// stored record.
func decodeDocument(doc bson.M, dest any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}

	if err := bson.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}

	return nil
}

// decodeDocuments decodes docs into dest, which must be a pointer to a
// slice. Each element is decoded independently.
func decodeDocuments(docs []bson.M, dest any) error {
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Slice {
		return errors.New("dest must be a pointer to a slice")
	}

	sliceValue := reflect.MakeSlice(destValue.Elem().Type(), 0, len(docs))
	elemType := destValue.Elem().Type().Elem()

	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeDocument(doc, elem.Interface()); err != nil {
			return err
		}
		sliceValue = reflect.Append(sliceValue, elem.Elem())
	}

	destValue.Elem().Set(sliceValue)
	return nil
}

// matches reports whether doc satisfies every equality entry of filter.
func matches(doc, filter bson.M) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}

	return true
}

// sortDocuments orders docs by the given field. The sort is stable so that
// documents with equal keys keep their insertion order.
func sortDocuments(docs []bson.M, field string, desc bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		cmp := compareValues(docs[i][field], docs[j][field])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compareValues orders the bson scalar types the sort key can hold.
// Unknown or missing values sort first.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return compareInt64(int64(av), int64(bv))
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1
			case av.After(bv):
				return 1
			}
			return 0
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case int32:
		if bv, ok := b.(int32); ok {
			return compareInt64(int64(av), int64(bv))
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return compareInt64(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	}

	if a == nil && b != nil {
		return -1
	}
	if a != nil && b == nil {
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
