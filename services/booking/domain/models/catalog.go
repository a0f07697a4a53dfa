package models

// Offering is a rentable storage-box type from the catalog.
// Catalog rows are owned by an external back office; this context reads them only.
type Offering struct {
	ID         string
	Label      string
	UnitPrice  int64 // VND
	PreviewURL string
}

// GoodsCategory classifies what a customer intends to store in a box.
type GoodsCategory struct {
	ID          string
	Name        string
	Description string
	Fragile     bool
	Stackable   bool
}

// Catalog is the synchronous read-only lookup the selection aggregator uses.
// Implementations return nil for unknown ids, never an error.
type Catalog interface {
	OfferingByID(id string) *Offering
	GoodsCategoryByID(id string) *GoodsCategory
}

// CatalogSnapshot is an immutable in-memory Catalog built from a point-in-time
// read of the offering and goods-category tables. The aggregator itself never
// performs I/O; callers refresh the snapshot as needed.
type CatalogSnapshot struct {
	offerings  map[string]Offering
	categories map[string]GoodsCategory
}

// NewCatalogSnapshot builds a CatalogSnapshot from catalog rows.
func NewCatalogSnapshot(offerings []Offering, categories []GoodsCategory) *CatalogSnapshot {
	s := &CatalogSnapshot{
		offerings:  make(map[string]Offering, len(offerings)),
		categories: make(map[string]GoodsCategory, len(categories)),
	}
	for _, o := range offerings {
		s.offerings[o.ID] = o
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

// OfferingByID returns the offering with the given id, or nil when unknown.
func (s *CatalogSnapshot) OfferingByID(id string) *Offering {
	if o, ok := s.offerings[id]; ok {
		return &o
	}
	return nil
}

// GoodsCategoryByID returns the goods category with the given id, or nil when unknown.
func (s *CatalogSnapshot) GoodsCategoryByID(id string) *GoodsCategory {
	if c, ok := s.categories[id]; ok {
		return &c
	}
	return nil
}

// Offerings returns all offerings in the snapshot in unspecified order.
func (s *CatalogSnapshot) Offerings() []Offering {
	out := make([]Offering, 0, len(s.offerings))
	for _, o := range s.offerings {
		out = append(out, o)
	}
	return out
}

// GoodsCategories returns all goods categories in the snapshot in unspecified order.
func (s *CatalogSnapshot) GoodsCategories() []GoodsCategory {
	out := make([]GoodsCategory, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out
}
