package out

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"mihrab/internal/modules/dhikr/domain"
	dhikrout "mihrab/internal/modules/dhikr/port/out"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type YAMLCatalog struct {
	raw []byte

	once    sync.Once
	catalog domain.Catalog
	err     error
}

// NewEmbeddedCatalog serves the morning and evening lists shipped with the binary.
func NewEmbeddedCatalog() dhikrout.CatalogSource {
	return NewYAMLCatalog(embeddedCatalog)
}

func NewYAMLCatalog(raw []byte) *YAMLCatalog {
	return &YAMLCatalog{raw: raw}
}

func (c *YAMLCatalog) Catalog() (domain.Catalog, error) {
	c.once.Do(func() {
		var catalog domain.Catalog
		if err := yaml.Unmarshal(c.raw, &catalog); err != nil {
			c.err = fmt.Errorf("parse dhikr catalog: %w", err)
			return
		}
		if err := catalog.Validate(); err != nil {
			c.err = fmt.Errorf("dhikr catalog: %w", err)
			return
		}
		c.catalog = catalog
	})
	return c.catalog, c.err
}
