package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type productFile struct {
	Products []Product `json:"products" yaml:"products"`
}

// LoadProducts reads a JSON or YAML product list. The file may hold a bare
// list or an object with a "products" key. On any failure an empty catalog
// is returned together with the error, so callers can log and carry on.
func LoadProducts(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return New(nil), fmt.Errorf("read catalog %s: %w", path, err)
	}

	products, err := decodeProducts(path, data)
	if err != nil {
		return New(nil), fmt.Errorf("decode catalog %s: %w", path, err)
	}

	return New(products), nil
}

// LoadFAQ reads the optional FAQ config. A nil FAQ is returned on failure.
func LoadFAQ(path string) (*FAQ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read faq %s: %w", path, err)
	}

	var faq FAQ
	if err := unmarshal(path, data, &faq); err != nil {
		return nil, fmt.Errorf("decode faq %s: %w", path, err)
	}
	return &faq, nil
}

func decodeProducts(path string, data []byte) ([]Product, error) {
	var list []Product
	if err := unmarshal(path, data, &list); err == nil {
		return list, nil
	}

	var wrapped productFile
	if err := unmarshal(path, data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Products, nil
}

func unmarshal(path string, data []byte, v interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}
