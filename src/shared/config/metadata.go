package config

// MetadataSource selects where track metadata is read from.
type MetadataSource interface {
	MetadataSource()
}

var _ MetadataSource = MedleyDBMetadata{}

// MedleyDBMetadata reads a MedleyDB checkout rooted at Root.
type MedleyDBMetadata struct {
	Root string
}

func (m MedleyDBMetadata) MetadataSource() {}

var _ MetadataSource = ProdDynamoCatalog{}

type ProdDynamoCatalog struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Table           string
}

func (p ProdDynamoCatalog) MetadataSource() {}

var _ MetadataSource = LocalDynamoCatalog{}

type LocalDynamoCatalog struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Host            string
	Table           string
}

func (l LocalDynamoCatalog) MetadataSource() {}
