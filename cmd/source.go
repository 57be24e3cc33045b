package cmd

import (
	"res-builder/core/balance"
	"res-builder/core/config"
	"res-builder/core/storage"
)

// newSource selects where the input workbooks come from: object storage when
// a bucket is configured, the local filesystem otherwise. The storage client
// is returned alongside so callers can publish outputs to the same bucket;
// it is nil for the filesystem source.
func newSource(cfg *config.Config) (balance.Source, storage.Client, error) {
	if cfg.Balance.Bucket == "" {
		return balance.PathSource{Config: cfg.Balance}, nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	return balance.ObjectSource{Client: client, Config: cfg.Balance}, client, nil
}
