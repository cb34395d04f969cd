// Package dataset owns the process-wide reference data built by ingestion.
// The data is written once, behind a load-once gate, and read-only afterward.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/anyulbade/travel-budget-estimator/internal/ingest"
	"github.com/anyulbade/travel-budget-estimator/internal/model"
)

// ErrCountryNotFound marks a lookup for a country absent from the ingested
// dataset, so callers can offer a fallback instead of a generic failure.
var ErrCountryNotFound = errors.New("country not found in dataset")

// Store caches the ingested dataset. Concurrent first requests share a
// single ingestion via singleflight; after the first successful load the
// data is immutable and reads take only the read lock.
type Store struct {
	loader func(ctx context.Context) (*ingest.Dataset, error)

	group singleflight.Group
	mu    sync.RWMutex
	data  *ingest.Dataset
	byKey map[string]*model.CountryRecord
}

// New builds a store around a loader. The loader runs at most once per Load
// generation, however many requests race on it.
func New(loader func(ctx context.Context) (*ingest.Dataset, error)) *Store {
	return &Store{loader: loader}
}

// FileLoader returns a loader reading the workbook at path, bounded by
// maxBytes and timeout since ingestion is the only externally triggered
// I/O in the core.
func FileLoader(path string, maxBytes int64, timeout time.Duration) func(ctx context.Context) (*ingest.Dataset, error) {
	return func(ctx context.Context) (*ingest.Dataset, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", path, err)
		}
		defer f.Close()

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ds, err := ingest.ParseWorkbook(io.LimitReader(f, maxBytes))
		if err != nil {
			return nil, err
		}
		log.Info().Int("countries", len(ds.Countries)).Int("currencies", len(ds.Currencies)).
			Str("path", path).Msg("workbook ingested")
		return ds, nil
	}
}

// Load makes sure the dataset is ingested, running the loader at most once
// even under concurrent first requests. A failed load leaves the store empty
// so a later explicit call can retry.
func (s *Store) Load(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.data != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.group.Do("load", func() (interface{}, error) {
		ds, err := s.loader(ctx)
		if err != nil {
			return nil, err
		}
		s.install(ds)
		return nil, nil
	})
	return err
}

// Reload discards the cached dataset and ingests again. This is the only
// retry path after an ingestion failure.
func (s *Store) Reload(ctx context.Context) error {
	ds, err := s.loader(ctx)
	if err != nil {
		return err
	}
	s.install(ds)
	return nil
}

func (s *Store) install(ds *ingest.Dataset) {
	byKey := make(map[string]*model.CountryRecord, len(ds.Countries))
	for i := range ds.Countries {
		byKey[ds.Countries[i].Country] = &ds.Countries[i]
	}

	s.mu.Lock()
	s.data = ds
	s.byKey = byKey
	s.mu.Unlock()
}

// Country returns the record for a country name, loading the dataset first
// if needed.
func (s *Store) Country(ctx context.Context, name string) (*model.CountryRecord, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	rec, ok := s.byKey[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrCountryNotFound)
	}
	return rec, nil
}

// Snapshot returns the full dataset for the dataset endpoint.
func (s *Store) Snapshot(ctx context.Context) (*ingest.Dataset, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, nil
}
