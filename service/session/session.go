// Package session owns the single process-wide wallet connection and routes
// every fetch to the adapter bound at connect time.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/cache"
	"golang.org/x/sync/errgroup"

	"github.com/bitfolio/bitfolio/core"
)

const cacheSlots = 8

func New(
	registry core.Registry,
	adapters core.AdapterSet,
	properties core.PropertyStore,
	activities core.ActivityStore,
	sink core.Sink,
	logger *slog.Logger,
) core.Session {
	s := &service{
		registry:   registry,
		adapters:   adapters,
		properties: properties,
		activities: activities,
		sink:       sink,
		logger:     logger.With("component", "session"),
	}
	s.resetCachesLocked()
	return s
}

type service struct {
	registry   core.Registry
	adapters   core.AdapterSet
	properties core.PropertyStore
	activities core.ActivityStore
	sink       core.Sink
	logger     *slog.Logger

	mux       sync.Mutex
	provider  core.ProviderID
	addresses core.AddressList
	// epoch identifies one connection lifetime; in-flight fetches compare it
	// before touching any cache so results landing after a disconnect are
	// discarded.
	epoch string

	balances *cache.Cache[core.AssetClass, core.BalanceSnapshot]
	assets   *cache.Cache[core.AssetClass, []core.AssetItem]
	history  *cache.Cache[core.AssetClass, []core.TransactionRecord]
}

func (s *service) resetCachesLocked() {
	s.balances = cache.New[core.AssetClass, core.BalanceSnapshot](cacheSlots)
	s.assets = cache.New[core.AssetClass, []core.AssetItem](cacheSlots)
	s.history = cache.New[core.AssetClass, []core.TransactionRecord](cacheSlots)
}

func (s *service) stateLocked() core.SessionState {
	addrs := make(core.AddressList, len(s.addresses))
	copy(addrs, s.addresses)
	return core.SessionState{Provider: s.provider, Addresses: addrs}
}

func (s *service) State() core.SessionState {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.stateLocked()
}

func (s *service) Connect(ctx context.Context, id core.ProviderID) (core.SessionState, error) {
	s.mux.Lock()
	connected := s.provider != ""
	s.mux.Unlock()
	if connected {
		return core.SessionState{}, core.ErrAlreadyConnected
	}

	adapter, err := s.adapters.Adapter(id)
	if err != nil {
		return core.SessionState{}, err
	}

	bindings, err := adapter.Connect(ctx)
	if err != nil {
		connectsTotal.WithLabelValues(string(id), outcomeError).Inc()
		s.sink.OnToast("Failed to connect to wallet: "+err.Error(), core.SeverityError)
		return core.SessionState{}, err
	}

	s.mux.Lock()
	if s.provider != "" {
		// Lost the race against a concurrent connect.
		s.mux.Unlock()
		return core.SessionState{}, core.ErrAlreadyConnected
	}
	s.provider = id
	s.addresses = bindings
	s.epoch = uuid.NewString()
	s.resetCachesLocked()
	state := s.stateLocked()
	s.mux.Unlock()

	s.persistLastProvider(ctx, id)

	connectsTotal.WithLabelValues(string(id), outcomeOK).Inc()
	s.sink.OnConnectionChanged(state)
	s.sink.OnToast("Wallet connected successfully!", core.SeveritySuccess)
	return state, nil
}

// Disconnect clears provider, addresses and every cache slot unconditionally.
// It performs no network calls and is safe to call when already disconnected.
func (s *service) Disconnect(ctx context.Context) {
	s.mux.Lock()
	wasConnected := s.provider != ""
	s.provider = ""
	s.addresses = nil
	s.epoch = ""
	s.resetCachesLocked()
	s.mux.Unlock()

	if !wasConnected {
		return
	}

	s.persistLastProvider(ctx, "")

	s.sink.OnConnectionChanged(core.SessionState{})
	s.sink.OnToast("Wallet disconnected successfully", core.SeveritySuccess)
}

func (s *service) Restore(ctx context.Context) error {
	if s.properties == nil {
		return nil
	}

	var last core.ProviderID
	if err := s.properties.Get(ctx, core.PropertyKeyLastProvider, &last); err != nil {
		return err
	}
	if last == "" {
		return nil
	}
	if !s.registry.Detect(last) {
		s.logger.Info("last provider no longer detected", "provider", last)
		return nil
	}

	_, err := s.Connect(ctx, last)
	return err
}

func (s *service) persistLastProvider(ctx context.Context, id core.ProviderID) {
	if s.properties == nil {
		return
	}
	if err := s.properties.Set(ctx, core.PropertyKeyLastProvider, id); err != nil {
		s.logger.Error("properties.Set", "err", err)
	}
}

// begin snapshots the connection for one fetch. The mutex is never held
// across adapter or network calls.
func (s *service) begin() (epoch string, provider core.ProviderID, addrs core.AddressList, adapter core.ProviderAdapter, err error) {
	s.mux.Lock()
	if s.provider == "" {
		s.mux.Unlock()
		return "", "", nil, nil, core.ErrNotConnected
	}
	epoch = s.epoch
	provider = s.provider
	addrs = make(core.AddressList, len(s.addresses))
	copy(addrs, s.addresses)
	s.mux.Unlock()

	adapter, err = s.adapters.Adapter(provider)
	return epoch, provider, addrs, adapter, err
}

// commit runs fn under the lock only if the session is still the one the
// fetch started against; otherwise the result is dropped.
func (s *service) commit(epoch string, fn func()) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.epoch != epoch {
		return core.ErrSessionChanged
	}
	fn()
	return nil
}

func (s *service) sameEpoch(epoch string) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.epoch == epoch
}

func (s *service) FetchBalance(ctx context.Context, class core.AssetClass) (core.BalanceSnapshot, error) {
	epoch, provider, addrs, adapter, err := s.begin()
	if err != nil {
		return core.BalanceSnapshot{}, err
	}

	snapshot, err := adapter.Balance(ctx, addrs, class)
	if err != nil {
		if !s.sameEpoch(epoch) {
			s.discard(provider, class, "balance", err)
			return core.BalanceSnapshot{}, core.ErrSessionChanged
		}
		s.observe(provider, class, "balance", err)
		s.sink.OnBalanceUpdated(class, nil, err)
		return core.BalanceSnapshot{}, err
	}

	if err := s.commit(epoch, func() { s.balances.Put(class, snapshot) }); err != nil {
		s.discard(provider, class, "balance", err)
		return core.BalanceSnapshot{}, err
	}

	s.observe(provider, class, "balance", nil)
	s.sink.OnBalanceUpdated(class, &snapshot, nil)
	return snapshot, nil
}

func (s *service) FetchAssets(ctx context.Context, class core.AssetClass) ([]core.AssetItem, error) {
	epoch, provider, addrs, adapter, err := s.begin()
	if err != nil {
		return nil, err
	}

	items, err := adapter.Assets(ctx, addrs, class)
	if err != nil {
		if !s.sameEpoch(epoch) {
			s.discard(provider, class, "assets", err)
			return nil, core.ErrSessionChanged
		}
		s.observe(provider, class, "assets", err)
		s.sink.OnAssetsUpdated(class, nil, err)
		return nil, err
	}

	if err := s.commit(epoch, func() { s.assets.Put(class, items) }); err != nil {
		s.discard(provider, class, "assets", err)
		return nil, err
	}

	s.observe(provider, class, "assets", nil)
	s.sink.OnAssetsUpdated(class, items, nil)
	return items, nil
}

func (s *service) FetchHistory(ctx context.Context, class core.AssetClass) ([]core.TransactionRecord, error) {
	epoch, provider, addrs, adapter, err := s.begin()
	if err != nil {
		return nil, err
	}

	records, err := adapter.History(ctx, addrs, class)
	if err != nil {
		if !s.sameEpoch(epoch) {
			s.discard(provider, class, "history", err)
			return nil, core.ErrSessionChanged
		}
		s.observe(provider, class, "history", err)
		s.sink.OnHistoryUpdated(class, nil, err)
		return nil, err
	}

	if err := s.commit(epoch, func() { s.history.Put(class, records) }); err != nil {
		s.discard(provider, class, "history", err)
		return nil, err
	}

	if s.activities != nil {
		if err := s.activities.Record(ctx, provider, class, records); err != nil {
			s.logger.Error("activities.Record", "err", err)
		}
	}

	s.observe(provider, class, "history", nil)
	s.sink.OnHistoryUpdated(class, records, nil)
	return records, nil
}

// RefreshAll re-fetches everything the connected provider supports. Expected
// conditions (unsupported classes, a session torn down mid-flight) do not
// count as failures.
func (s *service) RefreshAll(ctx context.Context) error {
	s.mux.Lock()
	provider := s.provider
	s.mux.Unlock()
	if provider == "" {
		return core.ErrNotConnected
	}

	var g errgroup.Group
	g.SetLimit(4)

	for _, class := range s.registry.Capabilities(provider) {
		class := class
		switch class {
		case core.AssetBitcoin, core.AssetStacks:
			g.Go(func() error {
				_, err := s.FetchBalance(ctx, class)
				return ignoreExpected(err)
			})
			g.Go(func() error {
				_, err := s.FetchHistory(ctx, class)
				return ignoreExpected(err)
			})
		case core.AssetOrdinals, core.AssetRunes:
			g.Go(func() error {
				_, err := s.FetchAssets(ctx, class)
				return ignoreExpected(err)
			})
		}
	}

	return g.Wait()
}

func ignoreExpected(err error) error {
	if err == nil || err == core.ErrSessionChanged || err == core.ErrNotConnected {
		return nil
	}
	if core.IsKind(err, core.ErrCapabilityUnsupported) {
		return nil
	}
	return err
}

func (s *service) CachedBalance(class core.AssetClass) (core.BalanceSnapshot, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.balances.Get(class)
}

func (s *service) CachedAssets(class core.AssetClass) ([]core.AssetItem, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.assets.Get(class)
}

func (s *service) CachedHistory(class core.AssetClass) ([]core.TransactionRecord, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.history.Get(class)
}

// discard routes a result that arrived for a dead session through the
// catch-all path so it is not silently lost.
func (s *service) discard(provider core.ProviderID, class core.AssetClass, op string, err error) {
	fetchesTotal.WithLabelValues(string(provider), string(class), op, outcomeStale).Inc()
	s.sink.OnBackgroundError("session "+op+" ("+string(class)+")", err)
}

func (s *service) observe(provider core.ProviderID, class core.AssetClass, op string, err error) {
	outcome := outcomeOK
	switch {
	case core.IsKind(err, core.ErrCapabilityUnsupported):
		outcome = outcomeUnsupported
	case err != nil:
		outcome = outcomeError
	}
	fetchesTotal.WithLabelValues(string(provider), string(class), op, outcome).Inc()
}
