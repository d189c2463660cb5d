// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// NetworkID identifies one of the networks known to a Registry.
type NetworkID uint8

// Known networks.
const (
	MainNet NetworkID = iota
	TestNet
	RegTest

	// numNetworks must always come last.
	numNetworks
)

// Map of NetworkID values back to their network names.
var networkIDStrings = [numNetworks]string{
	MainNet: "main",
	TestNet: "test",
	RegTest: "regtest",
}

// String returns the NetworkID as the network name.
func (id NetworkID) String() string {
	if id >= numNetworks {
		return fmt.Sprintf("Unknown NetworkID (%d)", uint8(id))
	}
	return networkIDStrings[id]
}

// ParseNetworkID resolves a network by name.  The btcd style names mainnet
// and testnet are accepted as aliases.
func ParseNetworkID(name string) (NetworkID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	}
	str := fmt.Sprintf("unknown network %q", name)
	return 0, paramsError(ErrUnknownNetwork, str)
}

// UpgradeActivation moves the activation height of an upgrade on the
// regression test network.
type UpgradeActivation struct {
	Upgrade UpgradeIndex
	Height  int32
}

// SelectOptions are the regression test adjustments applied when a network is
// selected.  Every option is an explicit opt-in, and all of them are rejected
// with ErrRegtestOnly for any other network.
type SelectOptions struct {
	// RegtestProtectCoinbase requires coinbase outputs to be shielded.
	RegtestProtectCoinbase bool

	// DeveloperSetPoolSizeZero enables the shielded value pool turnstile
	// so that tests can drain a pool to zero.
	DeveloperSetPoolSizeZero bool

	// UpgradeActivations override upgrade activation heights.
	UpgradeActivations []UpgradeActivation
}

func (o *SelectOptions) isZero() bool {
	return !o.RegtestProtectCoinbase && !o.DeveloperSetPoolSizeZero &&
		len(o.UpgradeActivations) == 0
}

// Registry holds the parameters of every known network and tracks which of
// them the process runs on.  The parameter sets are built and validated once
// by NewRegistry.
//
// A network may only be selected once.  Reading the active parameters is safe
// for concurrent use once a network is selected.
type Registry struct {
	params [numNetworks]*Params

	mtx      sync.Mutex // serializes selection
	selected atomic.Pointer[Params]
}

// NewRegistry returns a registry holding fresh parameters for every known
// network.  It panics if any compiled-in parameter set is invalid, since the
// node must not start with corrupt consensus constants.
func NewRegistry() *Registry {
	var r Registry
	r.params[MainNet] = MainNetParams()
	r.params[TestNet] = TestNetParams()
	r.params[RegTest] = RegNetParams()

	for _, params := range r.params {
		if err := params.Validate(); err != nil {
			panic(fmt.Sprintf("invalid %s network parameters: %v",
				params.Name, err))
		}
	}
	return &r
}

// lookup returns the parameters of id, or an ErrUnknownNetwork error.
func (r *Registry) lookup(id NetworkID) (*Params, error) {
	if id >= numNetworks {
		str := fmt.Sprintf("unknown network id %d", uint8(id))
		return nil, paramsError(ErrUnknownNetwork, str)
	}
	return r.params[id], nil
}

// ByID returns the parameters of the given network without changing the
// selection.  It panics for an unknown network.
func (r *Registry) ByID(id NetworkID) *Params {
	params, err := r.lookup(id)
	if err != nil {
		panic(err)
	}
	return params
}

// Select makes the given network the active network and applies opts to it.
// A second call fails with ErrNetworkAlreadySelected; test harnesses that
// need to switch networks use ReselectForTesting.
func (r *Registry) Select(id NetworkID, opts SelectOptions) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if active := r.selected.Load(); active != nil {
		str := fmt.Sprintf("cannot select %v network: %s network is "+
			"already selected", id, active.Name)
		return paramsError(ErrNetworkAlreadySelected, str)
	}
	return r.selectNetwork(id, &opts)
}

// ReselectForTesting replaces the active network regardless of an earlier
// selection.  Parameters that were already handed out are not reset.  It must
// not be used outside of tests.
func (r *Registry) ReselectForTesting(id NetworkID, opts SelectOptions) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.selectNetwork(id, &opts)
}

// selectNetwork applies opts and publishes the parameters of id.
//
// This function MUST be called with the registry lock held.
func (r *Registry) selectNetwork(id NetworkID, opts *SelectOptions) error {
	params, err := r.lookup(id)
	if err != nil {
		return err
	}

	if !opts.isZero() {
		if id != RegTest {
			str := fmt.Sprintf("regression test options may not be "+
				"applied to the %s network", params.Name)
			return paramsError(ErrRegtestOnly, str)
		}

		overrides := &RegtestOverrides{params: params}
		if err := overrides.setUpgradeActivationHeights(opts.UpgradeActivations); err != nil {
			return err
		}
		if opts.RegtestProtectCoinbase {
			overrides.SetCoinbaseMustBeProtected()
		}
		if opts.DeveloperSetPoolSizeZero {
			overrides.SetZIP209Enabled()
		}
	}

	r.selected.Store(params)
	log.Infof("Selected %s network parameters", params.Name)
	return nil
}

// IsSelected returns whether a network has been selected.
func (r *Registry) IsSelected() bool {
	return r.selected.Load() != nil
}

// Active returns the parameters of the selected network.  Calling it before a
// network is selected is a programming error and panics.
func (r *Registry) Active() *Params {
	params := r.selected.Load()
	if params == nil {
		panic("chaincfg: active parameters requested before a network " +
			"was selected")
	}
	return params
}

// RegtestOverrides returns the mutation capability for the regression test
// parameters of the registry.
func (r *Registry) RegtestOverrides() *RegtestOverrides {
	return &RegtestOverrides{params: r.params[RegTest]}
}

// defaultRegistry is the process wide registry behind the package level
// functions.
var defaultRegistry = NewRegistry()

// SelectParams selects the active network of the process wide registry.
func SelectParams(id NetworkID, opts SelectOptions) error {
	return defaultRegistry.Select(id, opts)
}

// ActiveParams returns the parameters of the network selected through
// SelectParams.  It panics when no network has been selected.
func ActiveParams() *Params {
	return defaultRegistry.Active()
}

// ParamsForNetwork returns the parameters of the given network from the
// process wide registry.
func ParamsForNetwork(id NetworkID) *Params {
	return defaultRegistry.ByID(id)
}

// DefaultRegtestOverrides returns the regression test mutation capability of
// the process wide registry.
func DefaultRegtestOverrides() *RegtestOverrides {
	return defaultRegistry.RegtestOverrides()
}
