// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// AlwaysActive is the activation height of an upgrade whose rules apply
	// from the genesis block onwards.
	AlwaysActive int32 = 0

	// NoActivationHeight is the activation height of an upgrade that is not
	// defined for a network and therefore never activates.
	NoActivationHeight int32 = -1
)

// UpgradeIndex identifies a network upgrade by its position in the upgrade
// table.  Upgrades are only ever appended, so an index is stable across all
// releases.
type UpgradeIndex int

// Constants that define the upgrade offsets in the upgrade table of the
// parameters for each network.
const (
	// UpgradeBaseSprout is the base protocol.  It is always active.
	UpgradeBaseSprout UpgradeIndex = iota

	// UpgradeTestDummy is a placeholder upgrade used by tests to exercise
	// the activation logic.  It is never active on a public network.
	UpgradeTestDummy

	// UpgradeOverwinter defines the Overwinter upgrade.
	UpgradeOverwinter

	// UpgradeSapling defines the Sapling upgrade.
	UpgradeSapling

	// UpgradeBlossom defines the Blossom upgrade which halves the target
	// block spacing.
	UpgradeBlossom

	// NOTE: DefinedUpgrades must always come last since it is used to
	// determine how many upgrades are currently defined.

	// DefinedUpgrades is the number of currently defined upgrades.
	DefinedUpgrades
)

// upgradeInfo is the network independent metadata of an upgrade.
type upgradeInfo struct {
	name     string
	branchID uint32
}

var upgradeInfos = [DefinedUpgrades]upgradeInfo{
	UpgradeBaseSprout: {name: "Sprout", branchID: 0},
	UpgradeTestDummy:  {name: "Test dummy", branchID: 0x74736554},
	UpgradeOverwinter: {name: "Overwinter", branchID: 0x5ba81b19},
	UpgradeSapling:    {name: "Sapling", branchID: 0x76b809bb},
	UpgradeBlossom:    {name: "Blossom", branchID: 0x2bb40e60},
}

// String returns the human-readable name of the upgrade.
func (idx UpgradeIndex) String() string {
	if idx < 0 || idx >= DefinedUpgrades {
		return fmt.Sprintf("Unknown UpgradeIndex (%d)", int(idx))
	}
	return upgradeInfos[idx].name
}

// BranchID returns the consensus branch id of the upgrade.
func (idx UpgradeIndex) BranchID() uint32 {
	mustBeValidUpgrade(idx)
	return upgradeInfos[idx].branchID
}

// ParseUpgrade resolves an upgrade from its name, its decimal index or its
// hexadecimal consensus branch id.
func ParseUpgrade(s string) (UpgradeIndex, error) {
	s = strings.TrimSpace(s)
	for idx := UpgradeBaseSprout; idx < DefinedUpgrades; idx++ {
		if strings.EqualFold(s, upgradeInfos[idx].name) {
			return idx, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < int(DefinedUpgrades) {
			return UpgradeIndex(n), nil
		}
	}
	hexStr := strings.TrimPrefix(strings.ToLower(s), "0x")
	if id, err := strconv.ParseUint(hexStr, 16, 32); err == nil {
		for idx := UpgradeBaseSprout; idx < DefinedUpgrades; idx++ {
			if upgradeInfos[idx].branchID == uint32(id) {
				return idx, nil
			}
		}
	}
	str := fmt.Sprintf("unknown network upgrade %q", s)
	return 0, paramsError(ErrInvalidUpgradeIndex, str)
}

// NetworkUpgrade describes when an upgrade activates on a specific network.
type NetworkUpgrade struct {
	// ProtocolVersion is the minimum peer protocol version required once
	// the upgrade is active.
	ProtocolVersion uint32

	// ActivationHeight is the first block height at which the rules of
	// the upgrade apply.  It is either a concrete height, AlwaysActive or
	// NoActivationHeight.
	ActivationHeight int32

	// ActivationHash is the hash of the block at ActivationHeight on the
	// canonical chain, when known.  A node that observes a different block
	// at that height has followed the wrong chain through the upgrade.
	ActivationHash *chainhash.Hash
}

// UpgradeTable is the ordered set of upgrades of a network, indexed by
// UpgradeIndex.
type UpgradeTable [DefinedUpgrades]NetworkUpgrade

// mustBeValidUpgrade panics when idx is not a defined upgrade.  The table has
// a fixed size, so an out of range index can only come from a logic error.
func mustBeValidUpgrade(idx UpgradeIndex) {
	if idx < 0 || idx >= DefinedUpgrades {
		panic(fmt.Sprintf("upgrade index %d out of range", int(idx)))
	}
}

// IsActive returns whether the rules of the given upgrade apply to a block at
// the passed height.  An AlwaysActive upgrade is active at every height.
func (t *UpgradeTable) IsActive(height int32, idx UpgradeIndex) bool {
	mustBeValidUpgrade(idx)

	switch activation := t[idx].ActivationHeight; activation {
	case NoActivationHeight:
		return false
	case AlwaysActive:
		return true
	default:
		return height >= activation
	}
}

// IsActivationHeight returns whether height is exactly the activation height
// of the given upgrade.  Upgrades that are always active have no activation
// block.
func (t *UpgradeTable) IsActivationHeight(height int32, idx UpgradeIndex) bool {
	mustBeValidUpgrade(idx)

	activation := t[idx].ActivationHeight
	if activation == NoActivationHeight || activation == AlwaysActive {
		return false
	}
	return height == activation
}

// IsActivationHeightForAnyUpgrade returns whether height is the activation
// height of at least one upgrade.
func (t *UpgradeTable) IsActivationHeightForAnyUpgrade(height int32) bool {
	if height < 0 {
		return false
	}
	for idx := UpgradeBaseSprout + 1; idx < DefinedUpgrades; idx++ {
		if t.IsActivationHeight(height, idx) {
			return true
		}
	}
	return false
}

// CurrentEpoch returns the index of the most recent upgrade active at the
// passed height.
func (t *UpgradeTable) CurrentEpoch(height int32) UpgradeIndex {
	for idx := DefinedUpgrades - 1; idx > UpgradeBaseSprout; idx-- {
		if t.IsActive(height, idx) {
			return idx
		}
	}
	return UpgradeBaseSprout
}

// NextEpoch returns the index of the first upgrade that is not yet active at
// height but has a concrete activation height.  The boolean is false when no
// such upgrade exists.
func (t *UpgradeTable) NextEpoch(height int32) (UpgradeIndex, bool) {
	if height < 0 {
		return 0, false
	}

	// Sprout is never pending.
	for idx := UpgradeBaseSprout + 1; idx < DefinedUpgrades; idx++ {
		activation := t[idx].ActivationHeight
		if activation == NoActivationHeight {
			continue
		}
		if height < activation {
			return idx, true
		}
	}
	return 0, false
}

// NextActivationHeight returns the activation height of NextEpoch.
func (t *UpgradeTable) NextActivationHeight(height int32) (int32, bool) {
	idx, ok := t.NextEpoch(height)
	if !ok {
		return 0, false
	}
	return t[idx].ActivationHeight, true
}

// AdjustHeight maps a height measured after Blossom back into pre-Blossom
// units.  Heights before Blossom activation are returned unchanged, later
// heights are compressed by ratio relative to the activation height so that
// schedules expressed in pre-Blossom blocks keep their wall-clock length.
func (t *UpgradeTable) AdjustHeight(height, ratio int32) int32 {
	if !t.IsActive(height, UpgradeBlossom) {
		return height
	}
	activation := t[UpgradeBlossom].ActivationHeight
	return activation + (height-activation)/ratio
}

// validate checks the ordering invariants of the table.
func (t *UpgradeTable) validate() error {
	if t[UpgradeBaseSprout].ActivationHeight != AlwaysActive {
		str := fmt.Sprintf("%v must be always active, got activation "+
			"height %d", UpgradeBaseSprout,
			t[UpgradeBaseSprout].ActivationHeight)
		return paramsError(ErrInvalidParams, str)
	}

	prev := AlwaysActive
	for idx := UpgradeBaseSprout + 1; idx < DefinedUpgrades; idx++ {
		activation := t[idx].ActivationHeight
		switch {
		case activation == NoActivationHeight:
			continue
		case activation < NoActivationHeight:
			str := fmt.Sprintf("%v has invalid activation height %d",
				idx, activation)
			return paramsError(ErrInvalidParams, str)
		case activation < prev:
			str := fmt.Sprintf("%v activates at height %d, before "+
				"an earlier upgrade activating at %d", idx,
				activation, prev)
			return paramsError(ErrInvalidParams, str)
		}
		prev = activation
	}
	return nil
}
