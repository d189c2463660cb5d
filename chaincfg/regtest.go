// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
)

// RegtestOverrides mutates the regression test parameters of a Registry.  It
// is the only sanctioned way to change parameters after construction and can
// only be obtained for the regression test network.
//
// RegtestOverrides is not safe for concurrent use, nor for use while other
// goroutines read the parameters.  Apply overrides before starting anything
// that consults them.
type RegtestOverrides struct {
	params *Params
}

// Params returns the parameters the overrides apply to.
func (o *RegtestOverrides) Params() *Params {
	return o.params
}

// SetUpgradeActivationHeight moves the activation height of an upgrade.  The
// base protocol cannot be moved.  The change is rejected, leaving the table
// untouched, when the resulting table would be out of order.
func (o *RegtestOverrides) SetUpgradeActivationHeight(idx UpgradeIndex, height int32) error {
	if idx <= UpgradeBaseSprout || idx >= DefinedUpgrades {
		str := fmt.Sprintf("activation height of upgrade %v may not be "+
			"overridden", idx)
		return paramsError(ErrInvalidUpgradeIndex, str)
	}

	upgrades := &o.params.Upgrades
	prev := upgrades[idx].ActivationHeight
	upgrades[idx].ActivationHeight = height
	if err := upgrades.validate(); err != nil {
		upgrades[idx].ActivationHeight = prev
		return err
	}

	log.Infof("Set %v activation height to %d on %s", idx, height,
		o.params.Name)
	return nil
}

// setUpgradeActivationHeights applies a batch of activation overrides.  The
// batch either applies completely or not at all.
func (o *RegtestOverrides) setUpgradeActivationHeights(activations []UpgradeActivation) error {
	saved := o.params.Upgrades
	for _, a := range activations {
		if err := o.SetUpgradeActivationHeight(a.Upgrade, a.Height); err != nil {
			o.params.Upgrades = saved
			return err
		}
	}
	return nil
}

// SetPow replaces the difficulty adjustment bounds and proof of work limit.
// The change is rejected, leaving the parameters untouched, when they would
// no longer validate.
func (o *RegtestOverrides) SetPow(maxAdjustDown, maxAdjustUp int64, powLimit *big.Int) error {
	p := o.params
	prevDown, prevUp, prevLimit := p.PowMaxAdjustDown, p.PowMaxAdjustUp, p.PowLimit

	p.PowMaxAdjustDown = maxAdjustDown
	p.PowMaxAdjustUp = maxAdjustUp
	p.PowLimit = powLimit
	if err := p.Validate(); err != nil {
		p.PowMaxAdjustDown, p.PowMaxAdjustUp, p.PowLimit = prevDown, prevUp, prevLimit
		return err
	}

	log.Infof("Set proof of work bounds to %d%%/%d%% with limit %064x on %s",
		maxAdjustDown, maxAdjustUp, powLimit, p.Name)
	return nil
}

// SetCoinbaseMustBeProtected requires coinbase outputs to be spent to a
// shielded address.
func (o *RegtestOverrides) SetCoinbaseMustBeProtected() {
	o.params.CoinbaseMustBeProtected = true
	log.Infof("Coinbase protection enabled on %s", o.params.Name)
}

// SetZIP209Enabled enables the shielded value pool turnstile check.
func (o *RegtestOverrides) SetZIP209Enabled() {
	o.params.ZIP209Enabled = true
	log.Infof("ZIP 209 enabled on %s", o.params.Name)
}
