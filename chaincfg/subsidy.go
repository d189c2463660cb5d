// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// SubsidySlowStartShift returns the number of blocks by which the slow start
// shifts the halving schedule.
func (p *Params) SubsidySlowStartShift() int32 {
	return p.SubsidySlowStartInterval / 2
}

// HalvingInterval returns the number of blocks between subsidy halvings in
// effect at height.
func (p *Params) HalvingInterval(height int32) int32 {
	if p.Upgrades.IsActive(height, UpgradeBlossom) {
		return p.PostBlossomHalvingInterval
	}
	return p.PreBlossomHalvingInterval
}

// LastFoundersRewardBlockHeight returns the last height that pays a founders
// reward, evaluated with the rules in effect at height.  Founders rewards end
// at the first halving, so once Blossom is active the post-Blossom part of the
// pre-halving period is stretched by the spacing ratio.
//
// Passing a height of zero yields the bound in pre-Blossom units, which is the
// range of the founders reward address rotation.
func (p *Params) LastFoundersRewardBlockHeight(height int32) int32 {
	shift := p.SubsidySlowStartShift()
	if !p.Upgrades.IsActive(height, UpgradeBlossom) {
		return p.PreBlossomHalvingInterval + shift - 1
	}

	// Only integer ratios are supported, which Validate enforces through
	// the divisibility of the target spacing.
	activation := p.Upgrades[UpgradeBlossom].ActivationHeight
	return activation + p.PostBlossomHalvingInterval -
		(activation-shift)*p.BlossomPowTargetSpacingRatio - 1
}

// FoundersRewardAdjustedHeight maps height into pre-Blossom units for the
// founders reward address rotation, keeping every address in use for the same
// wall-clock duration across the Blossom boundary.
func (p *Params) FoundersRewardAdjustedHeight(height int32) int32 {
	return p.Upgrades.AdjustHeight(height, p.BlossomPowTargetSpacingRatio)
}
