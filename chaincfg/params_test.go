// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestNetworkParamsValidate(t *testing.T) {
	t.Parallel()

	for _, params := range []*Params{MainNetParams(), TestNetParams(), RegNetParams()} {
		err := params.Validate()
		require.NoError(t, err, spew.Sdump(params))

		// Upgrade heights never decrease and the base protocol is
		// always active.
		require.Equal(t, AlwaysActive, params.Upgrades[UpgradeBaseSprout].ActivationHeight)
		prev := AlwaysActive
		for idx := UpgradeBaseSprout + 1; idx < DefinedUpgrades; idx++ {
			height := params.Upgrades[idx].ActivationHeight
			if height == NoActivationHeight {
				continue
			}
			require.GreaterOrEqual(t, height, prev, "%s %v", params.Name, idx)
			prev = height
		}
	}
}

func TestConstructorsReturnFreshParams(t *testing.T) {
	t.Parallel()

	a, b := RegNetParams(), RegNetParams()
	require.NotSame(t, a, b)
	a.Upgrades[UpgradeSapling].ActivationHeight = 10
	a.Base58Prefixes[PubKeyAddress][0] = 0
	require.Equal(t, NoActivationHeight, b.Upgrades[UpgradeSapling].ActivationHeight)
	require.Equal(t, byte(0x1d), b.Base58Prefixes[PubKeyAddress][0])
}

func TestMessageStart(t *testing.T) {
	t.Parallel()

	require.Equal(t, [4]byte{0x24, 0xe9, 0x27, 0x64}, MainNetParams().MessageStart())
	require.Equal(t, [4]byte{0xfa, 0x1a, 0xf9, 0xbf}, TestNetParams().MessageStart())
	require.Equal(t, [4]byte{0xaa, 0xe8, 0x3f, 0x5f}, RegNetParams().MessageStart())
}

func TestTargetSpacing(t *testing.T) {
	t.Parallel()

	params := MainNetParams()
	require.Equal(t, 150*time.Second, params.TargetTimePerBlock(653599))
	require.Equal(t, 75*time.Second, params.TargetTimePerBlock(653600))
	require.Equal(t, 75*time.Second, params.PostBlossomTargetTimePerBlock())

	require.Equal(t, int32(840000), params.HalvingInterval(653599))
	require.Equal(t, int32(1680000), params.HalvingInterval(653600))
}

func TestSubsidySchedule(t *testing.T) {
	t.Parallel()

	params := MainNetParams()
	require.Equal(t, int32(10000), params.SubsidySlowStartShift())
	require.Equal(t, int32(849999), params.LastFoundersRewardBlockHeight(0))
	require.Equal(t, int32(849999), params.LastFoundersRewardBlockHeight(653599))
	require.Equal(t, int32(1046399), params.LastFoundersRewardBlockHeight(653600))

	require.Equal(t, int32(653599), params.FoundersRewardAdjustedHeight(653599))
	require.Equal(t, int32(653600), params.FoundersRewardAdjustedHeight(653601))
	require.Equal(t, int32(653601), params.FoundersRewardAdjustedHeight(653602))

	// The stretched period still ends at the pre-Blossom bound.
	require.Equal(t, int32(849999), params.FoundersRewardAdjustedHeight(1046399))
}

func TestEquihash(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1344, MainNetParams().EquihashSolutionSize())
	require.Equal(t, 36, RegNetParams().EquihashSolutionSize())

	tests := []struct {
		n, k       uint32
		acceptable bool
	}{
		{200, 9, true},
		{48, 5, true},
		{144, 5, true},
		{200, 0, false},
		{201, 9, false},
		{8, 8, false},
		{96, 2, false},
	}
	for _, test := range tests {
		require.Equal(t, test.acceptable, equihashParamsAcceptable(test.n, test.k),
			"n=%d k=%d", test.n, test.k)
	}
}

func TestAddressEncodingTables(t *testing.T) {
	t.Parallel()

	main, test, reg := MainNetParams(), TestNetParams(), RegNetParams()
	require.Equal(t, []byte{0x1d, 0xdc}, main.Base58Prefix(ScriptAddress))
	require.Equal(t, []byte{0x80}, main.Base58Prefix(SecretKey))
	require.Equal(t, "zs", main.Bech32HRP(SaplingPaymentAddress))
	require.Equal(t, "ztestsapling", test.Bech32HRP(SaplingPaymentAddress))
	require.Equal(t, "zregtestsapling", reg.Bech32HRP(SaplingPaymentAddress))
	require.Equal(t, test.Base58Prefixes, reg.Base58Prefixes)

	for _, params := range []*Params{main, test, reg} {
		for i := Base58Type(0); i < NumBase58Types; i++ {
			require.NotEmpty(t, params.Base58Prefix(i), "%s %d", params.Name, i)
		}
		for i := Bech32Type(0); i < NumBech32Types; i++ {
			require.NotEmpty(t, params.Bech32HRP(i), "%s %d", params.Name, i)
		}
	}
}

func TestCheckActivationHash(t *testing.T) {
	t.Parallel()

	params := MainNetParams()
	sapling := params.Upgrades[UpgradeSapling].ActivationHash
	other := newHashFromStr("00000000025a57200d898ac7f21e26bf29028bbe96ec46e05b2c17cc9db9e4f4")

	require.NoError(t, params.CheckActivationHash(419200, sapling))
	require.NoError(t, params.CheckActivationHash(419201, other))

	// Blossom pins no hash on the main network.
	require.NoError(t, params.CheckActivationHash(653600, other))

	err := params.CheckActivationHash(419200, other)
	require.True(t, errors.Is(err, ErrActivationHashMismatch))
	var perr *Error
	require.True(t, errors.As(err, &perr))
	require.Contains(t, perr.Description, "419200")

	err = params.CheckActivationHash(419200, nil)
	require.True(t, errors.Is(err, ErrActivationHashMismatch))

	// Regtest pins nothing.
	require.NoError(t, RegNetParams().CheckActivationHash(0, &chainhash.Hash{}))
}

func TestParamsValidateFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"unordered upgrades", func(p *Params) {
			p.Upgrades[UpgradeSapling].ActivationHeight = 1
		}},
		{"nil pow limit", func(p *Params) {
			p.PowLimit = nil
		}},
		{"zero pow limit", func(p *Params) {
			p.PowLimit = new(big.Int)
		}},
		{"pow limit above 256 bits", func(p *Params) {
			p.PowLimit = new(big.Int).Lsh(bigOne, 256)
		}},
		{"zero averaging window", func(p *Params) {
			p.PowAveragingWindow = 0
		}},
		{"averaging window overflows", func(p *Params) {
			p.PowAveragingWindow = 1 << 20
		}},
		{"adjustment of 100 percent", func(p *Params) {
			p.PowMaxAdjustDown = 100
		}},
		{"negative adjustment", func(p *Params) {
			p.PowMaxAdjustUp = -1
		}},
		{"bad equihash", func(p *Params) {
			p.EquihashK = 0
		}},
		{"zero spacing ratio", func(p *Params) {
			p.BlossomPowTargetSpacingRatio = 0
		}},
		{"indivisible spacing", func(p *Params) {
			p.PreBlossomTargetTimePerBlock = 150*time.Second + time.Nanosecond
		}},
		{"zero halving interval", func(p *Params) {
			p.PreBlossomHalvingInterval = 0
		}},
		{"majority above window", func(p *Params) {
			p.MajorityRejectBlockOutdated = p.MajorityWindow + 1
		}},
		{"enforce above reject", func(p *Params) {
			p.MajorityEnforceBlockUpgrade = p.MajorityRejectBlockOutdated + 1
		}},
		{"nil minimum chain work", func(p *Params) {
			p.MinimumChainWork = nil
		}},
		{"missing genesis", func(p *Params) {
			p.GenesisHash = nil
		}},
		{"first checkpoint not genesis", func(p *Params) {
			p.Checkpoints[0].Hash = newHashFromStr("01")
		}},
		{"unsorted checkpoints", func(p *Params) {
			p.Checkpoints[0], p.Checkpoints[1] = p.Checkpoints[1], p.Checkpoints[0]
		}},
		{"duplicate checkpoint", func(p *Params) {
			p.Checkpoints = append(p.Checkpoints, p.Checkpoints[1])
		}},
		{"checkpoint without hash", func(p *Params) {
			p.Checkpoints[1].Hash = nil
		}},
	}
	for _, test := range tests {
		p := TestNetParams()
		test.mutate(p)
		err := p.Validate()
		require.Error(t, err, test.name)
		require.True(t, errors.Is(err, ErrInvalidParams), "%s: %v", test.name, err)

		var perr *Error
		require.True(t, errors.As(err, &perr), test.name)
		require.Equal(t, ErrInvalidParams, perr.ErrorCode, test.name)
	}
}

func TestErrorCodeStringer(t *testing.T) {
	t.Parallel()

	for code := ErrorCode(0); code < numErrorCodes; code++ {
		require.Contains(t, errorCodeStrings, code, "code %d", int(code))
		require.Equal(t, errorCodeStrings[code], code.String())
	}
	require.Equal(t, "Unknown ErrorCode (99)", ErrorCode(99).String())

	err := paramsError(ErrRegtestOnly, "regtest only")
	require.Equal(t, "regtest only", err.Error())
	require.True(t, errors.Is(err, ErrRegtestOnly))
	require.True(t, errors.Is(err, &Error{ErrorCode: ErrRegtestOnly}))
	require.False(t, errors.Is(err, ErrInvalidParams))
}
