// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// RegNetParams returns the network parameters for the regression test
// network.  This network is local and deterministic, and is meant to be
// reshaped by test harnesses through RegtestOverrides.
//
// Since this network is only intended for testing, its values are subject
// to change even if it would cause a hard fork.
func RegNetParams() *Params {
	genesisHash := newHashFromStr("beb38df13b4e28b090a9e98ce4624ccb9e67079498d0367cc0ff92382a2e6244")

	return &Params{
		Name:             "regtest",
		Net:              RegTest,
		Magic:            wire.BitcoinNet(0x5f3fe8aa),
		DefaultPort:      "18344",
		CurrencyUnits:    "REG",
		PruneAfterHeight: 1000,

		// Regtest mode doesn't have any DNS seeds.
		DNSSeeds: nil,

		// Chain parameters
		GenesisHash:       genesisHash,
		GenesisMerkleRoot: newHashFromStr("e61b7d3ec8da5e04425f30cfd83e2524ad0b11d1d62bb9f0776b8372af4cc876"),
		GenesisTimestamp:  time.Unix(1573134086, 0),
		GenesisBits:       0x200f0f0f,

		Upgrades: UpgradeTable{
			UpgradeBaseSprout: {
				ProtocolVersion:  170002,
				ActivationHeight: AlwaysActive,
			},
			UpgradeTestDummy: {
				ProtocolVersion:  170002,
				ActivationHeight: NoActivationHeight,
			},
			UpgradeOverwinter: {
				ProtocolVersion:  170003,
				ActivationHeight: NoActivationHeight,
			},
			UpgradeSapling: {
				ProtocolVersion:  170006,
				ActivationHeight: NoActivationHeight,
			},
			UpgradeBlossom: {
				ProtocolVersion:  170008,
				ActivationHeight: NoActivationHeight,
			},
		},

		PowLimit:                       newBigIntFromHex("0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f"),
		PowAveragingWindow:             17,
		PowMaxAdjustDown:               0, // Turn off adjustment down
		PowMaxAdjustUp:                 0, // Turn off adjustment up
		PreBlossomTargetTimePerBlock:   preBlossomPowTargetSpacing,
		BlossomPowTargetSpacingRatio:   blossomPowTargetSpacingRatio,
		AllowMinDifficultyBlocks:       true,
		MinDifficultyBlocksAfterHeight: 0,
		EquihashN:                      48,
		EquihashK:                      5,

		// Subsidy parameters.
		CoinbaseMustBeProtected:    false,
		SubsidySlowStartInterval:   0,
		PreBlossomHalvingInterval:  preBlossomRegtestHalvingInterval,
		PostBlossomHalvingInterval: postBlossomRegtestHalvingInterval,

		MajorityEnforceBlockUpgrade: 750,
		MajorityRejectBlockOutdated: 950,
		MajorityWindow:              1000,

		MinimumChainWork: new(big.Int),

		Checkpoints: []Checkpoint{
			{0, genesisHash},
		},
		CheckpointData: CheckpointData{},

		ZIP209Enabled: false,

		FoundersRewardDisabled: true,

		// These prefixes are the same as the testnet prefixes.
		Base58Prefixes: [NumBase58Types][]byte{
			PubKeyAddress:    {0x1d, 0x25},
			ScriptAddress:    {0x1c, 0xba},
			SecretKey:        {0xef},
			ExtPublicKey:     {0x04, 0x35, 0x87, 0xcf},
			ExtSecretKey:     {0x04, 0x35, 0x83, 0x94},
			ZCPaymentAddress: {0x16, 0xb6},
			ZCViewingKey:     {0xa8, 0xac, 0x0c},
			ZCSpendingKey:    {0xac, 0x08},
		},
		Bech32HRPs: [NumBech32Types]string{
			SaplingPaymentAddress:     "zregtestsapling",
			SaplingFullViewingKey:     "zviewregtestsapling",
			SaplingIncomingViewingKey: "zivkregtestsapling",
			SaplingExtendedSpendKey:   "secret-extended-key-regtest",
		},

		HDCoinType: 1,

		MiningRequiresPeers:           false,
		DefaultConsistencyChecks:      true,
		RequireStandard:               false,
		MineBlocksOnDemand:            true,
		TestnetToBeDeprecatedFieldRPC: false,
	}
}
