// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// TestNetParams returns the network parameters for the public test network.
func TestNetParams() *Params {
	genesisHash := newHashFromStr("b1c60a7e2fdcfb03c2baa5fcb6f9f5ae88f48f0aa9265bdf2cdb099d2f816a8b")

	return &Params{
		Name:             "test",
		Net:              TestNet,
		Magic:            wire.BitcoinNet(0xbff91afa),
		DefaultPort:      "15213",
		CurrencyUnits:    "TAZ",
		PruneAfterHeight: 1000,
		DNSSeeds: []DNSSeed{
			{"dns.arnak.org", "dnsseed.arnak.org"},
		},

		// Chain parameters
		GenesisHash:       genesisHash,
		GenesisMerkleRoot: newHashFromStr("e61b7d3ec8da5e04425f30cfd83e2524ad0b11d1d62bb9f0776b8372af4cc876"),
		GenesisTimestamp:  time.Unix(1573133876, 0),
		GenesisBits:       0x2007ffff,

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
				ActivationHeight: 207500,
				ActivationHash:   newHashFromStr("0000257c4331b098045023fcfbfa2474681f4564ab483f84e4e1ad078e4acf44"),
			},
			UpgradeSapling: {
				ProtocolVersion:  170007,
				ActivationHeight: 280000,
				ActivationHash:   newHashFromStr("000420e7fcc3a49d729479fb0b560dd7b8617b178a08e9e389620a9d1dd6361a"),
			},
			UpgradeBlossom: {
				ProtocolVersion:  170008,
				ActivationHeight: 584000,
				ActivationHash:   newHashFromStr("00367515ef2e781b8c9358b443b6329572599edd02c59e8af67db9785122f298"),
			},
		},

		PowLimit:                       newBigIntFromHex("07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowAveragingWindow:             17,
		PowMaxAdjustDown:               32, // 32% adjustment down
		PowMaxAdjustUp:                 16, // 16% adjustment up
		PreBlossomTargetTimePerBlock:   preBlossomPowTargetSpacing,
		BlossomPowTargetSpacingRatio:   blossomPowTargetSpacingRatio,
		AllowMinDifficultyBlocks:       true,
		MinDifficultyBlocksAfterHeight: 299187,
		EquihashN:                      200,
		EquihashK:                      9,

		// Subsidy parameters.
		CoinbaseMustBeProtected:    true,
		SubsidySlowStartInterval:   20000,
		PreBlossomHalvingInterval:  preBlossomHalvingInterval,
		PostBlossomHalvingInterval: postBlossomHalvingInterval,

		MajorityEnforceBlockUpgrade: 51,
		MajorityRejectBlockOutdated: 75,
		MajorityWindow:              400,

		// The best chain should have at least this much work.
		MinimumChainWork: newBigIntFromHex("1dbb4c4224"),

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, genesisHash},
			{38000, newHashFromStr("001e9a2d2e2892b88e9998cf7b079b41d59dd085423a921fe8386cecc42287b8")},
		},
		CheckpointData: CheckpointData{
			Time:      time.Unix(1486897419, 0),
			TotalTxs:  47163,
			TxsPerDay: 715,
		},

		SproutValuePoolCheckpointHeight:  440329,
		SproutValuePoolCheckpointBalance: 40000029096803,
		SproutValuePoolCheckpointHash:    newHashFromStr("000a95d08ba5dcbabe881fc6471d11807bcca7df5f1795c99f3ec4580db4279b"),
		ZIP209Enabled:                    true,

		FoundersRewardDisabled: true,

		// Address encoding magics
		Base58Prefixes: [NumBase58Types][]byte{
			PubKeyAddress:    {0x1d, 0x25},             // starts with tm
			ScriptAddress:    {0x1c, 0xba},             // starts with t2
			SecretKey:        {0xef},                   // starts with 9 or c
			ExtPublicKey:     {0x04, 0x35, 0x87, 0xcf}, // starts with tpub
			ExtSecretKey:     {0x04, 0x35, 0x83, 0x94}, // starts with tprv
			ZCPaymentAddress: {0x16, 0xb6},             // starts with zt
			ZCViewingKey:     {0xa8, 0xac, 0x0c},       // starts with ZiVt
			ZCSpendingKey:    {0xac, 0x08},             // starts with ST
		},
		Bech32HRPs: [NumBech32Types]string{
			SaplingPaymentAddress:     "ztestsapling",
			SaplingFullViewingKey:     "zviewtestsapling",
			SaplingIncomingViewingKey: "zivktestsapling",
			SaplingExtendedSpendKey:   "secret-extended-key-test",
		},

		HDCoinType: 1,

		MiningRequiresPeers:           true,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		TestnetToBeDeprecatedFieldRPC: true,
	}
}
