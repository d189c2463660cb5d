// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// MainNetParams returns the network parameters for the main arnak network.
func MainNetParams() *Params {
	genesisHash := newHashFromStr("00040fe8ec8471911baa1db1266ea15dd06b4a8a5c453883c000b031973dce08")

	return &Params{
		Name:          "main",
		Net:           MainNet,
		Magic:         wire.BitcoinNet(0x6427e924),
		DefaultPort:   "15203",
		CurrencyUnits: "ANK",
		AlertPubKey: hexToBytes("04dca46fa5ca4600ab464f748967f34ee5134f477169d9818467f7" +
			"abd79cb824ad3d51672c366864ae397b2d01819715c21ad2313cc095928658b5bf5ea1c545eb"),
		PruneAfterHeight: 100000,
		DNSSeeds:         nil,

		// Chain parameters
		GenesisHash:       genesisHash,
		GenesisMerkleRoot: newHashFromStr("c4eaa58879081de3c24a7b117ed2b28300e7ec4c4c1dff1d3f1268b7857a4ddb"),
		GenesisTimestamp:  time.Unix(1572954275, 0),
		GenesisBits:       0x1f07ffff,

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
				ProtocolVersion:  170005,
				ActivationHeight: 347500,
				ActivationHash:   newHashFromStr("0000000003761c0d0c3974b54bdb425613bbb1eaadd6e70b764de82f195ea243"),
			},
			UpgradeSapling: {
				ProtocolVersion:  170007,
				ActivationHeight: 419200,
				ActivationHash:   newHashFromStr("00000000025a57200d898ac7f21e26bf29028bbe96ec46e05b2c17cc9db9e4f3"),
			},
			UpgradeBlossom: {
				ProtocolVersion:  170009,
				ActivationHeight: 653600,
			},
		},

		PowLimit:                     newBigIntFromHex("0007ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		PowAveragingWindow:           17,
		PowMaxAdjustDown:             32, // 32% adjustment down
		PowMaxAdjustUp:               16, // 16% adjustment up
		PreBlossomTargetTimePerBlock: preBlossomPowTargetSpacing,
		BlossomPowTargetSpacingRatio: blossomPowTargetSpacingRatio,
		AllowMinDifficultyBlocks:     false,
		EquihashN:                    200,
		EquihashK:                    9,

		// Subsidy parameters.
		CoinbaseMustBeProtected:    true,
		SubsidySlowStartInterval:   20000,
		PreBlossomHalvingInterval:  preBlossomHalvingInterval,
		PostBlossomHalvingInterval: postBlossomHalvingInterval,

		MajorityEnforceBlockUpgrade: 750,
		MajorityRejectBlockOutdated: 950,
		MajorityWindow:              4000,

		// The best chain should have at least this much work.
		MinimumChainWork: newBigIntFromHex("017e73a331fae01c"),

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, genesisHash},
		},
		CheckpointData: CheckpointData{
			Time:      time.Unix(1572954275, 0),
			TotalTxs:  0,
			TxsPerDay: 0,
		},

		SproutValuePoolCheckpointHeight:  0,
		SproutValuePoolCheckpointBalance: 0,
		SproutValuePoolCheckpointHash:    newHashFromStr("0000000000c7b46b6bc04b4cbf87d8bb08722aebd51232619b214f7273f8460e"),
		ZIP209Enabled:                    true,

		FoundersRewardDisabled: true,

		// Address encoding magics
		Base58Prefixes: [NumBase58Types][]byte{
			PubKeyAddress:    {0x1d, 0xd7},             // starts with v1
			ScriptAddress:    {0x1d, 0xdc},             // starts with v3
			SecretKey:        {0x80},                   // starts with 5, K or L
			ExtPublicKey:     {0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
			ExtSecretKey:     {0x04, 0x88, 0xad, 0xe4}, // starts with xprv
			ZCPaymentAddress: {0x0f, 0xeb},             // starts with hd
			ZCViewingKey:     {0xa8, 0xab, 0xd3},
			ZCSpendingKey:    {0xab, 0x36}, // starts with SK
		},
		Bech32HRPs: [NumBech32Types]string{
			SaplingPaymentAddress:     "zs",
			SaplingFullViewingKey:     "zviews",
			SaplingIncomingViewingKey: "zivks",
			SaplingExtendedSpendKey:   "secret-extended-key-main",
		},

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 133,

		MiningRequiresPeers:           true,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		TestnetToBeDeprecatedFieldRPC: false,
	}
}
