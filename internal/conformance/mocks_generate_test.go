// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package conformance

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Recorder
//go:generate mockgen -destination=logger_mock_test.go -package=$GOPACKAGE github.com/ChainSafe/go-digest/internal/log LeveledLogger
