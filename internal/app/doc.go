// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the soulkey resolver together: it builds the value
// service adapter, the local default store and the metrics recorder from a
// [config.StructuredConfig], loads the host configuration layers, and runs
// one resolution pass that installs the resolved layer.
//
// Resolution never fails the run. Errors returned here come from building
// the collaborators (bad defaults file, unreadable layer) and are meant to
// stop startup before any pass happens.
package app
