//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import "github.com/runestone-lang/runestone/cst"

// OutcomeKind discriminates the three-outcome return every rule and
// every driver entry point produces. It is modeled as an explicit tagged
// sum (OutcomeKind + a Node payload only meaningful for Replaced) rather
// than a nullable node, so "no change" (Accepted) and "no node"
// (Deleted) can never be confused with each other.
type OutcomeKind int

const (
	// Accepted means the subtree's existing bytes are final; the cursor
	// has advanced by exactly span(node).
	Accepted OutcomeKind = iota
	// Replaced means the rule spliced span(Node) new bytes at the entry
	// cursor position and left the cursor there; the caller must rewind
	// and retry with Node.
	Replaced
	// Deleted is reserved and unreachable in this core (see
	// DeletedVariantError).
	Deleted
)

// Outcome is the return type of a rule or of format_node!.
type Outcome struct {
	Kind OutcomeKind
	Node cst.Node // only meaningful when Kind == Replaced
}

// AcceptedOutcome is a convenience constructor.
func AcceptedOutcome() Outcome { return Outcome{Kind: Accepted} }

// ReplacedOutcome is a convenience constructor.
func ReplacedOutcome(n cst.Node) Outcome { return Outcome{Kind: Replaced, Node: n} }

// DeletedOutcome is a convenience constructor; reaching the children
// driver with this outcome is a hard error (see DeletedVariantError).
func DeletedOutcome() Outcome { return Outcome{Kind: Deleted} }
