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

package rules

import (
	"bytes"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
)

// NormalizeIntLiteral lowercases the radix prefix (0x/0X, 0o/0O) and hex
// digits of an integer literal, so 0XFF and 0xFf both converge on 0xff.
func NormalizeIntLiteral() engine.Rule {
	return engine.RuleFunc{
		RuleName: "normalize-int-literal",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			if node.Head.Kind != cst.KindInt {
				return accept()
			}
			lowered := toLowerASCII(node.Text)
			if bytes.Equal(lowered, node.Text) {
				return accept()
			}
			return replaceLeaf(ctx, node, lowered, cst.KindInt, node.Head.Flags)
		},
	}
}

// NormalizeFloatLiteral lowercases the exponent marker (E -> e) of a
// floating-point literal.
func NormalizeFloatLiteral() engine.Rule {
	return engine.RuleFunc{
		RuleName: "normalize-float-literal",
		Fn: func(ctx *engine.Context, node cst.Node) engine.Outcome {
			if node.Head.Kind != cst.KindFloat {
				return accept()
			}
			lowered := toLowerASCII(node.Text)
			if bytes.Equal(lowered, node.Text) {
				return accept()
			}
			return replaceLeaf(ctx, node, lowered, cst.KindFloat, node.Head.Flags)
		},
	}
}

func toLowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
