// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2017 Denis Bernard <db047h@gmail.com>
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

package vm

// optimize rewrites the program's instruction sequence in a single forward
// scan producing a new slice. Consecutive OpMove instructions collapse into
// one carrying the summed delta, likewise for OpAdd; runs never extend across
// OpOut, OpIn or either jump. A run with a net delta of zero is elided.
//
// Instruction indices shift, so jump targets are re-resolved through an old
// index to new index table once the scan is done. Only bracket instructions
// are ever targeted and brackets never collapse, so the remapping is total.
func (p *Program) optimize() {
	if p.optimized {
		return
	}
	p.optimized = true
	code := p.code
	out := make([]Instruction, 0, len(code))
	remap := make([]int, len(code))
	for pc := 0; pc < len(code); {
		op := code[pc]
		switch op.Op {
		case OpMove, OpAdd:
			delta := 0
			for ; pc < len(code) && code[pc].Op == op.Op; pc++ {
				remap[pc] = len(out)
				delta += code[pc].Arg
			}
			if delta != 0 {
				out = append(out, Instruction{Op: op.Op, Arg: delta})
			}
		default:
			remap[pc] = len(out)
			out = append(out, op)
			pc++
		}
	}
	for n, op := range out {
		switch op.Op {
		case OpJz, OpJnz:
			out[n].Arg = remap[op.Arg]
		}
	}
	if len(out) == 0 {
		// a fully elided program compares equal to a parse of empty source
		out = nil
	}
	p.code = out
}
