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

// Package parse compiles Brainfuck source text into vm instruction
// sequences.
//
// The language has eight single character commands:
//
//	>	move the tape pointer right
//	<	move the tape pointer left
//	+	increment the current cell
//	-	decrement the current cell
//	.	output the current cell
//	,	read one byte of input into the current cell
//	[	jump past the matching ] if the current cell is 0
//	]	jump back past the matching [ if the current cell is not 0
//
// Every other character is a comment. Parse scans the source once, left to
// right, keeping a stack of pending '[' output indices; each ']' pops the
// stack and both brackets get patched with each other's index, so the
// executor jumps on precomputed targets and needs no bracket search at run
// time. Unbalanced brackets fail parsing with an Error locating the offending
// bracket.
//
// Dump and DumpAll write a plain text listing of a compiled sequence, one
// mnemonic per instruction, mostly useful to inspect what the collapsing
// optimizer did to a program.
package parse
