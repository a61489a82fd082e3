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

// Package vm implements a Brainfuck virtual machine.
//
// A Program wraps an instruction sequence, usually compiled from source text
// by the parse package, and executes it against a Tape of byte cells that
// starts as a single zero cell and grows on demand as the pointer moves
// right. Moving the pointer left of cell 0 halts execution with a pointer
// underflow error; cell arithmetic wraps modulo 256 in both directions.
//
// I/O is callback based: each input instruction calls the supplied In
// callback for one byte, each output instruction passes one byte to the Out
// callback. Callbacks are invoked synchronously and may block; blocking on
// input (e.g. waiting for a keypress) is the caller's deliberate choice, not
// something the VM works around. When In reports io.EOF the current cell is
// set to 0 and execution continues. The ReaderIn, WriterOut and MultiIn
// helpers adapt ordinary readers and writers to the callback types.
//
// Execution is single threaded and runs until the instruction cursor passes
// the end of the sequence. There is no cancellation mechanism: a program that
// loops forever will run forever, which is inherent to the language being
// interpreted. A single Program may however be executed concurrently from
// multiple goroutines since each execution owns its Tape and cursor.
//
// The Optimize option collapses runs of identical move or add instructions
// into single instructions carrying the net count. It is a pure performance
// transform: optimized and unoptimized sequences produce identical output and
// fail at the same operations.
package vm
