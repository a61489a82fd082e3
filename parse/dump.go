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

package parse

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/bfvm/internal/bfi"
	"github.com/db47h/bfvm/vm"
)

// Dump writes a listing of the instruction at position pc in the given
// sequence to the specified io.Writer and returns any write error.
func Dump(code []vm.Instruction, pc int, w io.Writer) error {
	ew, _ := w.(*bfi.ErrWriter)
	if ew == nil {
		ew = bfi.NewErrWriter(w)
	}
	op := code[pc]
	ew.WriteString(op.Op.String())
	if op.Op.HasArg() {
		ew.WriteByte(' ')
		ew.WriteString(strconv.Itoa(op.Arg))
	}
	return ew.Err
}

// DumpAll writes a listing of the whole instruction sequence to the specified
// io.Writer, one indexed instruction per line. It will return any write
// error.
func DumpAll(code []vm.Instruction, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for pc := range code {
		fmt.Fprintf(ew, "% 6d\t", pc)
		Dump(code, pc, ew)
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
