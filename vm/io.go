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

import "io"

// In is an input callback, invoked once per input instruction. It returns the
// next byte of program input and may block waiting for it (e.g. on a
// keypress). An io.EOF return reports end of input: the executor then stores 0
// in the current cell and keeps running. Any other error aborts the execution.
type In func() (byte, error)

// Out is an output callback, invoked with one byte per output instruction.
// Buffering and flushing are the callback's business.
type Out func(byte) error

// ReaderIn returns an In reading single bytes from r. If r implements
// io.ByteReader it is used directly, otherwise it gets wrapped.
func ReaderIn(r io.Reader) In {
	switch br := r.(type) {
	case nil:
		return nil
	case io.ByteReader:
		return br.ReadByte
	default:
		var b [1]byte
		return func() (byte, error) {
			for {
				n, err := r.Read(b[:])
				if n > 0 {
					return b[0], nil
				}
				if err != nil {
					return 0, err
				}
			}
		}
	}
}

// WriterOut returns an Out writing single bytes to w. If w implements
// io.ByteWriter it is used directly, otherwise it gets wrapped.
func WriterOut(w io.Writer) Out {
	switch bw := w.(type) {
	case nil:
		return nil
	case io.ByteWriter:
		return bw.WriteByte
	default:
		return func(c byte) error {
			_, err := w.Write([]byte{c})
			return err
		}
	}
}

// MultiIn returns an In that drains each input in turn: when one reports
// io.EOF, reading resumes from the next. io.EOF surfaces only once all inputs
// are exhausted. Other errors are returned as-is without discarding the
// current input.
func MultiIn(ins ...In) In {
	return func() (byte, error) {
		for len(ins) > 0 {
			c, err := ins[0]()
			if err != io.EOF {
				return c, err
			}
			ins = ins[1:]
		}
		return 0, io.EOF
	}
}
