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

// Command bf is a Brainfuck interpreter.
//
// Usage:
//
//	bf [options] file
//	bf [options] -e code
//
// The program source comes from the file argument, or inline from the -e
// flag. Program input is read from standard input, one keypress at a time
// when standard input is a terminal (the terminal is switched to raw mode,
// CTRL-D ends input), line buffered otherwise. Program output goes to
// standard output.
//
// Options:
//
//	-e code
//		interpret code instead of reading a source file
//	-O
//		collapse runs of identical move/add instructions before execution
//	-dump
//		print the compiled instruction listing and exit (combine with -O to
//		see the collapsed sequence)
//	-with filename
//		read program input from filename before standard input; may be
//		repeated, files are consumed in command line order
//	-noraw
//		do not switch the terminal to raw mode
//	-debug
//		on error, print a stack trace and the VM state (instruction cursor,
//		tape pointer, tape length)
//
// The exit status is 1 if parsing or execution failed, 0 otherwise. A
// Brainfuck program that never terminates keeps the interpreter running until
// it is killed.
package main
